// Package core provides the main MemAgent client and memory management functionality.
package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config contains the complete configuration for a MemAgent client.
//
// Example:
//
//	config := &core.Config{
//	    DefaultUserID: "default",
//	    ListLimit:     10,
//	    NodeID:        1,
//	}
//	client, _ := core.NewClient(config)
type Config struct {
	// DefaultUserID is the user identity used when an operation does not
	// specify one. Defaults to "default".
	DefaultUserID string `json:"default_user_id"`

	// ListLimit is the default maximum number of results for Retrieve
	// operations when the caller does not supply a limit. Defaults to 10.
	ListLimit int `json:"list_limit"`

	// NodeID is the snowflake node identity used for memory ID generation.
	// Must be within [0, 1023]. Defaults to 1. Give each process of a
	// multi-process deployment its own node ID to keep IDs unique.
	NodeID int64 `json:"node_id"`

	// KeywordsPath is an optional path to a YAML file overriding the
	// classifier's keyword lists. Empty means the built-in lists are used.
	KeywordsPath string `json:"keywords_path,omitempty"`

	// Debug enables logging of store mutations to the standard logger.
	Debug bool `json:"debug,omitempty"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		DefaultUserID: DefaultUserID,
		ListLimit:     10,
		NodeID:        1,
	}
}

// Validate checks the configuration for invalid values.
//
// Returns ErrInvalidConfig (wrapped) if the default user ID is empty, the
// list limit is not positive, or the node ID is outside [0, 1023].
func (c *Config) Validate() error {
	if c.DefaultUserID == "" {
		return NewMemoryError("Validate", ErrInvalidConfig)
	}
	if c.ListLimit <= 0 {
		return NewMemoryError("Validate", ErrInvalidConfig)
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return NewMemoryError("Validate", ErrInvalidConfig)
	}
	return nil
}

// LoadConfigFromEnv loads configuration from environment variables.
//
// The function:
//  1. Searches for .env or .env.example files (up to 5 directory levels up)
//  2. Loads environment variables from the found file
//  3. Parses environment variables into a Config struct
//
// Supported environment variables:
//   - MEMAGENT_DEFAULT_USER (default "default")
//   - MEMAGENT_LIST_LIMIT (default 10)
//   - MEMAGENT_NODE_ID (default 1)
//   - MEMAGENT_KEYWORDS_PATH (optional classifier keyword YAML file)
//   - MEMAGENT_DEBUG (set to "true" or "1" to enable debug logging)
//
// Returns a Config instance. Unset variables fall back to defaults, so the
// function succeeds even with no environment configured.
func LoadConfigFromEnv() (*Config, error) {
	// Use FindEnvFile to locate .env file (supports upward search)
	envPath, found := FindEnvFile()
	if found {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	config := DefaultConfig()
	config.DefaultUserID = getEnvOrDefault("MEMAGENT_DEFAULT_USER", config.DefaultUserID)
	config.KeywordsPath = os.Getenv("MEMAGENT_KEYWORDS_PATH")

	if v := os.Getenv("MEMAGENT_LIST_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, NewMemoryError("LoadConfigFromEnv", ErrInvalidConfig)
		}
		config.ListLimit = limit
	}
	if v := os.Getenv("MEMAGENT_NODE_ID"); v != "" {
		nodeID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, NewMemoryError("LoadConfigFromEnv", ErrInvalidConfig)
		}
		config.NodeID = nodeID
	}
	if v := os.Getenv("MEMAGENT_DEBUG"); v == "true" || v == "1" {
		config.Debug = true
	}

	return config, nil
}

// LoadConfigFromFile loads configuration from a JSON file.
//
// Fields missing from the file keep their default values.
//
// Example:
//
//	config, err := core.LoadConfigFromFile("./memagent.json")
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewMemoryError("LoadConfigFromFile", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, NewMemoryError("LoadConfigFromFile", err)
	}
	return config, nil
}

// getEnvOrDefault gets an environment variable or returns the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FindEnvFile searches for .env or .env.example files.
//
// The search:
//  1. Checks the current directory
//  2. Searches up to 5 directory levels up
//  3. Returns the first .env or .env.example file found
//
// Returns:
//   - path: Path to the found file (empty if not found)
//   - found: True if a file was found, false otherwise
func FindEnvFile() (string, bool) {
	// First check the current directory
	if _, err := os.Stat(".env"); err == nil {
		return ".env", true
	}
	if _, err := os.Stat(".env.example"); err == nil {
		return ".env.example", true
	}

	// Check parent directories (search upward)
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for i := 0; i < 5; i++ {
		dir = filepath.Dir(dir)
		for _, name := range []string{".env", ".env.example"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true
			}
		}
	}

	return "", false
}
