package core

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/memagent/memagent-go/pkg/classifier"
	"github.com/memagent/memagent-go/pkg/storage"
	"github.com/memagent/memagent-go/pkg/storage/inmemory"
)

// Client is the main MemAgent client for memory management.
//
// It provides a complete interface for storing, retrieving, and managing
// categorized memories with support for:
//   - Automatic categorization via keyword scoring
//   - Per-user memory partitioning
//   - Substring search
//   - Aggregate statistics
//
// The client is safe for concurrent use from multiple goroutines: the
// underlying store serializes access to each user's collection, and ID
// generation is internally synchronized.
//
// Example usage:
//
//	config, _ := core.LoadConfigFromEnv()
//	client, _ := core.NewClient(config)
//	defer client.Close()
//
//	memory, _ := client.Save(ctx, "Reunião de trabalho com cliente",
//	    core.WithUserID("user_001"),
//	)
type Client struct {
	// config contains the client configuration.
	config *Config

	// storage holds all memories.
	storage storage.Store

	// classifier assigns categories to content saved without one.
	classifier *classifier.Classifier

	// snowflakeNode generates unique, time-ordered IDs for memories.
	snowflakeNode *snowflake.Node
}

// NewClient creates a new MemAgent client backed by an in-memory store.
//
// The store starts empty and its contents are discarded on Close; nothing is
// persisted across process restarts.
//
// Parameters:
//   - cfg: Client configuration; nil means DefaultConfig()
//
// Returns a new Client instance, or an error if the configuration is invalid
// or the classifier keyword file cannot be loaded.
func NewClient(cfg *Config) (*Client, error) {
	return NewClientWithStore(cfg, inmemory.NewStore())
}

// NewClientWithStore creates a client on top of an existing store.
//
// Useful for tests and for embedding the client behind a custom
// storage.Store implementation.
func NewClientWithStore(cfg *Config, store storage.Store) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Load classifier keyword overrides (if configured)
	var sets *classifier.KeywordSets
	if cfg.KeywordsPath != "" {
		loaded, err := classifier.LoadKeywordSets(cfg.KeywordsPath)
		if err != nil {
			return nil, NewMemoryError("NewClient", err)
		}
		sets = loaded
	}

	// Initialize Snowflake ID generator
	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		return nil, NewMemoryError("NewClient", err)
	}

	return &Client{
		config:        cfg,
		storage:       store,
		classifier:    classifier.New(sets),
		snowflakeNode: node,
	}, nil
}

// Save stores a new memory.
//
// The method:
//  1. Rejects empty content (ErrInvalidInput)
//  2. Derives the category from the content when none is supplied
//  3. Generates a fresh ID and timestamp and appends to the user's collection
//
// A category supplied by the caller must be one of the four classifier
// categories; anything else is rejected with ErrInvalidCategory.
//
// Parameters:
//   - ctx: Context for cancellation
//   - content: Memory content (text string)
//   - opts: Optional parameters (UserID, Category, Metadata)
//
// Returns the created Memory, or an error if validation fails.
//
// Example:
//
//	memory, err := client.Save(ctx, "Minha família foi para casa hoje",
//	    core.WithUserID("user_001"),
//	    core.WithMetadata(map[string]interface{}{"source": "chat"}),
//	)
//	// memory.Category == classifier.CategoryPersonal
func (c *Client) Save(ctx context.Context, content string, opts ...SaveOption) (*Memory, error) {
	if content == "" {
		return nil, NewMemoryError("Save", fmt.Errorf("%w: content must not be empty", ErrInvalidInput))
	}

	saveOpts := c.applySaveOptions(opts)

	category := saveOpts.Category
	if category == "" {
		category = c.classifier.Classify(content)
	} else if !category.Valid() {
		return nil, NewMemoryError("Save", fmt.Errorf("%w: %q", ErrInvalidCategory, category))
	}

	memory := &Memory{
		ID:        c.generateMemoryID(),
		Content:   content,
		Category:  category,
		CreatedAt: time.Now(),
		UserID:    saveOpts.UserID,
		Metadata:  saveOpts.Metadata,
	}

	if err := c.storage.Insert(ctx, toStorageMemory(memory)); err != nil {
		return nil, NewMemoryError("Save", err)
	}

	if c.config.Debug {
		log.Printf("memagent: saved %s (user=%s category=%s)", memory.ID, memory.UserID, memory.Category)
	}

	return memory, nil
}

// Retrieve returns a user's memories, most recent first.
//
// Results can be filtered to a single category and are truncated to the
// limit (the configured default, normally 10, unless WithLimit is given; a
// limit of zero or less yields an empty result). A user with no memories
// yields an empty, non-nil slice.
//
// Example:
//
//	memories, err := client.Retrieve(ctx,
//	    core.WithUserIDForRetrieve("user_001"),
//	    core.WithCategoryFilter(classifier.CategoryProfessional),
//	    core.WithLimit(5),
//	)
func (c *Client) Retrieve(ctx context.Context, opts ...RetrieveOption) ([]*Memory, error) {
	retrieveOpts := c.applyRetrieveOptions(opts)

	if retrieveOpts.Category != "" && !retrieveOpts.Category.Valid() {
		return nil, NewMemoryError("Retrieve", fmt.Errorf("%w: %q", ErrInvalidCategory, retrieveOpts.Category))
	}

	memories, err := c.storage.List(ctx, retrieveOpts.UserID, &storage.ListOptions{
		Category: string(retrieveOpts.Category),
		Limit:    retrieveOpts.Limit,
	})
	if err != nil {
		return nil, NewMemoryError("Retrieve", err)
	}

	return fromStorageMemories(memories), nil
}

// Search returns a user's memories whose content contains the query,
// case-insensitively.
//
// An empty query is rejected with ErrInvalidInput. Candidates can be
// filtered to a single category before matching. Unlike Retrieve, results
// keep the store's insertion order rather than being sorted by recency, and
// are always capped at 10. Both behaviors are part of the contract.
//
// Example:
//
//	results, err := client.Search(ctx, "projeto",
//	    core.WithUserIDForSearch("user_001"),
//	)
func (c *Client) Search(ctx context.Context, query string, opts ...SearchOption) ([]*Memory, error) {
	if query == "" {
		return nil, NewMemoryError("Search", fmt.Errorf("%w: query must not be empty", ErrInvalidInput))
	}

	searchOpts := c.applySearchOptions(opts)

	if searchOpts.Category != "" && !searchOpts.Category.Valid() {
		return nil, NewMemoryError("Search", fmt.Errorf("%w: %q", ErrInvalidCategory, searchOpts.Category))
	}

	memories, err := c.storage.Search(ctx, searchOpts.UserID, query, &storage.SearchOptions{
		Category: string(searchOpts.Category),
	})
	if err != nil {
		return nil, NewMemoryError("Search", err)
	}

	return fromStorageMemories(memories), nil
}

// Categorize classifies the given text without storing anything.
//
// An empty text is rejected with ErrInvalidInput. Classification is pure and
// deterministic; see the classifier package for the scoring rules.
//
// Example:
//
//	category, err := client.Categorize("O clima está bom hoje")
//	// category == classifier.CategoryGeneral
func (c *Client) Categorize(text string) (classifier.Category, error) {
	if text == "" {
		return "", NewMemoryError("Categorize", fmt.Errorf("%w: text must not be empty", ErrInvalidInput))
	}
	return c.classifier.Classify(text), nil
}

// Delete removes a memory by its ID.
//
// An empty memory ID is rejected with ErrInvalidInput. A missing user or a
// missing memory is not an error: Delete returns false and leaves the store
// unchanged, so callers can branch without error handling.
//
// Example:
//
//	found, err := client.Delete(ctx, memory.ID,
//	    core.WithUserIDForDelete("user_001"),
//	)
func (c *Client) Delete(ctx context.Context, memoryID string, opts ...DeleteOption) (bool, error) {
	if memoryID == "" {
		return false, NewMemoryError("Delete", fmt.Errorf("%w: memory ID must not be empty", ErrInvalidInput))
	}

	deleteOpts := c.applyDeleteOptions(opts)

	found, err := c.storage.Delete(ctx, deleteOpts.UserID, memoryID)
	if err != nil {
		return false, NewMemoryError("Delete", err)
	}

	if found && c.config.Debug {
		log.Printf("memagent: deleted %s (user=%s)", memoryID, deleteOpts.UserID)
	}

	return found, nil
}

// Stats summarizes a user's memories.
//
// Returns nil (with a nil error) when the user has no memories, the
// explicit "empty" result, distinct from a populated summary. Otherwise the
// summary contains the total count, per-category counts and percentages,
// and the oldest and newest creation times.
//
// Example:
//
//	stats, err := client.Stats(ctx, core.WithUserIDForStats("user_001"))
//	if stats == nil {
//	    // no memories stored for this user
//	}
func (c *Client) Stats(ctx context.Context, opts ...StatsOption) (*MemoryStats, error) {
	statsOpts := c.applyStatsOptions(opts)

	stats, err := c.storage.Stats(ctx, statsOpts.UserID)
	if err != nil {
		return nil, NewMemoryError("Stats", err)
	}

	return fromStorageStats(statsOpts.UserID, stats), nil
}

// Close closes the client and discards all stored memories.
//
// Example:
//
//	defer client.Close()
func (c *Client) Close() error {
	return c.storage.Close()
}

// generateMemoryID returns a fresh memory ID.
//
// Snowflake IDs embed a millisecond timestamp in their high bits, so IDs are
// unique for the process lifetime and sort by creation order.
func (c *Client) generateMemoryID() string {
	return fmt.Sprintf("mem_%s", c.snowflakeNode.Generate())
}
