// Package core provides the main MemAgent client and memory management functionality.
package core

import (
	"time"

	"github.com/memagent/memagent-go/pkg/classifier"
)

// Memory represents a single memory stored in the system.
//
// A memory contains:
//   - Content: The text content of the memory
//   - Category: The classification label, assigned automatically when the
//     caller does not supply one
//   - Metadata: Additional structured information, opaque to the store
//
// Memories are immutable once created; the only mutation the system supports
// is deletion.
//
// Example:
//
//	memory := &core.Memory{
//	    ID:       "mem_1234567890",
//	    UserID:   "user_001",
//	    Content:  "Reunião de trabalho com cliente",
//	    Category: classifier.CategoryProfessional,
//	}
type Memory struct {
	// ID is the unique identifier of the memory. Generated at creation time
	// from a time-ordered snowflake, so IDs sort by creation order.
	ID string `json:"id"`

	// Content is the text content of the memory.
	Content string `json:"content"`

	// Category is the classification label of the memory. Always one of the
	// four classifier categories; never empty.
	Category classifier.Category `json:"category"`

	// CreatedAt is when the memory was created. Encoded as RFC 3339
	// (ISO-8601) in JSON, under the "timestamp" key.
	CreatedAt time.Time `json:"timestamp"`

	// UserID identifies the user who owns this memory.
	UserID string `json:"user_id"`

	// Metadata contains additional structured information about the memory.
	// The store treats it as opaque.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// MemoryStats summarizes the memories stored for a single user.
//
// A nil *MemoryStats returned by Client.Stats means the user has no memories
// at all, which is distinct from a populated summary.
type MemoryStats struct {
	// UserID identifies the user the summary describes.
	UserID string `json:"user_id"`

	// Total is the number of memories stored for the user.
	Total int `json:"total"`

	// Categories maps each category present to its memory count.
	Categories map[classifier.Category]int `json:"categories"`

	// Percentages maps each category present to its share of the total
	// (count / total * 100). Percentages across all categories sum to 100
	// within floating-point tolerance.
	Percentages map[classifier.Category]float64 `json:"percentages"`

	// OldestAt is the creation time of the user's oldest memory.
	OldestAt time.Time `json:"oldest_at"`

	// NewestAt is the creation time of the user's newest memory.
	NewestAt time.Time `json:"newest_at"`
}

// DefaultUserID is the sentinel user identity used when a caller does not
// specify one.
const DefaultUserID = "default"
