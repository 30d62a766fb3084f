// Package storage provides interfaces and types for memory storage backends.
//
// It defines the Store interface that all storage implementations must satisfy,
// along with the stored memory type and per-operation options.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrClosed indicates that an operation was attempted on a closed store.
var ErrClosed = errors.New("store is closed")

// SearchResultLimit is the hard cap on the number of results a Search call
// may return. Unlike List, whose limit is caller-supplied, Search always
// truncates to this value.
const SearchResultLimit = 10

// Memory represents a memory as held by a storage backend.
//
// This type is defined in the storage package to avoid circular dependencies
// with the core package. It mirrors the core.Memory structure.
type Memory struct {
	// ID is the unique identifier of the memory.
	ID string

	// UserID identifies the user who owns this memory.
	UserID string

	// Content is the text content of the memory.
	Content string

	// Category is the classification label ("personal", "professional",
	// "technical" or "general").
	Category string

	// Metadata contains additional structured information. Opaque to the store.
	Metadata map[string]interface{}

	// CreatedAt is when the memory was created.
	CreatedAt time.Time
}

// UserStats summarizes the memories stored for a single user.
type UserStats struct {
	// Total is the number of memories stored for the user.
	Total int

	// Categories maps each category present to its memory count.
	Categories map[string]int

	// Percentages maps each category present to its share of the total
	// (count / total * 100).
	Percentages map[string]float64

	// OldestAt is the creation time of the oldest memory.
	OldestAt time.Time

	// NewestAt is the creation time of the newest memory.
	NewestAt time.Time
}

// Store defines the interface for memory storage backends.
//
// All operations are partitioned by user ID: one user's memories are never
// visible to another user's queries. Implementations must be safe for
// concurrent use.
type Store interface {
	// Insert appends a memory to its owner's collection, creating the
	// collection if the user is new.
	Insert(ctx context.Context, memory *Memory) error

	// List returns the user's memories sorted by creation time descending
	// (most recent first), optionally filtered by category and truncated
	// to opts.Limit. A user with no memories yields an empty result.
	List(ctx context.Context, userID string, opts *ListOptions) ([]*Memory, error)

	// Search returns the user's memories whose content contains query,
	// case-insensitively, optionally filtered by category first.
	//
	// Results keep the store's insertion order, not recency order like
	// List, and are truncated to SearchResultLimit.
	Search(ctx context.Context, userID, query string, opts *SearchOptions) ([]*Memory, error)

	// Delete removes the memory with the given ID from the user's
	// collection, preserving the relative order of the remainder.
	//
	// Returns false if the user is unknown or owns no memory with that ID;
	// the store is left unchanged in that case.
	Delete(ctx context.Context, userID, memoryID string) (bool, error)

	// Stats computes aggregate statistics over the user's memories.
	//
	// Returns nil (with a nil error) when the user has no memories; this is
	// the explicit "empty" result, distinct from a populated summary.
	Stats(ctx context.Context, userID string) (*UserStats, error)

	// Close closes the store and releases resources.
	Close() error
}

// ListOptions contains options for List operations.
type ListOptions struct {
	// Category filters results to a single category. Empty means no filter.
	Category string

	// Limit sets the maximum number of results to return. A limit of zero
	// or less yields an empty result (slice-truncation semantics); callers
	// wanting the usual default apply it before reaching the store.
	Limit int
}

// SearchOptions contains options for Search operations.
type SearchOptions struct {
	// Category filters candidates to a single category before matching.
	// Empty means no filter.
	Category string
}
