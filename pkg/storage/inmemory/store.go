// Package inmemory provides the in-process implementation of storage.Store.
//
// Memories live in a map keyed by user ID, each user holding an
// insertion-ordered slice. Nothing is ever written to disk: the store is
// created empty and its contents are discarded when the process exits or the
// store is closed. There is no eviction and no capacity limit.
package inmemory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/memagent/memagent-go/pkg/storage"
)

// Store implements storage.Store with process-local state.
//
// A single RWMutex guards the user map: reads take the read lock, mutations
// take the write lock, so every operation is atomic with respect to the
// others. Safe for concurrent use.
type Store struct {
	// mu protects memories.
	mu sync.RWMutex

	// memories maps user ID to that user's memories in insertion order.
	memories map[string][]*storage.Memory

	// closed reports whether Close has been called.
	closed bool
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		memories: make(map[string][]*storage.Memory),
	}
}

// Insert appends a memory to its owner's collection, creating the collection
// if this is the user's first memory.
func (s *Store) Insert(ctx context.Context, memory *storage.Memory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}

	s.memories[memory.UserID] = append(s.memories[memory.UserID], memory)
	return nil
}

// List returns the user's memories most recent first.
//
// The sort is stable: memories created at the same instant keep their
// insertion order. A nil opts is treated as no filter with a zero limit,
// and a limit of zero or less yields an empty result.
func (s *Store) List(ctx context.Context, userID string, opts *storage.ListOptions) ([]*storage.Memory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &storage.ListOptions{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := filterByCategory(s.memories[userID], opts.Category)

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if opts.Limit <= 0 {
		return []*storage.Memory{}, nil
	}
	if len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}

// Search returns the user's memories whose content contains query,
// case-insensitively.
//
// Candidates are filtered by category first when opts.Category is set.
// Results keep insertion order and are capped at storage.SearchResultLimit.
func (s *Store) Search(ctx context.Context, userID, query string, opts *storage.SearchOptions) ([]*storage.Memory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &storage.SearchOptions{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := filterByCategory(s.memories[userID], opts.Category)
	lowered := strings.ToLower(query)

	results := make([]*storage.Memory, 0, storage.SearchResultLimit)
	for _, memory := range candidates {
		if strings.Contains(strings.ToLower(memory.Content), lowered) {
			results = append(results, memory)
			if len(results) == storage.SearchResultLimit {
				break
			}
		}
	}
	return results, nil
}

// Delete removes the memory with the given ID from the user's collection.
//
// Returns false when the user is unknown or owns no memory with that ID;
// the collection is unchanged in that case. The relative order of the
// remaining memories is preserved.
func (s *Store) Delete(ctx context.Context, userID, memoryID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, storage.ErrClosed
	}

	items, ok := s.memories[userID]
	if !ok {
		return false, nil
	}

	for i, memory := range items {
		if memory.ID == memoryID {
			s.memories[userID] = append(items[:i], items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Stats computes aggregate statistics over the user's memories.
//
// Returns nil when the user has no memories. Oldest/newest selection is
// deterministic: on equal timestamps the earlier-inserted memory wins.
func (s *Store) Stats(ctx context.Context, userID string) (*storage.UserStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.memories[userID]
	if len(items) == 0 {
		return nil, nil
	}

	stats := &storage.UserStats{
		Total:       len(items),
		Categories:  make(map[string]int),
		Percentages: make(map[string]float64),
		OldestAt:    items[0].CreatedAt,
		NewestAt:    items[0].CreatedAt,
	}

	for _, memory := range items {
		stats.Categories[memory.Category]++
		if memory.CreatedAt.Before(stats.OldestAt) {
			stats.OldestAt = memory.CreatedAt
		}
		if memory.CreatedAt.After(stats.NewestAt) {
			stats.NewestAt = memory.CreatedAt
		}
	}

	for category, count := range stats.Categories {
		stats.Percentages[category] = float64(count) / float64(stats.Total) * 100
	}

	return stats, nil
}

// Close discards all stored memories. The store must not be used afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.memories = make(map[string][]*storage.Memory)
	return nil
}

// filterByCategory returns the memories matching category, or a copy of all
// memories when category is empty. The input slice is never modified.
func filterByCategory(items []*storage.Memory, category string) []*storage.Memory {
	matched := make([]*storage.Memory, 0, len(items))
	for _, memory := range items {
		if category == "" || memory.Category == category {
			matched = append(matched, memory)
		}
	}
	return matched
}
