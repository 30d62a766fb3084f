package inmemory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memagent/memagent-go/pkg/storage"
	"github.com/memagent/memagent-go/pkg/storage/inmemory"
)

// newMemory builds a storage.Memory with a controlled creation time.
func newMemory(id, userID, content, category string, createdAt time.Time) *storage.Memory {
	return &storage.Memory{
		ID:        id,
		UserID:    userID,
		Content:   content,
		Category:  category,
		CreatedAt: createdAt,
	}
}

func TestListOrdersByRecency(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Insert(ctx, newMemory("m1", "u1", "first", "general", base)))
	require.NoError(t, store.Insert(ctx, newMemory("m2", "u1", "second", "general", base.Add(time.Second))))
	require.NoError(t, store.Insert(ctx, newMemory("m3", "u1", "third", "general", base.Add(2*time.Second))))

	memories, err := store.List(ctx, "u1", &storage.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, memories, 3)
	assert.Equal(t, "m3", memories[0].ID)
	assert.Equal(t, "m2", memories[1].ID)
	assert.Equal(t, "m1", memories[2].ID)
}

func TestListStableOnEqualTimestamps(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// All created at the same instant: insertion order must be preserved.
	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("m%d", i)
		require.NoError(t, store.Insert(ctx, newMemory(id, "u1", "content", "general", at)))
	}

	memories, err := store.List(ctx, "u1", &storage.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, memories, 5)
	for i, memory := range memories {
		assert.Equal(t, fmt.Sprintf("m%d", i+1), memory.ID)
	}
}

func TestListLimit(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("m%d", i)
		require.NoError(t, store.Insert(ctx, newMemory(id, "u1", "content", "general", base.Add(time.Duration(i)*time.Second))))
	}

	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "limit below count", limit: 2, expected: 2},
		{name: "limit above count", limit: 100, expected: 5},
		{name: "zero limit yields nothing", limit: 0, expected: 0},
		{name: "negative limit yields nothing", limit: -3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memories, err := store.List(ctx, "u1", &storage.ListOptions{Limit: tt.limit})
			require.NoError(t, err)
			assert.Len(t, memories, tt.expected)
		})
	}
}

func TestListCategoryFilter(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Insert(ctx, newMemory("m1", "u1", "a", "personal", base)))
	require.NoError(t, store.Insert(ctx, newMemory("m2", "u1", "b", "technical", base.Add(time.Second))))
	require.NoError(t, store.Insert(ctx, newMemory("m3", "u1", "c", "personal", base.Add(2*time.Second))))

	memories, err := store.List(ctx, "u1", &storage.ListOptions{Category: "personal", Limit: 10})
	require.NoError(t, err)
	require.Len(t, memories, 2)
	assert.Equal(t, "m3", memories[0].ID)
	assert.Equal(t, "m1", memories[1].ID)
}

func TestListUnknownUser(t *testing.T) {
	store := inmemory.NewStore()

	memories, err := store.List(context.Background(), "nobody", &storage.ListOptions{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, memories)
}

func TestSearchKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// Insert in one order, timestamps in the opposite order: search must
	// follow insertion order, not recency.
	require.NoError(t, store.Insert(ctx, newMemory("m1", "u1", "projeto alpha", "professional", base.Add(2*time.Second))))
	require.NoError(t, store.Insert(ctx, newMemory("m2", "u1", "projeto beta", "professional", base.Add(time.Second))))
	require.NoError(t, store.Insert(ctx, newMemory("m3", "u1", "outro assunto", "general", base)))

	results, err := store.Search(ctx, "u1", "projeto", nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "m1", results[0].ID)
	assert.Equal(t, "m2", results[1].ID)
}

func TestSearchCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()

	require.NoError(t, store.Insert(ctx, newMemory("m1", "u1", "Projeto IMPORTANTE", "professional", time.Now())))

	results, err := store.Search(ctx, "u1", "pRoJeTo", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "m1", results[0].ID)
}

func TestSearchHardCap(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()

	for i := 0; i < storage.SearchResultLimit+5; i++ {
		id := fmt.Sprintf("m%d", i)
		require.NoError(t, store.Insert(ctx, newMemory(id, "u1", "match me", "general", time.Now())))
	}

	results, err := store.Search(ctx, "u1", "match", nil)
	require.NoError(t, err)
	assert.Len(t, results, storage.SearchResultLimit)

	// The cap keeps the earliest-inserted matches.
	assert.Equal(t, "m0", results[0].ID)
}

func TestSearchCategoryFilter(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()

	require.NoError(t, store.Insert(ctx, newMemory("m1", "u1", "projeto um", "professional", time.Now())))
	require.NoError(t, store.Insert(ctx, newMemory("m2", "u1", "projeto dois", "technical", time.Now())))

	results, err := store.Search(ctx, "u1", "projeto", &storage.SearchOptions{Category: "technical"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "m2", results[0].ID)
}

func TestSearchUnknownUser(t *testing.T) {
	store := inmemory.NewStore()

	results, err := store.Search(context.Background(), "nobody", "anything", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Insert(ctx, newMemory("m1", "u1", "a", "general", base)))
	require.NoError(t, store.Insert(ctx, newMemory("m2", "u1", "b", "general", base.Add(time.Second))))
	require.NoError(t, store.Insert(ctx, newMemory("m3", "u1", "c", "general", base.Add(2*time.Second))))

	found, err := store.Delete(ctx, "u1", "m2")
	require.NoError(t, err)
	assert.True(t, found)

	// Remaining memories keep their relative order.
	results, err := store.Search(ctx, "u1", "", nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "m1", results[0].ID)
	assert.Equal(t, "m3", results[1].ID)
}

func TestDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()

	require.NoError(t, store.Insert(ctx, newMemory("m1", "u1", "a", "general", time.Now())))

	tests := []struct {
		name     string
		userID   string
		memoryID string
	}{
		{name: "unknown memory", userID: "u1", memoryID: "m999"},
		{name: "unknown user", userID: "nobody", memoryID: "m1"},
		{name: "memory owned by another user", userID: "u2", memoryID: "m1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := store.Delete(ctx, tt.userID, tt.memoryID)
			require.NoError(t, err)
			assert.False(t, found)

			// The store is left unchanged.
			stats, err := store.Stats(ctx, "u1")
			require.NoError(t, err)
			require.NotNil(t, stats)
			assert.Equal(t, 1, stats.Total)
		})
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Insert(ctx, newMemory("m1", "u1", "a", "professional", base)))
	require.NoError(t, store.Insert(ctx, newMemory("m2", "u1", "b", "professional", base.Add(time.Second))))
	require.NoError(t, store.Insert(ctx, newMemory("m3", "u1", "c", "personal", base.Add(2*time.Second))))

	stats, err := store.Stats(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Categories["professional"])
	assert.Equal(t, 1, stats.Categories["personal"])
	assert.InDelta(t, 66.7, stats.Percentages["professional"], 0.05)
	assert.InDelta(t, 33.3, stats.Percentages["personal"], 0.05)
	assert.Equal(t, base, stats.OldestAt)
	assert.Equal(t, base.Add(2*time.Second), stats.NewestAt)

	// Percentages sum to 100 within floating-point tolerance.
	sum := 0.0
	for _, percentage := range stats.Percentages {
		sum += percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestStatsEmptyUser(t *testing.T) {
	store := inmemory.NewStore()

	stats, err := store.Stats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestCancelledContext(t *testing.T) {
	store := inmemory.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Insert(ctx, newMemory("m1", "u1", "a", "general", time.Now()))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = store.List(ctx, "u1", &storage.ListOptions{Limit: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClosedStore(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()

	require.NoError(t, store.Insert(ctx, newMemory("m1", "u1", "a", "general", time.Now())))
	require.NoError(t, store.Close())

	err := store.Insert(ctx, newMemory("m2", "u1", "b", "general", time.Now()))
	assert.ErrorIs(t, err, storage.ErrClosed)

	// Close discards everything.
	stats, err := store.Stats(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			userID := fmt.Sprintf("u%d", worker%2)
			for i := 0; i < 50; i++ {
				id := fmt.Sprintf("w%d-m%d", worker, i)
				_ = store.Insert(ctx, newMemory(id, userID, "conteúdo compartilhado", "general", time.Now()))
				_, _ = store.List(ctx, userID, &storage.ListOptions{Limit: 5})
				_, _ = store.Search(ctx, userID, "conteúdo", nil)
				_, _ = store.Stats(ctx, userID)
			}
		}(worker)
	}
	wg.Wait()

	stats, err := store.Stats(ctx, "u0")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 200, stats.Total)
}
