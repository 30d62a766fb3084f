// Package core provides the main MemAgent client and memory management functionality.
package core

import (
	"github.com/memagent/memagent-go/pkg/classifier"
	"github.com/memagent/memagent-go/pkg/storage"
)

// toStorageMemory converts a core.Memory to storage.Memory.
//
// This function is used internally to convert between package types
// to avoid circular dependencies.
func toStorageMemory(m *Memory) *storage.Memory {
	return &storage.Memory{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		Category:  string(m.Category),
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt,
	}
}

// fromStorageMemory converts a storage.Memory to core.Memory.
//
// This function is used internally to convert between package types
// to avoid circular dependencies.
func fromStorageMemory(m *storage.Memory) *Memory {
	return &Memory{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		Category:  classifier.Category(m.Category),
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt,
	}
}

// fromStorageMemories converts a slice of storage.Memory to a slice of core.Memory.
//
// This function is used internally for batch conversion between package types.
func fromStorageMemories(memories []*storage.Memory) []*Memory {
	result := make([]*Memory, len(memories))
	for i, m := range memories {
		result[i] = fromStorageMemory(m)
	}
	return result
}

// fromStorageStats converts a storage.UserStats to core.MemoryStats.
//
// A nil input yields a nil output: "no memories" propagates unchanged.
func fromStorageStats(userID string, s *storage.UserStats) *MemoryStats {
	if s == nil {
		return nil
	}

	stats := &MemoryStats{
		UserID:      userID,
		Total:       s.Total,
		Categories:  make(map[classifier.Category]int, len(s.Categories)),
		Percentages: make(map[classifier.Category]float64, len(s.Percentages)),
		OldestAt:    s.OldestAt,
		NewestAt:    s.NewestAt,
	}
	for category, count := range s.Categories {
		stats.Categories[classifier.Category(category)] = count
	}
	for category, percentage := range s.Percentages {
		stats.Percentages[classifier.Category(category)] = percentage
	}
	return stats
}
