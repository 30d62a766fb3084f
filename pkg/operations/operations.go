// Package operations exposes the memory system's fixed operation contract.
//
// The core is invoked by protocol adapters (stdio, HTTP, RPC framing live
// outside this module) through exactly six named operations, each taking a
// structured argument bag and returning a structured result, never
// formatted text. Rendering and wire framing are the adapter's job.
//
// Example:
//
//	handler := operations.NewHandler(client)
//	result, err := handler.Dispatch(ctx, operations.OpSaveMemory, map[string]interface{}{
//	    "content": "Reunião de trabalho com cliente",
//	    "user_id": "user_001",
//	})
package operations

import (
	"context"
	"fmt"

	"github.com/memagent/memagent-go/pkg/classifier"
	"github.com/memagent/memagent-go/pkg/core"
)

// Operation names understood by Dispatch.
const (
	// OpSaveMemory stores a new memory with automatic categorization.
	OpSaveMemory = "save_memory"

	// OpRetrieveMemories lists stored memories, most recent first.
	OpRetrieveMemories = "retrieve_memories"

	// OpCategorizeText classifies a text without storing it.
	OpCategorizeText = "categorize_text"

	// OpDeleteMemory removes a memory by ID.
	OpDeleteMemory = "delete_memory"

	// OpSearchMemories finds memories by keyword.
	OpSearchMemories = "search_memories"

	// OpGetMemoryStats summarizes a user's memories.
	OpGetMemoryStats = "get_memory_stats"
)

// CategorizeResult is the result of a categorize_text operation.
type CategorizeResult struct {
	// Text is the input that was classified.
	Text string `json:"text"`

	// Category is the classification result.
	Category classifier.Category `json:"category"`
}

// DeleteResult is the result of a delete_memory operation.
type DeleteResult struct {
	// MemoryID is the ID the caller asked to delete.
	MemoryID string `json:"memory_id"`

	// Found reports whether a memory with that ID existed and was removed.
	// A false value is a negative result, not an error.
	Found bool `json:"found"`
}

// StatsResult is the result of a get_memory_stats operation.
type StatsResult struct {
	// UserID identifies the user the summary describes.
	UserID string `json:"user_id"`

	// Stats is the summary, or nil when the user has no memories.
	Stats *core.MemoryStats `json:"stats,omitempty"`
}

// Handler dispatches named operations to a core client.
//
// Handler carries no state of its own and is safe for concurrent use.
type Handler struct {
	// client executes the operations.
	client *core.Client
}

// NewHandler creates a Handler backed by the given client.
func NewHandler(client *core.Client) *Handler {
	return &Handler{client: client}
}

// Dispatch invokes the named operation with the given argument bag.
//
// The argument bag is a decoded JSON object; numeric arguments may arrive as
// float64 (encoding/json's default) or int. Missing optional arguments take
// their documented defaults; missing required arguments surface as the
// client's validation errors.
//
// Per-operation result types:
//   - save_memory: *core.Memory
//   - retrieve_memories: []*core.Memory
//   - categorize_text: CategorizeResult
//   - delete_memory: DeleteResult
//   - search_memories: []*core.Memory
//   - get_memory_stats: StatsResult
//
// An unrecognized operation name is a programming error at the adapter
// boundary and fails with core.ErrUnknownOperation.
func (h *Handler) Dispatch(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	switch name {
	case OpSaveMemory:
		return h.saveMemory(ctx, args)
	case OpRetrieveMemories:
		return h.retrieveMemories(ctx, args)
	case OpCategorizeText:
		return h.categorizeText(args)
	case OpDeleteMemory:
		return h.deleteMemory(ctx, args)
	case OpSearchMemories:
		return h.searchMemories(ctx, args)
	case OpGetMemoryStats:
		return h.getMemoryStats(ctx, args)
	default:
		return nil, core.NewMemoryError("Dispatch", fmt.Errorf("%w: %q", core.ErrUnknownOperation, name))
	}
}

// saveMemory handles the save_memory operation.
func (h *Handler) saveMemory(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	opts := []core.SaveOption{}
	if userID := stringArg(args, "user_id"); userID != "" {
		opts = append(opts, core.WithUserID(userID))
	}
	if category := stringArg(args, "category"); category != "" {
		opts = append(opts, core.WithCategory(classifier.Category(category)))
	}
	if metadata := mapArg(args, "metadata"); metadata != nil {
		opts = append(opts, core.WithMetadata(metadata))
	}

	return h.client.Save(ctx, stringArg(args, "content"), opts...)
}

// retrieveMemories handles the retrieve_memories operation.
func (h *Handler) retrieveMemories(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	opts := []core.RetrieveOption{}
	if userID := stringArg(args, "user_id"); userID != "" {
		opts = append(opts, core.WithUserIDForRetrieve(userID))
	}
	if category := stringArg(args, "category"); category != "" {
		opts = append(opts, core.WithCategoryFilter(classifier.Category(category)))
	}
	if limit, ok := intArg(args, "limit"); ok {
		opts = append(opts, core.WithLimit(limit))
	}

	return h.client.Retrieve(ctx, opts...)
}

// categorizeText handles the categorize_text operation.
func (h *Handler) categorizeText(args map[string]interface{}) (interface{}, error) {
	text := stringArg(args, "text")

	category, err := h.client.Categorize(text)
	if err != nil {
		return nil, err
	}
	return CategorizeResult{Text: text, Category: category}, nil
}

// deleteMemory handles the delete_memory operation.
func (h *Handler) deleteMemory(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	opts := []core.DeleteOption{}
	if userID := stringArg(args, "user_id"); userID != "" {
		opts = append(opts, core.WithUserIDForDelete(userID))
	}

	memoryID := stringArg(args, "memory_id")
	found, err := h.client.Delete(ctx, memoryID, opts...)
	if err != nil {
		return nil, err
	}
	return DeleteResult{MemoryID: memoryID, Found: found}, nil
}

// searchMemories handles the search_memories operation.
func (h *Handler) searchMemories(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	opts := []core.SearchOption{}
	if userID := stringArg(args, "user_id"); userID != "" {
		opts = append(opts, core.WithUserIDForSearch(userID))
	}
	if category := stringArg(args, "category"); category != "" {
		opts = append(opts, core.WithCategoryForSearch(classifier.Category(category)))
	}

	return h.client.Search(ctx, stringArg(args, "query"), opts...)
}

// getMemoryStats handles the get_memory_stats operation.
func (h *Handler) getMemoryStats(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	opts := []core.StatsOption{}
	userID := stringArg(args, "user_id")
	if userID != "" {
		opts = append(opts, core.WithUserIDForStats(userID))
	}
	if userID == "" {
		userID = core.DefaultUserID
	}

	stats, err := h.client.Stats(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return StatsResult{UserID: userID, Stats: stats}, nil
}

// stringArg extracts a string argument, returning "" when absent or not a string.
func stringArg(args map[string]interface{}, key string) string {
	value, _ := args[key].(string)
	return value
}

// intArg extracts an integer argument. JSON decoding yields float64, so both
// int and float64 representations are accepted.
func intArg(args map[string]interface{}, key string) (int, bool) {
	switch value := args[key].(type) {
	case int:
		return value, true
	case int64:
		return int(value), true
	case float64:
		return int(value), true
	}
	return 0, false
}

// mapArg extracts an object argument, returning nil when absent or not an object.
func mapArg(args map[string]interface{}, key string) map[string]interface{} {
	value, _ := args[key].(map[string]interface{})
	return value
}
