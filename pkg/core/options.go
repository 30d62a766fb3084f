// Package core provides the main MemAgent client and memory management functionality.
package core

import "github.com/memagent/memagent-go/pkg/classifier"

// SaveOption is a function type for configuring Save operations.
//
// Options are applied using the functional options pattern, allowing
// flexible configuration without requiring all parameters.
type SaveOption func(*SaveOptions)

// SaveOptions contains configuration options for Save operations.
type SaveOptions struct {
	// UserID identifies the user who owns this memory.
	// Defaults to the client's configured default user.
	UserID string

	// Category is an explicit category for the memory. When empty, the
	// category is derived from the content by the classifier.
	Category classifier.Category

	// Metadata contains additional metadata to attach to the memory.
	Metadata map[string]interface{}
}

// WithUserID sets the user ID for Save operations.
//
// Example:
//
//	memory, _ := client.Save(ctx, "content", core.WithUserID("user_001"))
func WithUserID(userID string) SaveOption {
	return func(opts *SaveOptions) {
		opts.UserID = userID
	}
}

// WithCategory sets an explicit category for Save operations, bypassing the
// classifier.
//
// Example:
//
//	memory, _ := client.Save(ctx, "content",
//	    core.WithCategory(classifier.CategoryTechnical))
func WithCategory(category classifier.Category) SaveOption {
	return func(opts *SaveOptions) {
		opts.Category = category
	}
}

// WithMetadata sets metadata for Save operations.
//
// Example:
//
//	memory, _ := client.Save(ctx, "content",
//	    core.WithMetadata(map[string]interface{}{
//	        "source": "conversation",
//	    }),
//	)
func WithMetadata(metadata map[string]interface{}) SaveOption {
	return func(opts *SaveOptions) {
		opts.Metadata = metadata
	}
}

// RetrieveOption is a function type for configuring Retrieve operations.
type RetrieveOption func(*RetrieveOptions)

// RetrieveOptions contains configuration options for Retrieve operations.
type RetrieveOptions struct {
	// UserID identifies whose memories to retrieve.
	UserID string

	// Category filters results to a single category. Empty means no filter.
	Category classifier.Category

	// Limit sets the maximum number of results. A limit of zero or less
	// yields an empty result; when the option is not given the client's
	// configured default (normally 10) applies.
	Limit int
}

// WithUserIDForRetrieve sets the user ID for Retrieve operations.
func WithUserIDForRetrieve(userID string) RetrieveOption {
	return func(opts *RetrieveOptions) {
		opts.UserID = userID
	}
}

// WithCategoryFilter filters Retrieve operations to a single category.
//
// Example:
//
//	memories, _ := client.Retrieve(ctx,
//	    core.WithCategoryFilter(classifier.CategoryPersonal))
func WithCategoryFilter(category classifier.Category) RetrieveOption {
	return func(opts *RetrieveOptions) {
		opts.Category = category
	}
}

// WithLimit sets the maximum number of results for Retrieve operations.
func WithLimit(limit int) RetrieveOption {
	return func(opts *RetrieveOptions) {
		opts.Limit = limit
	}
}

// SearchOption is a function type for configuring Search operations.
type SearchOption func(*SearchOptions)

// SearchOptions contains configuration options for Search operations.
//
// Search has no limit option: results are always capped at the store's
// hard search result limit.
type SearchOptions struct {
	// UserID identifies whose memories to search.
	UserID string

	// Category filters candidates to a single category before matching.
	Category classifier.Category
}

// WithUserIDForSearch sets the user ID for Search operations.
func WithUserIDForSearch(userID string) SearchOption {
	return func(opts *SearchOptions) {
		opts.UserID = userID
	}
}

// WithCategoryForSearch filters Search candidates to a single category.
func WithCategoryForSearch(category classifier.Category) SearchOption {
	return func(opts *SearchOptions) {
		opts.Category = category
	}
}

// DeleteOption is a function type for configuring Delete operations.
type DeleteOption func(*DeleteOptions)

// DeleteOptions contains configuration options for Delete operations.
type DeleteOptions struct {
	// UserID identifies whose memory to delete.
	UserID string
}

// WithUserIDForDelete sets the user ID for Delete operations.
func WithUserIDForDelete(userID string) DeleteOption {
	return func(opts *DeleteOptions) {
		opts.UserID = userID
	}
}

// StatsOption is a function type for configuring Stats operations.
type StatsOption func(*StatsOptions)

// StatsOptions contains configuration options for Stats operations.
type StatsOptions struct {
	// UserID identifies whose memories to summarize.
	UserID string
}

// WithUserIDForStats sets the user ID for Stats operations.
func WithUserIDForStats(userID string) StatsOption {
	return func(opts *StatsOptions) {
		opts.UserID = userID
	}
}

// applySaveOptions applies Save options to create SaveOptions.
func (c *Client) applySaveOptions(opts []SaveOption) *SaveOptions {
	options := &SaveOptions{
		UserID:   c.config.DefaultUserID,
		Metadata: make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// applyRetrieveOptions applies Retrieve options to create RetrieveOptions.
func (c *Client) applyRetrieveOptions(opts []RetrieveOption) *RetrieveOptions {
	options := &RetrieveOptions{
		UserID: c.config.DefaultUserID,
		Limit:  c.config.ListLimit,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// applySearchOptions applies Search options to create SearchOptions.
func (c *Client) applySearchOptions(opts []SearchOption) *SearchOptions {
	options := &SearchOptions{
		UserID: c.config.DefaultUserID,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// applyDeleteOptions applies Delete options to create DeleteOptions.
func (c *Client) applyDeleteOptions(opts []DeleteOption) *DeleteOptions {
	options := &DeleteOptions{
		UserID: c.config.DefaultUserID,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// applyStatsOptions applies Stats options to create StatsOptions.
func (c *Client) applyStatsOptions(opts []StatsOption) *StatsOptions {
	options := &StatsOptions{
		UserID: c.config.DefaultUserID,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
