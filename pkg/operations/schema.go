package operations

// Operation describes one entry of the operation contract.
//
// Adapters use descriptors to answer protocol-level "list operations"
// requests without hard-coding the contract themselves.
type Operation struct {
	// Name is the operation name accepted by Dispatch.
	Name string `json:"name"`

	// Description is a short human-readable summary.
	Description string `json:"description"`

	// InputSchema is a JSON Schema object describing the argument bag.
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// categoryEnum is the schema fragment for category-valued arguments.
func categoryEnum() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"personal", "professional", "technical", "general"},
		"description": "Memory category",
	}
}

// userIDProperty is the schema fragment for the user_id argument.
func userIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "User identity owning the memories",
		"default":     "default",
	}
}

// List returns the descriptors for all six operations, in a fixed order.
//
// The returned slice is freshly allocated on every call.
func List() []Operation {
	return []Operation{
		{
			Name:        OpSaveMemory,
			Description: "Saves a new memory with automatic categorization",
			InputSchema: map[string]interface{}{
				"type":     "object",
				"required": []string{"content"},
				"properties": map[string]interface{}{
					"content": map[string]interface{}{
						"type":        "string",
						"description": "Memory content to save",
					},
					"user_id":  userIDProperty(),
					"category": categoryEnum(),
					"metadata": map[string]interface{}{
						"type":        "object",
						"description": "Additional metadata (optional)",
					},
				},
			},
		},
		{
			Name:        OpRetrieveMemories,
			Description: "Retrieves stored memories, optionally filtered by category",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"user_id":  userIDProperty(),
					"category": categoryEnum(),
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of memories to return",
						"default":     10,
					},
				},
			},
		},
		{
			Name:        OpCategorizeText,
			Description: "Categorizes a text as personal, professional, technical or general",
			InputSchema: map[string]interface{}{
				"type":     "object",
				"required": []string{"text"},
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Text to categorize",
					},
				},
			},
		},
		{
			Name:        OpDeleteMemory,
			Description: "Deletes a specific memory by ID",
			InputSchema: map[string]interface{}{
				"type":     "object",
				"required": []string{"memory_id"},
				"properties": map[string]interface{}{
					"memory_id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the memory to delete",
					},
					"user_id": userIDProperty(),
				},
			},
		},
		{
			Name:        OpSearchMemories,
			Description: "Searches memories by keyword",
			InputSchema: map[string]interface{}{
				"type":     "object",
				"required": []string{"query"},
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Search term",
					},
					"user_id":  userIDProperty(),
					"category": categoryEnum(),
				},
			},
		},
		{
			Name:        OpGetMemoryStats,
			Description: "Returns statistics about stored memories",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"user_id": userIDProperty(),
				},
			},
		},
	}
}
