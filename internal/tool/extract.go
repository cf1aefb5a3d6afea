// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/netschema/yangkeys/internal/yang"
)

// MetadataExtractListKeys describes the extract_list_keys tool.
var MetadataExtractListKeys = &mcp.Tool{
	Name: "extract_list_keys",
	Description: "Extract YANG list declarations and their key statements from raw schema text. " +
		"Returns a mapping from list name to its primary key: a single field name, or an ordered " +
		"list of field names for composite keys. The scan is shallow (no brace-depth tracking) and " +
		"recovers table metadata without validating the schema; a list whose body opens a nested " +
		"block before its key statement may be skipped or misattributed.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw YANG schema text to scan",
			},
			"source_id": map[string]interface{}{
				"type":        "string",
				"description": "Optional identifier for the document (file path, archive member, etc.) echoed back in the result.",
			},
		},
	},
}

// InputExtractListKeys is the input for the ExtractListKeys tool.
type InputExtractListKeys struct {
	Content  string `json:"content"`
	SourceID string `json:"source_id"`
}

// OutputExtractListKeys is the output for the ExtractListKeys tool.
type OutputExtractListKeys struct {
	// Keys maps each list name to its key field or ordered key fields.
	Keys yang.Mapping `json:"keys"`
	// SourceID echoes the provided document identifier.
	SourceID string `json:"source_id"`
	// TotalLists is the number of distinct lists recovered.
	TotalLists int `json:"total_lists"`
}

// ExtractListKeys scans the provided schema text for list declarations and
// returns their primary-key mapping.
func ExtractListKeys(ctx context.Context, _ *mcp.CallToolRequest, input InputExtractListKeys) (*mcp.CallToolResult, OutputExtractListKeys, error) {
	if input.Content == "" {
		return nil, OutputExtractListKeys{}, fmt.Errorf("content is required")
	}

	sourceID := input.SourceID
	if sourceID == "" {
		sourceID = "unknown"
	}

	mapping := yang.Extract(input.Content)
	return nil, OutputExtractListKeys{
		Keys:       mapping,
		SourceID:   sourceID,
		TotalLists: len(mapping),
	}, nil
}
