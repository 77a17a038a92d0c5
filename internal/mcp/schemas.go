package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// splitFileTool returns the tool definition for split_file
func splitFileTool() mcp.Tool {
	return mcp.Tool{
		Name:        "split_file",
		Description: "Split a newline-delimited text file into N balanced parts without cutting lines",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"input_path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the file to split",
				},
				"num_parts": map[string]interface{}{
					"type":        "integer",
					"description": "Number of output parts to produce (>= 1)",
					"minimum":     1,
				},
				"output_dir": map[string]interface{}{
					"type":        "string",
					"description": "Directory for the part files (created if absent; default: current directory)",
				},
				"name_pattern": map[string]interface{}{
					"type":        "string",
					"description": "Optional fmt pattern with one %d verb for output names (e.g. 'piece-%03d.txt')",
				},
				"workers": map[string]interface{}{
					"type":        "integer",
					"description": "Concurrent chunk workers (default: number of CPUs)",
					"minimum":     1,
				},
			},
			Required: []string{"input_path", "num_parts"},
		},
	}
}

// getJobTool returns the tool definition for get_job
func getJobTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_job",
		Description: "Look up the most recent recorded split for an input file, including its parts",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"input_path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path of the previously split file",
				},
			},
			Required: []string{"input_path"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Query catalog-wide statistics about recorded splits",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
