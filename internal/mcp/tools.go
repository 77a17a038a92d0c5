package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/linesplit-mcp/internal/manifest"
	"github.com/dshills/linesplit-mcp/internal/splitter"
	"github.com/dshills/linesplit-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeSplitFailed   = -32001 // One or more parts failed to write
	ErrorCodeJobNotFound   = -32002 // No recorded split for the input path
)

// handleSplitFile handles the split_file tool invocation
func (s *Server) handleSplitFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	inputPath, ok := args["input_path"].(string)
	if !ok || inputPath == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "input_path parameter is required", map[string]interface{}{
			"param":  "input_path",
			"reason": "missing or empty",
		})
	}
	if !filepath.IsAbs(inputPath) {
		return nil, newMCPError(ErrorCodeInvalidParams, "input_path must be absolute", map[string]interface{}{
			"param": "input_path",
			"value": inputPath,
		})
	}

	numParts := getIntDefault(args, "num_parts", 0)
	if numParts < 1 {
		return nil, newMCPError(ErrorCodeInvalidParams, "num_parts must be at least 1", map[string]interface{}{
			"param": "num_parts",
			"value": numParts,
		})
	}

	req := &types.SplitRequest{
		InputPath:   inputPath,
		Parts:       numParts,
		OutputDir:   getStringDefault(args, "output_dir", ""),
		NamePattern: getStringDefault(args, "name_pattern", ""),
	}
	config := &splitter.Config{
		Workers: getIntDefault(args, "workers", 0),
	}

	result, stats, err := s.splitter.Split(ctx, req, config)

	var se *types.SplitError
	if errors.As(err, &se) {
		// Partial failure: report every failed part and keep the successes.
		failed := make([]map[string]interface{}, len(se.Parts))
		for i, pe := range se.Parts {
			failed[i] = map[string]interface{}{
				"index": pe.Index,
				"range": pe.Range.String(),
				"path":  pe.Path,
				"error": pe.Err.Error(),
			}
		}
		return nil, newMCPError(ErrorCodeSplitFailed, "split completed with failed parts", map[string]interface{}{
			"failed_parts": failed,
			"succeeded":    se.Succeeded,
		})
	}
	if err != nil {
		if errors.Is(err, types.ErrInvalidRequest) {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid split request", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, newMCPError(ErrorCodeInternalError, "split failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"output_paths":  result.OutputPaths,
		"parts_written": stats.PartsWritten,
		"bytes_written": stats.BytesWritten,
		"duration_ms":   stats.Duration.Milliseconds(),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetJob handles the get_job tool invocation
func (s *Server) handleGetJob(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	inputPath, ok := args["input_path"].(string)
	if !ok || inputPath == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "input_path parameter is required", map[string]interface{}{
			"param":  "input_path",
			"reason": "missing or empty",
		})
	}

	job, err := s.store.GetJob(ctx, inputPath)
	if err == manifest.ErrNotFound {
		return nil, newMCPError(ErrorCodeJobNotFound, "no recorded split for input path", map[string]interface{}{
			"input_path": inputPath,
		})
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to look up job", map[string]interface{}{
			"error": err.Error(),
		})
	}

	parts, err := s.store.ListParts(ctx, job.ID)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list parts", map[string]interface{}{
			"error": err.Error(),
		})
	}

	partList := make([]map[string]interface{}, len(parts))
	for i, p := range parts {
		partList[i] = map[string]interface{}{
			"index":        p.PartIndex,
			"start_offset": p.StartOffset,
			"end_offset":   p.EndOffset,
			"output_path":  p.OutputPath,
			"size_bytes":   p.SizeBytes,
		}
	}

	response := map[string]interface{}{
		"job": map[string]interface{}{
			"input_path":  job.InputPath,
			"input_size":  job.InputSize,
			"parts":       job.Parts,
			"output_dir":  job.OutputDir,
			"duration_ms": job.DurationMS,
			"created_at":  job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		},
		"parts": partList,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.store.Status(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to get status", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"jobs_count":    status.JobsCount,
		"parts_count":   status.PartsCount,
		"bytes_written": status.BytesWritten,
	}
	if !status.LastJobAt.IsZero() {
		response["last_job_at"] = status.LastJobAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
