package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("creates all components", func(t *testing.T) {
		tmpDir := t.TempDir()

		server, err := NewServer(tmpDir)
		require.NoError(t, err)
		defer func() { _ = server.store.Close() }()

		assert.NotNil(t, server.mcp, "MCP server should be created")
		assert.NotNil(t, server.store, "Catalog store should be created")
		assert.NotNil(t, server.splitter, "Splitter should be created")
	})

	t.Run("splitter shares the server's catalog store", func(t *testing.T) {
		tmpDir := t.TempDir()

		server, err := NewServer(tmpDir)
		require.NoError(t, err)
		defer func() { _ = server.store.Close() }()

		// splitter.New(store) at server construction wires the same store
		// the get_job and get_status handlers query, so splits recorded by
		// split_file are immediately visible to the lookup tools.
		assert.NotNil(t, server.splitter)
	})
}

func TestMCPError(t *testing.T) {
	err := newMCPError(ErrorCodeInvalidParams, "num_parts must be at least 1", nil)
	assert.Equal(t, "MCP error -32602: num_parts must be at least 1", err.Error())

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestErrorCodesUnique(t *testing.T) {
	codes := map[int]string{
		ErrorCodeInvalidParams: "ErrorCodeInvalidParams",
		ErrorCodeInternalError: "ErrorCodeInternalError",
		ErrorCodeSplitFailed:   "ErrorCodeSplitFailed",
		ErrorCodeJobNotFound:   "ErrorCodeJobNotFound",
	}
	assert.Len(t, codes, 4, "error codes must be unique")
	for code := range codes {
		assert.Negative(t, code)
	}
}
