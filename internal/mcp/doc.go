// Package mcp implements the Model Context Protocol (MCP) server for linesplit.
//
// The MCP server exposes three tools to AI coding assistants:
//   - split_file: Split a newline-delimited file into N balanced parts
//   - get_job: Look up the recorded parts of a previous split
//   - get_status: Check catalog-wide statistics
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server communicates via standard input/output; all logging goes to
// stderr so stdout stays clean for the protocol.
//
// # Tool: split_file
//
// Split a file into parts that never cut a line:
//
//	Request:
//	{
//	  "name": "split_file",
//	  "arguments": {
//	    "input_path": "/data/events.log",
//	    "num_parts": 8,
//	    "output_dir": "/data/parts"
//	  }
//	}
//
//	Response:
//	{
//	  "output_paths": ["/data/parts/events.part_0.log", ...],
//	  "parts_written": 8,
//	  "bytes_written": 104857600,
//	  "duration_ms": 312
//	}
//
// A split that completes with failed parts returns an error listing every
// failed part's range and path alongside the paths that succeeded.
//
// # Tool: get_job
//
// Look up the most recent recorded split for an input path. Returns the job
// metadata and one entry per part (index, byte range, output path, size).
//
// # Tool: get_status
//
// Returns catalog statistics: job count, part count, total bytes written,
// and the time of the most recent job.
package mcp
