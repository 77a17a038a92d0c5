// Package manifest persists a catalog of completed splits in SQLite.
//
// Each successful split is recorded as a job row with one row per output
// part (index, byte range, path, size). The catalog backs the MCP get_job
// and get_status tools; the splitter itself works fine without it.
//
// Two drivers are supported via build tags: the default pure Go
// modernc.org/sqlite, or github.com/mattn/go-sqlite3 with
// -tags sqlite_cgo.
package manifest
