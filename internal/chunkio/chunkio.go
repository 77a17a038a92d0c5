// Package chunkio copies one resolved byte range of the input file to one
// output file.
//
// Each call opens its own read handle and uses positioned reads via
// io.SectionReader, so concurrent workers never share a file cursor. The
// copy is a verbatim byte transfer; content is never inspected or
// transformed.
package chunkio

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dshills/linesplit-mcp/pkg/types"
)

// copyBufSize is the buffer used for the range copy.
const copyBufSize = 64 * 1024

// WriteChunk reads exactly rng from inputPath and writes it to outputPath,
// creating or truncating the output. A zero-length range still produces a
// zero-byte output file. On failure the partially written output is left in
// place; callers must treat it as incomplete. No retries are attempted.
func WriteChunk(ctx context.Context, inputPath string, rng types.ByteRange, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rng.Len() < 0 {
		return fmt.Errorf("inverted range %s", rng)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input for range %s: %w", rng, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output %s: %w", outputPath, err)
	}

	section := io.NewSectionReader(in, rng.Start, rng.Len())
	buf := make([]byte, copyBufSize)
	n, copyErr := io.CopyBuffer(out, section, buf)

	closeErr := out.Close()

	if copyErr != nil {
		return fmt.Errorf("copy range %s to %s: %w", rng, outputPath, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close output %s: %w", outputPath, closeErr)
	}
	if n != rng.Len() {
		return fmt.Errorf("short copy for range %s to %s: wrote %d of %d bytes",
			rng, outputPath, n, rng.Len())
	}
	return nil
}
