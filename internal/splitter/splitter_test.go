package splitter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/linesplit-mcp/pkg/types"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// concat joins the contents of the result's output files in part order.
func concat(t *testing.T, result *types.SplitResult) string {
	t.Helper()
	var sb strings.Builder
	for _, p := range result.OutputPaths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		sb.Write(data)
	}
	return sb.String()
}

func TestSplit_RoundTrip(t *testing.T) {
	content := "alpha\nbravo\ncharlie\ndelta\necho\nfoxtrot\ngolf\nhotel\n"
	input := writeInput(t, content)
	sp := New(nil)

	for parts := 1; parts <= 12; parts++ {
		t.Run(fmt.Sprintf("parts=%d", parts), func(t *testing.T) {
			outDir := t.TempDir()
			result, stats, err := sp.Split(context.Background(), &types.SplitRequest{
				InputPath: input,
				Parts:     parts,
				OutputDir: outDir,
			}, nil)
			require.NoError(t, err)
			require.Len(t, result.OutputPaths, parts)

			assert.Equal(t, content, concat(t, result),
				"concatenated parts must be byte-identical to the input")
			assert.Equal(t, parts, stats.PartsWritten)
			assert.Equal(t, int64(len(content)), stats.BytesWritten)
		})
	}
}

func TestSplit_SinglePartIsFullCopy(t *testing.T) {
	content := "only\none\npart\n"
	input := writeInput(t, content)
	outDir := t.TempDir()

	result, _, err := New(nil).Split(context.Background(), &types.SplitRequest{
		InputPath: input,
		Parts:     1,
		OutputDir: outDir,
	}, nil)
	require.NoError(t, err)
	require.Len(t, result.OutputPaths, 1)

	data, err := os.ReadFile(result.OutputPaths[0])
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestSplit_EmptyInputSinglePart(t *testing.T) {
	input := writeInput(t, "")
	outDir := t.TempDir()

	result, _, err := New(nil).Split(context.Background(), &types.SplitRequest{
		InputPath: input,
		Parts:     1,
		OutputDir: outDir,
	}, nil)
	require.NoError(t, err, "empty input with one part is not an error")
	require.Len(t, result.OutputPaths, 1)

	info, err := os.Stat(result.OutputPaths[0])
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestSplit_MorePartsThanLines(t *testing.T) {
	content := "a\nb\nc\n"
	input := writeInput(t, content)
	outDir := t.TempDir()

	result, _, err := New(nil).Split(context.Background(), &types.SplitRequest{
		InputPath: input,
		Parts:     10,
		OutputDir: outDir,
	}, nil)
	require.NoError(t, err)
	require.Len(t, result.OutputPaths, 10, "excess parts are empty but present")
	assert.Equal(t, content, concat(t, result))

	empty := 0
	for _, p := range result.OutputPaths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		if info.Size() == 0 {
			empty++
		}
	}
	assert.Greater(t, empty, 0)
}

func TestSplit_NeverCutsALine(t *testing.T) {
	content := "A\nBB\nCCC\nDDDD\n"
	input := writeInput(t, content)
	outDir := t.TempDir()

	result, _, err := New(nil).Split(context.Background(), &types.SplitRequest{
		InputPath: input,
		Parts:     2,
		OutputDir: outDir,
	}, nil)
	require.NoError(t, err)
	require.Len(t, result.OutputPaths, 2)
	assert.Equal(t, content, concat(t, result))

	// No part may end mid-line: every non-empty part ends with '\n'
	// (the input itself is newline-terminated).
	for i, p := range result.OutputPaths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		if len(data) > 0 {
			assert.Equal(t, byte('\n'), data[len(data)-1], "part %d ends mid-line", i)
		}
	}
}

func TestSplit_UnterminatedTail(t *testing.T) {
	content := "first\nsecond\nunterminated tail without newline"
	input := writeInput(t, content)
	outDir := t.TempDir()

	result, _, err := New(nil).Split(context.Background(), &types.SplitRequest{
		InputPath: input,
		Parts:     3,
		OutputDir: outDir,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, content, concat(t, result), "final part absorbs the unterminated tail")
}

func TestSplit_Idempotent(t *testing.T) {
	content := strings.Repeat("the quick brown fox\n", 500)
	input := writeInput(t, content)
	sp := New(nil)

	run := func(dir string) []string {
		result, _, err := sp.Split(context.Background(), &types.SplitRequest{
			InputPath: input,
			Parts:     7,
			OutputDir: dir,
		}, nil)
		require.NoError(t, err)
		contents := make([]string, len(result.OutputPaths))
		for i, p := range result.OutputPaths {
			data, err := os.ReadFile(p)
			require.NoError(t, err)
			contents[i] = string(data)
		}
		return contents
	}

	first := run(t.TempDir())
	second := run(t.TempDir())
	assert.Equal(t, first, second, "re-running the same split must produce identical outputs")
}

func TestSplit_OutputNamesSortNumerically(t *testing.T) {
	content := strings.Repeat("line\n", 200)
	input := writeInput(t, content)
	outDir := t.TempDir()

	result, _, err := New(nil).Split(context.Background(), &types.SplitRequest{
		InputPath: input,
		Parts:     12,
		OutputDir: outDir,
	}, nil)
	require.NoError(t, err)

	sorted := append([]string(nil), result.OutputPaths...)
	sort.Strings(sorted)
	assert.Equal(t, result.OutputPaths, sorted,
		"zero padding must make lexicographic and numeric order agree")
}

func TestSplit_CustomNamePattern(t *testing.T) {
	input := writeInput(t, "x\ny\n")
	outDir := t.TempDir()

	result, _, err := New(nil).Split(context.Background(), &types.SplitRequest{
		InputPath:   input,
		Parts:       2,
		OutputDir:   outDir,
		NamePattern: "piece-%03d.txt",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "piece-000.txt"), result.OutputPaths[0])
	assert.Equal(t, filepath.Join(outDir, "piece-001.txt"), result.OutputPaths[1])
}

func TestSplit_CreatesOutputDir(t *testing.T) {
	input := writeInput(t, "a\nb\n")
	outDir := filepath.Join(t.TempDir(), "deep", "nested", "dir")

	result, _, err := New(nil).Split(context.Background(), &types.SplitRequest{
		InputPath: input,
		Parts:     2,
		OutputDir: outDir,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", concat(t, result))
}

func TestSplit_InvalidRequests(t *testing.T) {
	input := writeInput(t, "a\n")
	sp := New(nil)

	cases := []struct {
		name string
		req  *types.SplitRequest
		want error
	}{
		{"zero parts", &types.SplitRequest{InputPath: input, Parts: 0}, types.ErrInvalidPartCount},
		{"negative parts", &types.SplitRequest{InputPath: input, Parts: -2}, types.ErrInvalidPartCount},
		{"missing path", &types.SplitRequest{Parts: 2}, types.ErrMissingInputPath},
		{"nonexistent input", &types.SplitRequest{InputPath: "/no/such/file", Parts: 2}, types.ErrInvalidRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := sp.Split(context.Background(), tc.req, nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSplit_DirectoryInputRejected(t *testing.T) {
	dir := t.TempDir()
	_, _, err := New(nil).Split(context.Background(), &types.SplitRequest{
		InputPath: dir,
		Parts:     2,
		OutputDir: t.TempDir(),
	}, nil)
	assert.ErrorIs(t, err, types.ErrInputNotRegular)
}

func TestSplit_PartialFailureAggregated(t *testing.T) {
	content := strings.Repeat("data line\n", 100)
	input := writeInput(t, content)
	outDir := t.TempDir()

	// Pre-create a directory where one output file should go: that part's
	// os.Create fails while the others proceed.
	req := &types.SplitRequest{InputPath: input, Parts: 4, OutputDir: outDir}
	blocked := req.OutputPath(2)
	require.NoError(t, os.MkdirAll(blocked, 0755))

	result, stats, err := New(nil).Split(context.Background(), req, nil)
	require.Error(t, err)

	var se *types.SplitError
	require.ErrorAs(t, err, &se)
	require.Len(t, se.Parts, 1)
	assert.Equal(t, 2, se.Parts[0].Index)
	assert.Equal(t, blocked, se.Parts[0].Path)
	assert.Len(t, se.Succeeded, 3, "sibling parts must still complete")

	assert.Equal(t, 3, stats.PartsWritten)
	assert.Equal(t, 1, stats.PartsFailed)

	// Successful siblings hold their exact ranges.
	for _, p := range result.Succeeded() {
		_, statErr := os.Stat(p)
		assert.NoError(t, statErr)
	}
}

func TestSplit_WorkerLimitRespected(t *testing.T) {
	content := strings.Repeat("line of text\n", 1000)
	input := writeInput(t, content)
	outDir := t.TempDir()

	result, _, err := New(nil).Split(context.Background(), &types.SplitRequest{
		InputPath: input,
		Parts:     16,
		OutputDir: outDir,
	}, &Config{Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, content, concat(t, result))
}

func TestSplit_CancelledContext(t *testing.T) {
	input := writeInput(t, "a\nb\nc\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := New(nil).Split(ctx, &types.SplitRequest{
		InputPath: input,
		Parts:     2,
		OutputDir: t.TempDir(),
	}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
