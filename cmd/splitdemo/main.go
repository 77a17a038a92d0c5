// splitdemo is a one-shot driver that invokes the splitter as a library
// and prints the resulting part paths.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dshills/linesplit-mcp/internal/splitter"
	"github.com/dshills/linesplit-mcp/pkg/types"
)

func main() {
	log.SetOutput(os.Stderr)

	var (
		inputPath = flag.String("input", "", "file to split (required)")
		numParts  = flag.Int("parts", 2, "number of output parts")
		outputDir = flag.String("out", ".", "output directory (created if absent)")
		pattern   = flag.String("pattern", "", "optional name pattern with one %d verb")
		workers   = flag.Int("workers", 0, "concurrent workers (0 = number of CPUs)")
	)
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	req := &types.SplitRequest{
		InputPath:   *inputPath,
		Parts:       *numParts,
		OutputDir:   *outputDir,
		NamePattern: *pattern,
	}

	sp := splitter.New(nil)
	result, stats, err := sp.Split(context.Background(), req, &splitter.Config{Workers: *workers})

	var se *types.SplitError
	if errors.As(err, &se) {
		for _, pe := range se.Parts {
			log.Printf("failed: %v", pe)
		}
		for _, p := range se.Succeeded {
			fmt.Println(p)
		}
		log.Fatalf("split finished with %d failed parts", len(se.Parts))
	}
	if err != nil {
		log.Fatalf("split failed: %v", err)
	}

	for _, p := range result.OutputPaths {
		fmt.Println(p)
	}
	log.Printf("wrote %d parts, %d bytes in %v", stats.PartsWritten, stats.BytesWritten, stats.Duration)
}
