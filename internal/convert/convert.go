// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/xml2json/pkg/types"
)

// Processor converts one XML document. *Service implements it.
type Processor interface {
	Process(ctx context.Context, source string, r io.Reader) (Result, error)
}

// BatchOptions controls where batch output goes.
type BatchOptions struct {
	// OutDir receives <id>.json for every converted document.
	OutDir string

	// Force re-converts documents whose output already exists.
	Force bool
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any document failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile converts a single XML document to JSON, writing the result to
// the output directory. If the JSON output already exists and opts.Force is
// unset, it skips conversion and returns ConversionNone.
func ConvertFile(ctx context.Context, p Processor, doc types.Document, opts BatchOptions, w io.Writer) types.ConversionStatus {
	jsonPath := filepath.Join(opts.OutDir, doc.ID+".json")

	if !opts.Force {
		if _, err := os.Stat(jsonPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", doc.ID)
			return ConversionNone
		}
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		return types.ConversionFailed
	}

	f, err := os.Open(doc.SourcePath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		return types.ConversionFailed
	}
	defer f.Close()

	res, err := p.Process(ctx, doc.SourcePath, f)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		return types.ConversionFailed
	}

	if err := os.WriteFile(jsonPath, []byte(res.JSON+"\n"), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		return types.ConversionFailed
	}

	fmt.Fprintf(w, "converted: %s (total score %d)\n", doc.ID, res.TotalScore)
	return types.ConversionDone
}

// ConvertBatch processes a list of documents, printing per-file status to w
// and returning a summary. It stops early when ctx is cancelled.
func ConvertBatch(ctx context.Context, p Processor, docs []types.Document, opts BatchOptions, w io.Writer) BatchResult {
	var result BatchResult
	for _, d := range docs {
		if ctx.Err() != nil {
			break
		}
		switch ConvertFile(ctx, p, d, opts, w) {
		case types.ConversionDone:
			result.Converted++
		case ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// ConvertPaths builds Document records from raw XML paths and delegates to
// ConvertBatch. Each document ID is the file name without its extension.
func ConvertPaths(ctx context.Context, p Processor, paths []string, opts BatchOptions, w io.Writer) BatchResult {
	docs := make([]types.Document, len(paths))
	for i, path := range paths {
		docs[i] = types.Document{
			ID:         strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			SourcePath: path,
		}
	}
	return ConvertBatch(ctx, p, docs, opts, w)
}

// ConversionNone is a local alias for "skip" status (JSON already exists).
const ConversionNone = types.ConversionNone
