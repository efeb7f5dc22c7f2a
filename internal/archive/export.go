// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v3"
)

// ExportEntry is one archived conversion in export form. The converted JSON
// is embedded as raw JSON rather than an escaped string.
type ExportEntry struct {
	ID          int64           `json:"id" yaml:"id"`
	Source      string          `json:"source" yaml:"source"`
	Digest      string          `json:"digest" yaml:"digest"`
	RootTag     string          `json:"root_tag" yaml:"root_tag"`
	TotalScore  string          `json:"total_score" yaml:"total_score"`
	ConvertedAt string          `json:"converted_at" yaml:"converted_at"`
	Output      json.RawMessage `json:"output" yaml:"-"`
}

const exportLimit = 100000

// ExportJSON writes the matching records to w as a JSON array.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// ExportYAML writes the matching records to w as YAML. The converted JSON
// itself is left out; YAML export is a summary listing.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]ExportEntry, error) {
	opts.Limit = exportLimit
	records, err := s.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(records))
	for i, r := range records {
		entries[i] = ExportEntry{
			ID:          r.ID,
			Source:      r.Source,
			Digest:      r.Digest,
			RootTag:     r.RootTag,
			TotalScore:  r.TotalScore,
			ConvertedAt: r.ConvertedAt.UTC().Format(time.RFC3339),
			Output:      json.RawMessage(r.JSON),
		}
	}
	return entries, nil
}
