// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/xml2json/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(source, digest, score string, at time.Time) types.ConversionRecord {
	return types.ConversionRecord{
		Source:      source,
		Digest:      digest,
		RootTag:     "Response",
		TotalScore:  score,
		JSON:        `{"Response": {"ResultBlock": {"MatchSummary": {"TotalMatchScore": "` + score + `"}}}}`,
		ConvertedAt: at,
	}
}

func TestSaveAndList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	id1, err := s.Save(ctx, record("a.xml", "d1", "85", base))
	require.NoError(t, err)
	id2, err := s.Save(ctx, record("b.xml", "d2", "75", base.Add(time.Minute)))
	require.NoError(t, err)
	_, err = s.Save(ctx, record("a.xml", "d3", "10", base.Add(2*time.Minute)))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	all, err := s.List(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "d3", all[0].Digest, "newest first")
	assert.Equal(t, base.Add(2*time.Minute), all[0].ConvertedAt)

	bySource, err := s.List(ctx, QueryOptions{Source: "a.xml"})
	require.NoError(t, err)
	assert.Len(t, bySource, 2)

	byDigest, err := s.List(ctx, QueryOptions{Digest: "d2"})
	require.NoError(t, err)
	require.Len(t, byDigest, 1)
	assert.Equal(t, "75", byDigest[0].TotalScore)
	assert.Equal(t, id2, byDigest[0].ID)

	limited, err := s.List(ctx, QueryOptions{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSaveDefaultsTimestamp(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	rec := record("c.xml", "d", "1", time.Time{})
	_, err := s.Save(ctx, rec)
	require.NoError(t, err)

	got, err := s.List(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].ConvertedAt.IsZero())
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Save(ctx, record("a.xml", "d1", "85", time.Now()))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.List(ctx, QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	_, err := s.Save(ctx, record("a.xml", "d1", "85", at))
	require.NoError(t, err)

	var jsonOut bytes.Buffer
	require.NoError(t, s.ExportJSON(ctx, &jsonOut, QueryOptions{}))

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "a.xml", entries[0]["source"])
	assert.Equal(t, "2026-01-02T03:04:05Z", entries[0]["converted_at"])
	output, ok := entries[0]["output"].(map[string]any)
	require.True(t, ok, "converted JSON is embedded, not escaped")
	assert.Contains(t, output, "Response")

	var yamlOut bytes.Buffer
	require.NoError(t, s.ExportYAML(ctx, &yamlOut, QueryOptions{}))

	var listed []map[string]any
	require.NoError(t, yaml.Unmarshal(yamlOut.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "85", listed[0]["total_score"])
	assert.NotContains(t, listed[0], "output")
}
