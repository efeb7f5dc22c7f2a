// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/xml2json/pkg/types"
)

func resolveText(t *testing.T, text string, opts Options) (types.Settings, error) {
	t.Helper()
	props, err := Parse(text)
	require.NoError(t, err)
	src, err := NewSource(props)
	require.NoError(t, err)
	return Resolve(src, opts)
}

func TestResolveDefaults(t *testing.T) {
	src, err := NewSource(nil)
	require.NoError(t, err)

	s, err := Resolve(src, Options{Strict: true})
	require.NoError(t, err)

	assert.Equal(t, int64(math.MaxInt32), s.MaxIntValue)
	assert.Equal(t, int64(math.MaxInt64), s.MaxLongValue)
	assert.Equal(t, types.ScoreInteger, s.ScoreDataType)
	assert.True(t, s.MatchSummaryEnabled)
	assert.Empty(t, s.OverrideSecondMatchScore)
	assert.False(t, s.FixedSecondMatch)
	assert.Equal(t, map[string]string{"MatchDetails.Score": "Score"}, s.FieldMappings)
}

func TestResolveFromProperties(t *testing.T) {
	s, err := resolveText(t, `
# converter limits
converter.max.int.value = 1000
converter.max.long.value=5000000000
converter.score.data.type=LONG
feature.match.summary.enabled=false
override.second.match.score=12
fixed.second.match.score=true
field.mapping.MatchDetails.Entity=EntityName
field.mapping.MatchDetails.Score=Points
`, Options{Strict: true})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), s.MaxIntValue)
	assert.Equal(t, int64(5_000_000_000), s.MaxLongValue)
	assert.Equal(t, types.ScoreLong, s.ScoreDataType)
	assert.False(t, s.MatchSummaryEnabled)
	assert.Equal(t, "12", s.OverrideSecondMatchScore)
	assert.True(t, s.FixedSecondMatch)
	assert.Equal(t, map[string]string{
		"MatchDetails.Entity": "EntityName",
		"MatchDetails.Score":  "Points",
	}, s.FieldMappings)
	assert.Equal(t, int64(5_000_000_000), s.Ceiling())
}

func TestResolveMalformedValues(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
	}{
		{name: "int not numeric", text: "converter.max.int.value=lots", key: KeyMaxIntValue},
		{name: "int beyond 32 bits", text: "converter.max.int.value=3000000000", key: KeyMaxIntValue},
		{name: "long not numeric", text: "converter.max.long.value=12abc", key: KeyMaxLongValue},
		{name: "unknown score type", text: "converter.score.data.type=float", key: KeyScoreDataType},
		{name: "summary toggle", text: "feature.match.summary.enabled=sometimes", key: KeyMatchSummaryEnabled},
		{name: "fixed toggle", text: "fixed.second.match.score=maybe", key: KeyFixedSecondScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := resolveText(t, tt.text, Options{})
			require.NoError(t, err, "lenient resolution never fails")

			d := types.DefaultSettings()
			assert.Equal(t, d.MaxIntValue, s.MaxIntValue)
			assert.Equal(t, d.MaxLongValue, s.MaxLongValue)
			assert.Equal(t, d.ScoreDataType, s.ScoreDataType)
			assert.Equal(t, d.MatchSummaryEnabled, s.MatchSummaryEnabled)
			assert.Equal(t, d.FixedSecondMatch, s.FixedSecondMatch)

			_, err = resolveText(t, tt.text, Options{Strict: true})
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.key, cfgErr.Key)
		})
	}
}

func TestResolveFixedToggle(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "TRUE", want: true},
		{value: "40", want: true},
		{value: "false", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s, err := resolveText(t, KeyFixedSecondScore+"="+tt.value, Options{Strict: true})
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.FixedSecondMatch)
		})
	}
}

func TestResolveEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("XML2JSON_CONVERTER_SCORE_DATA_TYPE", "long")
	t.Setenv("XML2JSON_OVERRIDE_SECOND_MATCH_SCORE", "7")

	s, err := resolveText(t, "converter.score.data.type=integer", Options{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, types.ScoreLong, s.ScoreDataType)
	assert.Equal(t, "7", s.OverrideSecondMatchScore)
}

func TestResolveFlagOverride(t *testing.T) {
	props, err := Parse("feature.match.summary.enabled=true")
	require.NoError(t, err)
	src, err := NewSource(props)
	require.NoError(t, err)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("match-summary", true, "")
	require.NoError(t, src.BindFlag(KeyMatchSummaryEnabled, fs.Lookup("match-summary")))

	s, err := Resolve(src, Options{Strict: true})
	require.NoError(t, err)
	assert.True(t, s.MatchSummaryEnabled, "unset flag does not override the file")

	require.NoError(t, fs.Parse([]string{"--match-summary=false"}))
	s, err = Resolve(src, Options{Strict: true})
	require.NoError(t, err)
	assert.False(t, s.MatchSummaryEnabled)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.properties")
	require.NoError(t, os.WriteFile(path, []byte("override.second.match.score=${literal}\n"), 0o644))

	s, used, err := Load(path, Options{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "${literal}", s.OverrideSecondMatchScore, "references are not expanded")

	_, _, err = Load(filepath.Join(dir, "missing.properties"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	props, used, err := Discover(dir)
	require.NoError(t, err)
	assert.Nil(t, props)
	assert.Empty(t, used)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("converter.max.int.value=10\n"), 0o644))
	props, used, err = Discover(dir)
	require.NoError(t, err)
	require.NotNil(t, props)
	assert.Equal(t, filepath.Join(dir, DefaultFile), used)
	v, ok := props.Get(KeyMaxIntValue)
	assert.True(t, ok)
	assert.Equal(t, "10", v)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, types.DefaultSettings()))

	out := buf.String()
	assert.Contains(t, out, "max_int_value: 2147483647")
	assert.Contains(t, out, "score_data_type: integer")
	assert.Contains(t, out, "match_summary_enabled: true")
	assert.Contains(t, out, "MatchDetails.Score: Score")
	assert.NotContains(t, out, "override_second_match_score")
}
