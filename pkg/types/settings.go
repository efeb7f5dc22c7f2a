// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records shared between the conversion engine,
// the configuration resolver, the archive, and the CLI.
package types

import (
	"math"
	"strings"
)

// ScoreDataType selects which ceiling bounds the total match score.
type ScoreDataType string

const (
	ScoreInteger ScoreDataType = "integer"
	ScoreLong    ScoreDataType = "long"
)

// ParseScoreDataType maps a configured value onto a ScoreDataType. The match
// is case-insensitive; ok is false for anything other than integer or long.
func ParseScoreDataType(s string) (ScoreDataType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ScoreInteger):
		return ScoreInteger, true
	case string(ScoreLong):
		return ScoreLong, true
	}
	return ScoreInteger, false
}

// FixedSecondMatchScore is the literal substituted for the second match's
// score when FixedSecondMatch is set.
const FixedSecondMatchScore = "40"

// DefaultScoreMapping is the field mapping that is always present.
const DefaultScoreMapping = "MatchDetails.Score"

// Settings is the resolved, read-only configuration consumed by the
// conversion engine. A Settings value is safe to share between goroutines as
// long as nobody mutates FieldMappings after construction.
type Settings struct {
	// MaxIntValue is the total score ceiling in integer mode.
	MaxIntValue int64 `json:"max_int_value" yaml:"max_int_value"`

	// MaxLongValue is the total score ceiling in long mode.
	MaxLongValue int64 `json:"max_long_value" yaml:"max_long_value"`

	// ScoreDataType selects MaxIntValue or MaxLongValue.
	ScoreDataType ScoreDataType `json:"score_data_type" yaml:"score_data_type"`

	// MatchSummaryEnabled toggles injection of ResultBlock.MatchSummary.
	MatchSummaryEnabled bool `json:"match_summary_enabled" yaml:"match_summary_enabled"`

	// FieldMappings renames match fields, keyed "<ElementPath>.<FieldName>".
	FieldMappings map[string]string `json:"field_mappings" yaml:"field_mappings"`

	// OverrideSecondMatchScore replaces the second match's score when non-empty.
	OverrideSecondMatchScore string `json:"override_second_match_score,omitempty" yaml:"override_second_match_score,omitempty"`

	// FixedSecondMatch forces the second match's score to FixedSecondMatchScore
	// when no override literal is configured.
	FixedSecondMatch bool `json:"fixed_second_match_score" yaml:"fixed_second_match_score"`
}

// DefaultSettings returns the compiled-in defaults.
func DefaultSettings() Settings {
	return Settings{
		MaxIntValue:         math.MaxInt32,
		MaxLongValue:        math.MaxInt64,
		ScoreDataType:       ScoreInteger,
		MatchSummaryEnabled: true,
		FieldMappings:       map[string]string{DefaultScoreMapping: "Score"},
	}
}

// Ceiling returns the saturation bound for the configured score data type.
func (s Settings) Ceiling() int64 {
	if s.ScoreDataType == ScoreLong {
		return s.MaxLongValue
	}
	return s.MaxIntValue
}

// MappedField returns the output name for field under path, falling back to
// field itself when no mapping exists.
func (s Settings) MappedField(path, field string) string {
	if name, ok := s.FieldMappings[path+"."+field]; ok && name != "" {
		return name
	}
	return field
}

// SecondMatchScore reports the literal that replaces a score at the given
// zero-based occurrence index. Only index 1 is ever overridden: the explicit
// override literal wins over the fixed toggle.
func (s Settings) SecondMatchScore(index int) (string, bool) {
	if index != 1 {
		return "", false
	}
	if s.OverrideSecondMatchScore != "" {
		return s.OverrideSecondMatchScore, true
	}
	if s.FixedSecondMatch {
		return FixedSecondMatchScore, true
	}
	return "", false
}
