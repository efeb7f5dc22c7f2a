// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecondMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		index    int
		want     string
		wantOK   bool
	}{
		{name: "first occurrence never overridden", settings: Settings{OverrideSecondMatchScore: "9", FixedSecondMatch: true}, index: 0},
		{name: "third occurrence never overridden", settings: Settings{FixedSecondMatch: true}, index: 2},
		{name: "no override configured", settings: Settings{}, index: 1},
		{name: "fixed toggle", settings: Settings{FixedSecondMatch: true}, index: 1, want: "40", wantOK: true},
		{name: "literal wins", settings: Settings{OverrideSecondMatchScore: "9", FixedSecondMatch: true}, index: 1, want: "9", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.settings.SecondMatchScore(tt.index)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMappedField(t *testing.T) {
	s := DefaultSettings()
	s.FieldMappings["MatchDetails.Entity"] = "Name"
	s.FieldMappings["MatchDetails.Blank"] = ""

	assert.Equal(t, "Name", s.MappedField("MatchDetails", "Entity"))
	assert.Equal(t, "Score", s.MappedField("MatchDetails", "Score"))
	assert.Equal(t, "MatchType", s.MappedField("MatchDetails", "MatchType"))
	assert.Equal(t, "Blank", s.MappedField("MatchDetails", "Blank"))
}

func TestParseScoreDataType(t *testing.T) {
	for in, want := range map[string]ScoreDataType{"integer": ScoreInteger, "Long": ScoreLong, " LONG ": ScoreLong} {
		got, ok := ParseScoreDataType(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	got, ok := ParseScoreDataType("double")
	assert.False(t, ok)
	assert.Equal(t, ScoreInteger, got)
}

func TestCeiling(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, int64(math.MaxInt32), s.Ceiling())
	s.ScoreDataType = ScoreLong
	assert.Equal(t, int64(math.MaxInt64), s.Ceiling())
}
