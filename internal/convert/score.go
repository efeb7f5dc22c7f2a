// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"math"
	"strconv"

	"github.com/pdiddy/xml2json/internal/xmltree"
	"github.com/pdiddy/xml2json/pkg/types"
)

// TotalScore sums every Score element in the document, in document order.
// The second occurrence is subject to the same override as the second
// match's Score field. Scores that are not 32-bit integers are skipped. When
// the next addition would pass the configured ceiling the ceiling is returned;
// in long mode that value is clamped to the 32-bit maximum, so a saturated
// total can be smaller than an unsaturated one.
func (c *Converter) TotalScore(doc *xmltree.Document) int64 {
	ceiling := c.settings.Ceiling()

	var total int64
	for i, el := range doc.ElementsByName(tagScore) {
		text := el.TrimmedText()
		if v, ok := c.settings.SecondMatchScore(i); ok {
			text = v
		}

		score, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			c.logger.Warn("non-numeric score found, skipping", "score", text)
			continue
		}

		if exceedsCeiling(total, score, ceiling) {
			if c.settings.ScoreDataType == types.ScoreLong {
				c.logger.Warn("total score exceeds maximum long value, returning max value", "ceiling", ceiling)
				return min(ceiling, math.MaxInt32)
			}
			c.logger.Warn("total score exceeds maximum integer value, returning max value", "ceiling", ceiling)
			return ceiling
		}
		total += score
	}
	return total
}

// exceedsCeiling reports total > ceiling-score without overflowing.
func exceedsCeiling(total, score, ceiling int64) bool {
	if score < 0 && ceiling > math.MaxInt64+score {
		return false
	}
	if score > 0 && ceiling < math.MinInt64+score {
		return true
	}
	return total > ceiling-score
}
