// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"github.com/pdiddy/xml2json/internal/jsontree"
	"github.com/pdiddy/xml2json/internal/xmltree"
	"github.com/pdiddy/xml2json/pkg/types"
)

// Reserved element and field names.
const (
	tagMatchDetails = "MatchDetails"
	tagMatch        = "Match"
	tagScore        = "Score"
	tagValues       = "Values"
	tagValue        = "Value"
	tagResultBlock  = "ResultBlock"

	fieldMatchSummary    = "MatchSummary"
	fieldTotalMatchScore = "TotalMatchScore"
)

// rule writes the JSON for the first occurrence of an element into its
// parent object.
type rule func(m *mapper, el *xmltree.Element, parent *jsontree.Object)

// reservedRules holds the child tags that bypass the generic mapping on
// their first occurrence. MatchDetails is not one of them: it is handled when
// the element itself is mapped, so its array lands one level down.
var reservedRules = map[string]rule{
	tagValues: (*mapper).values,
}

func ruleFor(tag string) rule {
	if r, ok := reservedRules[tag]; ok {
		return r
	}
	return (*mapper).generic
}

type mapper struct {
	settings types.Settings
}

// mapElement writes el's children and then its attributes into target. A
// MatchDetails element writes only its Match array.
func (m *mapper) mapElement(el *xmltree.Element, target *jsontree.Object) {
	if el.Name == tagMatchDetails {
		m.matchDetails(el, target)
		return
	}

	for _, child := range el.Children() {
		existing, ok := target.Get(child.Name)
		if !ok {
			ruleFor(child.Name)(m, child, target)
			continue
		}

		// A repeated tag turns the field into an array, seeded with
		// whatever the first occurrence produced.
		arr, isArray := existing.(*jsontree.Array)
		if !isArray {
			arr = jsontree.NewArray(existing)
			target.Set(child.Name, arr)
		}
		arr.Append(m.arrayItem(child))
	}

	// Attributes are written last and overwrite same-named child fields.
	for _, a := range el.Attrs {
		target.Set(a.Name, jsontree.String(a.Value))
	}
}

// generic maps an element with children to a nested object and a leaf to its
// trimmed text, or null when empty.
func (m *mapper) generic(el *xmltree.Element, parent *jsontree.Object) {
	if !el.HasChildElements() {
		parent.Set(el.Name, leafValue(el))
		return
	}
	obj := jsontree.NewObject()
	parent.Set(el.Name, obj)
	m.mapElement(el, obj)
}

// arrayItem is the object appended for the second and later occurrences of a
// tag. A leaf maps to an object holding only its attributes.
func (m *mapper) arrayItem(el *xmltree.Element) *jsontree.Object {
	obj := jsontree.NewObject()
	m.mapElement(el, obj)
	return obj
}

// matchDetails always produces an array, one {"Match": {...}} wrapper per
// Match element below el.
func (m *mapper) matchDetails(el *xmltree.Element, parent *jsontree.Object) {
	matches := jsontree.NewArray()
	parent.Set(tagMatchDetails, matches)

	for i, match := range el.Descendants(tagMatch) {
		flat := jsontree.NewObject()
		for _, field := range match.Children() {
			value := field.TrimmedText()
			if field.Name == tagScore {
				if v, ok := m.settings.SecondMatchScore(i); ok {
					value = v
				}
			}
			flat.Set(m.settings.MappedField(tagMatchDetails, field.Name), jsontree.String(value))
		}

		wrapper := jsontree.NewObject()
		wrapper.Set(tagMatch, flat)
		matches.Append(wrapper)
	}
}

// values collapses every Value element below el into a single Value field:
// a string for one, an array of strings for several, absent for none.
func (m *mapper) values(el *xmltree.Element, parent *jsontree.Object) {
	obj := jsontree.NewObject()

	found := el.Descendants(tagValue)
	switch {
	case len(found) == 1:
		obj.Set(tagValue, jsontree.String(found[0].TrimmedText()))
	case len(found) > 1:
		arr := jsontree.NewArray()
		for _, v := range found {
			arr.Append(jsontree.String(v.TrimmedText()))
		}
		obj.Set(tagValue, arr)
	}

	parent.Set(tagValues, obj)
}

func leafValue(el *xmltree.Element) jsontree.Value {
	text := el.TrimmedText()
	if text == "" {
		return jsontree.Null{}
	}
	return jsontree.String(text)
}
