// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns XML response documents into JSON. The mapping is a
// recursive walk with a few reserved tags (MatchDetails, Values) handled by
// their own rules, followed by a total match score that is injected at the
// head of ResultBlock. It also provides batch conversion of XML files.
package convert

import (
	"bytes"
	"io"
	"log/slog"
	"maps"
	"strconv"
	"strings"

	"github.com/pdiddy/xml2json/internal/jsontree"
	"github.com/pdiddy/xml2json/internal/xmltree"
	"github.com/pdiddy/xml2json/pkg/types"
)

// Converter maps XML documents to JSON under a fixed set of Settings. It
// holds no per-call state and may be used from multiple goroutines.
type Converter struct {
	settings types.Settings
	logger   *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for recovered conditions such as skipped
// scores or a missing ResultBlock.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Converter for settings. The field mapping table is copied so
// later changes by the caller do not leak into conversions.
func New(settings types.Settings, opts ...Option) *Converter {
	settings.FieldMappings = maps.Clone(settings.FieldMappings)
	c := &Converter{
		settings: settings,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Settings returns the settings the converter was built with.
func (c *Converter) Settings() types.Settings {
	s := c.settings
	s.FieldMappings = maps.Clone(c.settings.FieldMappings)
	return s
}

// Result is the outcome of one conversion.
type Result struct {
	// RootTag is the XML root element name and the single top-level JSON key.
	RootTag string

	// TotalScore is the aggregate over every Score element.
	TotalScore int64

	// Tree is the JSON document before serialization.
	Tree *jsontree.Object

	// JSON is the indented serialization of Tree.
	JSON string
}

// Convert parses xmlText with settings (the defaults when nil) and returns
// indented JSON.
func Convert(xmlText string, settings *types.Settings) (string, error) {
	s := types.DefaultSettings()
	if settings != nil {
		s = *settings
	}
	return New(s).Convert(xmlText)
}

// Convert parses xmlText and returns indented JSON. Every failure is a
// *ConversionError; parse failures wrap a *ParseError.
func (c *Converter) Convert(xmlText string) (string, error) {
	res, err := c.ConvertReader(strings.NewReader(xmlText))
	if err != nil {
		return "", err
	}
	return res.JSON, nil
}

// ConvertBytes is Convert for a byte slice.
func (c *Converter) ConvertBytes(data []byte) (Result, error) {
	return c.ConvertReader(bytes.NewReader(data))
}

// ConvertReader reads one XML document from r and converts it.
func (c *Converter) ConvertReader(r io.Reader) (Result, error) {
	doc, err := xmltree.Parse(r)
	if err != nil {
		c.logger.Error("parsing XML", "err", err)
		return Result{}, &ConversionError{
			Msg: "failed to convert XML to JSON",
			Err: &ParseError{Msg: "failed to parse XML", Err: err},
		}
	}

	res, err := c.ConvertDocument(doc)
	if err != nil {
		c.logger.Error("converting XML", "err", err)
		return Result{}, &ConversionError{Msg: "failed to convert XML to JSON", Err: err}
	}
	return res, nil
}

// ConvertDocument maps an already parsed document.
func (c *Converter) ConvertDocument(doc *xmltree.Document) (Result, error) {
	if doc == nil || doc.Root == nil {
		return Result{}, xmltree.ErrNoRoot
	}

	root := jsontree.NewObject()
	response := jsontree.NewObject()
	root.Set(doc.Root.Name, response)

	m := &mapper{settings: c.settings}
	m.mapElement(doc.Root, response)

	total := c.TotalScore(doc)
	if c.settings.MatchSummaryEnabled {
		c.injectSummary(response, total)
	}

	out, err := jsontree.MarshalIndent(root)
	if err != nil {
		return Result{}, err
	}

	c.logger.Debug("converted XML to JSON", "root", doc.Root.Name, "total_score", total)
	return Result{
		RootTag:    doc.Root.Name,
		TotalScore: total,
		Tree:       root,
		JSON:       string(out),
	}, nil
}

// injectSummary makes MatchSummary the first field of ResultBlock. The other
// fields keep their relative order; an existing MatchSummary is replaced.
func (c *Converter) injectSummary(response *jsontree.Object, total int64) {
	v, ok := response.Get(tagResultBlock)
	if !ok {
		c.logger.Warn("ResultBlock not found in response, cannot add MatchSummary")
		return
	}
	block, ok := v.(*jsontree.Object)
	if !ok {
		c.logger.Warn("ResultBlock is not an object, cannot add MatchSummary")
		return
	}

	summary := jsontree.NewObject()
	summary.Set(fieldTotalMatchScore, jsontree.String(strconv.FormatInt(total, 10)))

	fields := block.Fields()
	block.Clear()
	block.Set(fieldMatchSummary, summary)
	for _, f := range fields {
		// A MatchSummary from the input is dropped rather than re-set.
		if f.Key == fieldMatchSummary {
			continue
		}
		block.Set(f.Key, f.Value)
	}
}
