// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of converting one XML document.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Document identifies one XML input for batch conversion.
type Document struct {
	// ID is a slug derived from the source file name (e.g. "response-001").
	ID string `json:"id" yaml:"id"`

	// SourcePath is the local filesystem path to the XML document.
	SourcePath string `json:"source_path" yaml:"source_path"`
}

// ConversionRecord is one archived conversion result.
type ConversionRecord struct {
	// ID is the archive row identifier, assigned on save.
	ID int64 `json:"id" yaml:"id"`

	// Source names where the XML came from (file path, "stdin", "sample").
	Source string `json:"source" yaml:"source"`

	// Digest is the hex SHA-256 of the XML input.
	Digest string `json:"digest" yaml:"digest"`

	// RootTag is the XML document's root element name.
	RootTag string `json:"root_tag" yaml:"root_tag"`

	// TotalScore is the computed aggregate, as emitted in the JSON.
	TotalScore string `json:"total_score" yaml:"total_score"`

	// JSON is the converted output.
	JSON string `json:"json" yaml:"json"`

	// ConvertedAt is when the conversion completed.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
