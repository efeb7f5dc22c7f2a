// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

// ParseError reports XML that could not be parsed, including documents
// rejected for declaring a DTD.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConversionError is the single failure value returned by Convert. When the
// input did not parse, Err is a *ParseError.
type ConversionError struct {
	Msg string
	Err error
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *ConversionError) Unwrap() error { return e.Err }
