// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrDTDNotAllowed is returned when a document carries a DOCTYPE declaration.
var ErrDTDNotAllowed = errors.New("DOCTYPE is disallowed")

// ErrNoRoot is returned for input without a root element.
var ErrNoRoot = errors.New("document has no root element")

// ParseString parses XML text.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a complete XML document from r. Any DOCTYPE declaration is
// rejected with ErrDTDNotAllowed before entities could be expanded, and
// content after the root element other than whitespace, comments, and
// processing instructions is an error. Non-UTF-8 encodings named in the XML
// declaration are decoded through x/net's charset tables.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel

	var (
		stack []*Element
		root  *Element
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading token: %w", err)
		}

		switch t := tok.(type) {
		case xml.Directive:
			if isDoctype(t) {
				return nil, fmt.Errorf("line %d: %w", lineOf(dec), ErrDTDNotAllowed)
			}
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("line %d: markup after the root element", lineOf(dec))
			}
			el := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: attrName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Content = append(parent.Content, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, fmt.Errorf("line %d: character data outside the root element", lineOf(dec))
				}
				continue
			}
			parent := stack[len(stack)-1]
			parent.Content = appendText(parent.Content, string(t))
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}
	return &Document{Root: root}, nil
}

// appendText merges adjacent character data, which the decoder splits
// around CDATA sections and entity references.
func appendText(content []Node, s string) []Node {
	if n := len(content); n > 0 {
		if prev, ok := content[n-1].(CharData); ok {
			content[n-1] = prev + CharData(s)
			return content
		}
	}
	return append(content, CharData(s))
}

func isDoctype(d xml.Directive) bool {
	return bytes.HasPrefix(bytes.TrimSpace(d), []byte("DOCTYPE"))
}

// attrName keeps the xmlns prefix on namespace declarations; every other
// attribute is reported by its local name.
func attrName(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return n.Local
}

func lineOf(dec *xml.Decoder) int {
	line, _ := dec.InputPos()
	return line
}
