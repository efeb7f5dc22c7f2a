// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package xmltree parses XML text into a small ordered element tree.
// Only elements, attributes, and character data are kept; comments,
// processing instructions, and namespaces are dropped.
package xmltree

import "strings"

// Attr is one element attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is either an *Element or a CharData value inside an element.
type Node interface {
	node()
}

// CharData is text (including CDATA sections) found between tags.
type CharData string

func (CharData) node() {}

// Element is one XML element with its attributes and mixed content in
// document order.
type Element struct {
	Name    string
	Attrs   []Attr
	Content []Node
}

func (*Element) node() {}

// Children returns the direct child elements in document order.
func (e *Element) Children() []*Element {
	var out []*Element
	for _, n := range e.Content {
		if c, ok := n.(*Element); ok {
			out = append(out, c)
		}
	}
	return out
}

// HasChildElements reports whether e contains at least one child element.
func (e *Element) HasChildElements() bool {
	for _, n := range e.Content {
		if _, ok := n.(*Element); ok {
			return true
		}
	}
	return false
}

// Text returns the concatenated character data of e and all of its
// descendants, in document order.
func (e *Element) Text() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	for _, n := range e.Content {
		switch v := n.(type) {
		case CharData:
			b.WriteString(string(v))
		case *Element:
			v.writeText(b)
		}
	}
}

// TrimmedText returns Text with surrounding whitespace removed.
func (e *Element) TrimmedText() string {
	return strings.TrimSpace(e.Text())
}

// Descendants returns every element below e named name, in document order.
// e itself is not included.
func (e *Element) Descendants(name string) []*Element {
	var out []*Element
	e.collect(name, &out)
	return out
}

func (e *Element) collect(name string, out *[]*Element) {
	for _, n := range e.Content {
		c, ok := n.(*Element)
		if !ok {
			continue
		}
		if c.Name == name {
			*out = append(*out, c)
		}
		c.collect(name, out)
	}
}

// Document is a parsed XML document.
type Document struct {
	Root *Element
}

// ElementsByName returns every element in the document named name,
// including the root, in document order.
func (d *Document) ElementsByName(name string) []*Element {
	if d == nil || d.Root == nil {
		return nil
	}
	var out []*Element
	if d.Root.Name == name {
		out = append(out, d.Root)
	}
	return append(out, d.Root.Descendants(name)...)
}
