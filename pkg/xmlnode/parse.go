package xmlnode

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"
)

const (
	defaultMaxDepth = 256
	defaultMaxAttrs = 256
)

// Limits bounds the documents Parse accepts. Non-positive fields use the
// defaults of 256 nested elements and 256 attributes per element.
type Limits struct {
	MaxDepth int
	MaxAttrs int
}

func (l Limits) resolved() Limits {
	return Limits{
		MaxDepth: defaultLimit(l.MaxDepth, defaultMaxDepth),
		MaxAttrs: defaultLimit(l.MaxAttrs, defaultMaxAttrs),
	}
}

func defaultLimit(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

// Parse builds a Node tree from XML input with the default Limits.
// Comments, processing instructions, and directives are dropped; character
// data is concatenated per element.
func Parse(r io.Reader) (Node, error) {
	return ParseWithLimits(r, Limits{})
}

// ParseWithLimits is Parse with explicit document limits.
func ParseWithLimits(r io.Reader, limits Limits) (Node, error) {
	if r == nil {
		return nil, fmt.Errorf("nil XML reader")
	}
	limits = limits.resolved()
	decoder := xml.NewDecoder(r)

	var stack []*element
	var root *element
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xml read: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			if len(stack) >= limits.MaxDepth {
				return nil, fmt.Errorf("element %s exceeds max depth %d", t.Name.Local, limits.MaxDepth)
			}
			if len(t.Attr) > limits.MaxAttrs {
				return nil, fmt.Errorf("element %s has %d attributes, max %d", t.Name.Local, len(t.Attr), limits.MaxAttrs)
			}
			elem := &element{
				namespace: t.Name.Space,
				local:     t.Name.Local,
				attrs:     convertAttrs(t.Attr),
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(string(t)) {
					return nil, fmt.Errorf("unexpected character data outside root element")
				}
				continue
			}
			stack[len(stack)-1].text += string(t)
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(doc string) (Node, error) {
	return Parse(strings.NewReader(doc))
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func convertAttrs(xmlAttrs []xml.Attr) []Attr {
	if len(xmlAttrs) == 0 {
		return nil
	}
	attrs := make([]Attr, 0, len(xmlAttrs))
	for _, a := range xmlAttrs {
		namespace := a.Name.Space
		if namespace == "xmlns" || (namespace == "" && a.Name.Local == "xmlns") {
			namespace = XMLNSNamespace
		}
		attrs = append(attrs, Attr{
			Namespace: namespace,
			Local:     a.Name.Local,
			Value:     a.Value,
		})
	}
	return attrs
}
