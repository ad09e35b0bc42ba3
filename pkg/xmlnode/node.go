// Package xmlnode provides the read-only, order-preserving element tree the
// XMLA decoder consumes.
//
// The decoder only depends on the Node interface. Callers that already hold a
// parsed SOAP body can adapt their own tree to it; Parse builds one from raw
// XML using encoding/xml.
package xmlnode

import "strings"

// Common XML namespaces.
const (
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
	XSINamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	XMLANamespace  = "urn:schemas-microsoft-com:xml-analysis"
	SOAPNamespace  = "http://schemas.xmlsoap.org/soap/envelope/"
	EngineNS       = "http://schemas.microsoft.com/analysisservices/2003/engine"
)

// Node is the minimal element view used by the decoder.
// Implementations must not change after construction.
type Node interface {
	NamespaceURI() string
	LocalName() string
	// Attr returns the value of an unqualified attribute.
	Attr(local string) (string, bool)
	// AttrNS returns the value of a namespaced attribute.
	AttrNS(ns, local string) (string, bool)
	Attributes() []Attr
	// Text returns the character data directly under the element.
	Text() string
	Children() []Node
}

// Attr exposes attribute name, namespace, and value.
type Attr struct {
	Namespace string
	Local     string
	Value     string
}

// NewElement builds an immutable Node. Attributes and children are copied.
func NewElement(namespace, local string, attrs []Attr, text string, children ...Node) Node {
	e := &element{
		namespace: namespace,
		local:     local,
		text:      text,
	}
	if len(attrs) > 0 {
		e.attrs = append([]Attr(nil), attrs...)
	}
	if len(children) > 0 {
		e.children = append([]Node(nil), children...)
	}
	return e
}

type element struct {
	namespace string
	local     string
	attrs     []Attr
	children  []Node
	text      string
}

func (e *element) NamespaceURI() string {
	return e.namespace
}

func (e *element) LocalName() string {
	return e.local
}

func (e *element) Attr(local string) (string, bool) {
	for _, a := range e.attrs {
		if a.Namespace == "" && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func (e *element) AttrNS(ns, local string) (string, bool) {
	for _, a := range e.attrs {
		if a.Namespace == ns && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Attributes returns a copy of the element attributes.
func (e *element) Attributes() []Attr {
	if len(e.attrs) == 0 {
		return nil
	}
	return append([]Attr(nil), e.attrs...)
}

func (e *element) Text() string {
	return e.text
}

// Children returns a copy of the child element slice.
func (e *element) Children() []Node {
	if len(e.children) == 0 {
		return nil
	}
	return append([]Node(nil), e.children...)
}

// TypeName returns the local part of the element's xsi:type attribute.
// An undeclared "xsi" prefix is accepted as the XSI namespace.
func TypeName(n Node) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attributes() {
		if a.Local != "type" {
			continue
		}
		if a.Namespace != XSINamespace && a.Namespace != "xsi" {
			continue
		}
		value := strings.TrimSpace(a.Value)
		if _, local, ok := strings.Cut(value, ":"); ok {
			return local, true
		}
		return value, true
	}
	return "", false
}

// Discriminator returns the xsi:type local name, or the element local name
// when no type attribute is present.
func Discriminator(n Node) string {
	if name, ok := TypeName(n); ok {
		return name
	}
	if n == nil {
		return ""
	}
	return n.LocalName()
}

// Find descends through direct children matching each local name in path and
// returns the first match, or nil.
func Find(n Node, path ...string) Node {
	current := n
	for _, local := range path {
		if current == nil {
			return nil
		}
		var next Node
		for _, child := range current.Children() {
			if child.LocalName() == local {
				next = child
				break
			}
		}
		current = next
	}
	return current
}
