// Package fieldset projects the direct children of one element onto record
// fields.
//
// A Set indexes the children once by local name, preserving document order
// per name. Scalar accessors read the last matching child; list accessors
// return every match in order. Children whose names are never asked for are
// ignored. The first coercion failure is kept and later accessors return
// nil, so a converter can read all of its fields and check Err once.
package fieldset

import (
	"math/big"
	"time"

	xmlaerrors "github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/errors"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/lexical"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// Set is the name to nodes multimap of one element's children.
type Set struct {
	node   xmlnode.Node
	byName map[string][]xmlnode.Node
	err    error
}

// New indexes the direct children of n. A nil node yields an empty Set.
func New(n xmlnode.Node) *Set {
	s := &Set{node: n}
	if n == nil {
		return s
	}
	children := n.Children()
	s.byName = make(map[string][]xmlnode.Node, len(children))
	for _, child := range children {
		name := child.LocalName()
		s.byName[name] = append(s.byName[name], child)
	}
	return s
}

// Node returns the indexed element.
func (s *Set) Node() xmlnode.Node {
	return s.node
}

// Err returns the first failure recorded on the set.
func (s *Set) Err() error {
	return s.err
}

// Failed reports whether a failure has been recorded.
func (s *Set) Failed() bool {
	return s.err != nil
}

// Fail records err against tag unless a failure is already recorded.
func (s *Set) Fail(tag string, err error) {
	if err == nil || s.err != nil {
		return
	}
	s.err = xmlaerrors.WithPath(tag, err)
}

// Has reports whether at least one child named tag exists.
func (s *Set) Has(tag string) bool {
	return len(s.byName[tag]) > 0
}

// Last returns the last child named tag, or nil.
func (s *Set) Last(tag string) xmlnode.Node {
	nodes := s.byName[tag]
	if len(nodes) == 0 {
		return nil
	}
	return nodes[len(nodes)-1]
}

// All returns every child named tag in document order.
func (s *Set) All(tag string) []xmlnode.Node {
	return s.byName[tag]
}

// String returns the text of the last child named tag.
func (s *Set) String(tag string) *string {
	n := s.Last(tag)
	if n == nil {
		return nil
	}
	text := n.Text()
	return &text
}

// Strings returns the text of every child named tag.
func (s *Set) Strings(tag string) []string {
	nodes := s.All(tag)
	if len(nodes) == 0 {
		return nil
	}
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Text())
	}
	return out
}

// StringList returns the text of every item child inside the last container
// child. An absent container yields nil; an empty one yields an empty slice.
func (s *Set) StringList(container, item string) []string {
	c := s.Last(container)
	if c == nil {
		return nil
	}
	out := []string{}
	for _, child := range c.Children() {
		if child.LocalName() == item {
			out = append(out, child.Text())
		}
	}
	return out
}

// Bool coerces the last child named tag to a boolean.
func (s *Set) Bool(tag string) *bool {
	return coerce(s, tag, lexical.Boolean)
}

// Int coerces the last child named tag to a 32-bit integer.
func (s *Set) Int(tag string) *int32 {
	return coerce(s, tag, lexical.Int)
}

// Long coerces the last child named tag to a 64-bit integer.
func (s *Set) Long(tag string) *int64 {
	return coerce(s, tag, lexical.Long)
}

// BigInt coerces the last child named tag to an arbitrary precision integer.
func (s *Set) BigInt(tag string) *big.Int {
	return coerce(s, tag, lexical.BigInteger)
}

// Duration coerces the last child named tag to a duration.
func (s *Set) Duration(tag string) *time.Duration {
	return coerce(s, tag, lexical.Duration)
}

// Instant coerces the last child named tag to an instant.
func (s *Set) Instant(tag string) *time.Time {
	return coerce(s, tag, lexical.Instant)
}

// Enum coerces the last child named tag to one of the known values.
func Enum[T ~string](s *Set, tag string, known ...T) *T {
	if s.err != nil {
		return nil
	}
	v, err := lexical.Enum(s.String(tag), known...)
	if err != nil {
		s.Fail(tag, err)
		return nil
	}
	return v
}

func coerce[T any](s *Set, tag string, parse func(*string) (*T, error)) *T {
	if s.err != nil {
		return nil
	}
	v, err := parse(s.String(tag))
	if err != nil {
		s.Fail(tag, err)
		return nil
	}
	return v
}

// One decodes the last child named tag. The zero value is returned when the
// child is absent or a failure has been recorded.
func One[T any](s *Set, tag string, decode func(xmlnode.Node) (T, error)) T {
	var zero T
	if s.err != nil {
		return zero
	}
	n := s.Last(tag)
	if n == nil {
		return zero
	}
	v, err := decode(n)
	if err != nil {
		s.Fail(tag, err)
		return zero
	}
	return v
}

// Each decodes every child named tag in document order. No match yields nil.
func Each[T any](s *Set, tag string, decode func(xmlnode.Node) (T, error)) []T {
	if s.err != nil {
		return nil
	}
	nodes := s.All(tag)
	if len(nodes) == 0 {
		return nil
	}
	out := make([]T, 0, len(nodes))
	for _, n := range nodes {
		v, err := decode(n)
		if err != nil {
			s.Fail(tag, err)
			return nil
		}
		out = append(out, v)
	}
	return out
}

// List decodes every item child of the last container child in document
// order. An absent container yields nil; an empty one yields an empty slice.
func List[T any](s *Set, container, item string, decode func(xmlnode.Node) (T, error)) []T {
	if s.err != nil {
		return nil
	}
	c := s.Last(container)
	if c == nil {
		return nil
	}
	out := []T{}
	for _, child := range c.Children() {
		if child.LocalName() != item {
			continue
		}
		v, err := decode(child)
		if err != nil {
			s.Fail(container, xmlaerrors.WithPath(item, err))
			return nil
		}
		out = append(out, v)
	}
	return out
}
