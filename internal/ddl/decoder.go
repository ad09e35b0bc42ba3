// Package ddl converts XMLA schema definition elements into model records.
//
// Every converter reads the direct children of its element once through a
// fieldset, so unknown children are ignored and repeated scalar children keep
// the last value. Polymorphic families dispatch on the xsi:type of the
// element, falling back to its local name. Unknown variants decode as nil.
package ddl

import (
	"errors"

	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/fieldset"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// AnnotationsFunc decodes an Annotations container element.
type AnnotationsFunc func(xmlnode.Node) ([]model.Annotation, error)

// CommandFunc decodes one Command element of an MDX script.
type CommandFunc func(xmlnode.Node) (model.Command, error)

// UnknownFunc observes a discriminator that no variant of family matched.
type UnknownFunc func(family, discriminator string)

// ErrNoCommandDecoder is returned when an MDX script holds commands and the
// Decoder was built without a CommandFunc.
var ErrNoCommandDecoder = errors.New("ddl: no command decoder configured")

// Config holds the collaborators of a Decoder.
type Config struct {
	// Annotations decodes Annotations containers. Nil uses Annotations.
	Annotations AnnotationsFunc
	// Command decodes the commands of MDX scripts.
	Command CommandFunc
	// OnUnknown is called for every unmatched discriminator.
	OnUnknown UnknownFunc
}

// Decoder converts schema elements. It holds no per-call state and is safe
// for concurrent use once built.
type Decoder struct {
	annotations func(xmlnode.Node) ([]model.Annotation, error)
	command     func(xmlnode.Node) (model.Command, error)
	onUnknown   UnknownFunc
}

// New builds a Decoder from cfg.
func New(cfg Config) *Decoder {
	d := &Decoder{
		annotations: cfg.Annotations,
		command:     cfg.Command,
		onUnknown:   cfg.OnUnknown,
	}
	if d.annotations == nil {
		d.annotations = Annotations
	}
	if d.command == nil {
		d.command = func(xmlnode.Node) (model.Command, error) {
			return nil, ErrNoCommandDecoder
		}
	}
	return d
}

func (d *Decoder) unknown(family, discriminator string) {
	if d.onUnknown != nil {
		d.onUnknown(family, discriminator)
	}
}

func (d *Decoder) header(s *fieldset.Set) model.Header {
	return model.Header{
		Name:             s.String("Name"),
		ID:               s.String("ID"),
		CreatedTimestamp: s.Instant("CreatedTimestamp"),
		LastSchemaUpdate: s.Instant("LastSchemaUpdate"),
		Description:      s.String("Description"),
		Annotations:      d.annotationsOf(s),
	}
}

func (d *Decoder) annotationsOf(s *fieldset.Set) []model.Annotation {
	return fieldset.One(s, "Annotations", d.annotations)
}

func (d *Decoder) translations(s *fieldset.Set) []model.Translation {
	return fieldset.List(s, "Translations", "Translation", d.Translation)
}

// finish returns v unless the set recorded a failure.
func finish[T any](s *fieldset.Set, v T) (T, error) {
	if err := s.Err(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ptr returns a pointer to a fresh copy of the decoded record.
func ptr[T any](decode func(xmlnode.Node) (T, error)) func(xmlnode.Node) (*T, error) {
	return func(n xmlnode.Node) (*T, error) {
		v, err := decode(n)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}
