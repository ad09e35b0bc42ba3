package xmla

import (
	"github.com/sirupsen/logrus"

	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/ddl"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// Options configures a Decoder. The zero value is valid and logs nothing.
type Options struct {
	logger      logrus.FieldLogger
	annotations func(xmlnode.Node) ([]model.Annotation, error)
	limits      xmlnode.Limits
}

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// WithLogger sets the logger that receives debug entries for unknown
// discriminators and completed decodes. Nil disables logging.
func (o Options) WithLogger(logger logrus.FieldLogger) Options {
	o.logger = logger
	return o
}

// WithAnnotationsDecoder replaces the decoder used for Annotations containers.
// Nil restores the built-in decoder.
func (o Options) WithAnnotationsDecoder(fn func(xmlnode.Node) ([]model.Annotation, error)) Options {
	o.annotations = fn
	return o
}

// WithXMLMaxDepth sets the deepest element nesting DecodeExecute accepts.
// Zero uses the default of 256.
func (o Options) WithXMLMaxDepth(depth int) Options {
	o.limits.MaxDepth = depth
	return o
}

// WithXMLMaxAttrs sets the most attributes one element may carry.
// Zero uses the default of 256.
func (o Options) WithXMLMaxAttrs(attrs int) Options {
	o.limits.MaxAttrs = attrs
	return o
}

// Logger returns the configured logger, or nil.
func (o Options) Logger() logrus.FieldLogger {
	return o.logger
}

func (o Options) unknownHook() ddl.UnknownFunc {
	if o.logger == nil {
		return nil
	}
	logger := o.logger
	return func(family, discriminator string) {
		logger.WithFields(logrus.Fields{
			"family":        family,
			"discriminator": discriminator,
		}).Debug("unknown discriminator, variant left absent")
	}
}
