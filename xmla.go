// Package xmla decodes XML for Analysis Execute requests into typed schema
// and command records.
//
// Decoding is pure: a Decoder holds no per-call state, so one Decoder can be
// shared by any number of goroutines. A decode either returns a complete
// result or an error; partial results are never returned.
package xmla

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/errors"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/command"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// Decoder decodes XMLA documents.
type Decoder struct {
	cmd    *command.Decoder
	logger logrus.FieldLogger
	limits xmlnode.Limits
}

var defaultDecoder = NewDecoder(NewOptions())

// NewDecoder builds a Decoder from opts.
func NewDecoder(opts Options) *Decoder {
	return &Decoder{
		cmd: command.New(command.Config{
			Annotations: opts.annotations,
			OnUnknown:   opts.unknownHook(),
		}),
		logger: opts.logger,
		limits: opts.limits,
	}
}

// DecodeExecute decodes an Execute request with the default Decoder.
func DecodeExecute(r io.Reader) (model.Execute, error) {
	return defaultDecoder.DecodeExecute(r)
}

// DecodeExecuteFile decodes an Execute request file with the default Decoder.
func DecodeExecuteFile(path string) (model.Execute, error) {
	return defaultDecoder.DecodeExecuteFile(path)
}

// DecodeCommand decodes a Command element with the default Decoder.
func DecodeCommand(n xmlnode.Node) (model.Command, error) {
	return defaultDecoder.DecodeCommand(n)
}

// DecodeMajorObject decodes a major object element with the default Decoder.
func DecodeMajorObject(n xmlnode.Node) (model.MajorObject, error) {
	return defaultDecoder.DecodeMajorObject(n)
}

// DecodeExecute parses r and decodes the Execute request it holds. The
// document may be a SOAP Envelope, a SOAP Body, or a bare Execute element.
func (d *Decoder) DecodeExecute(r io.Reader) (model.Execute, error) {
	if r == nil {
		return model.Execute{}, errors.NewDecode(errors.ErrXMLParse, "nil reader", "")
	}
	root, err := xmlnode.ParseWithLimits(r, d.limits)
	if err != nil {
		return model.Execute{}, errors.WrapDecode(errors.ErrXMLParse, err)
	}
	return d.DecodeExecuteNode(root)
}

// DecodeExecuteFile decodes the Execute request stored at path.
func (d *Decoder) DecodeExecuteFile(path string) (exec model.Execute, err error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Execute{}, fmt.Errorf("open xmla file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close xmla file %s: %w", path, closeErr)
		}
	}()

	return d.DecodeExecute(f)
}

// DecodeExecuteNode decodes the Execute request rooted at or below root.
func (d *Decoder) DecodeExecuteNode(root xmlnode.Node) (model.Execute, error) {
	exec := executeElement(root)
	if exec == nil {
		name := ""
		if root != nil {
			name = root.LocalName()
		}
		return model.Execute{}, errors.NewDecode(errors.ErrMissingCommand, "document holds no Execute element", name)
	}
	out, err := d.cmd.Execute(exec)
	if err != nil {
		return model.Execute{}, errors.WithPath("Execute", err)
	}
	d.debug(logrus.Fields{"command": out.Command.CommandKind(), "properties": len(out.Properties)},
		"decoded execute request")
	return out, nil
}

// DecodeCommand decodes a Command element. A body that is none of Statement,
// Alter, Cancel, or ClearCache fails with ErrIllegalCommand.
func (d *Decoder) DecodeCommand(n xmlnode.Node) (model.Command, error) {
	if n == nil {
		return nil, errors.NewDecode(errors.ErrIllegalCommand, "nil command element", "")
	}
	cmd, err := d.cmd.Command(n)
	if err != nil {
		return nil, errors.WithPath(n.LocalName(), err)
	}
	d.debug(logrus.Fields{"command": cmd.CommandKind()}, "decoded command")
	return cmd, nil
}

// DecodeMajorObject decodes a major object element such as Database or Cube.
// An element that is no major object kind fails with ErrIllegalMajorObject.
func (d *Decoder) DecodeMajorObject(n xmlnode.Node) (model.MajorObject, error) {
	if n == nil {
		return nil, errors.NewDecode(errors.ErrIllegalMajorObject, "nil major object element", "")
	}
	obj, ok, err := d.cmd.MajorObject(n)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewDecodef(errors.ErrIllegalMajorObject, n.LocalName(),
			"major object must be one of %v", model.MajorObjectKinds)
	}
	d.debug(logrus.Fields{"kind": obj.MajorObjectKind()}, "decoded major object")
	return obj, nil
}

func (d *Decoder) debug(fields logrus.Fields, msg string) {
	if d.logger == nil {
		return
	}
	d.logger.WithFields(fields).Debug(msg)
}

func executeElement(root xmlnode.Node) xmlnode.Node {
	if root == nil {
		return nil
	}
	switch root.LocalName() {
	case "Envelope":
		return xmlnode.Find(root, "Body", "Execute")
	case "Body":
		return xmlnode.Find(root, "Execute")
	case "Execute":
		return root
	default:
		return nil
	}
}
