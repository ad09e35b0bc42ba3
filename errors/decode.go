// Package errors defines the coded errors returned by the XMLA decoder.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies an XMLA decode failure.
type ErrorCode string

const (
	// ErrXMLParse indicates the XML document could not be parsed into a node tree.
	ErrXMLParse ErrorCode = "xmla-xml-parse"
	// ErrMissingCommand indicates an Execute request without a Command element.
	ErrMissingCommand ErrorCode = "xmla-missing-command"
	// ErrIllegalCommand indicates a Command body holding none of the known command shapes.
	ErrIllegalCommand ErrorCode = "xmla-illegal-command"
	// ErrIllegalMajorObject indicates an element that is none of the known major object kinds.
	ErrIllegalMajorObject ErrorCode = "xmla-illegal-major-object"

	// ErrInvalidBoolean indicates text that is not "true" or "false".
	ErrInvalidBoolean ErrorCode = "xmla-invalid-boolean"
	// ErrInvalidInteger indicates text that does not fit a 32-bit integer.
	ErrInvalidInteger ErrorCode = "xmla-invalid-integer"
	// ErrInvalidLong indicates text that does not fit a 64-bit integer.
	ErrInvalidLong ErrorCode = "xmla-invalid-long"
	// ErrInvalidBigInteger indicates text that is not a decimal integer.
	ErrInvalidBigInteger ErrorCode = "xmla-invalid-big-integer"
	// ErrInvalidDuration indicates text that is not an ISO-8601 day-time duration.
	ErrInvalidDuration ErrorCode = "xmla-invalid-duration"
	// ErrInvalidInstant indicates text that is not an ISO-8601 instant.
	ErrInvalidInstant ErrorCode = "xmla-invalid-instant"
	// ErrInvalidEnum indicates text outside an enumeration's known values.
	ErrInvalidEnum ErrorCode = "xmla-invalid-enum"
)

// Decode describes a failure to decode an XMLA document.
//
//nolint:errname // public API name uses the decoder's domain term.
type Decode struct {
	Code    string
	Message string
	// Path lists the element names from the outermost element down to the
	// failing field, joined by "/".
	Path   string
	Actual string
	// Err is the underlying cause, if any.
	Err error
}

// Error formats the failure for display, including code, message, and context.
func (d *Decode) Error() string {
	if d == nil {
		return "decode <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", d.Code, d.Message))
	if d.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", d.Path))
	}
	if d.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %q)", d.Actual))
	}
	return b.String()
}

// NewDecode builds a Decode error with a code, message, and offending text.
func NewDecode(code ErrorCode, msg, actual string) *Decode {
	return &Decode{Code: string(code), Message: msg, Actual: actual}
}

// WrapDecode builds a Decode error whose message and cause come from err.
func WrapDecode(code ErrorCode, err error) *Decode {
	d := NewDecode(code, err.Error(), "")
	d.Err = err
	return d
}

// Unwrap returns the underlying cause.
func (d *Decode) Unwrap() error {
	if d == nil {
		return nil
	}
	return d.Err
}

// NewDecodef formats a message and builds a Decode error.
func NewDecodef(code ErrorCode, actual, format string, args ...any) *Decode {
	return NewDecode(code, fmt.Sprintf(format, args...), actual)
}

// WithPath returns a copy of err whose path is prefixed by element.
// Errors that are not *Decode are wrapped with the element name instead.
func WithPath(element string, err error) error {
	if err == nil {
		return nil
	}
	var d *Decode
	if !errors.As(err, &d) || d == nil {
		return fmt.Errorf("%s: %w", element, err)
	}
	cp := *d
	if cp.Path == "" {
		cp.Path = element
	} else {
		cp.Path = element + "/" + cp.Path
	}
	return &cp
}

// AsDecode extracts a Decode error from err.
func AsDecode(err error) (*Decode, bool) {
	if err == nil {
		return nil, false
	}
	var d *Decode
	if errors.As(err, &d) && d != nil {
		return d, true
	}
	return nil, false
}

// HasCode reports whether err is a Decode error with the given code.
func HasCode(err error, code ErrorCode) bool {
	d, ok := AsDecode(err)
	return ok && d.Code == string(code)
}
