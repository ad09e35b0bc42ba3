// Package lexical coerces XMLA element text into typed values.
//
// Every function takes the element text as *string: nil means the element was
// absent and yields a nil result without error. Text that is present but
// cannot be parsed yields a *errors.Decode.
package lexical

import (
	"math/big"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	xmlaerrors "github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/errors"
)

// TrimXMLWhitespace strips leading and trailing XML whitespace (#x20 | #x9 | #xD | #xA).
func TrimXMLWhitespace(lexical string) string {
	return strings.Trim(lexical, " \t\r\n")
}

// Boolean parses "true" or "false". Numeric forms are rejected.
func Boolean(text *string) (*bool, error) {
	if text == nil {
		return nil, nil
	}
	lexical := TrimXMLWhitespace(*text)
	var value bool
	switch lexical {
	case "true":
		value = true
	case "false":
		value = false
	default:
		return nil, xmlaerrors.NewDecode(xmlaerrors.ErrInvalidBoolean, "invalid boolean: must be 'true' or 'false'", *text)
	}
	return &value, nil
}

// Int parses a signed 32-bit decimal integer.
func Int(text *string) (*int32, error) {
	if text == nil {
		return nil, nil
	}
	lexical := TrimXMLWhitespace(*text)
	if lexical == "" {
		return nil, xmlaerrors.NewDecode(xmlaerrors.ErrInvalidInteger, "invalid int: empty string", *text)
	}
	val, err := strconv.ParseInt(lexical, 10, 32)
	if err != nil {
		return nil, xmlaerrors.NewDecodef(xmlaerrors.ErrInvalidInteger, *text, "invalid int: %s", lexical)
	}
	v := int32(val)
	return &v, nil
}

// Long parses a signed 64-bit decimal integer.
func Long(text *string) (*int64, error) {
	if text == nil {
		return nil, nil
	}
	lexical := TrimXMLWhitespace(*text)
	if lexical == "" {
		return nil, xmlaerrors.NewDecode(xmlaerrors.ErrInvalidLong, "invalid long: empty string", *text)
	}
	val, err := strconv.ParseInt(lexical, 10, 64)
	if err != nil {
		return nil, xmlaerrors.NewDecodef(xmlaerrors.ErrInvalidLong, *text, "invalid long: %s", lexical)
	}
	return &val, nil
}

// BigInteger parses an arbitrary precision decimal integer.
func BigInteger(text *string) (*big.Int, error) {
	if text == nil {
		return nil, nil
	}
	lexical := TrimXMLWhitespace(*text)
	if lexical == "" {
		return nil, xmlaerrors.NewDecode(xmlaerrors.ErrInvalidBigInteger, "invalid integer: empty string", *text)
	}
	intVal := new(big.Int)
	if _, ok := intVal.SetString(lexical, 10); !ok {
		return nil, xmlaerrors.NewDecodef(xmlaerrors.ErrInvalidBigInteger, *text, "invalid integer: %s", lexical)
	}
	return intVal, nil
}

var durationPattern = regexp.MustCompile(
	`(?i)^([-+])?P(?:([-+]?\d+)Y)?(?:([-+]?\d+)M)?(?:([-+]?\d+)D)?(?:T(?:([-+]?\d+)H)?(?:([-+]?\d+)M)?(?:([-+]?\d+)(?:[.,](\d{1,9}))?S)?)?$`)

const (
	maxDuration = time.Duration(1<<63 - 1)
	minDuration = -maxDuration - 1
)

// Duration parses an ISO-8601 day-time duration (PnDTnHnMn.nS).
// Designators are case-insensitive, each component may carry its own sign,
// and the fraction separator is '.' or ','. Year and month components have no
// fixed length and are rejected. The result must fit a time.Duration.
func Duration(text *string) (*time.Duration, error) {
	if text == nil {
		return nil, nil
	}
	d, err := parseDuration(TrimXMLWhitespace(*text))
	if err != nil {
		return nil, xmlaerrors.NewDecodef(xmlaerrors.ErrInvalidDuration, *text, "invalid duration: %v", err)
	}
	return &d, nil
}

type durationError string

func (e durationError) Error() string { return string(e) }

func parseDuration(s string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, durationError("must match PnDTnHnMn.nS")
	}
	if strings.HasSuffix(s, "T") || strings.HasSuffix(s, "t") {
		return 0, durationError("time designator without components")
	}
	if m[2] == "" && m[3] == "" && m[4] == "" && m[5] == "" && m[6] == "" && m[7] == "" {
		return 0, durationError("at least one component is required")
	}
	if m[2] != "" || m[3] != "" {
		return 0, durationError("years and months cannot be converted to a fixed duration")
	}

	components := []struct {
		digits string
		unit   time.Duration
	}{
		{m[4], 24 * time.Hour},
		{m[5], time.Hour},
		{m[6], time.Minute},
		{m[7], time.Second},
	}
	var total time.Duration
	for _, c := range components {
		delta, err := durationComponent(c.digits, c.unit)
		if err != nil {
			return 0, err
		}
		if total, err = addDuration(total, delta); err != nil {
			return 0, err
		}
	}
	if frac := m[8]; frac != "" {
		frac += strings.Repeat("0", 9-len(frac))
		delta, err := durationComponent(frac, time.Nanosecond)
		if err != nil {
			return 0, err
		}
		// The fraction takes the sign of its seconds component.
		if strings.HasPrefix(m[7], "-") {
			delta = -delta
		}
		if total, err = addDuration(total, delta); err != nil {
			return 0, err
		}
	}
	if m[1] == "-" {
		if total == minDuration {
			return 0, durationError("duration overflows")
		}
		total = -total
	}
	return total, nil
}

func durationComponent(digits string, unit time.Duration) (time.Duration, error) {
	if digits == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	limit := int64(maxDuration / unit)
	if err != nil || v > limit || v < -limit {
		return 0, durationError("component overflows")
	}
	return time.Duration(v) * unit, nil
}

func addDuration(a, b time.Duration) (time.Duration, error) {
	if (b > 0 && a > maxDuration-b) || (b < 0 && a < minDuration-b) {
		return 0, durationError("duration overflows")
	}
	return a + b, nil
}

var instantFormats = []string{
	time.RFC3339Nano, // 2006-01-02T15:04:05.999999999Z07:00
	time.RFC3339,     // 2006-01-02T15:04:05Z07:00
}

// Instant parses an ISO-8601 instant. A zone designator ("Z" or an offset) is required.
// The result is normalized to UTC.
func Instant(text *string) (*time.Time, error) {
	if text == nil {
		return nil, nil
	}
	lexical := TrimXMLWhitespace(*text)
	if lexical == "" {
		return nil, xmlaerrors.NewDecode(xmlaerrors.ErrInvalidInstant, "invalid instant: empty string", *text)
	}
	for _, format := range instantFormats {
		if t, err := time.Parse(format, lexical); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, xmlaerrors.NewDecodef(xmlaerrors.ErrInvalidInstant, *text, "invalid instant: %s", lexical)
}

// Enum matches text against the known values of an enumeration.
func Enum[T ~string](text *string, known ...T) (*T, error) {
	if text == nil {
		return nil, nil
	}
	value := T(TrimXMLWhitespace(*text))
	if !slices.Contains(known, value) {
		return nil, xmlaerrors.NewDecodef(xmlaerrors.ErrInvalidEnum, *text,
			"invalid enumeration value %q", string(value))
	}
	return &value, nil
}
