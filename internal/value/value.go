package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Value is the dynamically typed runtime datum: either a single precision
// number or a text string. The zero Value is Number(0).
type Value struct {
	text   string
	num    float32
	isText bool
}

// Number returns a numeric Value.
func Number(n float32) Value { return Value{num: n} }

// Text returns a text Value.
func Text(s string) Value { return Value{text: s, isText: true} }

// Bool returns Number(1) for true, Number(0) otherwise.
func Bool(b bool) Value {
	if b {
		return Number(1)
	}
	return Number(0)
}

// Parse returns a Number if s parses as one, otherwise s as Text.
func Parse(s string) Value {
	if n, err := parseNumber(s); err == nil {
		return Number(n)
	}
	return Text(s)
}

// IsNumber returns true if v holds a number.
func (v Value) IsNumber() bool { return !v.isText }

// Float coerces v to a number; text that is not a valid number literal
// results in a *CoercionError.
func (v Value) Float() (float32, error) {
	if !v.isText {
		return v.num, nil
	}
	n, err := parseNumber(v.text)
	if err != nil {
		return 0, &CoercionError{Text: v.text}
	}
	return n, nil
}

// String coerces v to text; numbers use FormatNumber.
func (v Value) String() string {
	if v.isText {
		return v.text
	}
	return FormatNumber(v.num)
}

// GoString renders v as a tagged literal, for dumps and test failures.
func (v Value) GoString() string {
	if v.isText {
		return fmt.Sprintf("Text(%q)", v.text)
	}
	return fmt.Sprintf("Number(%v)", FormatNumber(v.num))
}

// FormatNumber renders n as the shortest decimal string that parses back to
// the same float32.
func FormatNumber(n float32) string {
	switch {
	case math.IsInf(float64(n), 1):
		return "inf"
	case math.IsInf(float64(n), -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(n), 'f', -1, 32)
}

func parseNumber(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		var numErr *strconv.NumError
		// out of range still yields a correctly signed infinity
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return 0, err
		}
	}
	return float32(f), nil
}

// CoercionError indicates that a text value could not be interpreted as a
// number.
type CoercionError struct {
	Text string
}

func (err *CoercionError) Error() string {
	return fmt.Sprintf("cannot use %q as a number", err.Text)
}
