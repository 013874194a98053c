// Package validation evaluates a declarative constraint set against a single
// candidate value.
//
// A Validatable bundles the value with optional predicates. Constraints that
// do not apply to the value's kind are skipped rather than failed: length
// limits only apply to strings and numeric bounds only apply to numbers.
// Required applies to every kind through the value's textual form.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validatable is a candidate value plus the constraints it must satisfy.
// Nil pointer fields are unset; a pointer to zero is a real constraint.
type Validatable struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Int returns a pointer to n, for MinLength and MaxLength.
func Int(n int) *int { return &n }

// Float returns a pointer to f, for Min and Max.
func Float(f float64) *float64 { return &f }

// Validate reports whether v.Value satisfies every constraint set on v.
// All constraints are evaluated; a failure is never overturned by a later pass.
func Validate(v Validatable) bool {
	return len(failures(v)) == 0
}

// FieldError names a field and the constraints its value failed.
type FieldError struct {
	Field  string
	Failed []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Failed, ", "))
}

// Check validates v and returns a *FieldError naming field when it fails.
func Check(field string, v Validatable) error {
	failed := failures(v)
	if len(failed) == 0 {
		return nil
	}
	return &FieldError{Field: field, Failed: failed}
}

func failures(v Validatable) []string {
	var failed []string

	if v.Required && strings.TrimSpace(textOf(v.Value)) == "" {
		failed = append(failed, "is required")
	}

	if s, ok := v.Value.(string); ok {
		n := utf8.RuneCountInString(s)
		if v.MinLength != nil && n < *v.MinLength {
			failed = append(failed, fmt.Sprintf("must be at least %d characters", *v.MinLength))
		}
		if v.MaxLength != nil && n > *v.MaxLength {
			failed = append(failed, fmt.Sprintf("must be at most %d characters", *v.MaxLength))
		}
	}

	if f, ok := numeric(v.Value); ok {
		if v.Min != nil && !(f >= *v.Min) {
			failed = append(failed, fmt.Sprintf("must be at least %s", formatBound(*v.Min)))
		}
		if v.Max != nil && !(f <= *v.Max) {
			failed = append(failed, fmt.Sprintf("must be at most %s", formatBound(*v.Max)))
		}
	}

	return failed
}

func textOf(value any) string {
	switch x := value.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// numeric reports the float64 form of value when it holds a Go numeric kind.
// Bounds are written as !(f >= min) so that NaN fails them.
func numeric(value any) (float64, bool) {
	switch x := value.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
