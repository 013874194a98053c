package board

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/projboard/internal/validation"
)

// Form field names. They double as the ids of the inputs in the layout.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPeople      = "people"
)

// FieldNames lists the form fields in display order.
var FieldNames = []string{FieldTitle, FieldDescription, FieldPeople}

// Constraint returns the constraint set for a raw field value.
func Constraint(field, raw string) (validation.Validatable, error) {
	switch field {
	case FieldTitle:
		return validation.Validatable{Value: raw, Required: true}, nil
	case FieldDescription:
		return validation.Validatable{Value: raw, Required: true, MinLength: validation.Int(5)}, nil
	case FieldPeople:
		return validation.Validatable{
			Value:    ParsePeople(raw),
			Required: true,
			Min:      validation.Float(1),
			Max:      validation.Float(5),
		}, nil
	default:
		return validation.Validatable{}, fmt.Errorf("unknown field %q", field)
	}
}

// CheckField validates a single raw field value. It is shared by the form
// submit path and the interactive per-field validators.
func CheckField(field, raw string) error {
	v, err := Constraint(field, raw)
	if err != nil {
		return err
	}
	return validation.Check(field, v)
}

// ParsePeople converts the raw people input to a number. Blank input is 0
// and unparsable input is NaN, so both fail the 1..5 bound.
func ParsePeople(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
