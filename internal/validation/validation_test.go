package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_NoConstraints(t *testing.T) {
	assert.True(t, Validate(Validatable{Value: ""}))
	assert.True(t, Validate(Validatable{Value: 0}))
}

func TestValidate_RequiredRejectsBlankStrings(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n", "   \r\n  "} {
		assert.False(t, Validate(Validatable{Value: s, Required: true}), "should reject %q", s)
	}
	assert.True(t, Validate(Validatable{Value: " x ", Required: true}))
}

func TestValidate_RequiredAppliesToNumbers(t *testing.T) {
	assert.True(t, Validate(Validatable{Value: 0, Required: true}))
	assert.True(t, Validate(Validatable{Value: 3.5, Required: true}))
	assert.False(t, Validate(Validatable{Value: nil, Required: true}))
}

func TestValidate_ZeroIsAValidRequiredAndMin(t *testing.T) {
	assert.True(t, Validate(Validatable{Value: 0, Min: Float(0), Required: true}))
}

func TestValidate_ZeroConstraintsAreEvaluated(t *testing.T) {
	// max = 0 is set, not absent: 1 must fail it.
	assert.False(t, Validate(Validatable{Value: 1, Max: Float(0)}))
	// maxLength = 0 is set: any non-empty string fails.
	assert.False(t, Validate(Validatable{Value: "a", MaxLength: Int(0)}))
	assert.True(t, Validate(Validatable{Value: "", MaxLength: Int(0)}))
}

func TestValidate_LengthChecksSkipNumbers(t *testing.T) {
	assert.True(t, Validate(Validatable{Value: 3, MinLength: Int(100)}))
	assert.True(t, Validate(Validatable{Value: 123456, MaxLength: Int(1)}))
}

func TestValidate_BoundChecksSkipStrings(t *testing.T) {
	assert.True(t, Validate(Validatable{Value: "3", Min: Float(100)}))
	assert.True(t, Validate(Validatable{Value: "300", Max: Float(5)}))
}

func TestValidate_StringLength(t *testing.T) {
	v := Validatable{Value: "abcd", Required: true, MinLength: Int(5)}
	assert.False(t, Validate(v))

	v.Value = "abcde"
	assert.True(t, Validate(v))

	v.MaxLength = Int(4)
	assert.False(t, Validate(v))
}

func TestValidate_LengthCountsCharacters(t *testing.T) {
	// Five characters, ten bytes.
	assert.True(t, Validate(Validatable{Value: "ééééé", MinLength: Int(5), MaxLength: Int(5)}))
}

func TestValidate_NumericBounds(t *testing.T) {
	people := func(n int) Validatable {
		return Validatable{Value: n, Required: true, Min: Float(1), Max: Float(5)}
	}
	assert.False(t, Validate(people(0)))
	assert.True(t, Validate(people(1)))
	assert.True(t, Validate(people(5)))
	assert.False(t, Validate(people(6)))
	assert.False(t, Validate(Validatable{Value: -2.5, Min: Float(1)}))
}

func TestValidate_NaNFailsBounds(t *testing.T) {
	assert.False(t, Validate(Validatable{Value: math.NaN(), Min: Float(1)}))
	assert.False(t, Validate(Validatable{Value: math.NaN(), Max: Float(5)}))
}

func TestValidate_FailureIsNeverOverturned(t *testing.T) {
	// Required fails; later applicable constraints pass.
	v := Validatable{Value: "   ", Required: true, MinLength: Int(1), MaxLength: Int(10)}
	assert.False(t, Validate(v))
}

func TestCheck_ReportsEveryFailure(t *testing.T) {
	err := Check("description", Validatable{Value: " ", Required: true, MinLength: Int(5)})
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "description", fe.Field)
	assert.Equal(t, []string{"is required", "must be at least 5 characters"}, fe.Failed)
	assert.Equal(t, "description: is required, must be at least 5 characters", err.Error())
}

func TestCheck_Passes(t *testing.T) {
	assert.NoError(t, Check("people", Validatable{Value: 3, Min: Float(1), Max: Float(5)}))
}

func TestCheck_BoundMessage(t *testing.T) {
	err := Check("people", Validatable{Value: 6, Max: Float(5)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be at most 5")
}
