package board

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeople(t *testing.T) {
	assert.Equal(t, 0.0, ParsePeople(""))
	assert.Equal(t, 0.0, ParsePeople("   "))
	assert.Equal(t, 3.0, ParsePeople(" 3 "))
	assert.True(t, math.IsNaN(ParsePeople("three")))
}

func TestCheckField(t *testing.T) {
	assert.NoError(t, CheckField(FieldTitle, "Build API"))
	assert.Error(t, CheckField(FieldTitle, "  "))
	assert.NoError(t, CheckField(FieldDescription, "12345"))
	assert.Error(t, CheckField(FieldDescription, "1234"))
	assert.NoError(t, CheckField(FieldPeople, "5"))
	assert.Error(t, CheckField(FieldPeople, "6"))
}

func TestConstraint_UnknownField(t *testing.T) {
	_, err := Constraint("budget", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "budget"`)
}
