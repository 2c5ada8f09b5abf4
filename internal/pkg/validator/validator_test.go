package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rut  string
		want bool
	}{
		{"valid numeric check digit", "12345678-5", true},
		{"valid seven digit body", "1111111-4", true},
		{"valid K check digit", "12345670-K", true},
		{"lowercase k accepted", "12345670-k", true},
		{"surrounding spaces trimmed", " 12345678-5 ", true},
		{"wrong check digit", "12345678-9", false},
		{"k where digit expected", "12345678-K", false},
		{"body too short", "123456-7", false},
		{"dotted format rejected", "12.345.678-5", false},
		{"missing dash", "123456785", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidRut(tt.rut))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNumeric("45"))
	assert.False(t, IsNumeric("45.5"))
	assert.False(t, IsNumeric("-45"))
	assert.False(t, IsNumeric(""))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	parsed, ok := IsValidDate("2025-03-12")
	assert.True(t, ok)
	assert.Equal(t, 2025, parsed.Year())

	_, ok = IsValidDate("12/03/2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "rut", Message: "rut is not valid"},
		{Field: "fecha", Message: "fecha must be in format 2006-01-02"},
	}
	assert.Equal(t, "rut: rut is not valid; fecha: fecha must be in format 2006-01-02", errs.Error())
	assert.Equal(t, map[string]string{
		"rut":   "rut is not valid",
		"fecha": "fecha must be in format 2006-01-02",
	}, errs.ToMap())
}
