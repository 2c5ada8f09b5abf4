package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

var rutRegex = regexp.MustCompile(`^[0-9]{7,8}-[0-9kK]$`)

// IsValidRut validates a Chilean RUT in canonical form (12345678-5),
// including the modulo-11 check digit.
func IsValidRut(rut string) bool {
	rut = strings.TrimSpace(rut)
	if !rutRegex.MatchString(rut) {
		return false
	}

	parts := strings.Split(rut, "-")
	body, dv := parts[0], strings.ToUpper(parts[1])

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		digit, _ := strconv.Atoi(string(body[i]))
		sum += digit * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	rem := 11 - (sum % 11)
	var expected string
	switch rem {
	case 11:
		expected = "0"
	case 10:
		expected = "K"
	default:
		expected = strconv.Itoa(rem)
	}

	return dv == expected
}
