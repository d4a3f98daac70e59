package valueobject

import (
	"fmt"
	"strings"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// RUT is a Chilean tax identifier (Rol Único Tributario) value object.
// It is stored normalized: digits plus check digit, no dots, with a dash
// before the check digit (e.g. "12345678-5").
type RUT struct {
	body  string
	check byte
}

// rutWeights is the weight cycle applied to body digits from least to most
// significant when computing the mod-11 check digit.
var rutWeights = [6]int{2, 3, 4, 5, 6, 7}

// NewRUT parses and validates a candidate RUT string.
// Accepted input formats: "12345678-5", "12.345.678-5", "12345678K".
func NewRUT(raw string) (RUT, error) {
	cleaned := strings.ToUpper(strings.NewReplacer(".", "", "-", "").Replace(strings.TrimSpace(raw)))
	if len(cleaned) < 2 {
		return RUT{}, shared.NewDomainError("INVALID_RUT", "RUT must have at least 2 characters")
	}

	body := cleaned[:len(cleaned)-1]
	check := cleaned[len(cleaned)-1]

	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return RUT{}, shared.NewDomainError("INVALID_RUT", "RUT body must be numeric")
		}
	}

	expected := ExpectedCheckDigit(body)
	if check != expected {
		return RUT{}, shared.NewDomainError("INVALID_RUT",
			fmt.Sprintf("Invalid RUT check digit, expected %c", expected))
	}

	return RUT{body: body, check: check}, nil
}

// ExpectedCheckDigit computes the mod-11 check digit for a numeric RUT body.
// The body must contain only ASCII digits; the result is '0'-'9' or 'K'.
func ExpectedCheckDigit(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		digit := int(body[len(body)-1-i] - '0')
		sum += digit * rutWeights[i%len(rutWeights)]
	}

	switch v := 11 - (sum % 11); v {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + v)
	}
}

// ValidateRUT checks a candidate RUT string without constructing the value object.
func ValidateRUT(raw string) error {
	_, err := NewRUT(raw)
	return err
}

// String returns the normalized representation ("body-check")
func (r RUT) String() string {
	return r.body + "-" + string(r.check)
}

// Body returns the numeric body of the RUT
func (r RUT) Body() string {
	return r.body
}

// CheckDigit returns the check digit character
func (r RUT) CheckDigit() byte {
	return r.check
}

// IsEmpty returns true if the RUT is the zero value
func (r RUT) IsEmpty() bool {
	return r.body == ""
}

// Equals compares two RUTs by normalized value
func (r RUT) Equals(other RUT) bool {
	return r.body == other.body && r.check == other.check
}
