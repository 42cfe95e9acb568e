package message

import (
	"strconv"

	"github.com/relaycore/httpcall/internal/grammar"
)

// StatusCode is a three-digit HTTP status code.
type StatusCode struct{ value string }

// Well-known status constants, process-lived and shared.
var (
	StatusOK                  = StatusCode{value: "200"}
	StatusCreated             = StatusCode{value: "201"}
	StatusNoContent           = StatusCode{value: "204"}
	StatusMovedPermanently    = StatusCode{value: "301"}
	StatusFound               = StatusCode{value: "302"}
	StatusNotModified         = StatusCode{value: "304"}
	StatusBadRequest          = StatusCode{value: "400"}
	StatusUnauthorized        = StatusCode{value: "401"}
	StatusForbidden           = StatusCode{value: "403"}
	StatusNotFound            = StatusCode{value: "404"}
	StatusInternalServerError = StatusCode{value: "500"}
	StatusBadGateway          = StatusCode{value: "502"}
	StatusServiceUnavailable  = StatusCode{value: "503"}
)

// ParseStatusCode validates s as exactly three decimal digits.
func ParseStatusCode(s string) (StatusCode, error) {
	if err := grammar.Check(grammar.CategoryStatusCode, s, grammar.MatchStatusCode); err != nil {
		return StatusCode{}, err
	}
	return StatusCode{value: s}, nil
}

// MustConstructStatusCode skips validation.
func MustConstructStatusCode(s string) StatusCode { return StatusCode{value: s} }

// FromInt builds a StatusCode from an int in 0..999.
func FromInt(n int) StatusCode {
	return StatusCode{value: strconv.Itoa(n)}
}

// String returns the status code's textual form.
func (c StatusCode) String() string { return c.value }

// Int returns the numeric status code.
func (c StatusCode) Int() int {
	n, _ := strconv.Atoi(c.value)
	return n
}

// IsZero reports whether this is the unset zero value.
func (c StatusCode) IsZero() bool { return c.value == "" }

// Class returns the status class (1-5), or 0 if unset.
func (c StatusCode) Class() int {
	if len(c.value) == 0 {
		return 0
	}
	return int(c.value[0] - '0')
}
