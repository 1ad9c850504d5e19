package domain

import (
	"fmt"
	"strings"
)

// FieldError describes one rejected input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
}

// ValidationError collects every problem found in a request so callers can
// report them together.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// Add records a problem with field
func (ve *ValidationError) Add(field, format string, args ...any) {
	ve.Fields = append(ve.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any field was rejected
func (ve *ValidationError) HasErrors() bool {
	return ve != nil && len(ve.Fields) > 0
}

// ErrOrNil returns ve when it holds problems and nil otherwise
func (ve *ValidationError) ErrOrNil() error {
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func (ve *ValidationError) Error() string {
	parts := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		parts[i] = f.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// UnsupportedCountryError is returned for a country outside the catalog's coverage
type UnsupportedCountryError struct {
	Country   string
	Supported []Country
}

func (e *UnsupportedCountryError) Error() string {
	names := make([]string, len(e.Supported))
	for i, c := range e.Supported {
		names[i] = string(c)
	}
	return fmt.Sprintf("unsupported country %q: only %s are currently supported", e.Country, strings.Join(names, ", "))
}

// CalculationError reports a benefit calculation that failed for one scheme
type CalculationError struct {
	SchemeID string
	Err      error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation failed for scheme %s: %v", e.SchemeID, e.Err)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}
