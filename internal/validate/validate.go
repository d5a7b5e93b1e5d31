package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrValidation = errors.New("validation")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error lists every violated constraint of one payload.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return ErrValidation }

func Field(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

// Validator collects field errors. Not safe for concurrent use.
type Validator struct {
	errs []FieldError
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

func (v *Validator) Length(field, value string, min, max int) *Validator {
	n := utf8.RuneCountInString(value)
	switch {
	case n < min:
		v.add(field, fmt.Sprintf("must be at least %d characters", min))
	case n > max:
		v.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return v
}

// OptionalLength checks value only when it was supplied.
func (v *Validator) OptionalLength(field string, value *string, min, max int) *Validator {
	if value != nil {
		v.Length(field, *value, min, max)
	}
	return v
}

func (v *Validator) MaxLength(field, value string, max int) *Validator {
	return v.Length(field, value, 0, max)
}

// MaxBytes limits the encoded size rather than the character count.
func (v *Validator) MaxBytes(field, value string, max int) *Validator {
	if len(value) > max {
		v.add(field, fmt.Sprintf("must be at most %d bytes", max))
	}
	return v
}

func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
	return v
}

func (v *Validator) Positive(field string, value int) *Validator {
	if value <= 0 {
		v.add(field, "must be greater than 0")
	}
	return v
}

func (v *Validator) NonNegative(field string, value float64) *Validator {
	if value < 0 {
		v.add(field, "must be greater than or equal to 0")
	}
	return v
}

func (v *Validator) Required(field string, missing bool) *Validator {
	if missing {
		v.add(field, "field required")
	}
	return v
}

func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return &Error{Fields: v.errs}
}
