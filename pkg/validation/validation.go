// Package validation checks request bodies before they reach a use case.
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error carries per-field messages keyed by JSON field name.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// EmailLookup reports whether an email is already registered.
type EmailLookup func(ctx context.Context, email string) (bool, error)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// Validator wraps a configured validator.Validate.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that reports JSON field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// bcrypt_len limits bytes, not runes: bcrypt refuses longer input.
	_ = v.RegisterValidation("bcrypt_len", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	// integer accepts a base 10 integer held in a string.
	_ = v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseInt(fl.Field().String(), 10, 64)
		return err == nil
	})
	return &Validator{v: v}
}

// Struct validates s. A *Error is returned for rule violations; any other
// error means s could not be validated at all.
func (val *Validator) Struct(ctx context.Context, s any) error {
	err := val.v.StructCtx(ctx, s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		if _, seen := out.Fields[fe.Field()]; !seen {
			out.Fields[fe.Field()] = message(fe)
		}
	}
	return out
}

// UniqueEmail fails with *Error when lookup finds the email.
func UniqueEmail(ctx context.Context, field, email string, lookup EmailLookup) error {
	taken, err := lookup(ctx, email)
	if err != nil {
		return fmt.Errorf("check %s uniqueness: %w", field, err)
	}
	if taken {
		return &Error{Fields: map[string]string{field: "The " + field + " has already been taken."}}
	}
	return nil
}

func message(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return "The " + f + " field is required."
	case "email":
		return "The " + f + " must be a valid email address."
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", f, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", f, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid (allowed: %s).", f, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "bcrypt_len":
		return fmt.Sprintf("The %s may not be greater than %d bytes.", f, MaxPasswordBytes)
	case "integer":
		return "The " + f + " must be an integer."
	case "datetime":
		return fmt.Sprintf("The %s does not match the format %s.", f, fe.Param())
	default:
		return fmt.Sprintf("The %s is invalid (%s).", f, fe.Tag())
	}
}
