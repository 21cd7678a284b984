// Package validation checks submitted forms against their struct tags and
// reports failures as a field-error map.
package validation

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/go-playground/validator/v10"
)

const (
	tagPositiveDecimal = "positive_decimal"
	tagMaxBytes        = "max_bytes"
)

// Form is implemented by every submitted form. FieldMessages is keyed by field
// name, or by "field.tag" for a message specific to one rule.
type Form interface {
	Normalize()
	FieldMessages() map[string]string
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(tagPositiveDecimal, positiveDecimal)
	_ = v.RegisterValidation(tagMaxBytes, maxBytes)

	return &Validator{v: v}
}

// Validate normalizes the form in place and returns nil when every field passes.
func (val *Validator) Validate(form Form) models.FieldErrors {
	form.Normalize()

	err := val.v.Struct(form)
	if err == nil {
		return nil
	}

	messages := form.FieldMessages()
	fieldErrs := models.FieldErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrs.Add("form", err.Error())
		return fieldErrs
	}

	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := messages[field+"."+fe.Tag()]
		if !ok {
			msg, ok = messages[field]
		}
		if !ok {
			msg = defaultMessage(fe)
		}
		if !contains(fieldErrs[field], msg) {
			fieldErrs.Add(field, msg)
		}
	}
	return fieldErrs
}

func positiveDecimal(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	v, err := strconv.ParseFloat(fl.Field().String(), 64)
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(v) {
		return false
	}
	// overflow to +Inf is still positive; the upper bound is checked when converting to cents
	return v > 0
}

// maxBytes bounds the encoded length, which is what bcrypt limits.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil || fl.Field().Kind() != reflect.String {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required."
	case "email":
		return "Invalid email address."
	case "uuid":
		return fe.Field() + " must be a valid identifier."
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters."
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters."
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param() + "."
	case tagPositiveDecimal:
		return fe.Field() + " must be greater than 0."
	case tagMaxBytes:
		return fe.Field() + " must be at most " + fe.Param() + " bytes."
	}
	return fe.Field() + " is invalid."
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
