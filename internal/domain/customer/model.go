// Package customer holds the Customer view model, its validation rules and
// the contract of the remote Customer API.
package customer

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"customerweb/internal/core/apperror"
)

const (
	NameMaxLength    = 50
	AddressMaxLength = 200
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Whitespace-only input counts as missing.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Customer is the presentation-layer representation of a customer record.
// Storage belongs to the remote API; Customer is only ever a copy.
type Customer struct {
	ID      int
	Name    string `validate:"notblank,max=50"`
	Email   string `validate:"notblank,email"`
	Address string `validate:"notblank,max=200"`
}

// FieldErrors maps a field name (Name, Email, Address) to the message shown
// next to the form input.
type FieldErrors map[string]string

// fieldMessages holds the user-facing message for each field/rule pair.
var fieldMessages = map[string]map[string]string{
	"Name": {
		"notblank": "Please enter the Name.",
		"max":      "Name cannot be more than 50 characters",
	},
	"Email": {
		"notblank": "Please enter the Email.",
		"email":    "Invalid email address!",
	},
	"Address": {
		"notblank": "Please enter the Address.",
		"max":      "Address cannot be more than 200 characters",
	},
}

// Validate checks the customer against the form rules.
// Returns nil or a validation AppError whose "fields" detail is a FieldErrors.
func (c *Customer) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewInternal(err)
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		msg, ok := fieldMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = "The " + fe.Field() + " field is invalid."
		}
		fields[fe.Field()] = msg
	}

	return apperror.NewValidation("customer is invalid").WithDetail("fields", fields)
}

// FieldErrorsOf extracts per-field messages from an error returned by Validate.
func FieldErrorsOf(err error) FieldErrors {
	appErr, ok := apperror.AsAppError(err)
	if !ok {
		return nil
	}
	fields, _ := appErr.Details["fields"].(FieldErrors)
	return fields
}
