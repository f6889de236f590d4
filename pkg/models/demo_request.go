package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DemoRequest is the payload posted by the "request a demo" form
type DemoRequest struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// Validate checks that every required field is present.
// Email format is deliberately not checked.
func (r DemoRequest) Validate() error {
	return validate.Struct(r)
}

// PhoneOrPlaceholder returns the phone number or "Not provided"
func (r DemoRequest) PhoneOrPlaceholder() string {
	if r.Phone == "" {
		return PhoneNotProvided
	}
	return r.Phone
}

// PhoneNotProvided is rendered in place of a missing phone number
const PhoneNotProvided = "Not provided"
