// Package dto provides data transfer objects for the session endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/fraservotes/console/internal/validation"
)

// LoginRequest contains the credentials for POST /v1/session.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 1024),
		),
	)
}
