// Package dto provides data transfer objects for the security key panel endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
	customValidation "github.com/fraservotes/console/internal/validation"
)

// maxDeviceNameLength bounds the trimmed device name entered in the dialog.
const maxDeviceNameLength = 100

// purposeRule and keyRoleRule accept exactly what ToInput parses, so casing and
// surrounding whitespace are tolerated the same way in both places.
var (
	purposeRule = validation.NewStringRuleWithError(
		func(s string) bool {
			_, err := securityKeyDomain.ParsePurpose(s)
			return err == nil
		},
		validation.NewError("validation_key_purpose", "must be general or election"),
	)
	keyRoleRule = validation.NewStringRuleWithError(
		func(s string) bool {
			_, err := securityKeyDomain.ParseKeyRole(s)
			return err == nil
		},
		validation.NewError("validation_key_role", "must be admin or superadmin"),
	)
)

// CreateSecurityKeyRequest is the registration dialog submission.
type CreateSecurityKeyRequest struct {
	DeviceName string `json:"device_name"`
	Purpose    string `json:"purpose"`
	Role       string `json:"role"`
}

// Validate checks if the create request is valid. Empty purpose and role take
// their defaults.
func (r *CreateSecurityKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.DeviceName,
			validation.Required,
			customValidation.NotBlank,
			customValidation.TrimmedMaxLength(maxDeviceNameLength),
		),
		validation.Field(&r.Purpose, purposeRule),
		validation.Field(&r.Role, keyRoleRule),
	)
}

// ToInput converts a validated request into the use case input.
func (r *CreateSecurityKeyRequest) ToInput() (*securityKeyDomain.CreateInput, error) {
	purpose, err := securityKeyDomain.ParsePurpose(r.Purpose)
	if err != nil {
		return nil, err
	}
	role, err := securityKeyDomain.ParseKeyRole(r.Role)
	if err != nil {
		return nil, err
	}
	return &securityKeyDomain.CreateInput{
		DeviceName: r.DeviceName,
		Purpose:    purpose,
		Role:       role,
	}, nil
}
