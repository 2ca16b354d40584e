package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

func TestCreateSecurityKeyRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateSecurityKeyRequest
		wantErr bool
	}{
		{name: "defaults", request: CreateSecurityKeyRequest{DeviceName: "Desk"}},
		{name: "lower case", request: CreateSecurityKeyRequest{DeviceName: "Desk", Purpose: "election", Role: "superadmin"}},
		{name: "mixed case", request: CreateSecurityKeyRequest{DeviceName: "Desk", Purpose: "Election", Role: "SuperAdmin"}},
		{name: "padded", request: CreateSecurityKeyRequest{DeviceName: "Desk", Purpose: " general ", Role: " ADMIN "}},
		{name: "unknown purpose", request: CreateSecurityKeyRequest{DeviceName: "Desk", Purpose: "results"}, wantErr: true},
		{name: "user role", request: CreateSecurityKeyRequest{DeviceName: "Desk", Role: "user"}, wantErr: true},
		{name: "blank name", request: CreateSecurityKeyRequest{DeviceName: "  "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			// Anything that validates must also convert.
			_, err = tt.request.ToInput()
			assert.NoError(t, err)
		})
	}
}

func TestCreateSecurityKeyRequest_ToInput(t *testing.T) {
	request := CreateSecurityKeyRequest{DeviceName: "Desk", Purpose: "ELECTION", Role: "SuperAdmin"}

	input, err := request.ToInput()

	require.NoError(t, err)
	assert.Equal(t, securityKeyDomain.PurposeElection, input.Purpose)
	assert.Equal(t, sessionDomain.RoleSuperAdmin, input.Role)
}
