package dto

import (
	"time"

	"github.com/fraservotes/console/internal/notice"
	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
	securityKeyUseCase "github.com/fraservotes/console/internal/securitykey/usecase"
)

// SecurityKeyResponse is one registered key with its display strings.
type SecurityKeyResponse struct {
	ID           string    `json:"id"`
	DeviceName   string    `json:"device_name"`
	DisplayName  string    `json:"display_name"`
	Purpose      string    `json:"purpose"`
	PurposeLabel string    `json:"purpose_label"`
	Role         string    `json:"role"`
	RoleLabel    string    `json:"role_label"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// EmptyStateResponse is the copy shown when no keys are registered.
type EmptyStateResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RestrictedResponse is the copy shown to non-superadmin sessions.
type RestrictedResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RemovalResponse is the two-phase removal state.
type RemovalResponse struct {
	State              string     `json:"state"`
	KeyID              string     `json:"key_id,omitempty"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	ConfirmTitle       string     `json:"confirm_title,omitempty"`
	ConfirmDescription string     `json:"confirm_description,omitempty"`
}

// DialogResponse is the registration dialog state.
type DialogResponse struct {
	Open       bool   `json:"open"`
	DeviceName string `json:"device_name"`
}

// PanelResponse is the security key panel state. Keys is omitted when the
// action did not re-read the registry.
type PanelResponse struct {
	Restricted     bool                   `json:"restricted"`
	RestrictedCopy *RestrictedResponse    `json:"restricted_copy,omitempty"`
	Keys           *[]SecurityKeyResponse `json:"keys,omitempty"`
	EmptyState     *EmptyStateResponse    `json:"empty_state,omitempty"`
	Removal        *RemovalResponse       `json:"removal,omitempty"`
	Dialog         *DialogResponse        `json:"dialog,omitempty"`
	Notice         *notice.Notice         `json:"notice,omitempty"`
}

// MapSecurityKeyToResponse converts a key into its response form.
func MapSecurityKeyToResponse(key *securityKeyDomain.SecurityKey) SecurityKeyResponse {
	return SecurityKeyResponse{
		ID:           key.ID.String(),
		DeviceName:   key.DeviceName,
		DisplayName:  key.DisplayName(),
		Purpose:      string(key.Purpose),
		PurposeLabel: key.Purpose.Label(),
		Role:         string(key.Role),
		RoleLabel:    securityKeyDomain.RoleLabel(key.Role),
		OwnerID:      key.OwnerID.String(),
		CreatedAt:    key.CreatedAt,
	}
}

// MapViewToResponse converts a panel view into its response form.
func MapViewToResponse(view *securityKeyUseCase.View) PanelResponse {
	if view.Restricted {
		return PanelResponse{
			Restricted: true,
			RestrictedCopy: &RestrictedResponse{
				Title:       securityKeyDomain.RestrictedTitle,
				Description: securityKeyDomain.RestrictedDescription,
			},
			Notice: view.Notice,
		}
	}

	response := PanelResponse{
		Removal: mapRemoval(view.Removal),
		Dialog:  &DialogResponse{Open: view.Dialog.Open, DeviceName: view.Dialog.DeviceName},
		Notice:  view.Notice,
	}

	if view.Refreshed {
		keys := make([]SecurityKeyResponse, 0, len(view.Keys))
		for _, k := range view.Keys {
			keys = append(keys, MapSecurityKeyToResponse(k))
		}
		response.Keys = &keys
		if len(keys) == 0 {
			response.EmptyState = &EmptyStateResponse{
				Title:       securityKeyDomain.EmptyTitle,
				Description: securityKeyDomain.EmptyDescription,
			}
		}
	}

	return response
}

func mapRemoval(r securityKeyDomain.RemovalState) *RemovalResponse {
	if !r.Pending {
		return &RemovalResponse{State: "idle"}
	}
	expiresAt := r.ExpiresAt
	return &RemovalResponse{
		State:              "pending_confirmation",
		KeyID:              r.KeyID.String(),
		ExpiresAt:          &expiresAt,
		ConfirmTitle:       securityKeyDomain.RemoveConfirmTitle,
		ConfirmDescription: securityKeyDomain.RemoveConfirmDescription,
	}
}
