package domain

import "github.com/fraservotes/console/internal/notice"

// Panel copy.
const (
	RestrictedTitle       = "Access Restricted"
	RestrictedDescription = "Only super administrators can manage security keys."

	EmptyTitle       = "No Security Keys Registered"
	EmptyDescription = "No security keys have been registered yet. Security keys provide standalone " +
		"access to the system without requiring a specific user account."

	RemoveConfirmTitle       = "Remove Security Key"
	RemoveConfirmDescription = "Are you sure you want to remove this security key? " +
		"You will need to register it again to use it."

	RegisterFailedFallback = "Failed to register security key"
	RemoveFailedFallback   = "Failed to remove security key"
)

// Notices returned by panel actions.
var (
	NoticeAccessDenied = notice.Error("Access Denied", "Only superadmins can register security keys")
	NoticeRegistered   = notice.Success("Success", "Security key registered successfully")
	NoticeRemoved      = notice.Success("Success", "Security key removed successfully")
)

// RegisterFailed is the error notice for a failed registration.
func RegisterFailed(message string) notice.Notice {
	if message == "" {
		message = RegisterFailedFallback
	}
	return notice.Error("Registration Failed", message)
}

// RemoveFailed is the error notice for a failed removal.
func RemoveFailed(message string) notice.Notice {
	if message == "" {
		message = RemoveFailedFallback
	}
	return notice.Error("Error", message)
}
