package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fraservotes/console/internal/notice"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "Election Key 1 (election)", Label("  Election Key 1 ", PurposeElection))
	assert.Equal(t, "Desk (general)", Label("Desk", PurposeGeneral))
}

func TestSecurityKey_DisplayName(t *testing.T) {
	assert.Equal(t, "Unnamed Device", (&SecurityKey{}).DisplayName())
	assert.Equal(t, "Unnamed Device", (&SecurityKey{DeviceName: "   "}).DisplayName())
	assert.Equal(t, "YubiKey (general)", (&SecurityKey{DeviceName: "YubiKey (general)"}).DisplayName())
}

func TestPurpose(t *testing.T) {
	assert.Equal(t, "Election Access", PurposeElection.Label())
	assert.Equal(t, "General Access", PurposeGeneral.Label())

	p, err := ParsePurpose("")
	assert.NoError(t, err)
	assert.Equal(t, PurposeGeneral, p)

	p, err = ParsePurpose("Election")
	assert.NoError(t, err)
	assert.Equal(t, PurposeElection, p)

	_, err = ParsePurpose("results")
	assert.ErrorIs(t, err, ErrInvalidPurpose)
}

func TestParseKeyRole(t *testing.T) {
	r, err := ParseKeyRole("")
	assert.NoError(t, err)
	assert.Equal(t, sessionDomain.RoleAdmin, r)

	r, err = ParseKeyRole("superadmin")
	assert.NoError(t, err)
	assert.Equal(t, sessionDomain.RoleSuperAdmin, r)

	_, err = ParseKeyRole("user")
	assert.ErrorIs(t, err, ErrInvalidKeyRole)

	assert.Equal(t, "Superadmin", RoleLabel(sessionDomain.RoleSuperAdmin))
	assert.Equal(t, "Admin", RoleLabel(sessionDomain.RoleAdmin))
}

func TestRemovalState(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	assert.False(t, Idle().Matches(id))

	pending := PendingConfirmation(id, time.Now().Add(time.Minute))
	assert.True(t, pending.Matches(id))
	assert.False(t, pending.Matches(uuid.Must(uuid.NewV7())))
}

func TestNotices(t *testing.T) {
	assert.Equal(t, notice.Error("Registration Failed", "Failed to register security key"), RegisterFailed(""))
	assert.Equal(t, "boom", RegisterFailed("boom").Description)
	assert.Equal(t, "Failed to remove security key", RemoveFailed("").Description)

	assert.Equal(t, "", RegistryMessage(errors.New("driver: bad connection")))
	assert.NotEmpty(t, RegistryMessage(ErrSecurityKeyAlreadyExists))
}
