package service

import (
	"context"
	"testing"
	"time"

	"fulfillo/internal/models"
	"fulfillo/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) (*AuthService, *store.Store) {
	t.Helper()
	st := store.NewSeededStore()
	return NewAuthService(st, 0, time.Hour), st
}

func TestAuthenticateSuccess(t *testing.T) {
	auth, _ := newTestAuth(t)

	result, err := auth.Authenticate(context.Background(), "admin@fulfillo.com", "admin-unique-7721")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, models.RoleAdmin, result.User.Role)
	assert.Equal(t, PageDashboard, result.LandingPage)

	session, ok := auth.SessionByToken(result.Token)
	require.True(t, ok)
	assert.Equal(t, "admin@fulfillo.com", session.Email)
}

func TestPackagingRoleLandsOnInventory(t *testing.T) {
	auth, _ := newTestAuth(t)

	result, err := auth.Authenticate(context.Background(), "pack@fulfillo.com", "warehouse-key-5")
	require.NoError(t, err)
	assert.Equal(t, PageInventory, result.LandingPage)
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.Authenticate(context.Background(), "admin@fulfillo.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRejectsUnknownEmail(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.Authenticate(context.Background(), "ghost@fulfillo.com", "admin-unique-7721")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRejectsSuspendedAccount(t *testing.T) {
	auth, st := newTestAuth(t)

	_, err := st.ToggleUserActive("ops@fulfillo.com")
	require.NoError(t, err)

	// Same generic error as a wrong password: no account enumeration.
	_, err = auth.Authenticate(context.Background(), "ops@fulfillo.com", "ops-secure-991")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionSurvivesSelfDeactivation(t *testing.T) {
	auth, st := newTestAuth(t)

	result, err := auth.Authenticate(context.Background(), "admin@fulfillo.com", "admin-unique-7721")
	require.NoError(t, err)

	_, err = st.ToggleUserActive("admin@fulfillo.com")
	require.NoError(t, err)

	// The flag gates future logins, not sessions already open.
	_, ok := auth.SessionByToken(result.Token)
	assert.True(t, ok)

	_, err = auth.Authenticate(context.Background(), "admin@fulfillo.com", "admin-unique-7721")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutDropsSession(t *testing.T) {
	auth, _ := newTestAuth(t)

	result, err := auth.Authenticate(context.Background(), "admin@fulfillo.com", "admin-unique-7721")
	require.NoError(t, err)

	auth.Logout(result.Token)
	_, ok := auth.SessionByToken(result.Token)
	assert.False(t, ok)
}

func TestExpiredSessionIsDropped(t *testing.T) {
	st := store.NewSeededStore()
	auth := NewAuthService(st, 0, -time.Minute)

	result, err := auth.Authenticate(context.Background(), "admin@fulfillo.com", "admin-unique-7721")
	require.NoError(t, err)

	_, ok := auth.SessionByToken(result.Token)
	assert.False(t, ok)
}

func TestRegisterUserValidatesRole(t *testing.T) {
	auth, _ := newTestAuth(t)

	err := auth.RegisterUser(context.Background(), models.UserAccount{
		Email: "x@fulfillo.com", Password: "pw", Name: "X", Role: "SUPERVISOR",
	})
	assert.Error(t, err)

	err = auth.RegisterUser(context.Background(), models.UserAccount{
		Email: "owner@brand.com", Password: "pw", Name: "O", Role: models.RoleBrandOwner,
	})
	assert.Error(t, err, "brand owner without brand id")
}
