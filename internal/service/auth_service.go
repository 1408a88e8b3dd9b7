package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fulfillo/internal/models"
	"fulfillo/internal/store"
	"fulfillo/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is the single failure returned for every login
// problem. Wrong password and suspended account are deliberately not
// distinguished, so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials or account suspended")

// Session is a live dashboard login
type Session struct {
	Token     string      `json:"token"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	BrandID   string      `json:"brand_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	Expiry    time.Time   `json:"expiry"`
}

// AuthService validates credentials against the user registry and keeps
// the in-memory session table. Sessions snapshot the account's identity
// at login time; a later active-flag change does not revoke them.
type AuthService struct {
	store      *store.Store
	logger     *zap.Logger
	loginDelay time.Duration
	sessionTTL time.Duration

	mu       sync.RWMutex
	sessions map[string]Session
}

// NewAuthService creates a new auth service. loginDelay is a cosmetic
// pause before the verdict; pass 0 to disable it.
func NewAuthService(st *store.Store, loginDelay, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		store:      st,
		logger:     util.GetLogger(),
		loginDelay: loginDelay,
		sessionTTL: sessionTTL,
		sessions:   make(map[string]Session),
	}
}

// LoginResult is returned on successful authentication
type LoginResult struct {
	Token       string             `json:"token"`
	User        models.UserAccount `json:"user"`
	LandingPage string             `json:"landing_page"`
}

// Authenticate checks (email, password) against the registry: the
// account must match both fields exactly and be active. On success a
// session is established and a role-appropriate landing page chosen.
func (a *AuthService) Authenticate(ctx context.Context, email, password string) (*LoginResult, error) {
	_, span := util.StartSpan(ctx, "AuthService.Authenticate")
	defer span.End()

	util.LoginAttemptsTotal.Inc()
	if a.loginDelay > 0 {
		time.Sleep(a.loginDelay)
	}

	var match *models.UserAccount
	for _, u := range a.store.Users() {
		if u.Email == email && u.Password == password && u.Active {
			user := u
			match = &user
			break
		}
	}
	if match == nil {
		util.LoginFailuresTotal.Inc()
		a.logger.Warn("Login rejected", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := Session{
		Token:     uuid.New().String(),
		Email:     match.Email,
		Role:      match.Role,
		BrandID:   match.BrandID,
		CreatedAt: now,
		Expiry:    now.Add(a.sessionTTL),
	}

	a.mu.Lock()
	a.sessions[session.Token] = session
	a.mu.Unlock()
	util.ActiveSessions.Inc()

	a.logger.Info("Login succeeded",
		zap.String("email", match.Email),
		zap.String("role", string(match.Role)))

	return &LoginResult{
		Token:       session.Token,
		User:        *match,
		LandingPage: LandingPage(match.Role),
	}, nil
}

// LandingPage picks the initial page for a freshly authenticated role:
// packaging staff land on inventory, everyone else on the dashboard
func LandingPage(role models.Role) string {
	if role == models.RolePackaging {
		return PageInventory
	}
	return PageDashboard
}

// SessionByToken returns the live session for a token, dropping it if
// expired
func (a *AuthService) SessionByToken(token string) (*Session, bool) {
	a.mu.RLock()
	session, ok := a.sessions[token]
	a.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(session.Expiry) {
		a.Logout(token)
		return nil, false
	}
	return &session, true
}

// Logout drops the session for a token; unknown tokens are a no-op
func (a *AuthService) Logout(token string) {
	a.mu.Lock()
	_, existed := a.sessions[token]
	delete(a.sessions, token)
	a.mu.Unlock()
	if existed {
		util.ActiveSessions.Dec()
	}
}

// RegisterUser appends a new account with Active forced true
func (a *AuthService) RegisterUser(ctx context.Context, user models.UserAccount) error {
	_, span := util.StartSpan(ctx, "AuthService.RegisterUser")
	defer span.End()

	if !user.Role.Valid() {
		return fmt.Errorf("unknown role: %s", user.Role)
	}
	if user.Role == models.RoleBrandOwner && user.BrandID == "" {
		return fmt.Errorf("brand owner account requires a brand id")
	}
	return a.store.RegisterUser(user)
}

// UpdateUser merges name/password/department edits into an account
func (a *AuthService) UpdateUser(ctx context.Context, email string, patch store.UserPatch) error {
	_, span := util.StartSpan(ctx, "AuthService.UpdateUser")
	defer span.End()
	return a.store.UpdateUser(email, patch)
}

// ToggleUserActive flips an account's active flag. Live sessions of the
// account are untouched; the flag only gates future logins.
func (a *AuthService) ToggleUserActive(ctx context.Context, email string) (bool, error) {
	_, span := util.StartSpan(ctx, "AuthService.ToggleUserActive")
	defer span.End()
	return a.store.ToggleUserActive(email)
}
