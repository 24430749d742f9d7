package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/client/session"
	"github.com/dmitrijs2005/carework/internal/logging"
)

const (
	registerEndpoint = "/api/v1/auth/register"
	loginEndpoint    = "/api/v1/auth/login"
	logoutEndpoint   = "/api/v1/auth/logout"
	profileEndpoint  = "/api/v1/auth/profile"
	passwordEndpoint = "/api/v1/auth/password"
	accountEndpoint  = "/api/v1/auth/account"
)

// AuthService defines the session lifecycle operations.
//
// Contract:
//   - Login / Register: authenticate and persist the four session keys.
//     A response without token or user id is a protocol error and nothing
//     is written.
//   - Logout: notify the server, then always clear the session.
//   - UpdateProfile: rewrite the identity keys, never the token.
//   - UpdatePassword: change the password; the session is untouched.
//   - DeleteAccount: delete the account, then clear the session.
//   - CurrentSession / Token / UserID: plain reads of the store.
//   - Ping: check server liveness.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)
	Register(ctx context.Context, email, password, name string) (models.AuthResponse, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.ProfileResponse, error)
	UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error
	DeleteAccount(ctx context.Context, req models.DeleteAccountRequest) error
	CurrentSession(ctx context.Context) (session.Session, error)
	Token(ctx context.Context) (string, error)
	UserID(ctx context.Context) (string, error)
	Ping(ctx context.Context) bool
}

// authService is the concrete AuthService backed by the request pipeline
// and the session store.
type authService struct {
	client  client.Client
	session *session.Store
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given pipeline and
// session store.
func NewAuthService(c client.Client, s *session.Store, log logging.Logger) AuthService {
	return &authService{client: c, session: s, log: log}
}

func hasCredentials(r models.AuthResponse) bool {
	return r.Token != "" && r.UserID != ""
}

// Login authenticates against the public login endpoint and stores the
// session.
func (a *authService) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return a.authenticate(ctx, post(loginEndpoint, models.LoginRequest{Email: email, Password: password}))
}

// Register creates an account; the server logs the new user in directly.
func (a *authService) Register(ctx context.Context, email, password, name string) (models.AuthResponse, error) {
	return a.authenticate(ctx, post(registerEndpoint, models.RegisterRequest{Email: email, Password: password, Name: name}))
}

func (a *authService) authenticate(ctx context.Context, r client.Request) (models.AuthResponse, error) {
	resp, err := fetch(ctx, a.client, r, hasCredentials)
	if err != nil {
		return models.AuthResponse{}, err
	}

	sess := session.Session{Token: resp.Token, UserID: resp.UserID, UserName: resp.Name, UserEmail: resp.Email}
	if err := a.session.Save(ctx, sess); err != nil {
		return models.AuthResponse{}, fmt.Errorf("session saving error: %w", err)
	}
	a.log.Info(ctx, "session started", "user_id", resp.UserID)
	return resp, nil
}

// Logout tells the server the token is no longer used. The local session is
// cleared whatever the server answers; only a store failure is returned.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Do(ctx, post(logoutEndpoint, nil), nil); err != nil {
		a.log.Warn(ctx, "logout request failed", "error", err)
	}
	// Local state is cleared even when ctx is already cancelled.
	if err := a.session.Clear(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	a.log.Info(ctx, "session cleared")
	return nil
}

func hasProfile(p models.ProfileResponse) bool {
	return p.ID != "" && p.Email != "" && p.Name != ""
}

// UpdateProfile saves name/email on the server and mirrors them locally.
func (a *authService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.ProfileResponse, error) {
	profile, err := fetch(ctx, a.client, put(profileEndpoint, req), hasProfile)
	if err != nil {
		return models.ProfileResponse{}, err
	}
	id := session.Identity{UserID: profile.ID, UserName: profile.Name, UserEmail: profile.Email}
	if err := a.session.SaveIdentity(ctx, id); err != nil {
		return models.ProfileResponse{}, fmt.Errorf("session saving error: %w", err)
	}
	return profile, nil
}

func (a *authService) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	return a.client.Do(ctx, put(passwordEndpoint, req), nil)
}

// DeleteAccount removes the account and, on success, the local session.
func (a *authService) DeleteAccount(ctx context.Context, req models.DeleteAccountRequest) error {
	r := client.Request{Method: http.MethodDelete, Endpoint: accountEndpoint, Body: req}
	if err := a.client.Do(ctx, r, nil); err != nil {
		return err
	}
	if err := a.session.Clear(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	a.log.Info(ctx, "account deleted")
	return nil
}

func (a *authService) CurrentSession(ctx context.Context) (session.Session, error) {
	return a.session.Load(ctx)
}

func (a *authService) Token(ctx context.Context) (string, error) {
	return a.session.Token(ctx)
}

func (a *authService) UserID(ctx context.Context) (string, error) {
	return a.session.UserID(ctx)
}

// Ping proxies a liveness check to the pipeline.
func (a *authService) Ping(ctx context.Context) bool {
	return a.client.CheckHealth(ctx)
}
