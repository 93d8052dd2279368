// Package auth provides the credential-verification capability behind the
// session store. The mock demo policy lives behind the Authenticator
// interface so a real backend can replace it without touching store logic.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AbhishekSharma9161/curio/internal/state"
)

// ErrInvalidCredentials is returned for any credential pair the policy does
// not accept. The message is user-visible via the session error field.
var ErrInvalidCredentials = errors.New("Invalid credentials")

// ErrNoUser is returned when a profile update is requested with no signed-in
// user.
var ErrNoUser = errors.New("no user to update")

// Authenticator verifies credentials and yields the account profile.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (state.User, error)
}

// Demo accepts exactly one hardcoded identity. It stands in for a real
// authentication backend.
type Demo struct{}

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
)

// Authenticate implements Authenticator.
func (Demo) Authenticate(ctx context.Context, email, password string) (state.User, error) {
	if err := ctx.Err(); err != nil {
		return state.User{}, err
	}
	if email != demoEmail || password != demoPassword {
		return state.User{}, ErrInvalidCredentials
	}
	return state.User{
		ID:     "1",
		Email:  email,
		Name:   "Demo User",
		Avatar: AvatarURL(email),
		Bio:    "Content enthusiast and dashboard user",
		Preferences: state.UserPrefs{
			Newsletter:    true,
			Notifications: true,
			Language:      "en",
		},
		CreatedAt: time.Now(),
	}, nil
}

// NewAccount builds the profile for a freshly signed-up user. Sign-up always
// succeeds given pre-validated input; validation is the caller's job (see
// ValidateSignUp).
func NewAccount(email, name string) state.User {
	return state.User{
		ID:     uuid.NewString(),
		Email:  email,
		Name:   name,
		Avatar: AvatarURL(email),
		Preferences: state.UserPrefs{
			Newsletter:    false,
			Notifications: true,
			Language:      "en",
		},
		CreatedAt: time.Now(),
	}
}

// AvatarURL derives a deterministic placeholder avatar from a seed string.
func AvatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/initials/svg?seed=" + url.QueryEscape(seed)
}

// ValidateSignIn checks the sign-in form fields before dispatch.
func ValidateSignIn(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateSignUp checks the sign-up form fields before dispatch. The session
// store assumes input that passed this check.
func ValidateSignUp(name, email, password, confirm string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return fmt.Errorf("name must be at least 2 characters")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("email must be valid")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}
