package auth

import (
	"context"
	"errors"
	"testing"
)

func TestDemoAuthenticate(t *testing.T) {
	user, err := Demo{}.Authenticate(context.Background(), "demo@example.com", "password123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.ID != "1" || user.Name != "Demo User" {
		t.Errorf("user = %+v", user)
	}
	if user.Avatar == "" {
		t.Errorf("avatar should be populated")
	}
	if !user.Preferences.Newsletter || !user.Preferences.Notifications || user.Preferences.Language != "en" {
		t.Errorf("preferences = %+v", user.Preferences)
	}
}

func TestDemoAuthenticateRejects(t *testing.T) {
	cases := []struct {
		name, email, password string
	}{
		{"wrong email", "other@example.com", "password123"},
		{"wrong password", "demo@example.com", "wrong"},
		{"both wrong", "other@example.com", "wrong"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Demo{}.Authenticate(context.Background(), tc.email, tc.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestDemoAuthenticateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Demo{}).Authenticate(ctx, "demo@example.com", "password123"); err == nil {
		t.Errorf("cancelled context should error")
	}
}

func TestNewAccount(t *testing.T) {
	a := NewAccount("alice@example.com", "Alice")
	b := NewAccount("alice@example.com", "Alice")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("account ids must be unique, got %q and %q", a.ID, b.ID)
	}
	if a.Email != "alice@example.com" || a.Name != "Alice" {
		t.Errorf("account = %+v", a)
	}
	if a.CreatedAt.IsZero() {
		t.Errorf("CreatedAt not set")
	}
}

func TestValidateSignIn(t *testing.T) {
	if err := ValidateSignIn("demo@example.com", "password123"); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}
	if err := ValidateSignIn("  ", "password123"); err == nil {
		t.Errorf("blank email accepted")
	}
	if err := ValidateSignIn("demo@example.com", ""); err == nil {
		t.Errorf("empty password accepted")
	}
}

func TestValidateSignUp(t *testing.T) {
	cases := []struct {
		name                             string
		userName, email, password, again string
		ok                               bool
	}{
		{"valid", "Alice", "alice@example.com", "secret1", "secret1", true},
		{"short name", "A", "alice@example.com", "secret1", "secret1", false},
		{"name all spaces", "   ", "alice@example.com", "secret1", "secret1", false},
		{"bad email", "Alice", "not-an-email", "secret1", "secret1", false},
		{"short password", "Alice", "alice@example.com", "12345", "12345", false},
		{"mismatch", "Alice", "alice@example.com", "secret1", "secret2", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSignUp(tc.userName, tc.email, tc.password, tc.again)
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Errorf("invalid form accepted")
			}
		})
	}
}

func TestAvatarURLEscapesSeed(t *testing.T) {
	url := AvatarURL("a b&c")
	if url == "" || url == AvatarURL("other") {
		t.Errorf("avatar url should derive from seed")
	}
	for _, c := range []byte{' ', '&'} {
		for i := len("https://api.dicebear.com/7.x/initials/svg?seed="); i < len(url); i++ {
			if url[i] == c {
				t.Errorf("unescaped %q in %q", string(c), url)
			}
		}
	}
}
