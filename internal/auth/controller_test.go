package auth

import (
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillsenselab/todo-api/internal/logger"
)

func newTestController(cfg Config) (*Controller, *Provider, *Store, *Sessions) {
	provider := NewProvider(cfg)
	store := NewStore()
	sessions := NewSessions()
	c := NewController(provider, store, sessions, NewBcryptHasher(bcrypt.MinCost), logger.NewDefault("test"))
	return c, provider, store, sessions
}

func TestConfigFromSpec_Valid(t *testing.T) {
	cases := []struct {
		name string
		spec Spec
		want Method
	}{
		{"none", Spec{Method: "none"}, MethodNone},
		{"empty defaults to none", Spec{}, MethodNone},
		{"api_key", Spec{Method: "api_key", APIKey: "k"}, MethodAPIKey},
		{"jwt", Spec{Method: "jwt", Secret: "s"}, MethodJWT},
		{"session", Spec{Method: "session", Secret: "s"}, MethodSession},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ConfigFromSpec(tc.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Method != tc.want {
				t.Errorf("expected method %s, got %s", tc.want, cfg.Method)
			}
		})
	}
}

func TestConfigFromSpec_MissingCompanionSecret(t *testing.T) {
	cases := []struct {
		name string
		spec Spec
		want string
	}{
		{"api_key", Spec{Method: "api_key"}, "API key must be provided when using api_key authentication"},
		{"jwt", Spec{Method: "jwt"}, "Secret key must be provided when using JWT authentication"},
		{"session", Spec{Method: "session"}, "Secret key must be provided when using session authentication"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ConfigFromSpec(tc.spec)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tc.want {
				t.Errorf("expected %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestConfigFromSpec_UnknownMethod(t *testing.T) {
	if _, err := ConfigFromSpec(Spec{Method: "oauth"}); err == nil {
		t.Fatal("expected error for unknown method")
	}
}

func TestController_UpdateConfig_SwapsAndClearsCredentials(t *testing.T) {
	c, provider, store, sessions := newTestController(JWTConfig("secret"))
	store.PutRefreshToken("r", "alice")
	store.BlacklistToken("a")
	sessions.Create("alice")

	cfg, err := c.UpdateConfig(Spec{Method: "api_key", APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Method != MethodAPIKey {
		t.Errorf("expected api_key, got %s", cfg.Method)
	}
	if provider.Method() != MethodAPIKey {
		t.Error("expected provider to observe the new method")
	}
	if store.RefreshTokenCount() != 0 || store.BlacklistCount() != 0 {
		t.Error("expected token registries cleared on method switch")
	}
	if sessions.Count() != 0 {
		t.Error("expected live sessions cleared on method switch")
	}
}

func TestController_UpdateConfig_InvalidSpecLeavesConfigUntouched(t *testing.T) {
	c, provider, store, _ := newTestController(JWTConfig("secret"))
	store.PutRefreshToken("r", "alice")

	_, err := c.UpdateConfig(Spec{Method: "jwt"})
	assertAppError(t, err, http.StatusBadRequest, "Secret key must be provided when using JWT authentication")

	if provider.Method() != MethodJWT {
		t.Error("expected active method unchanged after rejected update")
	}
	if store.RefreshTokenCount() != 1 {
		t.Error("expected credentials untouched after rejected update")
	}
}

func TestController_ResetUsers_ReplacesRegistry(t *testing.T) {
	c, _, store, sessions := newTestController(SessionConfig("secret"))
	if err := store.AddUser(User{Username: "old"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sessions.Create("old")

	summary, err := c.ResetUsers([]UserSpec{
		{Username: "alice", Password: "pw1"},
		{Username: "bob", Password: "pw2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.UserCount != 2 {
		t.Errorf("expected user_count 2, got %d", summary.UserCount)
	}
	if summary.Message != "Users reset successfully" {
		t.Errorf("unexpected message: %q", summary.Message)
	}
	if store.UserCount() != 2 {
		t.Errorf("expected 2 users, got %d", store.UserCount())
	}
	if sessions.Count() != 0 {
		t.Error("expected sessions cleared by user reset")
	}

	// Passwords are stored hashed and verify.
	u, err := store.LookupUser("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.PasswordHash == "pw1" {
		t.Error("password must not be stored in plain text")
	}
	if err := NewBcryptHasher(bcrypt.MinCost).Verify("pw1", u.PasswordHash); err != nil {
		t.Errorf("expected password to verify: %v", err)
	}
}

func TestController_ResetUsers_ValidationLeavesRegistryUntouched(t *testing.T) {
	c, _, store, _ := newTestController(SessionConfig("secret"))
	if err := store.AddUser(User{Username: "keeper"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name    string
		entries []UserSpec
		want    string
	}{
		{
			"missing password",
			[]UserSpec{{Username: "alice", Password: "pw"}, {Username: "bob"}},
			"Invalid user at index 1: password must be a non-empty string",
		},
		{
			"missing username",
			[]UserSpec{{Password: "pw"}},
			"Invalid user at index 0: username must be a non-empty string",
		},
		{
			"duplicate username",
			[]UserSpec{{Username: "alice", Password: "a"}, {Username: "alice", Password: "b"}},
			`Invalid user at index 1: duplicate username "alice"`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.ResetUsers(tc.entries)
			assertAppError(t, err, http.StatusBadRequest, tc.want)
			if _, lookupErr := store.LookupUser("keeper"); lookupErr != nil {
				t.Error("rejected reset must leave the existing registry untouched")
			}
		})
	}
}

func TestController_ResetUsers_EmptyListClearsRegistry(t *testing.T) {
	c, _, store, _ := newTestController(SessionConfig("secret"))
	if err := store.AddUser(User{Username: "old"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := c.ResetUsers(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.UserCount != 0 {
		t.Errorf("expected user_count 0, got %d", summary.UserCount)
	}
	if store.UserCount() != 0 {
		t.Errorf("expected empty registry, got %d", store.UserCount())
	}
}
