package auth

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/skillsenselab/todo-api/internal/apperrors"
	"github.com/skillsenselab/todo-api/internal/logger"
)

// Controller mutates the live auth configuration and the user registry at
// runtime. Every successful mutation wipes all outstanding credentials:
// tokens and sessions issued under the previous configuration must not
// survive it.
type Controller struct {
	provider *Provider
	store    *Store
	sessions *Sessions
	hasher   Hasher
	validate *validator.Validate
	log      *logger.Logger
}

// NewController creates a Controller over the shared auth state.
func NewController(provider *Provider, store *Store, sessions *Sessions, hasher Hasher, log *logger.Logger) *Controller {
	return &Controller{
		provider: provider,
		store:    store,
		sessions: sessions,
		hasher:   hasher,
		validate: validator.New(),
		log:      log.WithComponent("auth-controller"),
	}
}

// UpdateConfig validates spec, swaps the live config, and clears every
// credential registry. Returns the applied config.
func (c *Controller) UpdateConfig(spec Spec) (Config, error) {
	cfg, err := ConfigFromSpec(spec)
	if err != nil {
		return Config{}, apperrors.Configuration(err.Error())
	}

	c.provider.Swap(cfg)
	c.store.ClearCredentials()
	c.sessions.Reset()

	c.log.Info("auth method switched", map[string]interface{}{"method": string(cfg.Method)})
	return cfg, nil
}

// ConfigFromSpec validates the wire/file representation of an auth setup and
// builds the corresponding Config. Secrets are required per method.
func ConfigFromSpec(spec Spec) (Config, error) {
	method := spec.Method
	if method == "" {
		method = string(MethodNone)
	}
	m, err := ParseMethod(method)
	if err != nil {
		return Config{}, err
	}

	switch m {
	case MethodNone:
		return DisabledConfig(), nil
	case MethodAPIKey:
		if spec.APIKey == "" {
			return Config{}, fmt.Errorf("API key must be provided when using api_key authentication")
		}
		return APIKeyConfig(spec.APIKey), nil
	case MethodJWT:
		if spec.Secret == "" {
			return Config{}, fmt.Errorf("Secret key must be provided when using JWT authentication")
		}
		return JWTConfig(spec.Secret), nil
	default:
		if spec.Secret == "" {
			return Config{}, fmt.Errorf("Secret key must be provided when using session authentication")
		}
		return SessionConfig(spec.Secret), nil
	}
}

// UserSpec is one entry of a bulk user reset payload.
type UserSpec struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResetSummary reports the outcome of a bulk user reset.
type ResetSummary struct {
	Message   string `json:"message"`
	UserCount int    `json:"user_count"`
}

// ResetUsers validates the full list and atomically replaces the user
// registry, clearing all credential registries with it. Validation stops at
// the first violation, naming the offending index and field, and leaves the
// existing registry untouched.
func (c *Controller) ResetUsers(entries []UserSpec) (*ResetSummary, error) {
	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		if err := c.validate.Struct(entry); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				return nil, apperrors.Validationf(
					"Invalid user at index %d: %s must be a non-empty string", i, lowerFieldName(fe.Field()))
			}
			return nil, apperrors.Validationf("Invalid user at index %d", i)
		}
		if _, dup := seen[entry.Username]; dup {
			return nil, apperrors.Validationf(
				"Invalid user at index %d: duplicate username %q", i, entry.Username)
		}
		seen[entry.Username] = struct{}{}
	}

	users := make([]User, 0, len(entries))
	for _, entry := range entries {
		hash, err := c.hasher.Hash(entry.Password)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		users = append(users, User{Username: entry.Username, PasswordHash: hash})
	}

	c.store.ReplaceUsers(users)
	c.sessions.Reset()

	c.log.Info("user registry replaced", map[string]interface{}{"count": len(users)})
	return &ResetSummary{Message: "Users reset successfully", UserCount: len(users)}, nil
}

func lowerFieldName(field string) string {
	switch field {
	case "Username":
		return "username"
	case "Password":
		return "password"
	default:
		return field
	}
}
