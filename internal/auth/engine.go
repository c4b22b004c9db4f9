// Package auth implements the pluggable authentication core: the credential
// store, the strategy engine with its four methods (none, api_key, jwt,
// session), the live config provider, and the runtime reset controller.
package auth

import (
	"errors"

	"github.com/skillsenselab/todo-api/internal/apperrors"
	"github.com/skillsenselab/todo-api/internal/logger"
)

// Credential is what a successful signup or login hands back to the transport
// layer. Exactly one of the fields is populated depending on the active
// method; both are empty under none.
type Credential struct {
	// Tokens is the access/refresh pair issued under jwt.
	Tokens *TokenPair
	// SessionCookie is the signed cookie value issued under session. The
	// handler is responsible for emitting the Set-Cookie header.
	SessionCookie string
}

// Engine implements signup, login, logout, and refresh semantics per method,
// and answers credential verification for the gateway. All methods read the
// active config through the shared Provider, never from a copy.
type Engine struct {
	provider *Provider
	store    *Store
	sessions *Sessions
	hasher   Hasher
	log      *logger.Logger
}

// NewEngine creates an Engine over the shared auth state.
func NewEngine(provider *Provider, store *Store, sessions *Sessions, hasher Hasher, log *logger.Logger) *Engine {
	return &Engine{
		provider: provider,
		store:    store,
		sessions: sessions,
		hasher:   hasher,
		log:      log.WithComponent("auth-engine"),
	}
}

// Signup registers a new user and, depending on the active method, issues an
// initial credential. Not available under api_key: a shared-secret scheme has
// no user registry.
func (e *Engine) Signup(username, password string) (*Credential, error) {
	cfg := e.provider.Snapshot()
	if cfg.Method == MethodAPIKey {
		return nil, apperrors.MethodUnavailable("Signup", cfg.Method.displayName())
	}
	if username == "" || password == "" {
		return nil, apperrors.Validation("Username and password are required")
	}

	hash, err := e.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := e.store.AddUser(User{Username: username, PasswordHash: hash}); err != nil {
		return nil, apperrors.DuplicateUser()
	}

	e.log.Info("user registered", map[string]interface{}{"username": username})
	return e.issueCredential(cfg, username)
}

// Login authenticates a user and issues the method's credential.
func (e *Engine) Login(username, password string) (*Credential, error) {
	cfg := e.provider.Snapshot()
	if cfg.Method == MethodAPIKey {
		return nil, apperrors.MethodUnavailable("Login", cfg.Method.displayName())
	}
	if username == "" || password == "" {
		return nil, apperrors.Validation("Username and password are required")
	}

	user, err := e.store.LookupUser(username)
	if err != nil {
		// Unknown user and bad password are indistinguishable to the client.
		return nil, apperrors.InvalidCredentials()
	}
	if err := e.hasher.Verify(password, user.PasswordHash); err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	e.log.Info("login", map[string]interface{}{"username": username, "method": string(cfg.Method)})
	return e.issueCredential(cfg, username)
}

// Refresh exchanges a registered refresh token for a new access/refresh pair.
// The consumed token is deleted atomically with the lookup, so a token spends
// exactly once.
func (e *Engine) Refresh(refreshToken string) (*TokenPair, error) {
	cfg := e.provider.Snapshot()
	if cfg.Method == MethodAPIKey {
		return nil, apperrors.MethodUnavailable("Token refresh", cfg.Method.displayName())
	}
	if refreshToken == "" {
		return nil, apperrors.Validation("Refresh token is required")
	}

	username, err := e.store.ConsumeRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.InvalidRefreshToken()
	}

	pair, err := e.issueTokenPair(cfg, username)
	if err != nil {
		return nil, err
	}
	e.log.Debug("refresh token rotated", map[string]interface{}{"username": username})
	return pair, nil
}

// LogoutJWT revokes an access/refresh pair: the access token joins the
// blacklist and the refresh token is deleted. Both arguments must be present;
// the transport layer reports which one is missing.
func (e *Engine) LogoutJWT(accessToken, refreshToken string) error {
	e.store.BlacklistToken(accessToken)
	e.store.DeleteRefreshToken(refreshToken)
	e.log.Info("jwt logout", nil)
	return nil
}

// LogoutSession ends the session behind the given cookie value and records
// its identifier as invalidated, so a copy of the cookie captured before
// logout cannot be replayed.
func (e *Engine) LogoutSession(cookieValue string) error {
	cfg := e.provider.Snapshot()
	id, err := VerifySessionCookie(cookieValue, cfg.SessionSecret)
	if err != nil {
		return apperrors.Unauthorized("Valid session required")
	}
	if _, live := e.sessions.Lookup(id); !live {
		return apperrors.Unauthorized("Valid session required")
	}
	e.sessions.Delete(id)
	e.store.InvalidateSession(id)
	e.log.Info("session logout", map[string]interface{}{"session_id": id})
	return nil
}

// VerifyAccessToken is the gateway's jwt admission check: not blacklisted,
// valid signature, not expired.
func (e *Engine) VerifyAccessToken(token string) (*Claims, error) {
	if e.store.IsBlacklisted(token) {
		return nil, apperrors.Unauthorized("You have been logged out. Please log in again.")
	}

	cfg := e.provider.Snapshot()
	claims, err := NewTokenService(cfg.JWTSecret).Parse(token)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, apperrors.TokenExpired()
		}
		return nil, apperrors.InvalidToken(err.Error())
	}
	return claims, nil
}

// ResolveSession is the gateway's session admission check. An identifier in
// the invalidated set destroys any residual server-side state before
// rejecting, even if the session somehow still looked live.
func (e *Engine) ResolveSession(cookieValue string) (string, error) {
	cfg := e.provider.Snapshot()
	id, err := VerifySessionCookie(cookieValue, cfg.SessionSecret)
	if err != nil {
		return "", apperrors.Unauthorized("Valid session required")
	}
	if e.store.IsSessionInvalidated(id) {
		e.sessions.Delete(id)
		return "", apperrors.Unauthorized("Valid session required")
	}
	username, live := e.sessions.Lookup(id)
	if !live {
		return "", apperrors.Unauthorized("Valid session required")
	}
	return username, nil
}

// issueCredential builds the method-appropriate credential after a
// successful signup or login.
func (e *Engine) issueCredential(cfg Config, username string) (*Credential, error) {
	switch cfg.Method {
	case MethodJWT:
		pair, err := e.issueTokenPair(cfg, username)
		if err != nil {
			return nil, err
		}
		return &Credential{Tokens: pair}, nil
	case MethodSession:
		id := e.sessions.Create(username)
		return &Credential{SessionCookie: SignSessionID(id, cfg.SessionSecret)}, nil
	default:
		return &Credential{}, nil
	}
}

// issueTokenPair signs a fresh access token and registers a new refresh
// token for username.
func (e *Engine) issueTokenPair(cfg Config, username string) (*TokenPair, error) {
	access, err := NewTokenService(cfg.JWTSecret).Generate(username)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	refresh, err := NewRefreshToken()
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	e.store.PutRefreshToken(refresh, username)
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
