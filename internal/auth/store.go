package auth

import (
	"sync"
)

// User is a registered account. Password material is stored hashed; the plain
// text never leaves the signup/login path.
type User struct {
	Username     string
	PasswordHash string
}

// Store owns every process-wide credential registry: users, issued refresh
// tokens, blacklisted access tokens, and invalidated session identifiers.
// One mutex guards all four so cross-registry operations (full resets, method
// switches) are observed atomically by concurrent readers.
type Store struct {
	mu                  sync.Mutex
	users               map[string]User
	refreshTokens       map[string]string
	blacklist           map[string]struct{}
	invalidatedSessions map[string]struct{}
}

// NewStore creates an empty credential store.
func NewStore() *Store {
	return &Store{
		users:               make(map[string]User),
		refreshTokens:       make(map[string]string),
		blacklist:           make(map[string]struct{}),
		invalidatedSessions: make(map[string]struct{}),
	}
}

// AddUser registers a new user. The uniqueness check and the insert happen
// under the same lock, so two concurrent signups with the same username
// cannot both succeed.
func (s *Store) AddUser(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users[u.Username]; taken {
		return ErrDuplicateUser
	}
	s.users[u.Username] = u
	return nil
}

// LookupUser returns the stored record for username.
func (s *Store) LookupUser(username string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

// UserCount reports the number of registered users.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// ReplaceUsers swaps the entire user registry and clears every credential
// registry in the same critical section. Stale tokens referencing replaced
// users must not remain valid.
func (s *Store) ReplaceUsers(users []User) {
	replacement := make(map[string]User, len(users))
	for _, u := range users {
		replacement[u.Username] = u
	}
	s.mu.Lock()
	s.users = replacement
	s.clearCredentialsLocked()
	s.mu.Unlock()
}

// PutRefreshToken registers an issued refresh token for username.
func (s *Store) PutRefreshToken(token, username string) {
	s.mu.Lock()
	s.refreshTokens[token] = username
	s.mu.Unlock()
}

// ConsumeRefreshToken looks up and deletes token in one step, enforcing
// single-use rotation: a concurrent double spend yields exactly one success.
func (s *Store) ConsumeRefreshToken(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.refreshTokens[token]
	if !ok {
		return "", ErrInvalidRefreshToken
	}
	delete(s.refreshTokens, token)
	return username, nil
}

// DeleteRefreshToken removes token if present. Idempotent.
func (s *Store) DeleteRefreshToken(token string) {
	s.mu.Lock()
	delete(s.refreshTokens, token)
	s.mu.Unlock()
}

// RefreshTokenCount reports the number of outstanding refresh tokens.
func (s *Store) RefreshTokenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.refreshTokens)
}

// BlacklistToken records an access token as revoked before its natural
// expiry. Idempotent.
func (s *Store) BlacklistToken(token string) {
	s.mu.Lock()
	s.blacklist[token] = struct{}{}
	s.mu.Unlock()
}

// IsBlacklisted reports whether an access token has been revoked.
func (s *Store) IsBlacklisted(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, revoked := s.blacklist[token]
	return revoked
}

// BlacklistCount reports the number of blacklisted access tokens.
func (s *Store) BlacklistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blacklist)
}

// InvalidateSession records a session identifier as revoked so a cookie copy
// captured before logout cannot be replayed. Idempotent.
func (s *Store) InvalidateSession(sessionID string) {
	s.mu.Lock()
	s.invalidatedSessions[sessionID] = struct{}{}
	s.mu.Unlock()
}

// IsSessionInvalidated reports whether a session identifier has been revoked.
func (s *Store) IsSessionInvalidated(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, revoked := s.invalidatedSessions[sessionID]
	return revoked
}

// ClearCredentials empties the refresh token, blacklist, and invalidated
// session registries together. Called on every method switch: credentials
// issued under one method are meaningless under another.
func (s *Store) ClearCredentials() {
	s.mu.Lock()
	s.clearCredentialsLocked()
	s.mu.Unlock()
}

func (s *Store) clearCredentialsLocked() {
	s.refreshTokens = make(map[string]string)
	s.blacklist = make(map[string]struct{})
	s.invalidatedSessions = make(map[string]struct{})
}
