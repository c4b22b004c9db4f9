package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/skillsenselab/todo-api/internal/metrics"
)

// SessionCookieName is the cookie carrying the signed session identifier.
const SessionCookieName = "todo_session"

// sessionState is the server-side flag bound to a session identifier.
type sessionState struct {
	Username string
}

// Sessions is the in-memory registry of live sessions. The client holds only
// the signed identifier; the authenticated flag and username live here.
type Sessions struct {
	mu     sync.Mutex
	active map[string]sessionState
}

// NewSessions creates an empty session registry.
func NewSessions() *Sessions {
	return &Sessions{active: make(map[string]sessionState)}
}

// Create starts a session for username and returns its identifier.
func (s *Sessions) Create(username string) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.active[id] = sessionState{Username: username}
	metrics.ActiveSessions.Set(float64(len(s.active)))
	s.mu.Unlock()
	return id
}

// Lookup returns the username bound to a live session identifier.
func (s *Sessions) Lookup(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.active[id]
	return st.Username, ok
}

// Delete ends a session. Idempotent.
func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	delete(s.active, id)
	metrics.ActiveSessions.Set(float64(len(s.active)))
	s.mu.Unlock()
}

// Reset ends every live session. Called on method switches and user resets.
func (s *Sessions) Reset() {
	s.mu.Lock()
	s.active = make(map[string]sessionState)
	metrics.ActiveSessions.Set(0)
	s.mu.Unlock()
}

// Count reports the number of live sessions.
func (s *Sessions) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// --- cookie codec ---

// ErrBadSessionCookie is returned for cookies that fail structural or
// signature checks.
var ErrBadSessionCookie = errors.New("invalid session cookie")

// SignSessionID produces the cookie value `<id>.<sig>` where sig is the
// base64url HMAC-SHA256 of the identifier under secret. A method switch
// rotates the secret, so cookies from the previous configuration stop
// verifying without any per-cookie bookkeeping.
func SignSessionID(id, secret string) string {
	return id + "." + sessionSignature(id, secret)
}

// VerifySessionCookie checks the cookie value signature and returns the
// embedded session identifier.
func VerifySessionCookie(value, secret string) (string, error) {
	id, sig, found := strings.Cut(value, ".")
	if !found || id == "" || sig == "" {
		return "", ErrBadSessionCookie
	}
	expected := sessionSignature(id, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrBadSessionCookie
	}
	return id, nil
}

func sessionSignature(id, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
