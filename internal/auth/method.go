package auth

import "fmt"

// Method identifies an authentication strategy. Exactly one is active at a
// time, selected by the live Config.
type Method string

const (
	// MethodNone admits every request unconditionally.
	MethodNone Method = "none"
	// MethodAPIKey checks a shared secret in the X-API-Key header.
	MethodAPIKey Method = "api_key"
	// MethodJWT issues and verifies signed bearer tokens with refresh rotation.
	MethodJWT Method = "jwt"
	// MethodSession issues server-side sessions bound to a signed cookie.
	MethodSession Method = "session"
)

// Methods lists every valid method, in the order reported to clients.
func Methods() []Method {
	return []Method{MethodNone, MethodAPIKey, MethodJWT, MethodSession}
}

// ParseMethod validates a method string.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	for _, valid := range Methods() {
		if m == valid {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid authentication method: %s. Must be one of: %v", s, Methods())
}

// displayName is the method name used in client-facing messages.
func (m Method) displayName() string {
	switch m {
	case MethodAPIKey:
		return "API key"
	case MethodJWT:
		return "JWT"
	case MethodSession:
		return "session"
	default:
		return string(m)
	}
}
