package auth

import (
	"sync"
)

// Config is an immutable snapshot of the active authentication setup.
// Fields other than Method are only meaningful for the matching method;
// constructors keep the irrelevant ones empty.
type Config struct {
	Method        Method `json:"method"`
	APIKey        string `json:"api_key,omitempty"`
	JWTSecret     string `json:"-"`
	SessionSecret string `json:"-"`
}

// DisabledConfig returns a Config with authentication turned off.
func DisabledConfig() Config {
	return Config{Method: MethodNone}
}

// APIKeyConfig returns a Config using a shared API key.
func APIKeyConfig(key string) Config {
	return Config{Method: MethodAPIKey, APIKey: key}
}

// JWTConfig returns a Config using signed bearer tokens.
func JWTConfig(secret string) Config {
	return Config{Method: MethodJWT, JWTSecret: secret}
}

// SessionConfig returns a Config using server-side sessions.
func SessionConfig(secret string) Config {
	return Config{Method: MethodSession, SessionSecret: secret}
}

// Secret returns the companion secret for the active method, if any.
func (c Config) Secret() string {
	switch c.Method {
	case MethodAPIKey:
		return c.APIKey
	case MethodJWT:
		return c.JWTSecret
	case MethodSession:
		return c.SessionSecret
	default:
		return ""
	}
}

// ToSpec converts the config to the wire format accepted by the reset
// endpoint, mirroring the YAML config file shape.
func (c Config) ToSpec() Spec {
	spec := Spec{Method: string(c.Method)}
	switch c.Method {
	case MethodAPIKey:
		spec.APIKey = c.APIKey
	case MethodJWT:
		spec.Secret = c.JWTSecret
	case MethodSession:
		spec.Secret = c.SessionSecret
	}
	return spec
}

// Spec is the client-supplied description of the desired auth setup, as
// carried by the reset endpoint body and the YAML config file.
type Spec struct {
	Method string `json:"method" yaml:"method" mapstructure:"method"`
	APIKey string `json:"api_key,omitempty" yaml:"api_key" mapstructure:"api_key"`
	Secret string `json:"secret,omitempty" yaml:"secret" mapstructure:"secret"`
}

// Provider holds the live Config. The gateway and engine read snapshots
// through it, so a swap is observed immediately by subsequent requests and a
// reader can never see a half-updated config.
type Provider struct {
	mu  sync.RWMutex
	cfg Config
}

// NewProvider creates a Provider with the given initial config.
func NewProvider(cfg Config) *Provider {
	return &Provider{cfg: cfg}
}

// Snapshot returns the current config by value.
func (p *Provider) Snapshot() Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

// Method returns the currently active method.
func (p *Provider) Method() Method {
	return p.Snapshot().Method
}

// Swap atomically replaces the live config.
func (p *Provider) Swap(cfg Config) {
	p.mu.Lock()
	p.cfg = cfg
	p.mu.Unlock()
}
