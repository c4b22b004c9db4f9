package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is the lifetime of issued access tokens. Security-relevant
// constant, not tunable per request.
const AccessTokenTTL = 15 * time.Minute

// refreshTokenBytes gives refresh tokens 256 bits of entropy.
const refreshTokenBytes = 32

// TokenPair is the credential returned by JWT login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims carried by issued access tokens.
type Claims struct {
	gojwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access tokens against the secret of
// the config snapshot it was built from. It is a cheap value; the engine and
// gateway construct one per operation so a config swap is always honored.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a token service for the given signing secret.
func NewTokenService(secret string) TokenService {
	return TokenService{secret: []byte(secret), now: time.Now}
}

// Generate issues a signed access token for username, valid for
// AccessTokenTTL from now.
func (ts TokenService) Generate(username string) (string, error) {
	issued := ts.now()
	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  gojwt.NewNumericDate(issued),
			ExpiresAt: gojwt.NewNumericDate(issued.Add(AccessTokenTTL)),
		},
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, nil
}

// ErrTokenExpired marks a structurally valid token past its expiry.
var ErrTokenExpired = errors.New("token has expired")

// Parse verifies signature and expiry, returning the claims. Expired tokens
// return ErrTokenExpired so callers can report expiry distinctly from other
// verification failures.
func (ts TokenService) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, func(t *gojwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.secret, nil
	}, gojwt.WithTimeFunc(func() time.Time { return ts.now() }))
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

// NewRefreshToken returns an opaque random token with 256 bits of entropy.
func NewRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
