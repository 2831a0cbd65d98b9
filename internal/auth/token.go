// Package auth issues and verifies bearer tokens and hashes passwords.
//
// Two verification keys are supported: a shared HS256 secret, used for tokens
// this service issues at login, and an RS256 public key belonging to an
// external identity provider. Either or both may be configured.
package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoSigningKey = errors.New("token signing is not configured")
)

// Options carries the token settings from configuration.
type Options struct {
	Secret        string
	PublicKeyFile string
	Issuer        string
	Audience      string
	TTL           time.Duration
}

// Claims is the token payload. Subject holds the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// Tokens signs and verifies bearer tokens.
type Tokens struct {
	secret    []byte
	publicKey *rsa.PublicKey
	issuer    string
	audience  string
	ttl       time.Duration
	now       func() time.Time
}

func NewTokens(opts Options) (*Tokens, error) {
	t := &Tokens{
		issuer:   opts.Issuer,
		audience: opts.Audience,
		ttl:      opts.TTL,
		now:      time.Now,
	}
	if opts.Secret != "" {
		t.secret = []byte(opts.Secret)
	}
	if opts.PublicKeyFile != "" {
		pem, err := os.ReadFile(opts.PublicKeyFile)
		if err != nil {
			return nil, fmt.Errorf("read public key: %w", err)
		}
		key, err := jwt.ParseRSAPublicKeyFromPEM(pem)
		if err != nil {
			return nil, fmt.Errorf("parse public key: %w", err)
		}
		t.publicKey = key
	}
	if t.secret == nil && t.publicKey == nil {
		return nil, errors.New("no token verification key configured")
	}
	if t.ttl <= 0 {
		t.ttl = 24 * time.Hour
	}
	return t, nil
}

// Issue signs an HS256 token for userID.
func (t *Tokens) Issue(userID string) (string, error) {
	if t.secret == nil {
		return "", ErrNoSigningKey
	}
	now := t.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	if t.audience != "" {
		claims.Audience = jwt.ClaimStrings{t.audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses raw and returns its claims. Expiry and subject are required;
// issuer and audience are checked when configured.
func (t *Tokens) Verify(raw string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(t.methods()),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}
	if t.audience != "" {
		opts = append(opts, jwt.WithAudience(t.audience))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, t.keyFor, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return &claims, nil
}

func (t *Tokens) methods() []string {
	var m []string
	if t.secret != nil {
		m = append(m, jwt.SigningMethodHS256.Alg())
	}
	if t.publicKey != nil {
		m = append(m, jwt.SigningMethodRS256.Alg())
	}
	return m
}

func (t *Tokens) keyFor(tok *jwt.Token) (any, error) {
	switch tok.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if t.secret != nil {
			return t.secret, nil
		}
	case *jwt.SigningMethodRSA:
		if t.publicKey != nil {
			return t.publicKey, nil
		}
	}
	return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
}
