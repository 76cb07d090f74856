// Package token issues and verifies HS256 session tokens
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	perr "toxmanager/internal/platform/errors"
)

const issuer = "toxmanager"

// Claims are the session claims. Subject carries the operator email
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Session is what a verified token tells the API about its bearer
type Session struct {
	User      string    `json:"user"`
	Name      string    `json:"name,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Issuer signs and verifies session tokens with one shared secret
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns an Issuer. The secret must not be empty
func New(secret string, ttl time.Duration) (*Issuer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, perr.InvalidArgf("token secret is required")
	}
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for user and its expiry
func (i *Issuer) Issue(user, name string) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	})
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, perr.Wrap(err, perr.ErrorCodeUnknown, "sign session token")
	}
	return signed, exp, nil
}

// Parse verifies raw and returns its session. Failures are Unauthorized
func (i *Issuer) Parse(raw string) (Session, error) {
	var c Claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Session{}, perr.Unauthorizedf("session expired")
	case err != nil:
		return Session{}, perr.Unauthorizedf("invalid session token")
	case c.Subject == "":
		return Session{}, perr.Unauthorizedf("invalid session token")
	}
	return Session{User: c.Subject, Name: c.Name, ExpiresAt: c.ExpiresAt.Time}, nil
}

// UserOf adapts Parse to the bearer port signature
func (i *Issuer) UserOf(raw string) (string, error) {
	s, err := i.Parse(raw)
	return s.User, err
}
