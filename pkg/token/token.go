// Package token issues and verifies stateless HMAC-signed bearer tokens.
// Possession of a validly signed, unexpired token is the only proof of
// identity; there is no server-side session store or revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Verification failures. Callers must map all of them to the same external
// response; the distinction exists for logging only.
var (
	ErrMalformed = errors.New("token malformed")
	ErrExpired   = errors.New("token expired")
	ErrSignature = errors.New("token signature invalid")
)

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Issuer signs and validates tokens with a process-wide symmetric secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// New creates an Issuer. The secret must be non-empty; config loading is
// responsible for treating an absent secret as fatal.
func New(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue produces a signed token embedding the owner id, expiring after the
// configured TTL.
func (i *Issuer) Issue(ownerID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: ownerID,
	})
	return t.SignedString(i.secret)
}

// Verify checks signature and expiry and returns the embedded owner id.
func (i *Issuer) Verify(tokenString string) (string, error) {
	parsed := &claims{}
	t, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrSignature
		default:
			return "", ErrSignature
		}
	}
	if !t.Valid || parsed.UserID == "" {
		return "", ErrMalformed
	}
	return parsed.UserID, nil
}
