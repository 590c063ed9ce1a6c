// Package token issues and verifies the signed bearer tokens used by the API.
//
// Tokens are HS256 JWTs carrying the user ID as subject plus a role claim.
// There is no server-side session state: a token stays valid until its expiry
// elapses or the signing secret is rotated.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

const DefaultTTL = 7 * 24 * time.Hour

// Claims carried by an issued token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies bearer tokens with a fixed secret and TTL.
// The secret is set at construction and never mutated.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given user ID and role, expiring ttl from now.
func (i *Issuer) Issue(userID, role string) (string, error) {
	now := i.now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature and expiry and returns the embedded subject and
// role. Any failure (malformed, expired, wrong algorithm, bad signature)
// yields domain.ErrInvalidToken.
func (i *Issuer) Verify(raw string) (userID, role string, err error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.now() }))
	if err != nil || !parsed.Valid {
		return "", "", domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", "", domain.ErrInvalidToken
	}
	return claims.Subject, claims.Role, nil
}
