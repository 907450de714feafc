// Package token issues and verifies the HS256 bearer tokens used to
// authenticate API requests. Claims are a fixed typed structure, never an
// open map, so handlers downstream get compile-time checked identity fields.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity embedded in a token. The registered claims
// hold jti (fresh uuid per issue), sub (user id), iss, aud, iat and exp.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Issuer signs and verifies tokens with a single symmetric secret.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewIssuer(secret, issuer, audience string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 120 * time.Minute
	}
	return &Issuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue builds a signed token for the user. Each call embeds a fresh random
// token id, so two tokens for the same user in the same second still differ.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Parse verifies signature, issuer, audience and lifetime, with no clock
// leeway, and returns the decoded claims. Any failure maps to ErrInvalidToken.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	},
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTL exposes the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}
