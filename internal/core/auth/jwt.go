package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure every parse problem collapses into:
// bad signature, wrong algorithm, expired, missing subject. Callers must not
// leak which one happened.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
}

// JWTer signs and verifies access tokens with a process-wide HMAC secret.
// The subject claim carries the account's email.
type JWTer struct {
	Secret    []byte
	Issuer    string
	Algorithm string // HS256 / HS384 / HS512
	TTL       time.Duration
}

func New(secret, issuer, algorithm string, ttl time.Duration) (*JWTer, error) {
	if !strings.HasPrefix(algorithm, "HS") {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if jwt.GetSigningMethod(algorithm) == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if len(secret) == 0 {
		return nil, errors.New("empty signing secret")
	}
	return &JWTer{Secret: []byte(secret), Issuer: issuer, Algorithm: algorithm, TTL: ttl}, nil
}

func (j *JWTer) method() jwt.SigningMethod {
	if m := jwt.GetSigningMethod(j.Algorithm); m != nil {
		return m
	}
	return jwt.SigningMethodHS256
}

// Issue signs a token for the given subject expiring at now + TTL.
func (j *JWTer) Issue(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}
	token := jwt.NewWithClaims(j.method(), claims)
	return token.SignedString(j.Secret)
}

// Parse validates signature, algorithm and expiry and returns the claims.
// Any failure comes back as ErrInvalidToken.
func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if j.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.Issuer))
	}
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != j.Algorithm {
			return nil, fmt.Errorf("unexpected alg %q", token.Method.Alg())
		}
		return j.Secret, nil
	}, opts...)

	if err != nil {
		return nil, ErrInvalidToken
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Subject == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}
