package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = time.Hour

// JWTIssuer signs HS256 bearer tokens carrying the authenticated email and a
// one-hour expiry. Tokens are never stored server-side; expiry is
// self-describing and enforced at verification time.
type JWTIssuer struct {
	secret []byte
}

func NewJWTIssuer(secret string) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret)}
}

func (i *JWTIssuer) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}
