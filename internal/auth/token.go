package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by an access token: the subject username
// and the expiration timestamp.
type Claims struct {
	jwt.RegisteredClaims
}

// CreateAccessToken issues an HS256-signed token with sub=username and
// exp=now+ttl.
func CreateAccessToken(username string, ttl time.Duration, secret []byte) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// DecodeAccessToken verifies signature and expiry and returns the claim
// set. It reports ok=false on any failure; callers cannot distinguish a
// tampered token from an expired one.
func DecodeAccessToken(tokenString string, secret []byte) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
