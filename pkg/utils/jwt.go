package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const sessionTokenExpiry = 7 * 24 * time.Hour

// CreateSessionToken mints the stateless admin session credential. All
// session state lives in the token itself.
func CreateSessionToken(jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["role"] = "admin"
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(sessionTokenExpiry).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

// VerifySessionToken checks signature and expiry only. Every failure maps
// to false so callers cannot distinguish expired from malformed tokens.
func VerifySessionToken(tokenString string, jwtSecretKey string) bool {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		return false
	}

	return token.Valid
}
