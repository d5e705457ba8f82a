package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues a signed bearer token carrying the user id.
func GenerateToken(secret []byte, userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}
