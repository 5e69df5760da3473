package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL is how long an issued token stays valid. There is no
// refresh mechanism; clients log in again after expiry.
const TokenTTL = 24 * time.Hour

// JWTSecret returns the signing secret from the environment
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

// GenerateToken creates a signed token carrying the doctor id and role
func GenerateToken(doctorID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   doctorID,
		"role": role,
		"exp":  time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}
