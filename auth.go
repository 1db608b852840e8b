package main

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Clancy-dev/clancygraintracker/models"
)

const (
	accessTokenTTL   = 24 * time.Hour
	refreshAccessTTL = 15 * time.Minute
)

// generateAccessToken signs an HS256 JWT carrying the user's id, email and
// role. Handlers read these claims back via jwtAuthMiddleware.
func generateAccessToken(user models.User, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(jwtSecret)
}

// Compatibility wrappers expected by handlers.go
func Register(name, email, password string, role models.Role) (models.User, error) {
	return users.Signup(name, email, password, role)
}

func Login(email, password string) (models.User, error) {
	return users.Authenticate(email, password)
}
