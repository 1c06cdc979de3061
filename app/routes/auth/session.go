// Package auth holds the login, registration and session machinery.
//
// Logins are credential matches on public-ish fields (student: name +
// enrollment number; teacher: name + DOB + teacher ID). There is no
// password or other secret in the credential model; this is a known
// weakness of the product, kept deliberately so observable behavior does
// not change.
package auth

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"school-portal/app/models"
)

const SessionCookie = "session_token"

const sessionTTL = 24 * time.Hour

// Identity is the immutable (role, id, name) triple a session carries.
// It is rebuilt from the token on every request; nothing mutates it.
type Identity struct {
	Role models.Role
	ID   int
	Name string
}

type sessionClaims struct {
	Role models.Role `json:"role"`
	Name string      `json:"name"`
	jwt.RegisteredClaims
}

func sessionSecret() []byte {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "school-portal-secret-key" // Default for development
	}
	return []byte(secret)
}

// GenerateSessionToken mints the signed token that backs a browser session.
func GenerateSessionToken(id Identity) (string, error) {
	claims := sessionClaims{
		Role: id.Role,
		Name: id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(id.ID),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "school-portal",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

// ValidateSessionToken parses a token back into the identity it carries.
func ValidateSessionToken(tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return sessionSecret(), nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return Identity{}, jwt.ErrTokenInvalidSubject
	}
	return Identity{Role: claims.Role, ID: id, Name: claims.Name}, nil
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
