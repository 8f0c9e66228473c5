// Package current extracts the authenticated identity from a request context.
// Handlers receive the identity explicitly through these helpers instead of
// reaching into any global security state.
package current

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNoIdentity = errors.New("no authenticated user in request context")

// UserID extracts the numeric user id from JWT claims in the Fiber context.
func UserID(c *fiber.Ctx) (uint, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return 0, ErrNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrNoIdentity
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrNoIdentity
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, ErrNoIdentity
	}
	return uint(id), nil
}

// Email extracts the email claim, when present.
func Email(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
