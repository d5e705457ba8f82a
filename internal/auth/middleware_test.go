package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", Middleware(testSecret), func(c *fiber.Ctx) error {
		userID, ok := UserID(c)
		if !ok {
			return fiber.NewError(fiber.StatusInternalServerError, "no identity")
		}
		return c.SendString(userID)
	})
	return app
}

func request(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestMiddleware_ValidTokenResolvesUserID(t *testing.T) {
	app := newProtectedApp()

	token, err := GenerateToken(testSecret, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)

	resp := request(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddleware_RejectsMissingHeader(t *testing.T) {
	resp := request(t, newProtectedApp(), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_RejectsMalformedHeader(t *testing.T) {
	resp := request(t, newProtectedApp(), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_RejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("other-secret"), "user")
	require.NoError(t, err)

	resp := request(t, newProtectedApp(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_RejectsTokenWithoutUserID(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "someone"})
	signed, err := tok.SignedString(testSecret)
	require.NoError(t, err)

	resp := request(t, newProtectedApp(), "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
