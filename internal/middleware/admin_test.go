package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/socialevents/social-events-backend/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdminChecker struct {
	admins map[string]bool
	err    error
}

func (s *stubAdminChecker) IsAdmin(email string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.admins[email], nil
}

func newAdminTestApp(checker AdminChecker, principal *identity.Principal) *fiber.App {
	app := fiber.New()
	app.Get("/admin",
		func(c *fiber.Ctx) error {
			if principal != nil {
				identity.SetPrincipal(c, principal)
			}
			return c.Next()
		},
		AdminRequired(checker),
		func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) },
	)
	return app
}

func TestAdminRequiredNoPrincipal(t *testing.T) {
	app := newAdminTestApp(&stubAdminChecker{}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRequiredNonAdmin(t *testing.T) {
	checker := &stubAdminChecker{admins: map[string]bool{"root@x.com": true}}
	app := newAdminTestApp(checker, &identity.Principal{Email: "user@x.com"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRequiredAdmin(t *testing.T) {
	checker := &stubAdminChecker{admins: map[string]bool{"root@x.com": true}}
	app := newAdminTestApp(checker, &identity.Principal{Email: "root@x.com"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRequiredCheckerError(t *testing.T) {
	checker := &stubAdminChecker{err: errors.New("db down")}
	app := newAdminTestApp(checker, &identity.Principal{Email: "root@x.com"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
