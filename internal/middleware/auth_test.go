package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/hostel-room-booking/internal/utils"
)

const testSecret = "test-secret"

// run sends a request through SessionAuth into a probe handler that records
// the identity it observed.
func run(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	called := false
	h := SessionAuth(testSecret)(func(c echo.Context) error {
		called = true
		seen = Identity(c)
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(c))
	return rec, seen, called
}

func TestSessionAuthMissingCookie(t *testing.T) {
	rec, _, called := run(t, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "handler must not run without a token")
	assert.Contains(t, rec.Body.String(), "unauthorized")
}

func TestSessionAuthInvalidToken(t *testing.T) {
	rec, _, called := run(t, &http.Cookie{Name: SessionCookieName, Value: "not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestSessionAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewSessionToken("other-secret", "a@x.com", 60)
	assert.NoError(t, err)

	rec, _, called := run(t, &http.Cookie{Name: SessionCookieName, Value: tok.Token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestSessionAuthValidToken(t *testing.T) {
	tok, err := utils.NewSessionToken(testSecret, "a@x.com", 60)
	assert.NoError(t, err)

	rec, seen, called := run(t, &http.Cookie{Name: SessionCookieName, Value: tok.Token})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, "a@x.com", seen)
}

func TestIdentityOnUngatedRoute(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, "", Identity(c))
}
