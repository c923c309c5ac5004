package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/hostel-room-booking/internal/utils"
)

// SessionCookieName is the cookie carrying the signed session token.  The
// frontend never reads it; it rides along on credentialed requests.
const SessionCookieName = "token"

// identityKey is the context key under which the verified email claim is
// stored for downstream handlers.
const identityKey = "email"

// SessionAuth returns an Echo middleware that validates the session cookie
// and injects the token's email claim into the request context.  The provided
// secret must match the one used when issuing tokens.  A missing cookie is
// rejected before any other component is touched; an invalid or expired token
// gets the same 401 so the client never learns which check failed.
func SessionAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            cookie, err := c.Cookie(SessionCookieName)
            if err != nil || cookie.Value == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
            }
            email, err := utils.ParseSessionToken(secret, cookie.Value)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
            }
            c.Set(identityKey, email)
            return next(c)
        }
    }
}

// Identity returns the authenticated email stored by SessionAuth, or the
// empty string on an ungated route.
func Identity(c echo.Context) string {
    if v, ok := c.Get(identityKey).(string); ok {
        return v
    }
    return ""
}
