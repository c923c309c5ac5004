package utils // package utils provides helper functions for session tokens and hashing

import (
    "errors"
    "time" // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// malformed token or expiry.  Callers must treat all three identically and
// never surface the reason to the client.
var ErrInvalidToken = errors.New("invalid token")

// SessionToken is a signed HS256 JWT carrying the user's email claim, plus
// its expiration time.  Nothing is persisted server-side; the token itself is
// the whole session, delivered to the browser in a cookie.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for the given email.  The
// claims are the email, issued-at and expiration (now + ttlMin minutes).
// Signing is deterministic given secret, claim and time and has no side
// effects.
func NewSessionToken(secret, email string, ttlMin int) (SessionToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "email": email,
        "iat":   now.Unix(),
        "exp":   exp.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies signature and expiry and returns the embedded
// email claim.  Any failure collapses into ErrInvalidToken.
func ParseSessionToken(secret, raw string) (string, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything but HMAC.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return "", ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return "", ErrInvalidToken
    }
    email, ok := claims["email"].(string)
    if !ok || email == "" {
        return "", ErrInvalidToken
    }
    return email, nil
}
