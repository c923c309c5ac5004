package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-room-booking/internal/config"
	"github.com/iliyamo/hostel-room-booking/internal/middleware"
	"github.com/iliyamo/hostel-room-booking/internal/model"
	"github.com/iliyamo/hostel-room-booking/internal/repository"
	"github.com/iliyamo/hostel-room-booking/internal/utils"
)

// UserStore is the slice of the user repository the auth endpoints need.
type UserStore interface {
	Create(ctx context.Context, u *model.User) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthHandler bundles dependencies for registration and session endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, u UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Password string `json:"password"`
}
type createTokenReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user if the email is not already present.  The password
// is optional: accounts verified out of band (federated sign-in) register
// with just their profile.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := model.User{Email: req.Email, Name: req.Name, PhotoURL: req.PhotoURL}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create user failed"})
		}
		u.PasswordHash = hash
	}

	id, err := h.Users.Create(ctx, &u)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create user failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"insertedId": id})
}

// CreateToken mints the session cookie for the posted email.  Credentials
// are normally verified out of band before this call; when the body carries
// a password and the stored account has a hash, it is checked here and a
// mismatch is rejected.
func (h *AuthHandler) CreateToken(c echo.Context) error {
	var req createTokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email required"})
	}

	if req.Password != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		u, err := h.Users.GetByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
		}
		if u.PasswordHash != "" && !utils.VerifyPassword(u.PasswordHash, req.Password) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
		}
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, req.Email, h.Cfg.TokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error creating token"})
	}
	c.SetCookie(h.sessionCookie(tok.Token, tok.Exp))
	return c.JSON(http.StatusOK, echo.Map{"message": "token created successfully"})
}

// Logout clears the session cookie.  The token itself stays valid until
// expiry; nothing is stored server-side to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	expired := h.sessionCookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	c.SetCookie(expired)
	return c.JSON(http.StatusOK, echo.Map{"message": "token expired"})
}

// sessionCookie builds the cookie with flags matching the deployment: local
// dev is same-site over plain HTTP, everything else serves a cross-site
// frontend and needs SameSite=None + Secure.
func (h *AuthHandler) sessionCookie(value string, exp time.Time) *http.Cookie {
	sameSite := http.SameSiteNoneMode
	if !h.Cfg.CookieSecure() {
		sameSite = http.SameSiteStrictMode
	}
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   h.Cfg.CookieSecure(),
		SameSite: sameSite,
	}
}
