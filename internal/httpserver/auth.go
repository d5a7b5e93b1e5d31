package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hospital/internal/auth"
	"github.com/Skotchmaster/hospital/internal/service"
	"github.com/Skotchmaster/hospital/internal/transport"
	"github.com/Skotchmaster/hospital/pkg/logging"
	mw "github.com/Skotchmaster/hospital/pkg/middleware/auth"
)

type AuthHTTP struct {
	Svc          *service.AuthService
	SecureCookie bool
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "register_failed", err)
	}

	caller, _ := mw.PrincipalFrom(c)
	user, err := h.Svc.Register(ctx, req, caller)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			l.Warn("register_failed", "status", 409, "reason", "username or email taken")
			return echo.NewHTTPError(http.StatusConflict, "Username or email already registered.")
		}
		return fail(l, "register_failed", err, "")
	}

	l.Info("register_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

// Login takes form-encoded credentials. The token goes back in the body and
// in the access_token cookie.
func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	res, err := h.Svc.Login(ctx, c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return mw.Unauthorized()
		}
		return fail(l, "login_failed", err, "")
	}

	c.SetCookie(mw.CreateCookie(mw.AccessCookie, res.AccessToken, "/", res.ExpiresAt, h.SecureCookie))

	l.Info("login_success", "user_id", res.Principal.ID)
	return c.JSON(http.StatusOK, transport.TokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
	})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "auth.logout")

	c.SetCookie(mw.DeleteCookie(mw.AccessCookie, "/", h.SecureCookie))
	l.Info("logout_success")
	return c.Redirect(http.StatusFound, mw.DefaultLoginURL)
}

func (h *AuthHTTP) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

func (h *AuthHTTP) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", nil)
}
