package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hospital/internal/auth"
	"github.com/Skotchmaster/hospital/pkg/logging"
)

const (
	CtxPrincipal    = "principal"
	AccessCookie    = "access_token"
	DefaultLoginURL = "/auth/login-page"
)

type AuthMiddleware struct {
	Resolver *auth.Resolver
	LoginURL string
	Secure   bool
}

func NewAuthMiddleware(resolver *auth.Resolver, secureCookies bool) *AuthMiddleware {
	return &AuthMiddleware{
		Resolver: resolver,
		LoginURL: DefaultLoginURL,
		Secure:   secureCookies,
	}
}

func BearerToken(r *http.Request) string {
	h := r.Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func Unauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, auth.MsgCouldNotValidate)
}

// RequireBearer resolves the principal from the Authorization header.
func (m *AuthMiddleware) RequireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := logging.FromContext(c.Request().Context()).With("middleware", "auth.bearer")

		p, err := m.Resolver.Resolve(BearerToken(c.Request()))
		if err != nil {
			l.Warn("resolve_principal_failed", "status", 401, "error", err)
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return Unauthorized()
		}

		SetPrincipal(c, p)
		return next(c)
	}
}

// OptionalBearer resolves a principal when an Authorization header is sent.
// A header that does not resolve is still rejected.
func (m *AuthMiddleware) OptionalBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}
		return m.RequireBearer(next)(c)
	}
}

// RequireCookie is the browser variant: failures redirect to the login page.
func (m *AuthMiddleware) RequireCookie(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := logging.FromContext(c.Request().Context()).With("middleware", "auth.cookie")

		var token string
		if ck, err := c.Cookie(AccessCookie); err == nil {
			token = ck.Value
		}

		p, err := m.Resolver.Resolve(token)
		if err != nil {
			l.Info("page_redirect_to_login", "status", 302, "error", err)
			return m.RedirectToLogin(c)
		}

		SetPrincipal(c, p)
		return next(c)
	}
}

func (m *AuthMiddleware) RedirectToLogin(c echo.Context) error {
	c.SetCookie(DeleteCookie(AccessCookie, "/", m.Secure))
	return c.Redirect(http.StatusFound, m.LoginURL)
}

// RequireRoles must run after a Require* middleware.
func RequireRoles(set auth.RoleSet) echo.MiddlewareFunc {
	guard := auth.RequireRoles(set)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, _ := PrincipalFrom(c)
			if _, err := guard(p); err != nil {
				l := logging.FromContext(c.Request().Context()).With("middleware", "auth.roles")
				if p == nil {
					l.Warn("role_check_failed", "status", 401, "reason", "no principal")
					return Unauthorized()
				}
				l.Warn("role_check_failed", "status", 403, "role", p.Role, "allowed", set.Roles())
				return echo.NewHTTPError(http.StatusForbidden, auth.MsgForbidden)
			}
			return next(c)
		}
	}
}

func SetPrincipal(c echo.Context, p *auth.Principal) {
	c.Set(CtxPrincipal, p)
	req := c.Request()
	l := logging.FromContext(req.Context()).With("user_id", p.ID)
	c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), l)))
}

func PrincipalFrom(c echo.Context) (*auth.Principal, bool) {
	p, ok := c.Get(CtxPrincipal).(*auth.Principal)
	return p, ok && p != nil
}

func CreateCookie(name, value, path string, exp time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  exp,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func DeleteCookie(name, path string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
