package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hospital/internal/service"
	"github.com/Skotchmaster/hospital/internal/transport"
	"github.com/Skotchmaster/hospital/pkg/logging"
	mw "github.com/Skotchmaster/hospital/pkg/middleware/auth"
)

const msgUserNotFound = "User not found!"

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get")

	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return mw.Unauthorized()
	}

	user, err := h.Svc.Get(ctx, p.ID)
	if err != nil {
		return fail(l, "get_user_failed", err, msgUserNotFound)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) ChangePassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.change_password")

	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return mw.Unauthorized()
	}

	var req transport.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "change_password_failed", err)
	}

	if err := h.Svc.ChangePassword(ctx, p.ID, req); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			l.Warn("change_password_failed", "status", 401, "reason", "wrong current password")
			return echo.NewHTTPError(http.StatusUnauthorized, "Please enter the correct password.")
		}
		return fail(l, "change_password_failed", err, msgUserNotFound)
	}

	l.Info("change_password_success")
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHTTP) UpdatePhoneNumber(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_phone_number")

	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return mw.Unauthorized()
	}

	if err := h.Svc.UpdatePhoneNumber(ctx, p.ID, c.Param("phone_number")); err != nil {
		return fail(l, "update_phone_number_failed", err, msgUserNotFound)
	}

	l.Info("update_phone_number_success")
	return c.NoContent(http.StatusNoContent)
}
