package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hospital/internal/auth"
	"github.com/Skotchmaster/hospital/internal/service"
	"github.com/Skotchmaster/hospital/internal/validate"
	mw "github.com/Skotchmaster/hospital/pkg/middleware/auth"
)

const (
	msgInternal = "Internal Server Error"
	msgConflict = "Resource already exists."
	msgInUse    = "Resource is still referenced by other records."
)

// ErrorHandler renders every error as {"detail": ...}. 5xx details are replaced
// with a generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var detail any = msgInternal

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			detail = he.Message
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"detail": detail})
}

// fail logs err under event and converts it into an *echo.HTTPError.
// notFound is the detail used for service.ErrNotFound.
func fail(l *slog.Logger, event string, err error, notFound string) error {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		l.Warn(event, "status", 422, "reason", "validation failed", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, verr.Fields)
	case errors.Is(err, service.ErrNotFound):
		l.Warn(event, "status", 404, "reason", notFound)
		return echo.NewHTTPError(http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrInUse):
		l.Warn(event, "status", 409, "reason", "still referenced", "error", err)
		return echo.NewHTTPError(http.StatusConflict, msgInUse)
	case errors.Is(err, service.ErrConflict):
		l.Warn(event, "status", 409, "reason", "unique constraint", "error", err)
		return echo.NewHTTPError(http.StatusConflict, msgConflict)
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, auth.ErrInvalidCredentials):
		l.Warn(event, "status", 401, "error", err)
		return mw.Unauthorized()
	case errors.Is(err, auth.ErrForbidden):
		l.Warn(event, "status", 403, "error", err)
		return echo.NewHTTPError(http.StatusForbidden, auth.MsgForbidden)
	default:
		l.Error(event, "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgInternal).SetInternal(err)
	}
}

func invalidBody(l *slog.Logger, event string, err error) error {
	l.Warn(event, "status", 422, "reason", "invalid body", "error", err)
	return echo.NewHTTPError(http.StatusUnprocessableEntity, validate.Field("body", "invalid request body").Fields)
}

// pathID parses a strictly positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := parsePositive(c.Param(name))
	if err != nil {
		return 0, validate.Field(name, "must be an integer greater than 0")
	}
	return id, nil
}
