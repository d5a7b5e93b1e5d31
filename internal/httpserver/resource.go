package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hospital/internal/service"
	"github.com/Skotchmaster/hospital/internal/transport"
	"github.com/Skotchmaster/hospital/internal/util"
	"github.com/Skotchmaster/hospital/pkg/logging"
)

const headerTotalCount = "X-Total-Count"

// ResourceHTTP serves CRUD for one hospital table. Path is the URL segment,
// Name is used in log events.
type ResourceHTTP[M any, C transport.CreateRequest[M], U transport.UpdateRequest[M]] struct {
	Path     string
	Name     string
	NotFound string
	Svc      *service.ResourceService[M, C, U]
}

func (h *ResourceHTTP[M, C, U]) event(op string) string {
	return op + "_" + h.Name + "_failed"
}

func (h *ResourceHTTP[M, C, U]) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.Name+".list")

	offset, limit := util.Window(c.QueryParam("page"), c.QueryParam("size"))
	total, items, err := h.Svc.List(ctx, offset, limit)
	if err != nil {
		return fail(l, h.event("list"), err, h.NotFound)
	}

	c.Response().Header().Set(headerTotalCount, strconv.FormatInt(total, 10))
	return c.JSON(http.StatusOK, items)
}

func (h *ResourceHTTP[M, C, U]) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.Name+".get")

	id, err := pathID(c, "id")
	if err != nil {
		return fail(l, h.event("get"), err, h.NotFound)
	}

	m, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, h.event("get"), err, h.NotFound)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *ResourceHTTP[M, C, U]) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.Name+".create")

	var req C
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, h.event("create"), err)
	}

	m, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, h.event("create"), err, h.NotFound)
	}

	l.Info("create_" + h.Name + "_success")
	return c.JSON(http.StatusCreated, m)
}

func (h *ResourceHTTP[M, C, U]) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.Name+".update")

	id, err := pathID(c, "id")
	if err != nil {
		return fail(l, h.event("update"), err, h.NotFound)
	}

	var req U
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, h.event("update"), err)
	}

	m, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return fail(l, h.event("update"), err, h.NotFound)
	}

	l.Info("update_"+h.Name+"_success", "id", id)
	return c.JSON(http.StatusOK, m)
}

func (h *ResourceHTTP[M, C, U]) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.Name+".delete")

	id, err := pathID(c, "id")
	if err != nil {
		return fail(l, h.event("delete"), err, h.NotFound)
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, h.event("delete"), err, h.NotFound)
	}

	l.Info("delete_"+h.Name+"_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
