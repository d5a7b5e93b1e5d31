package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hospital/internal/service"
	"github.com/Skotchmaster/hospital/internal/transport"
	"github.com/Skotchmaster/hospital/pkg/logging"
	mw "github.com/Skotchmaster/hospital/pkg/middleware/auth"
)

const msgTodoNotFound = "Todo not found."

type TodoHTTP struct {
	Svc *service.TodoService
}

func (h *TodoHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.list")

	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return mw.Unauthorized()
	}

	todos, err := h.Svc.List(ctx, p.ID)
	if err != nil {
		return fail(l, "list_todos_failed", err, msgTodoNotFound)
	}
	return c.JSON(http.StatusOK, todos)
}

func (h *TodoHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.get")

	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return mw.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return fail(l, "get_todo_failed", err, msgTodoNotFound)
	}

	todo, err := h.Svc.Get(ctx, p.ID, id)
	if err != nil {
		return fail(l, "get_todo_failed", err, msgTodoNotFound)
	}
	return c.JSON(http.StatusOK, todo)
}

func (h *TodoHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.create")

	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return mw.Unauthorized()
	}

	var req transport.TodoRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_todo_failed", err)
	}

	todo, err := h.Svc.Create(ctx, p.ID, req)
	if err != nil {
		return fail(l, "create_todo_failed", err, msgTodoNotFound)
	}

	l.Info("create_todo_success", "todo_id", todo.ID)
	return c.JSON(http.StatusCreated, todo)
}

func (h *TodoHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.update")

	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return mw.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return fail(l, "update_todo_failed", err, msgTodoNotFound)
	}

	var req transport.TodoRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "update_todo_failed", err)
	}

	if err := h.Svc.Update(ctx, p.ID, id, req); err != nil {
		return fail(l, "update_todo_failed", err, msgTodoNotFound)
	}

	l.Info("update_todo_success", "todo_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *TodoHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.delete")

	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return mw.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return fail(l, "delete_todo_failed", err, msgTodoNotFound)
	}

	if err := h.Svc.Delete(ctx, p.ID, id); err != nil {
		return fail(l, "delete_todo_failed", err, msgTodoNotFound)
	}

	l.Info("delete_todo_success", "todo_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *TodoHTTP) Duplicate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.duplicate")

	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return mw.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return fail(l, "duplicate_todo_failed", err, msgTodoNotFound)
	}

	dup, err := h.Svc.Duplicate(ctx, p.ID, id)
	if err != nil {
		return fail(l, "duplicate_todo_failed", err, msgTodoNotFound)
	}

	l.Info("duplicate_todo_success", "todo_id", id, "duplicated_id", dup.ID)
	return c.JSON(http.StatusCreated, transport.DuplicateTodoResponse{
		Message:      "Todo duplicated successfully",
		DuplicatedID: dup.ID,
	})
}
