package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hospital/internal/service"
	"github.com/Skotchmaster/hospital/pkg/logging"
	mw "github.com/Skotchmaster/hospital/pkg/middleware/auth"
)

// PageHTTP renders the browser pages. Routes sit behind RequireCookie.
type PageHTTP struct {
	Todos  *service.TodoService
	AuthMW *mw.AuthMiddleware
}

func (h *PageHTTP) TodoPage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "page.todo")

	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return h.AuthMW.RedirectToLogin(c)
	}

	todos, err := h.Todos.List(ctx, p.ID)
	if err != nil {
		return fail(l, "todo_page_failed", err, msgTodoNotFound)
	}

	return c.Render(http.StatusOK, "todo.html", echo.Map{
		"User":  p,
		"Todos": todos,
	})
}

func (h *PageHTTP) AddTodoPage(c echo.Context) error {
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return h.AuthMW.RedirectToLogin(c)
	}
	return c.Render(http.StatusOK, "add-todo.html", echo.Map{"User": p})
}

// EditTodoPage sends the browser back to login when the todo is not the caller's.
func (h *PageHTTP) EditTodoPage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "page.edit_todo")

	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return h.AuthMW.RedirectToLogin(c)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return h.AuthMW.RedirectToLogin(c)
	}

	todo, err := h.Todos.Get(ctx, p.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Info("edit_todo_page_redirect", "status", 302, "todo_id", id)
			return h.AuthMW.RedirectToLogin(c)
		}
		return fail(l, "edit_todo_page_failed", err, msgTodoNotFound)
	}

	return c.Render(http.StatusOK, "edit-todo.html", echo.Map{
		"User": p,
		"Todo": todo,
	})
}
