package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "github.com/Skotchmaster/hospital/pkg/middleware/auth"
)

type Deps struct {
	AuthMW   *mw.AuthMiddleware
	Auth     *AuthHTTP
	Users    *UserHTTP
	Todos    *TodoHTTP
	Pages    *PageHTTP
	Hospital *HospitalHTTP
	Health   *HealthHTTP
}

// Register expects trailing slashes to be stripped by a Pre middleware.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error { return c.Redirect(http.StatusFound, "/hospital/departments") })
	e.GET("/healthy", d.Health.Healthy)
	e.GET("/health/live", d.Health.Live)
	e.GET("/health/ready", d.Health.Ready)

	bearer := d.AuthMW.RequireBearer
	cookie := d.AuthMW.RequireCookie

	a := e.Group("/auth")
	a.POST("", d.Auth.Register, d.AuthMW.OptionalBearer)
	a.POST("/token", d.Auth.Login)
	a.GET("/logout", d.Auth.Logout)
	a.GET("/login-page", d.Auth.LoginPage)
	a.GET("/register-page", d.Auth.RegisterPage)

	u := e.Group("/user")
	u.GET("", d.Users.Get, bearer)
	u.POST("/change_password", d.Users.ChangePassword, bearer)
	u.PUT("/phoneNumber/:phone_number", d.Users.UpdatePhoneNumber, bearer)

	t := e.Group("/todos")
	t.GET("", d.Todos.List, bearer)
	t.GET("/todos/:id", d.Todos.Get, bearer)
	t.POST("/todos", d.Todos.Create, bearer)
	t.PUT("/todos/:id", d.Todos.Update, bearer)
	t.DELETE("/todos/:id", d.Todos.Delete, bearer)
	t.POST("/duplicate/:id", d.Todos.Duplicate, bearer)
	t.GET("/todo-page", d.Pages.TodoPage, cookie)
	t.GET("/add-todo-page", d.Pages.AddTodoPage, cookie)
	t.GET("/edit-todo-page/:id", d.Pages.EditTodoPage, cookie)

	h := e.Group("/hospital", bearer)
	d.Hospital.Mount(h)
}
