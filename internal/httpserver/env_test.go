package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/hospital/internal/auth"
	"github.com/Skotchmaster/hospital/internal/migrations"
	"github.com/Skotchmaster/hospital/internal/models"
	"github.com/Skotchmaster/hospital/internal/mykafka"
	"github.com/Skotchmaster/hospital/internal/repo"
	"github.com/Skotchmaster/hospital/internal/service"
	"github.com/Skotchmaster/hospital/internal/transport"
	pkgdb "github.com/Skotchmaster/hospital/pkg/db"
	mw "github.com/Skotchmaster/hospital/pkg/middleware/auth"
	"github.com/Skotchmaster/hospital/pkg/tokens"
)

const (
	seedUsername = "isejda"
	seedPassword = "123"
)

type testEnv struct {
	e     *echo.Echo
	db    *gorm.DB
	codec *tokens.Codec
	auth  *service.AuthService
	admin *models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	db, err := pkgdb.Open(ctx, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pkgdb.Close(db) })
	require.NoError(t, migrations.Apply(ctx, db))

	codec, err := tokens.NewCodec([]byte("test-jwt-secret"), "HS256", 20*time.Minute)
	require.NoError(t, err)

	renderer, err := NewRenderer()
	require.NoError(t, err)

	gormRepo := repo.New(db)
	authSvc := service.NewAuthService(gormRepo, codec, mykafka.Discard{})
	authMW := mw.NewAuthMiddleware(&auth.Resolver{Codec: codec}, false)
	todoSvc := &service.TodoService{Repo: gormRepo}

	e := echo.New()
	e.Renderer = renderer
	e.HTTPErrorHandler = ErrorHandler
	e.Pre(echomw.RemoveTrailingSlash())

	Register(e, &Deps{
		AuthMW:   authMW,
		Auth:     &AuthHTTP{Svc: authSvc},
		Users:    &UserHTTP{Svc: &service.UserService{Repo: gormRepo}},
		Todos:    &TodoHTTP{Svc: todoSvc},
		Pages:    &PageHTTP{Todos: todoSvc, AuthMW: authMW},
		Hospital: NewHospitalHTTP(db, mykafka.Discard{}),
		Health:   &HealthHTTP{DB: db},
	})

	env := &testEnv{e: e, db: db, codec: codec, auth: authSvc}
	env.admin = env.seedUser(t, seedUsername, seedPassword, auth.RoleAdmin)
	return env
}

func (env *testEnv) seedUser(t *testing.T, username, password, role string) *models.User {
	t.Helper()

	email := username + "@rdcom.com"
	first, last := "Someone", "Somewhere"
	phone := "00355690000000"
	if username == seedUsername {
		first, last, phone = "Isejda", "Qemali", "00355699149079"
	}

	user, err := env.auth.Provision(context.Background(), transport.CreateUserRequest{
		Username:    username,
		Email:       email,
		Firstname:   first,
		Lastname:    last,
		Password:    password,
		Role:        role,
		PhoneNumber: phone,
	})
	require.NoError(t, err)
	return user
}

func (env *testEnv) tokenFor(t *testing.T, u *models.User) string {
	t.Helper()

	token, _, err := env.codec.Issue(u.Username, u.ID, u.Role)
	require.NoError(t, err)
	return token
}

func (env *testEnv) login(username, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// do sends body as JSON. A string body is sent verbatim.
func (env *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if payload != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) page(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: mw.AccessCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type detailBody struct {
	Detail any `json:"detail"`
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()
	return decode[detailBody](t, rec).Detail
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}
