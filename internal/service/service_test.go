package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/hospital/internal/auth"
	"github.com/Skotchmaster/hospital/internal/hash"
	"github.com/Skotchmaster/hospital/internal/models"
	"github.com/Skotchmaster/hospital/internal/mykafka"
	"github.com/Skotchmaster/hospital/internal/repo"
	"github.com/Skotchmaster/hospital/internal/transport"
	"github.com/Skotchmaster/hospital/internal/validate"
	pkgdb "github.com/Skotchmaster/hospital/pkg/db"
	"github.com/Skotchmaster/hospital/pkg/tokens"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := pkgdb.Open(context.Background(), "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pkgdb.Close(db) })
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()

	codec, err := tokens.NewCodec([]byte("svc-secret"), "HS256", 20*time.Minute)
	require.NoError(t, err)
	return NewAuthService(repo.New(db), codec, nil)
}

func userRequest(username, role string) transport.CreateUserRequest {
	return transport.CreateUserRequest{
		Username:    username,
		Email:       username + "@rdcom.com",
		Firstname:   "First",
		Lastname:    "Last",
		Password:    "123",
		Role:        role,
		PhoneNumber: "00355699149079",
	}
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newAuthService(t, newTestDB(t))

	user, err := svc.Register(ctx, userRequest("isejda", ""), nil)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "123", user.HashedPassword)

	res, err := svc.Login(ctx, "isejda", "123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.Principal.ID)
	assert.WithinDuration(t, time.Now().Add(20*time.Minute), res.ExpiresAt, 5*time.Second)

	_, err = svc.Login(ctx, "isejda", "bad")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "ghost", "123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Register_Conflict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newAuthService(t, newTestDB(t))

	_, err := svc.Register(ctx, userRequest("isejda", ""), nil)
	require.NoError(t, err)

	_, err = svc.Register(ctx, userRequest("isejda", ""), nil)
	assert.ErrorIs(t, err, ErrConflict)

	other := userRequest("someone", "")
	other.Email = "isejda@rdcom.com"
	_, err = svc.Register(ctx, other, nil)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthService_Register_PrivilegedRoles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newAuthService(t, newTestDB(t))

	admin := &auth.Principal{Username: "isejda", ID: 1, Role: auth.RoleAdmin}
	doctor := &auth.Principal{Username: "house", ID: 2, Role: auth.RoleDoctor}

	_, err := svc.Register(ctx, userRequest("a1", auth.RoleDoctor), nil)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	_, err = svc.Register(ctx, userRequest("a2", auth.RoleAdmin), doctor)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	user, err := svc.Register(ctx, userRequest("a3", auth.RoleSecretary), admin)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleSecretary, user.Role)

	user, err = svc.Provision(ctx, userRequest("a4", auth.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, user.Role)
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t, newTestDB(t))

	req := userRequest("ab", "")
	req.PhoneNumber = ""
	_, err := svc.Register(context.Background(), req, nil)

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"username", "phoneNumber"}, fields)
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	t.Parallel()

	req := userRequest("isejda", "")
	req.Password = strings.Repeat("p", 80)
	_, err := newAuthService(t, newTestDB(t)).Register(context.Background(), req, nil)

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Fields[0].Field)
}

func TestPasswordError(t *testing.T) {
	t.Parallel()

	var verr *validate.Error
	require.ErrorAs(t, passwordError("new_password", hash.ErrPasswordTooLong), &verr)
	assert.Equal(t, "new_password", verr.Fields[0].Field)

	other := errors.New("boom")
	assert.Same(t, other, passwordError("password", other))
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	authSvc := newAuthService(t, db)
	users := &UserService{Repo: repo.New(db)}

	user, err := authSvc.Register(ctx, userRequest("isejda", ""), nil)
	require.NoError(t, err)

	err = users.ChangePassword(ctx, user.ID, transport.ChangePasswordRequest{Password: "nope", NewPassword: "456"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, users.ChangePassword(ctx, user.ID, transport.ChangePasswordRequest{Password: "123", NewPassword: "456"}))

	_, err = authSvc.Login(ctx, "isejda", "123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = authSvc.Login(ctx, "isejda", "456")
	assert.NoError(t, err)

	err = users.ChangePassword(ctx, 999, transport.ChangePasswordRequest{Password: "456", NewPassword: "789"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = users.ChangePassword(ctx, user.ID, transport.ChangePasswordRequest{Password: "456", NewPassword: strings.Repeat("p", 80)})
	assert.ErrorIs(t, err, validate.ErrValidation)
}

func TestUserService_UpdatePhoneNumber(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	users := &UserService{Repo: repo.New(db)}

	user, err := newAuthService(t, db).Register(ctx, userRequest("isejda", ""), nil)
	require.NoError(t, err)

	require.NoError(t, users.UpdatePhoneNumber(ctx, user.ID, "0690000000"))
	got, err := users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "0690000000", got.PhoneNumber)

	assert.ErrorIs(t, users.UpdatePhoneNumber(ctx, user.ID, "1"), validate.ErrValidation)
	assert.ErrorIs(t, users.UpdatePhoneNumber(ctx, 999, "0690000000"), ErrNotFound)
}

func TestTodoService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	svc := &TodoService{Repo: repo.New(db)}

	authSvc := newAuthService(t, db)
	owner, err := authSvc.Register(ctx, userRequest("isejda", ""), nil)
	require.NoError(t, err)
	other, err := authSvc.Register(ctx, userRequest("stranger", ""), nil)
	require.NoError(t, err)

	req := transport.TodoRequest{Title: "learn the codee!", Description: "Need to learn everyday", Priority: 5}
	todo, err := svc.Create(ctx, owner.ID, req)
	require.NoError(t, err)

	_, err = svc.Get(ctx, other.ID, todo.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, other.ID, todo.ID), ErrNotFound)

	req.Complete = true
	require.NoError(t, svc.Update(ctx, owner.ID, todo.ID, req))
	got, err := svc.Get(ctx, owner.ID, todo.ID)
	require.NoError(t, err)
	assert.True(t, got.Complete)

	dup, err := svc.Duplicate(ctx, owner.ID, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Title, dup.Title)
	assert.True(t, dup.Complete)

	list, err := svc.List(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = svc.List(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	req.Priority = 9
	assert.ErrorIs(t, svc.Update(ctx, owner.ID, todo.ID, req), validate.ErrValidation)
}

type departments = ResourceService[models.Department, transport.DepartmentCreate, transport.DepartmentUpdate]

func TestResourceService_PartialUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewResourceService[models.Department, transport.DepartmentCreate, transport.DepartmentUpdate](newTestDB(t))

	desc := "Heart"
	created, err := svc.Create(ctx, transport.DepartmentCreate{Name: "Cardiology", Description: &desc})
	require.NoError(t, err)

	loc := "Block C"
	updated, err := svc.Update(ctx, created.ID, transport.DepartmentUpdate{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Heart", *updated.Description)
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Block C", *updated.Location)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestResourceService_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var svc *departments = NewResourceService[models.Department, transport.DepartmentCreate, transport.DepartmentUpdate](newTestDB(t))

	_, err := svc.Create(ctx, transport.DepartmentCreate{Name: "X"})
	assert.ErrorIs(t, err, validate.ErrValidation)

	_, err = svc.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	name := "Oncology"
	_, err = svc.Update(ctx, 42, transport.DepartmentUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 42), ErrNotFound)

	total, items, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, items)
}

func TestResourceService_ReferentialIntegrity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	patients := NewResourceService[models.Patient, transport.PatientCreate, transport.PatientUpdate](db)
	appointments := NewResourceService[models.Appointment, transport.AppointmentCreate, transport.AppointmentUpdate](db)
	invoices := NewResourceService[models.Invoice, transport.InvoiceCreate, transport.InvoiceUpdate](db)

	missing := int64(999)
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := appointments.Create(ctx, transport.AppointmentCreate{PatientID: &missing, DoctorID: &missing, ScheduledAt: &at})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "reference", verr.Fields[0].Field)

	dob := models.NewDate(1990, time.May, 4)
	patient, err := patients.Create(ctx, transport.PatientCreate{FirstName: "Ana", LastName: "Hoxha", DOB: &dob})
	require.NoError(t, err)

	total := 120.0
	invoice, err := invoices.Create(ctx, transport.InvoiceCreate{PatientID: &patient.ID, IssuedAt: &at, TotalAmount: &total})
	require.NoError(t, err)

	_, err = invoices.Update(ctx, invoice.ID, transport.InvoiceUpdate{PatientID: &missing})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "reference", verr.Fields[0].Field)

	err = patients.Delete(ctx, patient.ID)
	assert.ErrorIs(t, err, ErrInUse)
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, invoices.Delete(ctx, invoice.ID))
	require.NoError(t, patients.Delete(ctx, patient.ID))
}

type published struct {
	topic string
	key   string
	event mykafka.Event
}

type recorder struct {
	mu   sync.Mutex
	got  []published
	fail bool
}

func (r *recorder) PublishEvent(_ context.Context, topic, key string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("broker down")
	}
	r.got = append(r.got, published{topic: topic, key: key, event: event.(mykafka.Event)})
	return nil
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.got))
	for _, p := range r.got {
		out = append(out, p.event.Type)
	}
	return out
}

func TestAuthService_PublishesRegistration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := &recorder{}
	svc := newAuthService(t, newTestDB(t))
	svc.Events = rec

	user, err := svc.Register(ctx, userRequest("isejda", ""), nil)
	require.NoError(t, err)
	_, err = svc.Login(ctx, "isejda", "123")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "isejda", "wrong")
	require.Error(t, err)

	assert.Equal(t, []string{"user_registered"}, rec.types())
	first := rec.got[0]
	assert.Equal(t, mykafka.TopicUserEvents, first.topic)
	assert.Equal(t, fmt.Sprint(user.ID), first.key)
	assert.Equal(t, "isejda", first.event.Username)
	assert.False(t, first.event.At.IsZero())
}

func TestResourceService_PublishesChanges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := &recorder{}
	svc := NewResourceService[models.Department, transport.DepartmentCreate, transport.DepartmentUpdate](newTestDB(t))
	svc.Resource = "departments"
	svc.Events = rec

	dep, err := svc.Create(ctx, transport.DepartmentCreate{Name: "Cardiology"})
	require.NoError(t, err)
	name := "Oncology"
	_, err = svc.Update(ctx, dep.ID, transport.DepartmentUpdate{Name: &name})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, dep.ID))
	require.ErrorIs(t, svc.Delete(ctx, dep.ID), ErrNotFound)

	assert.Equal(t, []string{"created", "updated", "deleted"}, rec.types())
	assert.Equal(t, dep.ID, rec.got[0].event.ID)
	for _, p := range rec.got {
		assert.Equal(t, mykafka.TopicHospitalEvents, p.topic)
		assert.Equal(t, "departments", p.key)
		assert.Equal(t, "departments", p.event.Resource)
	}
	assert.Equal(t, dep.ID, rec.got[2].event.ID)
}

func TestResourceService_PublishFailureIsIgnored(t *testing.T) {
	t.Parallel()

	svc := NewResourceService[models.Department, transport.DepartmentCreate, transport.DepartmentUpdate](newTestDB(t))
	svc.Events = &recorder{fail: true}

	dep, err := svc.Create(context.Background(), transport.DepartmentCreate{Name: "Cardiology"})
	require.NoError(t, err)
	assert.NotZero(t, dep.ID)
}
