package transport

import (
	"github.com/Skotchmaster/hospital/internal/hash"
	"github.com/Skotchmaster/hospital/internal/validate"
)

type CreateRequest[M any] interface {
	Validate() error
	Model() *M
}

type UpdateRequest[M any] interface {
	Validate() error
	Apply(m *M)
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreateUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phoneNumber"`
}

func (r CreateUserRequest) Validate() error {
	var v validate.Validator
	return v.Length("username", r.Username, 3, 100).
		Length("email", r.Email, 3, 100).
		Length("firstname", r.Firstname, 3, 100).
		Length("lastname", r.Lastname, 3, 100).
		Length("password", r.Password, 1, 100).
		MaxBytes("password", r.Password, hash.MaxPasswordBytes).
		MaxLength("role", r.Role, 50).
		Length("phoneNumber", r.PhoneNumber, 3, 100).
		Err()
}

type ChangePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate() error {
	var v validate.Validator
	return v.Required("password", r.Password == "").
		Length("new_password", r.NewPassword, 1, 100).
		MaxBytes("new_password", r.NewPassword, hash.MaxPasswordBytes).
		Err()
}

func ValidatePhoneNumber(phone string) error {
	var v validate.Validator
	return v.Length("phone_number", phone, 3, 100).Err()
}

type TodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
}

func (r TodoRequest) Validate() error {
	var v validate.Validator
	return v.Length("title", r.Title, 3, 100).
		Length("description", r.Description, 1, 100).
		Range("priority", r.Priority, 1, 5).
		Err()
}

type DuplicateTodoResponse struct {
	Message      string `json:"message"`
	DuplicatedID int64  `json:"duplicated_id"`
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func orDefault(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
