package auth

import "errors"

const (
	MsgCouldNotValidate = "COULD NOT VALIDATE USER"
	MsgForbidden        = "Not enough permissions"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Principal is the caller identity resolved for a single request.
type Principal struct {
	Username string `json:"username"`
	ID       int64  `json:"id"`
	Role     string `json:"role"`
}
