package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/hospital/internal/hash"
	"github.com/Skotchmaster/hospital/internal/validate"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrWrongPassword = errors.New("wrong password")

	// ErrInUse is a conflict raised when other rows still reference the target.
	ErrInUse = fmt.Errorf("%w: still referenced", ErrConflict)
)

// translate maps storage errors onto the service taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return validate.Field("reference", "referenced record does not exist")
	default:
		return err
	}
}

// passwordError reports a password bcrypt refuses as a field error.
func passwordError(field string, err error) error {
	if errors.Is(err, hash.ErrPasswordTooLong) {
		return validate.Field(field, fmt.Sprintf("must be at most %d bytes", hash.MaxPasswordBytes))
	}
	return err
}
