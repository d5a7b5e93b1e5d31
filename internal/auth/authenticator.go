package auth

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/Skotchmaster/hospital/internal/hash"
	"github.com/Skotchmaster/hospital/internal/models"
)

type UserLookup interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type Authenticator struct {
	Users UserLookup
}

// spent on unknown usernames so both failures cost one bcrypt comparison
var dummyHash = sync.OnceValue(func() string {
	h, err := hash.HashPassword("not-a-real-password")
	if err != nil {
		return ""
	}
	return h
})

func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*Principal, error) {
	user, err := a.Users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hash.CheckPassword(dummyHash(), password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !hash.CheckPassword(user.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}

	return &Principal{
		Username: user.Username,
		ID:       user.ID,
		Role:     user.Role,
	}, nil
}
