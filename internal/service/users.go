package service

import (
	"context"

	"github.com/Skotchmaster/hospital/internal/hash"
	"github.com/Skotchmaster/hospital/internal/models"
	"github.com/Skotchmaster/hospital/internal/repo"
	"github.com/Skotchmaster/hospital/internal/transport"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.Repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id int64, req transport.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.Repo.FindUserByID(ctx, id)
	if err != nil {
		return translate(err)
	}
	if !hash.CheckPassword(user.HashedPassword, req.Password) {
		return ErrWrongPassword
	}

	pwHash, err := hash.HashPassword(req.NewPassword)
	if err != nil {
		return passwordError("new_password", err)
	}
	return translate(s.Repo.UpdatePassword(ctx, id, pwHash))
}

func (s *UserService) UpdatePhoneNumber(ctx context.Context, id int64, phone string) error {
	if err := transport.ValidatePhoneNumber(phone); err != nil {
		return err
	}
	return translate(s.Repo.UpdatePhoneNumber(ctx, id, phone))
}
