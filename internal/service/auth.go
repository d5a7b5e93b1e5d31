package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Skotchmaster/hospital/internal/auth"
	"github.com/Skotchmaster/hospital/internal/hash"
	"github.com/Skotchmaster/hospital/internal/models"
	"github.com/Skotchmaster/hospital/internal/mykafka"
	"github.com/Skotchmaster/hospital/internal/repo"
	"github.com/Skotchmaster/hospital/internal/transport"
	"github.com/Skotchmaster/hospital/pkg/logging"
	"github.com/Skotchmaster/hospital/pkg/tokens"
)

type AuthService struct {
	Repo          *repo.GormRepo
	Authenticator *auth.Authenticator
	Codec         *tokens.Codec
	Events        mykafka.Publisher
}

func NewAuthService(r *repo.GormRepo, codec *tokens.Codec, events mykafka.Publisher) *AuthService {
	return &AuthService{
		Repo:          r,
		Authenticator: &auth.Authenticator{Users: r},
		Codec:         codec,
		Events:        events,
	}
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Principal   *auth.Principal
}

// Register creates an account. Roles other than "user" need an admin caller.
func (s *AuthService) Register(ctx context.Context, req transport.CreateUserRequest, caller *auth.Principal) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register", "username", req.Username)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = auth.RoleUser
	}
	if role != auth.RoleUser {
		if _, err := auth.RequireRoles(auth.Admin)(caller); err != nil {
			l.Warn("register_failed", "reason", "privileged role requires admin", "role", role)
			return nil, err
		}
	}

	return s.create(ctx, req, role)
}

// Provision creates an account with any role. Operator tooling only.
func (s *AuthService) Provision(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = auth.RoleUser
	}
	return s.create(ctx, req, role)
}

func (s *AuthService) create(ctx context.Context, req transport.CreateUserRequest, role string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.create_user", "username", req.Username)

	exists, err := s.Repo.UserExists(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		l.Warn("create_user_failed", "status", 409, "reason", "username or email taken")
		return nil, ErrConflict
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, passwordError("password", err)
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		Firstname:      req.Firstname,
		Lastname:       req.Lastname,
		HashedPassword: pwHash,
		IsActive:       true,
		Role:           role,
		PhoneNumber:    req.PhoneNumber,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, translate(err)
	}

	l.Info("user_created", "user_id", user.ID, "role", role)
	publish(ctx, s.Events, mykafka.TopicUserEvents, fmt.Sprint(user.ID), mykafka.Event{
		Type:     "user_registered",
		UserID:   user.ID,
		Username: user.Username,
		Role:     role,
	})
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	p, err := s.Authenticator.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401, "reason", "invalid username or password")
			return nil, err
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	token, exp, err := s.Codec.Issue(p.Username, p.ID, p.Role)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   exp,
		Principal:   p,
	}, nil
}
