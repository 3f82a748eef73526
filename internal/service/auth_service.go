package service

import (
	"context"
	"errors"
	"strings"

	"inventory-api/internal/model"
	"inventory-api/internal/repository"
	"inventory-api/pkg/validator"
)

// TokenIssuer signs session tokens. *jwt.TokenService implements it.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type AuthService interface {
	Register(ctx context.Context, req *CredentialsRequest) (*model.User, error)
	Login(ctx context.Context, req *CredentialsRequest) (*LoginResponse, error)
}

type CredentialsRequest struct {
	Username string `json:"username" validate:"notblank,max=255"`
	Password string `json:"password" validate:"required"`
}

// bcrypt rejects inputs longer than this many bytes, regardless of runes.
const maxPasswordBytes = 72

var errPasswordTooLong = validationError("Password must be at most 72 bytes")

type LoginResponse struct {
	Token string `json:"token"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, req *CredentialsRequest) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0].Message())
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, errPasswordTooLong
	}
	username := strings.TrimSpace(req.Username)

	existing, err := s.userRepo.FindByUsername(ctx, username)
	switch {
	case err == nil && existing != nil:
		return nil, ErrUserExists
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	user := &model.User{Username: username}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a session token. Unknown users and
// wrong passwords produce the same error.
func (s *authService) Login(ctx context.Context, req *CredentialsRequest) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0].Message())
	}

	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token}, nil
}
