package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/laundrahub/admin-service/internal/auth"
	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/repository"
	"github.com/laundrahub/admin-service/pkg/util"
)

// UserService owns account management, an admin-only surface.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
	logger     *zap.Logger
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int, logger *zap.Logger) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost, logger: logger}
}

// CreateUserInput is a new account as submitted.
type CreateUserInput struct {
	Email       string
	FirstName   string
	LastName    string
	Password    string
	UserType    domain.UserType
	IsStaff     bool
	IsSuperuser bool
}

// CreateUser registers an account with a hashed password.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*domain.UserProfile, error) {
	if in.UserType != domain.UserTypeAdmin && in.UserType != domain.UserTypeStaff {
		return nil, util.NewValidationError("unknown user type", map[string]any{"user_type": in.UserType})
	}
	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, util.NewConflict("email already registered", map[string]any{"email": in.Email})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &domain.UserProfile{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		UserType:     in.UserType,
		IsStaff:      in.IsStaff,
		IsSuperuser:  in.IsSuperuser,
		IsActive:     true,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.String("user_id", user.ID))
	return user, nil
}

// UpdateUserInput is the editable part of an account.
type UpdateUserInput struct {
	FirstName   string
	LastName    string
	UserType    domain.UserType
	IsStaff     bool
	IsSuperuser bool
	IsActive    bool
}

// UpdateUser edits an account. Email and password change through their own
// flows.
func (s *UserService) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*domain.UserProfile, error) {
	if in.UserType != domain.UserTypeAdmin && in.UserType != domain.UserTypeStaff {
		return nil, util.NewValidationError("unknown user type", map[string]any{"user_type": in.UserType})
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.UserType = in.UserType
	user.IsStaff = in.IsStaff
	user.IsSuperuser = in.IsSuperuser
	user.IsActive = in.IsActive
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// GetUser returns one account.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.UserProfile, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers pages through accounts.
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) ([]domain.UserProfile, int64, error) {
	return s.users.List(ctx, page, pageSize)
}
