package dto

import (
	"time"

	"github.com/laundrahub/admin-service/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SelectShopRequest payload.
type SelectShopRequest struct {
	Shop string `json:"shop" validate:"required"`
}

// PasswordChangeRequest payload for authenticated password changes.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// PasswordResetRequest payload for initiating reset.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmRequest payload for confirming reset.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// SessionUserResponse mirrors the user record kept in the browser session.
type SessionUserResponse struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	UserType    domain.UserType `json:"user_type"`
	IsStaff     bool            `json:"is_staff"`
	IsSuperuser bool            `json:"is_superuser"`
}

// SessionStateResponse is what the login and session endpoints return.
type SessionStateResponse struct {
	Authenticated bool                 `json:"authenticated"`
	User          *SessionUserResponse `json:"user,omitempty"`
	Role          domain.Role          `json:"role"`
	SelectedShop  domain.Shop          `json:"selected_shop"`
	ShopType      domain.ShopDomain    `json:"shop_type"`
	RootPath      string               `json:"root_path"`
}

// FromSessionUser converts the stored session record.
func FromSessionUser(user *domain.SessionUser) *SessionUserResponse {
	if user == nil {
		return nil
	}
	return &SessionUserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		UserType:    user.UserType,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
	}
}

// CreateUserRequest payload for the admin accounts surface.
type CreateUserRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	FirstName   string          `json:"first_name" validate:"required"`
	LastName    string          `json:"last_name" validate:"required"`
	Password    string          `json:"password" validate:"required,min=8"`
	UserType    domain.UserType `json:"user_type" validate:"required,oneof=admin staff"`
	IsStaff     bool            `json:"is_staff"`
	IsSuperuser bool            `json:"is_superuser"`
}

// UpdateUserRequest payload.
type UpdateUserRequest struct {
	FirstName   string          `json:"first_name" validate:"required"`
	LastName    string          `json:"last_name" validate:"required"`
	UserType    domain.UserType `json:"user_type" validate:"required,oneof=admin staff"`
	IsStaff     bool            `json:"is_staff"`
	IsSuperuser bool            `json:"is_superuser"`
	IsActive    bool            `json:"is_active"`
}

// UserResponse is the account record returned to admins.
type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	UserType    domain.UserType `json:"user_type"`
	IsStaff     bool            `json:"is_staff"`
	IsSuperuser bool            `json:"is_superuser"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// FromUser converts a profile, dropping the password hash.
func FromUser(user *domain.UserProfile) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		UserType:    user.UserType,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// FromUsers converts a page of profiles.
func FromUsers(users []domain.UserProfile) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}
