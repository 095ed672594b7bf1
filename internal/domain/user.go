package domain

import "time"

// UserType distinguishes administrative accounts from shop staff.
type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeStaff UserType = "staff"
)

// Role is the effective capability of a session. It is derived from the
// stored user record, never persisted on its own.
type Role string

const (
	RoleNone  Role = ""
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// UserProfile models a dashboard account. Email is the login field.
type UserProfile struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	UserType     UserType
	IsStaff      bool
	IsSuperuser  bool
	IsActive     bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionUser is the subset of UserProfile written into the session store
// at login. It is the record the route guard derives the role from.
type SessionUser struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Email       string   `json:"email"`
	UserType    UserType `json:"user_type"`
	IsStaff     bool     `json:"is_staff"`
	IsSuperuser bool     `json:"is_superuser"`
}

// SessionUser projects the profile into its session representation.
func (u *UserProfile) SessionUser() *SessionUser {
	return &SessionUser{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		UserType:    u.UserType,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
	}
}

// RoleOf derives the caller's role. A superuser or an explicit admin
// user_type wins; anything without a staff marker is treated as anonymous.
func RoleOf(u *SessionUser) Role {
	if u == nil {
		return RoleNone
	}
	if u.IsSuperuser || u.UserType == UserTypeAdmin {
		return RoleAdmin
	}
	if u.UserType == UserTypeStaff || u.IsStaff {
		return RoleStaff
	}
	return RoleNone
}
