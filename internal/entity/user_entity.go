package entity

import (
	"time"
)

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleEditor    UserRole = "editor"
	UserRoleModerator UserRole = "moderator"
	UserRoleUser      UserRole = "user"
)

// User is a local account. Username and email are each globally unique.
// PasswordHash must never reach API callers; response mapping strips it.
type User struct {
	Id              string
	Username        string
	Email           string
	PasswordHash    string
	FirstName       string
	LastName        string
	ProfileImageUrl string
	Role            UserRole
	IsActive        bool
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Session is a logged-in session, held in the TTL'd session store. Its id
// travels inside the bearer token; deleting it logs the user out.
type Session struct {
	Id        string
	UserId    string
	CreatedAt time.Time
}
