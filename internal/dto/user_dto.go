package dto

import (
	"time"
)

type CreateUserRequest struct {
	Username        string `json:"username" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageUrl string `json:"profileImageUrl"`
	Role            string `json:"role" validate:"omitempty,oneof=admin editor moderator user"`
	IsActive        *bool  `json:"isActive"`
}

type UpdateUserRequest struct {
	Username        *string `json:"username" validate:"omitempty,min=3"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Password        *string `json:"password" validate:"omitempty,min=6"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageUrl *string `json:"profileImageUrl"`
	Role            *string `json:"role" validate:"omitempty,oneof=admin editor moderator user"`
	IsActive        *bool   `json:"isActive"`
}

// UserResponse deliberately has no password field.
type UserResponse struct {
	Id              string     `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	ProfileImageUrl string     `json:"profileImageUrl"`
	Role            string     `json:"role"`
	IsActive        bool       `json:"isActive"`
	LastLoginAt     *time.Time `json:"lastLoginAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
