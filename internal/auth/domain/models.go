// Package domain contains the user model and session contracts.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// User is a persisted dashboard user.
type User struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"not null" json:"name"`
	Email        string       `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash string       `gorm:"column:password;not null" json:"-"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// UserView is the safe projection returned to callers.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	User     UserView
	RawToken string
	ExpireAt time.Time
}

type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserView, error)
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
	Authenticate(ctx context.Context, rawToken string) (UserView, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid_session")
	ErrUserExists         = errors.New("user_exists")
	ErrInvalidRequest     = errors.New("invalid_request")
)
