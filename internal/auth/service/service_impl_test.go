package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/acmelabs/facture/internal/auth/domain"
	"github.com/acmelabs/facture/internal/auth/repository"
	"github.com/acmelabs/facture/internal/clock"
	"github.com/acmelabs/facture/internal/config"
)

func setupAuth(t *testing.T) (*Service, *clock.FakeClock) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fc := clock.NewFakeClock(time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC))

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Cfg:   config.Config{AuthJWTSecret: "test-secret", AuthSessionTTL: time.Hour},
		GenID: node,
		Clock: fc,
		Repo:  repository.Provide(),
	}).(*Service)

	return svc, fc
}

func TestCreateUserAndLogin(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	view, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Name:     "Demo User",
		Email:    "Demo@Facture.dev",
		Password: "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "demo@facture.dev", view.Email)

	result, err := svc.Login(ctx, domain.LoginRequest{Email: "demo@facture.dev", Password: "123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.RawToken)
	assert.Equal(t, view.ID, result.User.ID)

	authed, err := svc.Authenticate(ctx, result.RawToken)
	require.NoError(t, err)
	assert.Equal(t, view.ID, authed.ID)
	assert.Equal(t, "demo@facture.dev", authed.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	req := domain.CreateUserRequest{Name: "Demo", Email: "demo@facture.dev", Password: "123456"}
	_, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, domain.CreateUserRequest{Name: "Demo", Email: "demo@facture.dev", Password: "123456"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "demo@facture.dev", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "nobody@facture.dev", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	svc, fc := setupAuth(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, domain.CreateUserRequest{Name: "Demo", Email: "demo@facture.dev", Password: "123456"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginRequest{Email: "demo@facture.dev", Password: "123456"})
	require.NoError(t, err)

	fc.Advance(2 * time.Hour)

	_, err = svc.Authenticate(ctx, result.RawToken)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestAuthenticateGarbageToken(t *testing.T) {
	svc, _ := setupAuth(t)

	_, err := svc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)

	_, err = svc.Authenticate(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}
