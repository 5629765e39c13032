package service

import (
	"context"
	"strings"
	"time"

	"github.com/acmelabs/facture/internal/auth/domain"
	"github.com/acmelabs/facture/internal/clock"
	"github.com/acmelabs/facture/internal/config"
	pkgdb "github.com/acmelabs/facture/pkg/db"
	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Cfg   config.Config
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	cfg   config.Config
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("auth.service"),
		cfg:   p.Cfg,
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserView, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") || req.Password == "" {
		return domain.UserView{}, domain.ErrInvalidRequest
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserView{}, err
	}

	user := domain.User{
		ID:           s.genID.Generate(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &user); err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.UserView{}, domain.ErrUserExists
		}
		return domain.UserView{}, err
	}

	return userView(user), nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if user == nil {
		return domain.LoginResult{}, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResult{}, domain.ErrInvalidCredentials
	}

	now := s.clock.Now()
	expireAt := now.Add(s.cfg.AuthSessionTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"name":  user.Name,
		"email": user.Email,
		"jti":   s.genID.Generate().String(),
		"iat":   now.Unix(),
		"exp":   expireAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.AuthJWTSecret))
	if err != nil {
		return domain.LoginResult{}, err
	}

	return domain.LoginResult{
		User:     userView(*user),
		RawToken: token,
		ExpireAt: expireAt,
	}, nil
}

// Authenticate verifies the session token and returns the user identity
// embedded in its claims. Sessions are stateless; no lookup is needed.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (domain.UserView, error) {
	_ = ctx
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return domain.UserView{}, domain.ErrInvalidSession
	}

	token, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidSession
		}
		return []byte(s.cfg.AuthJWTSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return s.clock.Now() }))
	if err != nil || !token.Valid {
		return domain.UserView{}, domain.ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.UserView{}, domain.ErrInvalidSession
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return domain.UserView{}, domain.ErrInvalidSession
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return domain.UserView{
		ID:    sub,
		Name:  name,
		Email: email,
	}, nil
}

func userView(user domain.User) domain.UserView {
	return domain.UserView{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}
