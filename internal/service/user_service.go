package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"shop-service/internal/auth"
	"shop-service/internal/entity"
	"shop-service/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// ErrInvalidCredentials covers unknown emails and password mismatches
// alike, so a caller cannot tell which one failed.
var ErrInvalidCredentials = errors.New("incorrect email or password")

type UserService struct {
	repo     repository.UserRepository
	issuer   *auth.TokenIssuer
	tokenTTL time.Duration
	rdb      *redis.Client
}

// NewUserService creates a new instance of UserService. rdb may be nil;
// issued tokens are then not cached.
func NewUserService(repo repository.UserRepository, issuer *auth.TokenIssuer, tokenTTL time.Duration, rdb *redis.Client) *UserService {
	return &UserService{repo: repo, issuer: issuer, tokenTTL: tokenTTL, rdb: rdb}
}

// CreateUser hashes the plaintext password and stores the user.
func (s *UserService) CreateUser(ctx context.Context, req *entity.UserCreate) (*entity.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Name: req.Name, Email: req.Email, Password: hash}
	createdUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	return createdUser, nil
}

// ListUsers returns all users in store order.
func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}

	return users, nil
}

// Login verifies the credentials and issues a session token for the
// user's email. The token is also cached in redis when a client is
// configured; cache failures never fail the login.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		logger.Error().Err(err).Msg("Error looking up user")
		return "", err
	}

	if !auth.CheckPassword(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Email, s.tokenTTL)
	if err != nil {
		logger.Error().Err(err).Msg("Error issuing token")
		return "", err
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, user.Email, token, s.tokenTTL).Err(); err != nil {
			logger.Warn().Err(err).Msg("Error caching session token")
		}
	}

	return token, nil
}
