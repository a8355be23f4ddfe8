package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-service/internal/auth"
	"shop-service/internal/entity"
	"shop-service/internal/repository"
)

func newUserService(t *testing.T) (*UserService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewUserRepository(db)
	svc := NewUserService(*repo, auth.NewTokenIssuer("test-secret"), 30*time.Minute, nil)
	return svc, mock
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Ann", "ann@x.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	user, err := svc.CreateUser(context.Background(), &entity.UserCreate{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", user.Password)
	assert.True(t, auth.CheckPassword("secret1", user.Password))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginIssuesTokenForValidCredentials(t *testing.T) {
	svc, mock := newUserService(t)

	digest, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password"}).
		AddRow(1, "Ann", "ann@x.com", digest)
	mock.ExpectQuery("SELECT id, name, email, password FROM users WHERE email").
		WithArgs("ann@x.com").
		WillReturnRows(rows)

	token, err := svc.Login(context.Background(), "ann@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := auth.NewTokenIssuer("test-secret").Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", subject)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, mock := newUserService(t)

	digest, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password"}).
		AddRow(1, "Ann", "ann@x.com", digest)
	mock.ExpectQuery("SELECT id, name, email, password FROM users WHERE email").
		WithArgs("ann@x.com").
		WillReturnRows(rows)

	_, err = svc.Login(context.Background(), "ann@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectQuery("SELECT id, name, email, password FROM users WHERE email").
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Login(context.Background(), "nobody@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSurfacesStoreFailure(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectQuery("SELECT id, name, email, password FROM users WHERE email").
		WithArgs("ann@x.com").
		WillReturnError(sql.ErrConnDone)

	_, err := svc.Login(context.Background(), "ann@x.com", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
