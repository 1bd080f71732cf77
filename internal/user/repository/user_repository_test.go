package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/domain"
	"bistro/internal/errors"
)

func TestUserRepository_FindByID_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM Users")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "createdAt", "updatedAt"}).
			AddRow(1, "John", "john@example.com", now, now))

	repo := NewMySQLUserRepository(db)

	user, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "John", user.Name)
	assert.Equal(t, "john@example.com", user.Email)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM Users")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "createdAt", "updatedAt"}))

	repo := NewMySQLUserRepository(db)

	user, err := repo.FindByID(context.Background(), 99)
	assert.Error(t, err)
	assert.Nil(t, user)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, "User", nfe.Entity)
}

func TestUserRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Users")).
		WithArgs("John", "john@example.com").
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := NewMySQLUserRepository(db)

	id, err := repo.Insert(context.Background(), domain.User{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}
