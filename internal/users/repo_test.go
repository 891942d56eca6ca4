package users

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio-backend/pkg/db"
)

func setupUsersTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL,
  email TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME,
  CONSTRAINT users_username_key UNIQUE (username),
  CONSTRAINT users_email_key UNIQUE (email)
);`
	require.NoError(t, conn.Exec(users).Error)
	return conn
}

func TestRepositoryCreateAndFind(t *testing.T) {
	conn := setupUsersTestDB(t, "users_create_find")
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{Username: "ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", byID.Username)

	byUsername, err := repo.FindByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)

	byEmail, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	conn := setupUsersTestDB(t, "users_find_missing")
	repo := NewRepository(conn)

	_, err := repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryCreateDuplicateUsername(t *testing.T) {
	conn := setupUsersTestDB(t, "users_duplicate")
	repo := NewRepository(conn)
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateUserDTO{Username: "grace", Email: "grace@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreateUserDTO{Username: "grace", Email: "other@example.com"})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, ""))
}

func TestRepositoryListPagination(t *testing.T) {
	conn := setupUsersTestDB(t, "users_list")
	repo := NewRepository(conn)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, CreateUserDTO{
			Username: fmt.Sprintf("user-%d", i),
			Email:    fmt.Sprintf("user-%d@example.com", i),
		})
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "user-1", page[0].Username)
	assert.Equal(t, "user-2", page[1].Username)

	empty, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepositoryExists(t *testing.T) {
	conn := setupUsersTestDB(t, "users_exists")
	repo := NewRepository(conn)
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateUserDTO{Username: "linus", Email: "linus@example.com"})
	require.NoError(t, err)

	usernameTaken, emailTaken, err := repo.Exists(ctx, "linus", "free@example.com")
	require.NoError(t, err)
	assert.True(t, usernameTaken)
	assert.False(t, emailTaken)

	usernameTaken, emailTaken, err = repo.Exists(ctx, "", "linus@example.com")
	require.NoError(t, err)
	assert.False(t, usernameTaken)
	assert.True(t, emailTaken)
}

func TestRepositoryUpdateMergesFields(t *testing.T) {
	conn := setupUsersTestDB(t, "users_update")
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{Username: "old-name", Email: "keep@example.com"})
	require.NoError(t, err)

	newName := "new-name"
	updated, err := repo.Update(ctx, created.ID, UpdateUserDTO{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, "new-name", updated.Username)
	assert.Equal(t, "keep@example.com", updated.Email)
	require.NotNil(t, updated.UpdatedAt)

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-name", stored.Username)
	assert.NotNil(t, stored.UpdatedAt)
}

func TestRepositoryUpdateEmptyPayloadOnlyRefreshesUpdatedAt(t *testing.T) {
	conn := setupUsersTestDB(t, "users_update_empty")
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{Username: "steady", Email: "steady@example.com"})
	require.NoError(t, err)
	require.Nil(t, created.UpdatedAt)

	updated, err := repo.Update(ctx, created.ID, UpdateUserDTO{})
	require.NoError(t, err)
	assert.Equal(t, "steady", updated.Username)
	assert.Equal(t, "steady@example.com", updated.Email)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)
	require.NotNil(t, updated.UpdatedAt)
}

func TestRepositoryUpdateMissing(t *testing.T) {
	conn := setupUsersTestDB(t, "users_update_missing")
	repo := NewRepository(conn)

	name := "ghost"
	_, err := repo.Update(context.Background(), 12345, UpdateUserDTO{Username: &name})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDelete(t *testing.T) {
	conn := setupUsersTestDB(t, "users_delete")
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{Username: "temp", Email: "temp@example.com"})
	require.NoError(t, err)

	rows, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
