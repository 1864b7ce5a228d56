package tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/medkeeper/internal/models"
	"github.com/IvanChernomyrdin/medkeeper/internal/repository"
	serr "github.com/IvanChernomyrdin/medkeeper/internal/shared/errors"
	"github.com/IvanChernomyrdin/medkeeper/internal/store"
)

func newUsersRepo(t *testing.T) (*repository.UsersRepository, *store.JSONFile[models.User]) {
	t.Helper()

	s := store.New[models.User](filepath.Join(t.TempDir(), "data", "userdata.json"), store.Options{})
	return repository.NewUsersRepository(s), s
}

func testUser(id, email string) models.User {
	return models.User{
		ID:        id,
		Name:      "Name " + id,
		Email:     email,
		Phone:     "+100",
		Password:  "digest-" + id,
		CreatedAt: "2026-01-02 03:04:05",
	}
}

func TestUsersRepository_Create_OK(t *testing.T) {
	ctx := context.Background()
	repo, s := newUsersRepo(t)

	u := testUser("1", "a@mail.com")
	require.NoError(t, repo.Create(ctx, u))

	all, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.User{u}, all)
}

func TestUsersRepository_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo, s := newUsersRepo(t)

	require.NoError(t, repo.Create(ctx, testUser("1", "a@mail.com")))
	err := repo.Create(ctx, testUser("2", "a@mail.com"))
	require.ErrorIs(t, err, serr.ErrAlreadyExists)

	all, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "1", all[0].ID)
}

func TestUsersRepository_GetByEmail_OK(t *testing.T) {
	ctx := context.Background()
	repo, _ := newUsersRepo(t)

	require.NoError(t, repo.Create(ctx, testUser("1", "a@mail.com")))
	require.NoError(t, repo.Create(ctx, testUser("2", "b@mail.com")))

	got, err := repo.GetByEmail(ctx, "b@mail.com")
	require.NoError(t, err)
	require.Equal(t, "2", got.ID)
}

func TestUsersRepository_GetByEmail_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	repo, s := newUsersRepo(t)

	// дубликаты могли попасть в файл до появления блокировки
	require.NoError(t, s.Update(ctx, func([]models.User) ([]models.User, error) {
		return []models.User{testUser("first", "dup@mail.com"), testUser("second", "dup@mail.com")}, nil
	}))

	got, err := repo.GetByEmail(ctx, "dup@mail.com")
	require.NoError(t, err)
	require.Equal(t, "first", got.ID)
}

func TestUsersRepository_GetByEmail_MissingStore(t *testing.T) {
	repo, _ := newUsersRepo(t)

	_, err := repo.GetByEmail(context.Background(), "a@mail.com")
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestUsersRepository_GetByEmail_EmptyStore(t *testing.T) {
	ctx := context.Background()
	repo, s := newUsersRepo(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o700))
	require.NoError(t, os.WriteFile(s.Path(), []byte("[]"), 0o600))

	_, err := repo.GetByEmail(ctx, "a@mail.com")
	require.ErrorIs(t, err, serr.ErrNotFound)
}
