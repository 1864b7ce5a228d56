// Package repository содержит репозитории medkeeper поверх файлового хранилища.
package repository

import (
	"context"

	"github.com/IvanChernomyrdin/medkeeper/internal/models"
	serr "github.com/IvanChernomyrdin/medkeeper/internal/shared/errors"
	"github.com/IvanChernomyrdin/medkeeper/internal/store"
)

// UsersRepository хранит пользователей в data/userdata.json.
type UsersRepository struct {
	store *store.JSONFile[models.User]
}

func NewUsersRepository(s *store.JSONFile[models.User]) *UsersRepository {
	return &UsersRepository{store: s}
}

// Create добавляет пользователя, если email ещё не занят.
//
// Проверка и запись идут под одной блокировкой файла,
// поэтому два параллельных signup с одним email не пройдут оба.
func (r *UsersRepository) Create(ctx context.Context, user models.User) error {
	return r.store.Update(ctx, func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Email == user.Email {
				return nil, serr.ErrAlreadyExists
			}
		}
		return append(users, user), nil
	})
}

// GetByEmail возвращает первого пользователя с таким email или serr.ErrNotFound.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	users, err := r.store.Load(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, serr.ErrNotFound
}
