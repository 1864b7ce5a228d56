package service

import (
	"context"

	"github.com/IvanChernomyrdin/medkeeper/internal/crypto"
	"github.com/IvanChernomyrdin/medkeeper/internal/models"
	serr "github.com/IvanChernomyrdin/medkeeper/internal/shared/errors"
)

// AuthService реализует регистрацию и аутентификацию пользователей.
//
// Ответственность:
//   - регистрация пользователя с уникальным email
//   - проверка пароля при логине
//   - пароль наружу не возвращается никогда (только models.PublicUser)
type AuthService struct {
	users UsersRepo
	deps
}

// NewAuthService создаёт AuthService.
func NewAuthService(users UsersRepo, opts ...Option) *AuthService {
	return &AuthService{
		users: users,
		deps:  newDeps(opts),
	}
}

// Register регистрирует нового пользователя.
//
// Ошибки:
//   - ErrInvalidInput — нет одного из ключей name/email/phone/password
//   - ErrAlreadyExists — email уже зарегистрирован
//   - ErrStorage — не удалось прочитать/записать файл
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.PublicUser, error) {
	if err := in.Validate(); err != nil {
		return models.PublicUser{}, err
	}

	user := models.User{
		ID:        s.newID(),
		Name:      *in.Name,
		Email:     *in.Email,
		Phone:     *in.Phone,
		Password:  crypto.HashPassword(*in.Password),
		CreatedAt: s.createdAt(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}

// Login проверяет email и пароль.
//
// Отсутствие пользователя и неверный пароль различаются:
// ErrNotFound и ErrInvalidCredentials соответственно.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (models.PublicUser, error) {
	if err := in.Validate(); err != nil {
		return models.PublicUser{}, err
	}

	user, err := s.users.GetByEmail(ctx, *in.Email)
	if err != nil {
		return models.PublicUser{}, err
	}

	if !crypto.VerifyPassword(*in.Password, user.Password) {
		return models.PublicUser{}, serr.ErrInvalidCredentials
	}
	return user.Public(), nil
}
