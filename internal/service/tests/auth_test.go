package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/medkeeper/internal/crypto"
	"github.com/IvanChernomyrdin/medkeeper/internal/models"
	"github.com/IvanChernomyrdin/medkeeper/internal/service"
	"github.com/IvanChernomyrdin/medkeeper/internal/service/mocks"
	serr "github.com/IvanChernomyrdin/medkeeper/internal/shared/errors"
	"github.com/IvanChernomyrdin/medkeeper/internal/shared/utils"
)

var fixedNow = time.Date(2026, 1, 16, 11, 57, 16, 0, time.Local)

func testOpts() []service.Option {
	return []service.Option{
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithIDGenerator(func() string { return "id-1" }),
	}
}

// создаём сервис
func newAuthService(t *testing.T) (*service.AuthService, *mocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)

	return service.NewAuthService(users, testOpts()...), users
}

func registerInput() service.RegisterInput {
	return service.RegisterInput{
		Name:     utils.Ptr("Ann"),
		Email:    utils.Ptr("ann@mail.com"),
		Phone:    utils.Ptr("+100"),
		Password: utils.Ptr("strongpassword"),
	}
}

// Успех: пароль в хранилище — дайджест, в ответе пароля нет
func TestAuthService_Register_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	var stored models.User
	users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) error {
			stored = u
			return nil
		})

	got, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	require.Equal(t, models.PublicUser{
		ID:        "id-1",
		Name:      "Ann",
		Email:     "ann@mail.com",
		Phone:     "+100",
		CreatedAt: "2026-01-16 11:57:16",
	}, got)

	require.Equal(t, crypto.HashPassword("strongpassword"), stored.Password)
	require.NotEqual(t, "strongpassword", stored.Password)
	require.Len(t, stored.Password, crypto.DigestLen)
}

// Email уже занят
func TestAuthService_Register_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(ctx, gomock.Any()).
		Return(serr.ErrAlreadyExists)

	_, err := svc.Register(ctx, registerInput())
	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

// Нет обязательного ключа — до репозитория не доходим
func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _ := newAuthService(t)

	for _, field := range []string{"name", "email", "phone", "password"} {
		in := registerInput()
		switch field {
		case "name":
			in.Name = nil
		case "email":
			in.Email = nil
		case "phone":
			in.Phone = nil
		case "password":
			in.Password = nil
		}

		_, err := svc.Register(context.Background(), in)
		require.ErrorIs(t, err, serr.ErrInvalidInput)
		require.Contains(t, err.Error(), fmt.Sprintf("%q", field))
	}
}

// Пустые строки допустимы: проверяется только наличие ключа
func TestAuthService_Register_EmptyStringsAccepted(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	in := service.RegisterInput{
		Name:     utils.Ptr(""),
		Email:    utils.Ptr(""),
		Phone:    utils.Ptr(""),
		Password: utils.Ptr(""),
	}
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)
}

// Ошибка хранилища пробрасывается как есть
func TestAuthService_Register_StorageError(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(ctx, gomock.Any()).
		Return(fmt.Errorf("%w: disk full", serr.ErrStorage))

	_, err := svc.Register(ctx, registerInput())
	require.ErrorIs(t, err, serr.ErrStorage)
}

// Успешный логин
func TestAuthService_Login_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		GetByEmail(ctx, "ann@mail.com").
		Return(models.User{
			ID:        "u1",
			Name:      "Ann",
			Email:     "ann@mail.com",
			Phone:     "+100",
			Password:  crypto.HashPassword("strongpassword"),
			CreatedAt: "2026-01-01 00:00:00",
		}, nil)

	got, err := svc.Login(ctx, service.LoginInput{
		Email:    utils.Ptr("ann@mail.com"),
		Password: utils.Ptr("strongpassword"),
	})
	require.NoError(t, err)
	require.Equal(t, "u1", got.ID)
	require.Equal(t, "Ann", got.Name)
}

// Неверный пароль
func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		GetByEmail(ctx, "ann@mail.com").
		Return(models.User{Email: "ann@mail.com", Password: crypto.HashPassword("correct-password")}, nil)

	_, err := svc.Login(ctx, service.LoginInput{
		Email:    utils.Ptr("ann@mail.com"),
		Password: utils.Ptr("wrong-password"),
	})
	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

// Email не существует — отдельная ошибка, не InvalidCredentials
func TestAuthService_Login_EmailNotFound(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		GetByEmail(ctx, "ann@mail.com").
		Return(models.User{}, serr.ErrNotFound)

	_, err := svc.Login(ctx, service.LoginInput{
		Email:    utils.Ptr("ann@mail.com"),
		Password: utils.Ptr("whatever"),
	})
	require.ErrorIs(t, err, serr.ErrNotFound)
	require.NotErrorIs(t, err, serr.ErrInvalidCredentials)
}

// Нет пароля в запросе
func TestAuthService_Login_MissingPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), service.LoginInput{Email: utils.Ptr("ann@mail.com")})
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}
