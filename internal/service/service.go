// Package service содержит бизнес-логику medkeeper.
// Это прослойка между CLI-командами (cli) и хранилищем данных (repository).
package service

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/medkeeper/internal/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users     UsersRepo
	Reminders RemindersRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth      *AuthService
	Reminders *ReminderService
}

// NewServices собирает все сервисы приложения.
func NewServices(repos Repositories, opts ...Option) *Services {
	return &Services{
		Auth:      NewAuthService(repos.Users, opts...),
		Reminders: NewReminderService(repos.Reminders, opts...),
	}
}

// UsersRepo — репозиторий пользователей (нужен для signup/login).
type UsersRepo interface {
	// Create возвращает serr.ErrAlreadyExists, если email уже занят.
	Create(ctx context.Context, user models.User) error
	// GetByEmail возвращает serr.ErrNotFound, если пользователя нет.
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// RemindersRepo — репозиторий напоминаний (только добавление).
type RemindersRepo interface {
	Create(ctx context.Context, reminder models.Reminder) error
}

// deps — то, что сервисы берут извне кроме репозиториев: часы и генератор id.
type deps struct {
	now   func() time.Time
	newID func() string
}

// Option настраивает сервис (в основном для тестов).
type Option func(*deps)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(d *deps) { d.now = now }
}

// WithIDGenerator подменяет генератор идентификаторов записей.
func WithIDGenerator(newID func() string) Option {
	return func(d *deps) { d.newID = newID }
}

func newDeps(opts []Option) deps {
	d := deps{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func (d deps) createdAt() string {
	return d.now().Format(models.CreatedAtLayout)
}
