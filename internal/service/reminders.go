package service

import (
	"context"

	"github.com/IvanChernomyrdin/medkeeper/internal/models"
)

// ReminderService сохраняет напоминания о приёме лекарств.
type ReminderService struct {
	reminders RemindersRepo
	deps
}

func NewReminderService(reminders RemindersRepo, opts ...Option) *ReminderService {
	return &ReminderService{
		reminders: reminders,
		deps:      newDeps(opts),
	}
}

// Submit валидирует наличие ключей, собирает запись и дописывает её в хранилище.
func (s *ReminderService) Submit(ctx context.Context, in ReminderInput) (models.Reminder, error) {
	if err := in.Validate(); err != nil {
		return models.Reminder{}, err
	}
	days, err := in.numberOfDays()
	if err != nil {
		return models.Reminder{}, err
	}

	reminder := models.Reminder{
		ID:           s.newID(),
		Medicine:     *in.Medicine,
		Times:        *in.Times,
		Days:         *in.Days,
		NumberOfDays: days,
		CreatedAt:    s.createdAt(),
	}

	if err := s.reminders.Create(ctx, reminder); err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}
