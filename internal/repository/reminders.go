package repository

import (
	"context"

	"github.com/IvanChernomyrdin/medkeeper/internal/models"
	"github.com/IvanChernomyrdin/medkeeper/internal/store"
)

// RemindersRepository хранит напоминания в data/reminder.json.
type RemindersRepository struct {
	store *store.JSONFile[models.Reminder]
}

func NewRemindersRepository(s *store.JSONFile[models.Reminder]) *RemindersRepository {
	return &RemindersRepository{store: s}
}

// Create дописывает напоминание в конец файла. Уникальности нет.
func (r *RemindersRepository) Create(ctx context.Context, reminder models.Reminder) error {
	return r.store.Update(ctx, func(reminders []models.Reminder) ([]models.Reminder, error) {
		return append(reminders, reminder), nil
	})
}
