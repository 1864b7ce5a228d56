package service

import (
	"encoding/json"
	"fmt"

	serr "github.com/IvanChernomyrdin/medkeeper/internal/shared/errors"
)

// RegisterInput — тело запроса signup.
//
// Поля-указатели позволяют отличить отсутствующий ключ от пустой строки.
// Проверяется только наличие ключей.
type RegisterInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

// Validate возвращает ErrInvalidInput с именем первого отсутствующего ключа.
func (in RegisterInput) Validate() error {
	switch {
	case in.Name == nil:
		return missingField("name")
	case in.Email == nil:
		return missingField("email")
	case in.Phone == nil:
		return missingField("phone")
	case in.Password == nil:
		return missingField("password")
	}
	return nil
}

// LoginInput — тело запроса login.
type LoginInput struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (in LoginInput) Validate() error {
	switch {
	case in.Email == nil:
		return missingField("email")
	case in.Password == nil:
		return missingField("password")
	}
	return nil
}

// ReminderInput — тело запроса на сохранение напоминания.
//
// NumberOfDays хранится сырым JSON: ключ обязателен, но значение может быть null
// (еженедельный режим на фронте).
type ReminderInput struct {
	Medicine     *string         `json:"medicine"`
	Times        *[]string       `json:"times"`
	Days         *[]string       `json:"days"`
	NumberOfDays json.RawMessage `json:"numberOfDays"`
}

func (in ReminderInput) Validate() error {
	switch {
	case in.Medicine == nil:
		return missingField("medicine")
	case in.Times == nil:
		return missingField("times")
	case in.Days == nil:
		return missingField("days")
	case len(in.NumberOfDays) == 0:
		return missingField("numberOfDays")
	}
	return nil
}

// numberOfDays разбирает NumberOfDays: null даёт nil.
func (in ReminderInput) numberOfDays() (*int, error) {
	var n *int
	if err := json.Unmarshal(in.NumberOfDays, &n); err != nil {
		return nil, fmt.Errorf("%w: numberOfDays must be an integer or null", serr.ErrInvalidInput)
	}
	return n, nil
}

func missingField(name string) error {
	return fmt.Errorf("%w: missing field %q", serr.ErrInvalidInput, name)
}
