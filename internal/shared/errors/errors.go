// Package errors содержит закрытый набор доменных ошибок medkeeper
// и их сопоставление с видом ошибки (kind), который уходит в ответ CLI.
//
// Ошибки используются в service, repository и store слоях
// и маппятся на поле "error" конверта ответа в cli слое.
package errors

import "errors"

var (
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Входные данные невалидны (нет обязательного ключа и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Ошибка чтения/записи файла хранилища или захвата блокировки
	ErrStorage = errors.New("storage failure")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// Виды ошибок, которые видит вызывающая сторона.
const (
	KindBadJSON            = "bad_json"
	KindInvalidInput       = "invalid_input"
	KindConflict           = "conflict"
	KindNotFound           = "not_found"
	KindInvalidCredentials = "invalid_credentials"
	KindStorage            = "storage"
	KindInternal           = "internal"
)

// Kind возвращает вид ошибки для err.
//
// nil даёт пустую строку, неизвестная ошибка — KindInternal.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBadJSON):
		return KindBadJSON
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrAlreadyExists):
		return KindConflict
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, ErrStorage):
		return KindStorage
	default:
		return KindInternal
	}
}
