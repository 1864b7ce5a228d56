package models

import (
	"encoding/json"
	"io"
)

// Response — единый конверт ответа обработчиков, печатается в stdout одной строкой.
//
// Формат:
//
//	{"success":true,"message":"Login successful","user":{...}}
//	{"success":false,"message":"User not found","error":"not_found"}
//
// Поля:
//   - Success: итог операции
//   - Message: человекочитаемый текст (не является стабильным контрактом)
//   - Error: вид ошибки (см. shared/errors), только при Success=false
//   - User: данные пользователя без пароля, только для успешных signup/login
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	User    any    `json:"user,omitempty"`
}

// OK собирает успешный ответ.
func OK(message string) Response {
	return Response{Success: true, Message: message}
}

// Fail собирает ответ об ошибке с указанным видом.
func Fail(kind, message string) Response {
	return Response{Success: false, Message: message, Error: kind}
}

// Write сериализует ответ в w и завершает его переводом строки.
func (r Response) Write(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}
