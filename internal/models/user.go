// Package models содержит записи, которые хранятся в файлах medkeeper.
package models

// CreatedAtLayout — формат поля created_at у всех записей.
const CreatedAtLayout = "2006-01-02 15:04:05"

// User — запись пользователя в data/userdata.json.
//
// Password хранит только hex SHA-256 от пароля, открытый пароль не сохраняется.
// Email — ключ уникальности.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	CreatedAt string `json:"created_at"`
}

// PublicUser — пользователь без пароля, единственная форма, которая уходит наружу.
type PublicUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

// Public отбрасывает пароль.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
