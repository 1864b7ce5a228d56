// Package crypto содержит хэширование паролей пользователей medkeeper.
//
// В файле хранится только hex-дайджест SHA-256 пароля (64 символа),
// формат зафиксирован: по нему проходят логины уже зарегистрированных пользователей.
package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// DigestLen — длина hex-дайджеста пароля.
const DigestLen = sha256.Size * 2

// HashPassword возвращает hex SHA-256 от пароля в нижнем регистре.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword сравнивает дайджест пароля с сохранённым за постоянное время.
func VerifyPassword(password, digest string) bool {
	got := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(got), []byte(digest)) == 1
}
