package tests

import (
	"regexp"
	"testing"

	"github.com/IvanChernomyrdin/medkeeper/internal/crypto"
)

// Хэширование и успешная проверка
func TestHashAndVerifyPassword_OK(t *testing.T) {
	password := "super-secret-password"

	digest := crypto.HashPassword(password)
	if !crypto.VerifyPassword(password, digest) {
		t.Fatal("expected password to be valid")
	}
}

// Известный вектор SHA-256
func TestHashPassword_KnownVector(t *testing.T) {
	const want = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	if got := crypto.HashPassword("password"); got != want {
		t.Fatalf("unexpected digest: %s", got)
	}
}

// Формат: 64 hex-символа в нижнем регистре, пароль не утекает
func TestHashPassword_FixedLengthHex(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-f]{64}$`)
	for _, p := range []string{"", "a", "очень длинный пароль с пробелами и юникодом"} {
		d := crypto.HashPassword(p)
		if len(d) != crypto.DigestLen || !re.MatchString(d) {
			t.Fatalf("bad digest %q for %q", d, p)
		}
	}
}

// Неверный пароль
func TestVerifyPassword_InvalidPassword(t *testing.T) {
	digest := crypto.HashPassword("correct-password")
	if crypto.VerifyPassword("wrong-password", digest) {
		t.Fatal("expected password to be invalid")
	}
}

// Сохранённое значение не дайджест (например открытый пароль)
func TestVerifyPassword_PlaintextStored(t *testing.T) {
	if crypto.VerifyPassword("secret", "secret") {
		t.Fatal("plaintext must not verify")
	}
}
