// helpers/code.go
package helper

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"gorm.io/gorm"
)

const (
	ClassCodeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	SessionTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	ClassCodeLength = 6

	// batas percobaan regenerate saat kode tabrakan di DB
	DefaultMaxCodeAttempts = 10
)

// ErrTokenGenerationExhausted: semua percobaan generate kode bentrok.
// Fatal untuk request ini; caller boleh retry.
var ErrTokenGenerationExhausted = errors.New("token generation exhausted")

// RandomCode menghasilkan kode fixed-length dari alphabet via crypto/rand.
func RandomCode(alphabet string, length int) (string, error) {
	if alphabet == "" || length <= 0 {
		return "", fmt.Errorf("alphabet/length tidak valid")
	}
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}

// GenerateClassCode: kode kelas 6 karakter (huruf besar + digit).
func GenerateClassCode() (string, error) {
	return RandomCode(ClassCodeAlphabet, ClassCodeLength)
}

// GenerateSessionToken: token live session (huruf kecil + digit), panjang 6-9.
func GenerateSessionToken(length int) (string, error) {
	if length < 6 || length > 9 {
		length = 8
	}
	return RandomCode(SessionTokenAlphabet, length)
}

// EnsureUniqueCode me-retry gen() maksimal maxAttempts kali sampai exists()
// bilang belum dipakai. Unique index di DB tetap guard utamanya; cek ini
// cuma fast-path supaya insert jarang gagal.
func EnsureUniqueCode(
	gen func() (string, error),
	exists func(string) (bool, error),
	maxAttempts int,
) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxCodeAttempts
	}
	for i := 0; i < maxAttempts; i++ {
		code, err := gen()
		if err != nil {
			return "", err
		}
		used, err := exists(code)
		if err != nil {
			return "", err
		}
		if !used {
			return code, nil
		}
	}
	return "", ErrTokenGenerationExhausted
}

// RetryOnCollision menjalankan try() dengan kode baru dari gen() tiap
// percobaan. collision(err) true berarti unique index menolak kode itu dan
// regenerate masih berguna; error lain langsung diteruskan. Budget habis
// tanpa kode lolos = ErrTokenGenerationExhausted.
func RetryOnCollision(
	gen func() (string, error),
	try func(string) error,
	collision func(error) bool,
	maxAttempts int,
) error {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxCodeAttempts
	}
	for i := 0; i < maxAttempts; i++ {
		code, err := gen()
		if err != nil {
			return err
		}
		err = try(code)
		if err == nil {
			return nil
		}
		if !collision(err) {
			return err
		}
	}
	return ErrTokenGenerationExhausted
}

// CodeExistsIn: cek kolom unik di satu tabel (dipakai sebagai exists() di atas).
func CodeExistsIn(db *gorm.DB, table, column, code string) (bool, error) {
	var count int64
	if err := db.Table(table).
		Where(fmt.Sprintf("%s = ?", column), code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
