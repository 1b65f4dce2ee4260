package helper

import (
	"errors"
	"strings"
	"testing"
)

func TestRandomCode(t *testing.T) {
	code, err := RandomCode(ClassCodeAlphabet, ClassCodeLength)
	if err != nil {
		t.Fatal(err)
	}
	if len(code) != ClassCodeLength {
		t.Fatalf("panjang kode = %d, want %d", len(code), ClassCodeLength)
	}
	for _, ch := range code {
		if !strings.ContainsRune(ClassCodeAlphabet, ch) {
			t.Fatalf("karakter %q di luar alphabet", ch)
		}
	}

	if _, err := RandomCode("", 6); err == nil {
		t.Error("alphabet kosong harus error")
	}
	if _, err := RandomCode(ClassCodeAlphabet, 0); err == nil {
		t.Error("length 0 harus error")
	}
}

func TestGenerateSessionToken(t *testing.T) {
	for _, n := range []int{6, 7, 8, 9} {
		tok, err := GenerateSessionToken(n)
		if err != nil {
			t.Fatal(err)
		}
		if len(tok) != n {
			t.Errorf("panjang token = %d, want %d", len(tok), n)
		}
		for _, ch := range tok {
			if !strings.ContainsRune(SessionTokenAlphabet, ch) {
				t.Errorf("karakter %q di luar alphabet token", ch)
			}
		}
	}

	// di luar rentang 6-9 jatuh ke default 8
	for _, n := range []int{0, 5, 10, -3} {
		tok, err := GenerateSessionToken(n)
		if err != nil {
			t.Fatal(err)
		}
		if len(tok) != 8 {
			t.Errorf("GenerateSessionToken(%d): panjang %d, want fallback 8", n, len(tok))
		}
	}
}

func TestEnsureUniqueCode(t *testing.T) {
	t.Run("langsung unik", func(t *testing.T) {
		code, err := EnsureUniqueCode(
			func() (string, error) { return "abc123", nil },
			func(string) (bool, error) { return false, nil },
			5,
		)
		if err != nil || code != "abc123" {
			t.Fatalf("code=%q err=%v", code, err)
		}
	})

	t.Run("unik setelah beberapa tabrakan", func(t *testing.T) {
		seq := []string{"taken1", "taken2", "fresh3"}
		i := 0
		code, err := EnsureUniqueCode(
			func() (string, error) { c := seq[i]; i++; return c, nil },
			func(c string) (bool, error) { return strings.HasPrefix(c, "taken"), nil },
			5,
		)
		if err != nil {
			t.Fatal(err)
		}
		if code != "fresh3" {
			t.Errorf("code = %q, want fresh3", code)
		}
	})

	t.Run("exhausted", func(t *testing.T) {
		calls := 0
		_, err := EnsureUniqueCode(
			func() (string, error) { calls++; return "dup", nil },
			func(string) (bool, error) { return true, nil },
			3,
		)
		if !errors.Is(err, ErrTokenGenerationExhausted) {
			t.Fatalf("err = %v, want ErrTokenGenerationExhausted", err)
		}
		if calls != 3 {
			t.Errorf("gen dipanggil %d kali, want 3", calls)
		}
	})

	t.Run("error gen diteruskan", func(t *testing.T) {
		boom := errors.New("rng rusak")
		_, err := EnsureUniqueCode(
			func() (string, error) { return "", boom },
			func(string) (bool, error) { return false, nil },
			5,
		)
		if !errors.Is(err, boom) {
			t.Fatalf("err = %v, want rng rusak", err)
		}
	})
}

func TestRetryOnCollision(t *testing.T) {
	errDup := errors.New("duplicate key value violates unique constraint")
	isDup := func(err error) bool { return strings.Contains(err.Error(), "duplicate") }

	t.Run("langsung berhasil", func(t *testing.T) {
		tries := 0
		err := RetryOnCollision(
			func() (string, error) { return "tok1", nil },
			func(string) error { tries++; return nil },
			isDup,
			5,
		)
		if err != nil || tries != 1 {
			t.Fatalf("err=%v tries=%d", err, tries)
		}
	})

	t.Run("regenerate setelah bentrok insert", func(t *testing.T) {
		seq := []string{"dup1", "dup2", "ok3"}
		i := 0
		var inserted string
		err := RetryOnCollision(
			func() (string, error) { c := seq[i]; i++; return c, nil },
			func(code string) error {
				if strings.HasPrefix(code, "dup") {
					return errDup
				}
				inserted = code
				return nil
			},
			isDup,
			5,
		)
		if err != nil {
			t.Fatal(err)
		}
		if inserted != "ok3" {
			t.Errorf("inserted = %q, want ok3", inserted)
		}
	})

	t.Run("satu bentrok belum exhausted", func(t *testing.T) {
		tries := 0
		err := RetryOnCollision(
			func() (string, error) { return "tok", nil },
			func(string) error {
				tries++
				if tries == 1 {
					return errDup
				}
				return nil
			},
			isDup,
			10,
		)
		if err != nil {
			t.Fatalf("bentrok tunggal tidak boleh exhausted: %v", err)
		}
		if tries != 2 {
			t.Errorf("tries = %d, want 2", tries)
		}
	})

	t.Run("exhausted setelah budget habis", func(t *testing.T) {
		tries := 0
		err := RetryOnCollision(
			func() (string, error) { return "tok", nil },
			func(string) error { tries++; return errDup },
			isDup,
			4,
		)
		if !errors.Is(err, ErrTokenGenerationExhausted) {
			t.Fatalf("err = %v, want ErrTokenGenerationExhausted", err)
		}
		if tries != 4 {
			t.Errorf("tries = %d, want 4", tries)
		}
	})

	t.Run("error non-collision diteruskan", func(t *testing.T) {
		boom := errors.New("connection reset")
		err := RetryOnCollision(
			func() (string, error) { return "tok", nil },
			func(string) error { return boom },
			isDup,
			5,
		)
		if !errors.Is(err, boom) {
			t.Fatalf("err = %v, want connection reset", err)
		}
	})
}
