package service

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestAffectedClassIDs(t *testing.T) {
	target := uuid.New()
	a := uuid.New()
	b := uuid.New()

	t.Run("dedup dan urut naik", func(t *testing.T) {
		got := affectedClassIDs(target, []uuid.UUID{b, target, a, b})
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3 (dedup)", len(got))
		}

		found := false
		for i := range got {
			if got[i] == target {
				found = true
			}
			if i > 0 && bytes.Compare(got[i-1][:], got[i][:]) >= 0 {
				t.Errorf("urutan tidak naik di posisi %d", i)
			}
		}
		if !found {
			t.Error("target hilang dari hasil")
		}
	})

	t.Run("urutan sama apapun urutan input", func(t *testing.T) {
		x := affectedClassIDs(target, []uuid.UUID{a, b})
		y := affectedClassIDs(a, []uuid.UUID{b, target})
		if len(x) != len(y) {
			t.Fatalf("len beda: %d vs %d", len(x), len(y))
		}
		for i := range x {
			if x[i] != y[i] {
				t.Fatalf("urutan lock beda di posisi %d: %s vs %s", i, x[i], y[i])
			}
		}
	})

	t.Run("tanpa kelas lain", func(t *testing.T) {
		got := affectedClassIDs(target, nil)
		if len(got) != 1 || got[0] != target {
			t.Fatalf("got %v, want [target]", got)
		}
	})
}
