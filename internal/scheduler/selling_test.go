package scheduler

import (
	"errors"
	"testing"
)

func TestSellingDatesFromFutureFirstDate(t *testing.T) {
	ref := date(2026, 3, 1)
	got, err := SellingDates(date(2026, 3, 5), 7, ref, 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{5, 12, 19}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(got))
	}
	for i, day := range want {
		if !got[i].Equal(date(2026, 3, day)) {
			t.Errorf("date %d: expected 2026-03-%02d, got %v", i, day, got[i])
		}
	}
}

func TestSellingDatesFastForwardsPastOccurrences(t *testing.T) {
	ref := date(2026, 3, 10)
	// İlk satış 1 Ocak, 7 günde bir: referanstan önceki tekrarlar atlanır
	got, err := SellingDates(date(2026, 1, 1), 7, ref, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected dates in window")
	}
	if got[0].Before(ref) {
		t.Errorf("first date %v is before reference %v", got[0], ref)
	}
	// 1 Ocak + k*7 serisinde 10 Mart'tan sonraki ilk gün 12 Mart
	if !got[0].Equal(date(2026, 3, 12)) {
		t.Errorf("expected 2026-03-12, got %v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if daysBetween(got[i-1], got[i]) != 7 {
			t.Errorf("dates %v and %v are not 7 days apart", got[i-1], got[i])
		}
	}
}

func TestSellingDatesReferenceDayCounts(t *testing.T) {
	ref := date(2026, 3, 8)
	// 1 Mart + 7 = 8 Mart tam referans günü, dahil edilmeli
	got, err := SellingDates(date(2026, 3, 1), 7, ref, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || !got[0].Equal(ref) {
		t.Errorf("expected [2026-03-08 2026-03-15], got %v", got)
	}
}

func TestSellingDatesInvalidInputs(t *testing.T) {
	if _, err := SellingDates(date(2026, 3, 1), 0, date(2026, 3, 1), 30); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero frequency: expected ErrInvalidInput, got %v", err)
	}
	if _, err := SellingDates(date(2026, 3, 1), 7, date(2026, 3, 1), -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative horizon: expected ErrInvalidInput, got %v", err)
	}
}

func TestSellingDatesEmptyWhenFirstDateBeyondHorizon(t *testing.T) {
	got, err := SellingDates(date(2026, 6, 1), 7, date(2026, 3, 1), 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no dates, got %v", got)
	}
}
