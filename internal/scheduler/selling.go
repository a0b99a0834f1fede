package scheduler

import (
	"fmt"
	"time"
)

// SellingDates: İlk satış gününden itibaren frequencyDays aralıklarla
// tekrarlayan satış günlerinin, referans tarihten ufuk sonuna kadar olan
// tekrarları. Geçmiş tekrarlar atlanır.
func SellingDates(firstDate time.Time, frequencyDays int, referenceDate time.Time, horizonDays int) ([]time.Time, error) {
	if frequencyDays <= 0 {
		return nil, fmt.Errorf("%w: satış sıklığı pozitif olmalı (%d)", ErrInvalidInput, frequencyDays)
	}
	if horizonDays < 0 {
		return nil, fmt.Errorf("%w: ufuk negatif olamaz", ErrInvalidInput)
	}

	ref := dateOnly(referenceDate)
	end := ref.AddDate(0, 0, horizonDays)
	current := dateOnly(firstDate)

	// İlk tarih geçmişteyse referansa kadar ileri sar
	if current.Before(ref) {
		behind := daysBetween(current, ref)
		steps := behind / frequencyDays
		current = current.AddDate(0, 0, steps*frequencyDays)
		if current.Before(ref) {
			current = current.AddDate(0, 0, frequencyDays)
		}
	}

	dates := []time.Time{}
	for !current.After(end) {
		dates = append(dates, current)
		current = current.AddDate(0, 0, frequencyDays)
	}
	return dates, nil
}
