package scheduler

import (
	"fmt"
	"time"
)

// ExpectedHarvestDate: Ekim tarihine yetiştirme süresini ekler.
// Takvim günü aritmetiği, saat dilimi veya tatil düzeltmesi yok.
func ExpectedHarvestDate(plantedDate time.Time, growthCycleDays int) (time.Time, error) {
	if growthCycleDays <= 0 {
		return time.Time{}, fmt.Errorf("%w: yetiştirme süresi pozitif olmalı (%d)", ErrInvalidInput, growthCycleDays)
	}
	return dateOnly(plantedDate).AddDate(0, 0, growthCycleDays), nil
}

// dateOnly: Saati atar, tarihleri çıplak takvim günü olarak karşılaştırırız.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween: from'dan to'ya tam gün sayısı (to önceyse negatif).
func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}
