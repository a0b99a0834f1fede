package scheduler

import (
	"sort"
	"time"
)

type UpcomingHarvest struct {
	PlantingID          uint      `json:"planting_id"`
	CropName            string    `json:"crop_name"`
	BedName             string    `json:"bed_name"`
	LineName            string    `json:"line_name"`
	ExpectedHarvestDate time.Time `json:"expected_harvest_date"`
	DaysUntilHarvest    int       `json:"days_until_harvest"`
	ExpectedQuantity    float64   `json:"expected_quantity"` // kg
}

// Forecast: Ufuk içinde hasadı beklenen aktif ekimler. Pencere iki uçta
// kapalıdır: 0 <= kalan gün <= weeksAhead*7. Günü geçmiş (negatif) hasatlar
// bilinçli olarak listeye alınmaz. Sonuç her çağrıda baştan hesaplanır.
func Forecast(snap *Snapshot, referenceDate time.Time, weeksAhead int) []UpcomingHarvest {
	result := []UpcomingHarvest{}
	if weeksAhead <= 0 {
		return result
	}

	crops := snap.cropByID()
	beds := snap.bedByID()
	lines := snap.lineByID()
	horizonDays := weeksAhead * 7

	for _, p := range snap.ActivePlantings {
		crop, ok := crops[p.CropID]
		if !ok {
			// Kesitte bitkisi olmayan ekim atlanır, hata değil
			continue
		}

		days := daysBetween(referenceDate, p.ExpectedHarvestDate)
		if days < 0 || days > horizonDays {
			continue
		}

		entry := UpcomingHarvest{
			PlantingID:          p.ID,
			CropName:            crop.Name,
			ExpectedHarvestDate: dateOnly(p.ExpectedHarvestDate),
			DaysUntilHarvest:    days,
			ExpectedQuantity:    float64(p.Quantity) * crop.ExpectedYieldPerPlant,
		}
		if bed, ok := beds[p.BedID]; ok {
			entry.BedName = bed.Name
		}
		if line, ok := lines[p.LineID]; ok {
			entry.LineName = line.Name
		}
		result = append(result, entry)
	}

	// Kalan güne göre artan; eşitlikte küçük ekim id önce (deterministik)
	sort.Slice(result, func(i, j int) bool {
		if result[i].DaysUntilHarvest != result[j].DaysUntilHarvest {
			return result[i].DaysUntilHarvest < result[j].DaysUntilHarvest
		}
		return result[i].PlantingID < result[j].PlantingID
	})

	return result
}
