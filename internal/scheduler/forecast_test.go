package scheduler

import (
	"testing"
	"time"

	"ciftlik-backend/internal/models"
)

func forecastSnapshot() *Snapshot {
	return &Snapshot{
		Farms: []models.Farm{{ID: 1, Name: "Merkez Çiftlik", IsActive: true}},
		Beds:  []models.Bed{{ID: 1, FarmID: 1, Name: "Yatak A", IsActive: true}},
		Lines: []models.Line{
			{ID: 1, BedID: 1, Name: "Sıra 1", Position: 1, IsActive: true},
			{ID: 2, BedID: 1, Name: "Sıra 2", Position: 2, IsActive: true},
			{ID: 3, BedID: 1, Name: "Sıra 3", Position: 3, IsActive: true},
		},
		Crops: []models.Crop{
			{ID: 1, Name: "Domates", GrowthCycleDays: 70, ExpectedYieldPerPlant: 2.5, IsActive: true},
			{ID: 2, Name: "Marul", GrowthCycleDays: 45, ExpectedYieldPerPlant: 0.4, IsActive: true},
		},
	}
}

func activePlanting(id, cropID, lineID uint, quantity int, expected time.Time) models.Planting {
	return models.Planting{
		ID: id, CropID: cropID, FarmID: 1, BedID: 1, LineID: lineID,
		Quantity: quantity, ExpectedHarvestDate: expected, IsActive: true,
	}
}

func TestForecastWindowBoundaries(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := forecastSnapshot()
	snap.ActivePlantings = []models.Planting{
		activePlanting(1, 1, 1, 10, ref),                    // bugün, dahil
		activePlanting(2, 1, 2, 10, ref.AddDate(0, 0, 14)),  // son gün, dahil
		activePlanting(3, 1, 3, 10, ref.AddDate(0, 0, 15)),  // pencere dışı
		activePlanting(4, 2, 1, 10, ref.AddDate(0, 0, -1)),  // günü geçmiş
		activePlanting(5, 2, 2, 10, ref.AddDate(0, 0, 200)), // çok uzak
	}

	got := Forecast(snap, ref, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].PlantingID != 1 || got[0].DaysUntilHarvest != 0 {
		t.Errorf("first entry: expected planting 1 at day 0, got %d at day %d", got[0].PlantingID, got[0].DaysUntilHarvest)
	}
	if got[1].PlantingID != 2 || got[1].DaysUntilHarvest != 14 {
		t.Errorf("second entry: expected planting 2 at day 14, got %d at day %d", got[1].PlantingID, got[1].DaysUntilHarvest)
	}
}

func TestForecastSeventyDayCropNeedsTenWeeks(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := forecastSnapshot()
	snap.ActivePlantings = []models.Planting{
		activePlanting(1, 1, 1, 20, ref.AddDate(0, 0, 70)),
	}

	if got := Forecast(snap, ref, 9); len(got) != 0 {
		t.Errorf("9 week window should exclude the 70 day harvest, got %d entries", len(got))
	}
	got := Forecast(snap, ref, 10)
	if len(got) != 1 {
		t.Fatalf("10 week window should include the 70 day harvest, got %d entries", len(got))
	}
	if got[0].ExpectedQuantity != 50 {
		t.Errorf("expected quantity 50 kg (20 x 2.5), got %v", got[0].ExpectedQuantity)
	}
}

func TestForecastSortsByDaysThenPlantingID(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := forecastSnapshot()
	sameDay := ref.AddDate(0, 0, 5)
	snap.ActivePlantings = []models.Planting{
		activePlanting(9, 1, 1, 5, sameDay),
		activePlanting(3, 2, 2, 5, sameDay),
		activePlanting(7, 1, 3, 5, ref.AddDate(0, 0, 2)),
	}

	got := Forecast(snap, ref, 2)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	wantOrder := []uint{7, 3, 9}
	for i, want := range wantOrder {
		if got[i].PlantingID != want {
			t.Errorf("position %d: expected planting %d, got %d", i, want, got[i].PlantingID)
		}
	}
}

func TestForecastSkipsUnknownCrop(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := forecastSnapshot()
	snap.ActivePlantings = []models.Planting{
		activePlanting(1, 99, 1, 10, ref.AddDate(0, 0, 3)),
		activePlanting(2, 1, 2, 10, ref.AddDate(0, 0, 3)),
	}

	got := Forecast(snap, ref, 1)
	if len(got) != 1 || got[0].PlantingID != 2 {
		t.Fatalf("planting with unknown crop should be skipped, got %+v", got)
	}
}

func TestForecastEmptyForNonPositiveHorizon(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := forecastSnapshot()
	snap.ActivePlantings = []models.Planting{activePlanting(1, 1, 1, 10, ref)}

	for _, weeks := range []int{0, -3} {
		if got := Forecast(snap, ref, weeks); len(got) != 0 {
			t.Errorf("weeksAhead=%d: expected empty result, got %d entries", weeks, len(got))
		}
	}
}

func TestForecastFillsBedAndLineNames(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := forecastSnapshot()
	snap.ActivePlantings = []models.Planting{activePlanting(1, 1, 2, 10, ref)}

	got := Forecast(snap, ref, 1)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].CropName != "Domates" || got[0].BedName != "Yatak A" || got[0].LineName != "Sıra 2" {
		t.Errorf("unexpected names: %+v", got[0])
	}
}
