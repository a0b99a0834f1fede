package scheduler

import (
	"testing"

	"ciftlik-backend/internal/models"
)

// Uçtan uca senaryo: 1 Mart'ta 70 günlük domates ekimi, 10 haftalık ufukta
// tahmine girer, boş sıra öneri alır, özet sayaçları ve bir sonraki satış
// tarihi tahminden türetilir.
func TestBuildDashboardEndToEnd(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := &Snapshot{
		Farms: []models.Farm{{ID: 1, Name: "Merkez Çiftlik", IsActive: true}},
		Beds:  []models.Bed{{ID: 1, FarmID: 1, Name: "Yatak A", IsActive: true}},
		Lines: []models.Line{
			{ID: 1, BedID: 1, Name: "Sıra 1", Position: 1, IsActive: true},
			{ID: 2, BedID: 1, Name: "Sıra 2", Position: 2, IsActive: true},
		},
		Crops: []models.Crop{
			{ID: 1, Name: "Domates", GrowthCycleDays: 70, ExpectedYieldPerPlant: 2.5, IsActive: true},
		},
		ActivePlantings: []models.Planting{
			{ID: 1, CropID: 1, FarmID: 1, BedID: 1, LineID: 1, Quantity: 20,
				PlantedDate:         ref,
				ExpectedHarvestDate: ref.AddDate(0, 0, 70),
				IsActive:            true},
		},
	}

	signals := StaticMarketSignals{1: 0.9}
	policy := &MarketDemandPolicy{Signals: signals}
	data := BuildDashboard(snap, ref, 10, policy, signals, DefaultThresholds())

	if data.Summary.TotalFarms != 1 || data.Summary.TotalBeds != 1 || data.Summary.TotalPlantings != 1 {
		t.Errorf("unexpected summary counters: %+v", data.Summary)
	}

	if len(data.UpcomingHarvests) != 1 {
		t.Fatalf("expected 1 upcoming harvest, got %d", len(data.UpcomingHarvests))
	}
	uh := data.UpcomingHarvests[0]
	if uh.DaysUntilHarvest != 70 || uh.ExpectedQuantity != 50 {
		t.Errorf("unexpected upcoming harvest: %+v", uh)
	}

	// Sıra 1 dolu, sadece sıra 2 öneri alır
	if len(data.PlantingSuggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(data.PlantingSuggestions))
	}
	sg := data.PlantingSuggestions[0]
	if sg.LineID != 2 || sg.SuggestedCropID != 1 || sg.Priority != PriorityHigh {
		t.Errorf("unexpected suggestion: %+v", sg)
	}

	if data.Summary.NextSellingDate == nil || !data.Summary.NextSellingDate.Equal(ref.AddDate(0, 0, 70)) {
		t.Errorf("expected next selling date %v, got %v", ref.AddDate(0, 0, 70), data.Summary.NextSellingDate)
	}
	if data.Summary.DaysUntilNextSelling == nil || *data.Summary.DaysUntilNextSelling != 70 {
		t.Errorf("expected 70 days until next selling, got %v", data.Summary.DaysUntilNextSelling)
	}
}

func TestBuildDashboardEmptyWindow(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := &Snapshot{
		Farms: []models.Farm{{ID: 1, IsActive: true}},
	}

	signals := StaticMarketSignals{}
	data := BuildDashboard(snap, ref, 2, &MarketDemandPolicy{Signals: signals}, signals, DefaultThresholds())

	if data.Summary.NextSellingDate != nil || data.Summary.DaysUntilNextSelling != nil {
		t.Errorf("empty window should leave next selling date nil, got %+v", data.Summary)
	}
	if data.UpcomingHarvests == nil || data.PlantingSuggestions == nil {
		t.Error("result slices should be empty, not nil")
	}
	if len(data.UpcomingHarvests) != 0 || len(data.PlantingSuggestions) != 0 {
		t.Errorf("expected empty lists, got %d harvests and %d suggestions",
			len(data.UpcomingHarvests), len(data.PlantingSuggestions))
	}
}

func TestBuildDashboardDeterministic(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := &Snapshot{
		Farms: []models.Farm{{ID: 1, IsActive: true}},
		Beds:  []models.Bed{{ID: 1, FarmID: 1, Name: "Yatak A", IsActive: true}},
		Lines: []models.Line{
			{ID: 1, BedID: 1, Name: "Sıra 1", Position: 1, IsActive: true},
			{ID: 2, BedID: 1, Name: "Sıra 2", Position: 2, IsActive: true},
		},
		Crops: []models.Crop{
			{ID: 1, Name: "Domates", GrowthCycleDays: 70, ExpectedYieldPerPlant: 2.5, IsActive: true},
			{ID: 2, Name: "Marul", GrowthCycleDays: 45, ExpectedYieldPerPlant: 0.4, IsActive: true},
		},
	}

	signals := StaticMarketSignals{1: 0.7, 2: 0.7}
	policy := &MarketDemandPolicy{Signals: signals}

	first := BuildDashboard(snap, ref, 4, policy, signals, DefaultThresholds())
	second := BuildDashboard(snap, ref, 4, policy, signals, DefaultThresholds())

	if len(first.PlantingSuggestions) != len(second.PlantingSuggestions) {
		t.Fatal("repeated calls produced different suggestion counts")
	}
	for i := range first.PlantingSuggestions {
		if first.PlantingSuggestions[i] != second.PlantingSuggestions[i] {
			t.Errorf("suggestion %d differs between calls", i)
		}
	}
}
