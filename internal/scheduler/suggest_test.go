package scheduler

import (
	"testing"

	"ciftlik-backend/internal/models"
)

func fptr(v float64) *float64 { return &v }

func suggestSnapshot() *Snapshot {
	return &Snapshot{
		Farms: []models.Farm{{ID: 1, Name: "Merkez Çiftlik", IsActive: true}},
		Beds: []models.Bed{
			{ID: 1, FarmID: 1, Name: "Yatak A", SoilType: "tınlı", IsActive: true},
		},
		Lines: []models.Line{
			{ID: 1, BedID: 1, Name: "Sıra 1", Position: 1, IsActive: true},
			{ID: 2, BedID: 1, Name: "Sıra 2", Position: 2, IsActive: true},
			{ID: 3, BedID: 1, Name: "Sıra 3", Position: 3, IsActive: true},
		},
		Crops: []models.Crop{
			{ID: 1, Name: "Domates", GrowthCycleDays: 70, ExpectedYieldPerPlant: 2.5, IsActive: true},
			{ID: 2, Name: "Marul", GrowthCycleDays: 45, ExpectedYieldPerPlant: 0.4, IsActive: true},
			{ID: 3, Name: "Havuç", GrowthCycleDays: 80, ExpectedYieldPerPlant: 0.2, IsActive: true},
		},
	}
}

func TestSuggestSkipsOccupiedAndInactiveLines(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := suggestSnapshot()
	snap.Lines[2].IsActive = false
	snap.ActivePlantings = []models.Planting{
		{ID: 1, CropID: 1, FarmID: 1, BedID: 1, LineID: 1, Quantity: 10,
			ExpectedHarvestDate: ref.AddDate(0, 0, 30), IsActive: true},
	}

	signals := StaticMarketSignals{1: 0.9, 2: 0.5, 3: 0.3}
	got := Suggest(snap, &MarketDemandPolicy{Signals: signals}, signals, ref, DefaultThresholds())

	if len(got) != 1 {
		t.Fatalf("expected exactly 1 suggestion (line 2), got %d", len(got))
	}
	if got[0].LineID != 2 {
		t.Errorf("expected suggestion for line 2, got line %d", got[0].LineID)
	}
}

func TestSuggestPriorityThresholds(t *testing.T) {
	th := DefaultThresholds()
	cases := []struct {
		score float64
		want  Priority
	}{
		{0.9, PriorityHigh},
		{0.8, PriorityHigh},
		{0.79, PriorityMedium},
		{0.6, PriorityMedium},
		{0.59, PriorityLow},
		{0, PriorityLow},
	}
	for _, c := range cases {
		if got := priorityFor(c.score, th); got != c.want {
			t.Errorf("score %.2f: expected %s, got %s", c.score, c.want, got)
		}
	}
}

func TestSuggestOrdering(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := suggestSnapshot()

	// Her sıraya farklı skorlu bitki düşsün diye rotasyon yerine sabit
	// politika kullanmak yetmez, skor ayrımını toprak kısıtıyla kuruyoruz
	snap.Beds = append(snap.Beds, models.Bed{ID: 2, FarmID: 1, Name: "Yatak B", SoilType: "kumlu", IsActive: true})
	snap.Lines = append(snap.Lines, models.Line{ID: 4, BedID: 2, Name: "B Sıra 1", Position: 1, IsActive: true})
	snap.Crops[0].SuitableSoilTypes = []string{"tınlı"} // Domates kumluya giremez
	snap.Crops[1].SuitableSoilTypes = []string{"kumlu"} // Marul sadece kumlu

	signals := StaticMarketSignals{1: 0.9, 2: 0.65, 3: 0.3}
	got := Suggest(snap, &MarketDemandPolicy{Signals: signals}, signals, ref, DefaultThresholds())

	if len(got) != 4 {
		t.Fatalf("expected 4 suggestions, got %d", len(got))
	}
	// Tınlı sıralar (1,2,3) Domates (0.9, high) alır; kumlu sıra Marul (0.65, medium)
	for i := 0; i < 3; i++ {
		if got[i].Priority != PriorityHigh {
			t.Errorf("suggestion %d: expected high priority, got %s", i, got[i].Priority)
		}
		if got[i].SuggestedCropID != 1 {
			t.Errorf("suggestion %d: expected Domates, got crop %d", i, got[i].SuggestedCropID)
		}
	}
	if got[3].LineID != 4 || got[3].Priority != PriorityMedium {
		t.Errorf("last suggestion: expected line 4 medium, got line %d %s", got[3].LineID, got[3].Priority)
	}
	// Eşit skor ve öncelikte pozisyon artan sıralanır
	if got[0].LinePosition != 1 || got[1].LinePosition != 2 || got[2].LinePosition != 3 {
		t.Errorf("equal priority suggestions not ordered by position: %d %d %d",
			got[0].LinePosition, got[1].LinePosition, got[2].LinePosition)
	}
}

func TestSuggestComputesHarvestDateFromReference(t *testing.T) {
	ref := date(2026, 3, 1)
	snap := suggestSnapshot()
	signals := StaticMarketSignals{2: 1.0}
	got := Suggest(snap, &MarketDemandPolicy{Signals: signals}, signals, ref, DefaultThresholds())

	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	if got[0].SuggestedCropID != 2 {
		t.Fatalf("expected Marul, got crop %d", got[0].SuggestedCropID)
	}
	want := ref.AddDate(0, 0, 45)
	if !got[0].ExpectedHarvestDate.Equal(want) {
		t.Errorf("expected harvest %v, got %v", want, got[0].ExpectedHarvestDate)
	}
	if !got[0].AvailableDate.Equal(ref) {
		t.Errorf("expected available date %v, got %v", ref, got[0].AvailableDate)
	}
}

func TestMarketDemandPolicySeasonFilter(t *testing.T) {
	snap := suggestSnapshot()
	snap.Crops[0].BestPlantingSeasons = []int{6, 7} // Domates yaz bitkisi

	signals := StaticMarketSignals{1: 1.0, 2: 0.4}
	policy := &MarketDemandPolicy{Signals: signals}

	marchPick, _ := policy.Select(snap.Lines[0], snap.Beds[0], snap.Crops, date(2026, 3, 1))
	if marchPick == nil || marchPick.ID != 2 {
		t.Errorf("in March expected Marul, got %+v", marchPick)
	}
	junePick, _ := policy.Select(snap.Lines[0], snap.Beds[0], snap.Crops, date(2026, 6, 1))
	if junePick == nil || junePick.ID != 1 {
		t.Errorf("in June expected Domates, got %+v", junePick)
	}
}

func TestMarketDemandPolicyTieBreaksOnLowerID(t *testing.T) {
	snap := suggestSnapshot()
	signals := StaticMarketSignals{1: 0.5, 2: 0.5, 3: 0.5}
	policy := &MarketDemandPolicy{Signals: signals}

	pick, _ := policy.Select(snap.Lines[0], snap.Beds[0], snap.Crops, date(2026, 3, 1))
	if pick == nil || pick.ID != 1 {
		t.Errorf("expected crop 1 on tie, got %+v", pick)
	}
}

func TestRotationPolicyAvoidsLastCrop(t *testing.T) {
	snap := suggestSnapshot()
	policy := &RotationPolicy{LastCropByLine: map[uint]uint{1: 1}}

	pick, reason := policy.Select(snap.Lines[0], snap.Beds[0], snap.Crops, date(2026, 3, 1))
	if pick == nil {
		t.Fatal("expected a pick")
	}
	if pick.ID == 1 {
		t.Errorf("rotation should not repeat last crop when alternatives exist, got crop %d", pick.ID)
	}
	if reason == "" {
		t.Error("expected a non-empty reason")
	}
}

func TestRotationPolicyRepeatsWhenOnlyOption(t *testing.T) {
	snap := suggestSnapshot()
	snap.Crops = snap.Crops[:1] // sadece Domates
	policy := &RotationPolicy{LastCropByLine: map[uint]uint{1: 1}}

	pick, _ := policy.Select(snap.Lines[0], snap.Beds[0], snap.Crops, date(2026, 3, 1))
	if pick == nil || pick.ID != 1 {
		t.Errorf("single eligible crop should still be suggested, got %+v", pick)
	}
}

func TestPriceDerivedSignalsNormalizesToMax(t *testing.T) {
	crops := []models.Crop{
		{ID: 1, MarketPricePerKG: fptr(40)},
		{ID: 2, MarketPricePerKG: fptr(10)},
		{ID: 3},
	}
	s := NewPriceDerivedSignals(crops)
	if got := s.DemandScore(1); got != 1.0 {
		t.Errorf("most expensive crop should score 1.0, got %v", got)
	}
	if got := s.DemandScore(2); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
	if got := s.DemandScore(3); got != 0 {
		t.Errorf("crop without price should score 0, got %v", got)
	}
}
