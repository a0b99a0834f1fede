package scheduler

import (
	"errors"
	"math"
	"testing"
	"time"

	"ciftlik-backend/internal/models"
)

// floatEq: yüzde hesapları tam ikili kesirlere denk gelmez (27.5/25*100
// gibi), karşılaştırmalar epsilon ile yapılır.
func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func outcomeFixtures() (models.Planting, models.Crop) {
	planting := models.Planting{
		ID: 1, CropID: 1, Quantity: 10,
		PlantedDate:         date(2026, 3, 1),
		ExpectedHarvestDate: date(2026, 5, 10),
	}
	crop := models.Crop{ID: 1, Name: "Domates", GrowthCycleDays: 70, ExpectedYieldPerPlant: 2.5}
	return planting, crop
}

func TestAnalyzeOutcomeEarlyHarvest(t *testing.T) {
	planting, crop := outcomeFixtures()
	// 3 gün erken: beklenen - gerçekleşen = +3
	out, err := AnalyzeOutcome(planting, crop, date(2026, 5, 7), 25, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DaysEarlyLate == nil || *out.DaysEarlyLate != 3 {
		t.Errorf("expected days_early_late +3, got %v", out.DaysEarlyLate)
	}
	if out.TimingStatus != TimingEarly {
		t.Errorf("expected early, got %s", out.TimingStatus)
	}
}

func TestAnalyzeOutcomeLateHarvest(t *testing.T) {
	planting, crop := outcomeFixtures()
	out, err := AnalyzeOutcome(planting, crop, date(2026, 5, 15), 25, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DaysEarlyLate == nil || *out.DaysEarlyLate != -5 {
		t.Errorf("expected days_early_late -5, got %v", out.DaysEarlyLate)
	}
	if out.TimingStatus != TimingLate {
		t.Errorf("expected late, got %s", out.TimingStatus)
	}
}

func TestAnalyzeOutcomeOnTime(t *testing.T) {
	planting, crop := outcomeFixtures()
	out, err := AnalyzeOutcome(planting, crop, date(2026, 5, 10), 25, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DaysEarlyLate == nil || *out.DaysEarlyLate != 0 {
		t.Errorf("expected days_early_late 0, got %v", out.DaysEarlyLate)
	}
	if out.TimingStatus != TimingOnTime {
		t.Errorf("expected on_time, got %s", out.TimingStatus)
	}
}

func TestAnalyzeOutcomeYieldClassification(t *testing.T) {
	planting, crop := outcomeFixtures() // beklenen verim 25 kg
	cases := []struct {
		quantity float64
		wantPct  float64
		want     YieldStatus
	}{
		{27.5, 110, YieldHigh},     // %110 > 100
		{17.5, 70, YieldLow},       // %70 < 80
		{22.5, 90, YieldExpected},  // 80 <= %90 <= 100
		{25, 100, YieldExpected},   // sınır, dahil
		{20, 80, YieldExpected},    // sınır, dahil
	}
	for _, c := range cases {
		out, err := AnalyzeOutcome(planting, crop, date(2026, 5, 10), c.quantity, DefaultThresholds())
		if err != nil {
			t.Fatalf("quantity %v: unexpected error: %v", c.quantity, err)
		}
		if out.YieldPercentage == nil || !floatEq(*out.YieldPercentage, c.wantPct) {
			t.Errorf("quantity %v: expected pct %v, got %v", c.quantity, c.wantPct, out.YieldPercentage)
		}
		if out.YieldStatus != c.want {
			t.Errorf("quantity %v: expected %s, got %s", c.quantity, c.want, out.YieldStatus)
		}
		if out.ExpectedYield == nil || !floatEq(*out.ExpectedYield, 25) {
			t.Errorf("quantity %v: expected yield 25, got %v", c.quantity, out.ExpectedYield)
		}
	}
}

func TestAnalyzeOutcomeZeroExpectedYield(t *testing.T) {
	planting, crop := outcomeFixtures()
	crop.ExpectedYieldPerPlant = 0

	out, err := AnalyzeOutcome(planting, crop, date(2026, 5, 10), 12, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.YieldPercentage != nil || out.ExpectedYield != nil {
		t.Errorf("zero expected yield should leave ratios nil, got %+v", out)
	}
	if out.YieldStatus != YieldUnknown {
		t.Errorf("expected unknown yield status, got %s", out.YieldStatus)
	}
}

func TestAnalyzeOutcomeMissingExpectedDate(t *testing.T) {
	planting, crop := outcomeFixtures()
	planting.ExpectedHarvestDate = time.Time{}

	out, err := AnalyzeOutcome(planting, crop, date(2026, 5, 10), 25, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DaysEarlyLate != nil || out.TimingStatus != TimingUnknown {
		t.Errorf("missing expected date should leave timing unknown, got %+v", out)
	}
}

func TestAnalyzeOutcomeRejectsNegativeQuantity(t *testing.T) {
	planting, crop := outcomeFixtures()
	_, err := AnalyzeOutcome(planting, crop, date(2026, 5, 10), -1, DefaultThresholds())
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyzeOutcomeCustomThresholds(t *testing.T) {
	planting, crop := outcomeFixtures()
	th := Thresholds{YieldHighPct: 120, YieldLowPct: 50}

	out, err := AnalyzeOutcome(planting, crop, date(2026, 5, 10), 27.5, th)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.YieldStatus != YieldExpected {
		t.Errorf("with high threshold 120, pct 110 should be expected, got %s", out.YieldStatus)
	}
}
