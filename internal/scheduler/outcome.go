package scheduler

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/models"
)

type TimingStatus string

const (
	TimingEarly   TimingStatus = "early"
	TimingLate    TimingStatus = "late"
	TimingOnTime  TimingStatus = "on_time"
	TimingUnknown TimingStatus = "unknown"
)

type YieldStatus string

const (
	YieldHigh     YieldStatus = "high"
	YieldLow      YieldStatus = "low"
	YieldExpected YieldStatus = "expected"
	YieldUnknown  YieldStatus = "unknown"
)

// Outcome: Hasat sonrası zamanlama ve verim sapması.
// DaysEarlyLate işareti: pozitif = erken hasat, negatif = geç hasat.
// YieldPercentage beklenen miktar sıfırsa nil kalır (tanımsız oran).
type Outcome struct {
	DaysEarlyLate   *int
	TimingStatus    TimingStatus
	ExpectedYield   *float64
	YieldPercentage *float64
	YieldStatus     YieldStatus
}

// AnalyzeOutcome: Ekim ve bitki kaydına karşı gerçekleşen hasadı değerlendirir.
// Saf hesaplamadır; kayıt ve ekimin kapatılması hasat servisinin işidir.
func AnalyzeOutcome(planting models.Planting, crop models.Crop, harvestDate time.Time, harvestedQuantity float64, th Thresholds) (Outcome, error) {
	if harvestedQuantity < 0 {
		return Outcome{}, fmt.Errorf("%w: hasat miktarı negatif olamaz", ErrInvalidInput)
	}

	out := Outcome{
		TimingStatus: TimingUnknown,
		YieldStatus:  YieldUnknown,
	}

	if !planting.ExpectedHarvestDate.IsZero() {
		// beklenen - gerçekleşen: erken hasatta pozitif
		days := daysBetween(harvestDate, planting.ExpectedHarvestDate)
		out.DaysEarlyLate = &days
		switch {
		case days > 0:
			out.TimingStatus = TimingEarly
		case days < 0:
			out.TimingStatus = TimingLate
		default:
			out.TimingStatus = TimingOnTime
		}
	}

	expected := float64(planting.Quantity) * crop.ExpectedYieldPerPlant
	if expected > 0 {
		pct := harvestedQuantity / expected * 100
		out.ExpectedYield = &expected
		out.YieldPercentage = &pct
		switch {
		case pct > th.YieldHighPct:
			out.YieldStatus = YieldHigh
		case pct < th.YieldLowPct:
			out.YieldStatus = YieldLow
		default:
			out.YieldStatus = YieldExpected
		}
	}

	return out, nil
}
