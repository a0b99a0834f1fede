package scheduler

import "time"

type DashboardSummary struct {
	TotalFarms           int        `json:"total_farms"`
	TotalBeds            int        `json:"total_beds"`
	TotalPlantings       int        `json:"total_plantings"`
	NextSellingDate      *time.Time `json:"next_selling_date"`
	DaysUntilNextSelling *int       `json:"days_until_next_selling"`
}

type DashboardData struct {
	Summary             DashboardSummary     `json:"summary"`
	UpcomingHarvests    []UpcomingHarvest    `json:"upcoming_harvests"`
	PlantingSuggestions []PlantingSuggestion `json:"planting_suggestions"`
}

// BuildDashboard: Sayaçları ve iki motoru tek kesit üzerinden birleştirir.
// Yan etkisi yoktur, aynı kesit ve referans tarihle aynı sonucu üretir.
// NextSellingDate pencere içindeki en erken beklenen hasat tarihidir;
// pencere boşsa nil kalır.
func BuildDashboard(snap *Snapshot, referenceDate time.Time, weeksAhead int, policy CropSelectionPolicy, signals MarketSignals, th Thresholds) DashboardData {
	upcoming := Forecast(snap, referenceDate, weeksAhead)
	suggestions := Suggest(snap, policy, signals, referenceDate, th)

	summary := DashboardSummary{
		TotalFarms:     len(snap.Farms),
		TotalBeds:      len(snap.Beds),
		TotalPlantings: len(snap.ActivePlantings),
	}

	if len(upcoming) > 0 {
		// Liste kalan güne göre sıralı, ilk giriş en erken hasat
		next := upcoming[0].ExpectedHarvestDate
		days := upcoming[0].DaysUntilHarvest
		summary.NextSellingDate = &next
		summary.DaysUntilNextSelling = &days
	}

	return DashboardData{
		Summary:             summary,
		UpcomingHarvests:    upcoming,
		PlantingSuggestions: suggestions,
	}
}
