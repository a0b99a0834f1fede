package scheduler

import (
	"sort"
	"time"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// rank: Sıralama için sayısal karşılık (high > medium > low).
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

type PlantingSuggestion struct {
	BedID               uint      `json:"bed_id"`
	BedName             string    `json:"bed_name"`
	LineID              uint      `json:"line_id"`
	LineName            string    `json:"line_name"`
	LinePosition        int       `json:"line_position"`
	SuggestedCropID     uint      `json:"suggested_crop_id"`
	SuggestedCrop       string    `json:"suggested_crop"`
	AvailableDate       time.Time `json:"available_date"`
	ExpectedHarvestDate time.Time `json:"expected_harvest_date"`
	MarketDemandScore   float64   `json:"market_demand_score"`
	Priority            Priority  `json:"priority"`
	Reason              string    `json:"reason"`
}

// Suggest: Boş sıralar (aktif ekimi olmayan aktif sıralar) için öncelikli
// ekim önerileri. Politikanın bitki bulamadığı sıralar sessizce atlanır.
// Sıralama: öncelik (high > medium > low), sonra talep skoru azalan,
// sonra sıra pozisyonu artan.
func Suggest(snap *Snapshot, policy CropSelectionPolicy, signals MarketSignals, referenceDate time.Time, th Thresholds) []PlantingSuggestion {
	result := []PlantingSuggestion{}

	beds := snap.bedByID()
	occupied := snap.occupiedLines()
	refDay := dateOnly(referenceDate)

	for _, line := range snap.Lines {
		if !line.IsActive || occupied[line.ID] {
			continue
		}
		bed, ok := beds[line.BedID]
		if !ok || !bed.IsActive {
			continue
		}

		crop, reason := policy.Select(line, bed, snap.Crops, referenceDate)
		if crop == nil {
			continue
		}

		// Ekim bugün yapılsaydı hasat ne zaman olurdu
		harvestDate, err := ExpectedHarvestDate(refDay, crop.GrowthCycleDays)
		if err != nil {
			continue
		}

		score := clampScore(signals.DemandScore(crop.ID))
		result = append(result, PlantingSuggestion{
			BedID:               bed.ID,
			BedName:             bed.Name,
			LineID:              line.ID,
			LineName:            line.Name,
			LinePosition:        line.Position,
			SuggestedCropID:     crop.ID,
			SuggestedCrop:       crop.Name,
			AvailableDate:       refDay,
			ExpectedHarvestDate: harvestDate,
			MarketDemandScore:   score,
			Priority:            priorityFor(score, th),
			Reason:              reason,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Priority != result[j].Priority {
			return result[i].Priority.rank() > result[j].Priority.rank()
		}
		if result[i].MarketDemandScore != result[j].MarketDemandScore {
			return result[i].MarketDemandScore > result[j].MarketDemandScore
		}
		if result[i].LinePosition != result[j].LinePosition {
			return result[i].LinePosition < result[j].LinePosition
		}
		return result[i].LineID < result[j].LineID
	})

	return result
}

func priorityFor(score float64, th Thresholds) Priority {
	switch {
	case score >= th.PriorityHigh:
		return PriorityHigh
	case score >= th.PriorityMedium:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
