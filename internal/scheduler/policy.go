package scheduler

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/models"
)

// MarketSignals: Bitki başına pazar talep skoru [0.0, 1.0] veren dış işbirlikçi.
type MarketSignals interface {
	DemandScore(cropID uint) float64
}

// StaticMarketSignals: Sabit tablo; test ve elle ayar için.
type StaticMarketSignals map[uint]float64

func (s StaticMarketSignals) DemandScore(cropID uint) float64 {
	return clampScore(s[cropID])
}

// PriceDerivedSignals: Kesitteki kg fiyatlarından türetilen skor; en pahalı
// bitki 1.0 alır, fiyatı olmayan 0 alır. Gerçek pazar verisi bağlanana kadar
// varsayılan kaynak budur.
type PriceDerivedSignals struct {
	scores map[uint]float64
}

func NewPriceDerivedSignals(crops []models.Crop) *PriceDerivedSignals {
	maxPrice := 0.0
	for _, c := range crops {
		if c.MarketPricePerKG != nil && *c.MarketPricePerKG > maxPrice {
			maxPrice = *c.MarketPricePerKG
		}
	}

	scores := make(map[uint]float64, len(crops))
	if maxPrice > 0 {
		for _, c := range crops {
			if c.MarketPricePerKG != nil {
				scores[c.ID] = clampScore(*c.MarketPricePerKG / maxPrice)
			}
		}
	}
	return &PriceDerivedSignals{scores: scores}
}

func (s *PriceDerivedSignals) DemandScore(cropID uint) float64 {
	return s.scores[cropID]
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CropSelectionPolicy: Boş bir sıra için hangi bitkinin önerileceğini seçer.
// nil dönerse o sıra için öneri üretilmez (hata değil). Reason insan okunur
// kısa gerekçedir ve öneri kaydına aynen taşınır.
type CropSelectionPolicy interface {
	Select(line models.Line, bed models.Bed, crops []models.Crop, referenceDate time.Time) (*models.Crop, string)
}

// soilEligible: Bitki yatak toprağına uygun mu? Bitkide liste yoksa veya
// yatakta toprak tipi girilmemişse kısıt uygulanmaz.
func soilEligible(crop models.Crop, bed models.Bed) bool {
	if len(crop.SuitableSoilTypes) == 0 || bed.SoilType == "" {
		return true
	}
	for _, st := range crop.SuitableSoilTypes {
		if st == bed.SoilType {
			return true
		}
	}
	return false
}

// seasonEligible: Referans ay bitkinin ekim aylarından biri mi?
// Liste boşsa her ay uygundur.
func seasonEligible(crop models.Crop, referenceDate time.Time) bool {
	if len(crop.BestPlantingSeasons) == 0 {
		return true
	}
	month := int(referenceDate.Month())
	for _, m := range crop.BestPlantingSeasons {
		if m == month {
			return true
		}
	}
	return false
}

// MarketDemandPolicy: Toprağa ve mevsime uygun bitkiler arasından talep
// skoru en yüksek olanı seçer. Eşitlikte küçük bitki id kazanır.
type MarketDemandPolicy struct {
	Signals MarketSignals
}

func (p *MarketDemandPolicy) Select(line models.Line, bed models.Bed, crops []models.Crop, referenceDate time.Time) (*models.Crop, string) {
	var best *models.Crop
	bestScore := -1.0

	for i := range crops {
		c := &crops[i]
		if !c.IsActive || c.GrowthCycleDays <= 0 {
			continue
		}
		if !soilEligible(*c, bed) || !seasonEligible(*c, referenceDate) {
			continue
		}
		score := p.Signals.DemandScore(c.ID)
		if score > bestScore || (score == bestScore && best != nil && c.ID < best.ID) {
			best = c
			bestScore = score
		}
	}

	if best == nil {
		return nil, ""
	}
	return best, fmt.Sprintf("%s için pazar talebi yüksek (skor %.2f)", best.Name, bestScore)
}

// RotationPolicy: Sırada en son yetişen bitkiyi tekrar önermez; kalan uygun
// bitkiler arasında sıra pozisyonuna göre dönüşümlü dağıtır. Tek uygun bitki
// son yetişenle aynıysa yine de önerilir (boş bırakmaktan iyidir).
type RotationPolicy struct {
	LastCropByLine map[uint]uint
}

func (p *RotationPolicy) Select(line models.Line, bed models.Bed, crops []models.Crop, referenceDate time.Time) (*models.Crop, string) {
	eligible := make([]*models.Crop, 0, len(crops))
	for i := range crops {
		c := &crops[i]
		if !c.IsActive || c.GrowthCycleDays <= 0 {
			continue
		}
		if !soilEligible(*c, bed) || !seasonEligible(*c, referenceDate) {
			continue
		}
		eligible = append(eligible, c)
	}
	if len(eligible) == 0 {
		return nil, ""
	}

	lastCrop, hasLast := uint(0), false
	if p.LastCropByLine != nil {
		lastCrop, hasLast = p.LastCropByLine[line.ID], p.LastCropByLine[line.ID] != 0
	}

	rotated := eligible
	if hasLast && len(eligible) > 1 {
		rotated = make([]*models.Crop, 0, len(eligible))
		for _, c := range eligible {
			if c.ID != lastCrop {
				rotated = append(rotated, c)
			}
		}
		if len(rotated) == 0 {
			rotated = eligible
		}
	}

	pick := rotated[line.Position%len(rotated)]
	if hasLast {
		return pick, fmt.Sprintf("rotasyon: son ekilen bitkiden farklı, %s önerildi", pick.Name)
	}
	return pick, fmt.Sprintf("rotasyon: %s önerildi", pick.Name)
}
