package models

import "time"

// Harvest: Bir ekimi kapatan hasat kaydı. Zamanlama ve verim analiz
// alanları kayıt sırasında hesaplanır, elle girilmez.
type Harvest struct {
	ID         uint `gorm:"primaryKey"`
	PlantingID uint `gorm:"index;not null"`
	Planting   Planting
	// Raporlama için denormalize referanslar
	FarmID uint `gorm:"index;not null"`
	BedID  uint `gorm:"index;not null"`
	LineID uint `gorm:"index;not null"`
	CropID uint `gorm:"index;not null"`

	HarvestDate       time.Time `gorm:"index;not null"`
	HarvestedQuantity float64   `gorm:"not null"` // kg
	QualityRating     *int      // 1-5
	Notes             string    `gorm:"type:text"`

	// Zamanlama analizi (pozitif = erken, negatif = geç)
	ExpectedHarvestDate *time.Time
	DaysEarlyLate       *int

	// Verim analizi
	ExpectedYield   *float64 // kg
	YieldPercentage *float64 // gerçekleşen / beklenen × 100

	WeatherConditions string `gorm:"size:100"`
	HarvestMethod     string `gorm:"size:50"` // elle, makine vs.
	HarvestedBy       string `gorm:"size:100"`

	IsComplete bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
