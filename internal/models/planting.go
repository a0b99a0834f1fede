package models

import "time"

// Planting: Bir sıraya yapılan ekim kaydı. ExpectedHarvestDate türetilmiş
// alandır: PlantedDate + Crop.GrowthCycleDays. Hasat kaydedildiğinde ekim
// silinmez, IsActive=false yapılır ve sıra tekrar boşa çıkar.
type Planting struct {
	ID     uint `gorm:"primaryKey"`
	CropID uint `gorm:"index;not null"`
	Crop   Crop
	FarmID uint `gorm:"index;not null"`
	Farm   Farm
	BedID  uint `gorm:"index;not null"`
	Bed    Bed
	LineID uint `gorm:"index;not null"`
	Line   Line

	Quantity            int       `gorm:"not null"` // ekilen bitki sayısı
	PlantedDate         time.Time `gorm:"not null"`
	ExpectedHarvestDate time.Time `gorm:"not null"`
	Spacing             *float64  // bitki arası mesafe (cm)
	Notes               string    `gorm:"type:text"`

	// Hasat ile kapatıldığında doldurulur
	ActualHarvestDate *time.Time
	HarvestedQuantity *float64 // kg

	IsActive  bool `gorm:"index;not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
