package models

import "time"

type Crop struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:255;not null;unique"`
	Category string `gorm:"size:100;not null"` // sebze, meyve, şifalı ot vs.

	// Yetiştirme bilgileri
	GrowthCycleDays       int      `gorm:"not null"` // ekimden hasada gün sayısı
	ExpectedYieldPerPlant float64  // bitki başına beklenen verim (kg)
	SpacingCM             *float64 // bitkiler arası mesafe
	RowSpacingCM          *float64 // sıralar arası mesafe

	// Mevsim ve toprak uygunluğu (boş liste = kısıt yok)
	BestPlantingSeasons []int    `gorm:"serializer:json"` // uygun ekim ayları (1-12)
	SuitableSoilTypes   []string `gorm:"serializer:json"`

	// Pazar bilgileri
	MarketPricePerKG *float64
	StorageLifeDays  *int

	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
