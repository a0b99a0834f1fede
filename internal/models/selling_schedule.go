package models

import "time"

// SellingSchedule: Düzenli satış günleri (pazar, kooperatif teslimatı vs.).
// İlk satış tarihinden itibaren her SellingFrequencyDays günde bir tekrar eder.
type SellingSchedule struct {
	ID     uint `gorm:"primaryKey"`
	FarmID uint `gorm:"index;not null"`
	Farm   Farm

	Name                 string    `gorm:"size:255;not null"`
	FirstSellingDate     time.Time `gorm:"not null"`
	SellingFrequencyDays int       `gorm:"not null"` // her X günde bir

	TargetCrops []uint `gorm:"serializer:json"` // odaklanılacak bitki id'leri

	Notes     string `gorm:"type:text"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
