package models

import "time"

type Farm struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"size:500"`
	TotalArea   *float64 // m² (opsiyonel)
	IsActive    bool     `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Beds []Bed
}
