package models

import "time"

// Bed: Çiftlik içindeki yetiştirme yatağı. Alan, genişlik ve uzunluk
// girildiyse kayıt sırasında hesaplanır.
type Bed struct {
	ID          uint `gorm:"primaryKey"`
	FarmID      uint `gorm:"index;not null"`
	Farm        Farm
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Width       *float64 // metre
	Length      *float64 // metre
	Area        *float64 // m², Width × Length
	SoilType    string   `gorm:"size:100"` // killi, kumlu, tınlı vs.
	IsActive    bool     `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lines []Line
}
