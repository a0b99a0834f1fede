package models

import "time"

// Line: Yatak içindeki ekim sırası. Position yatak içinde benzersiz
// sıralama anahtarıdır (1, 2, 3, ...). Bir sırada aynı anda en fazla
// bir aktif ekim bulunabilir.
type Line struct {
	ID        uint `gorm:"primaryKey"`
	BedID     uint `gorm:"index;not null;uniqueIndex:idx_lines_bed_position"`
	Bed       Bed
	Name      string `gorm:"size:255;not null"`
	Position  int    `gorm:"not null;uniqueIndex:idx_lines_bed_position"`
	Length    *float64 // metre
	Width     *float64 // metre
	Spacing   *float64 // bitki arası mesafe (cm)
	IsActive  bool     `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
