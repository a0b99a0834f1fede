package planting

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/scheduler"

	"gorm.io/gorm"
)

type CreateInput struct {
	CropID      uint
	LineID      uint
	Quantity    int
	PlantedDate time.Time
	// İstemci gönderirse türetilmiş değere karşı doğrulanır, yeniden girilmez
	ExpectedHarvestDate *time.Time
	Spacing             *float64
	Notes               string
}

// Create: Ekim kaydını doğrulayıp oluşturur. Sıra doluysa ErrInvalidState,
// referanslar eksikse ErrNotFound, türetilmiş hasat tarihi tutmuyorsa
// ErrInvalidInput döner. Çiftlik ve yatak id'leri sıradan çözülür,
// istemciden alınmaz.
func Create(db *gorm.DB, in CreateInput) (*models.Planting, error) {
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: bitki sayısı negatif olamaz", scheduler.ErrInvalidInput)
	}
	if in.PlantedDate.IsZero() {
		return nil, fmt.Errorf("%w: ekim tarihi zorunlu", scheduler.ErrInvalidInput)
	}

	var line models.Line
	if err := db.First(&line, "id = ?", in.LineID).Error; err != nil {
		return nil, fmt.Errorf("%w: sıra", scheduler.ErrNotFound)
	}
	var bed models.Bed
	if err := db.First(&bed, "id = ?", line.BedID).Error; err != nil {
		return nil, fmt.Errorf("%w: yatak", scheduler.ErrNotFound)
	}
	var crop models.Crop
	if err := db.First(&crop, "id = ?", in.CropID).Error; err != nil {
		return nil, fmt.Errorf("%w: bitki", scheduler.ErrNotFound)
	}

	expected, err := scheduler.ExpectedHarvestDate(in.PlantedDate, crop.GrowthCycleDays)
	if err != nil {
		return nil, err
	}
	if in.ExpectedHarvestDate != nil && !sameDay(*in.ExpectedHarvestDate, expected) {
		return nil, fmt.Errorf("%w: beklenen hasat tarihi ekim tarihi + yetiştirme süresi olmalı (%s)",
			scheduler.ErrInvalidInput, expected.Format("2006-01-02"))
	}

	// Bir sırada aynı anda tek aktif ekim olabilir
	var occupied int64
	db.Model(&models.Planting{}).
		Where("line_id = ? AND is_active = ?", line.ID, true).
		Count(&occupied)
	if occupied > 0 {
		return nil, fmt.Errorf("%w: sırada zaten aktif bir ekim var", scheduler.ErrInvalidState)
	}

	p := models.Planting{
		CropID:              crop.ID,
		FarmID:              bed.FarmID,
		BedID:               bed.ID,
		LineID:              line.ID,
		Quantity:            in.Quantity,
		PlantedDate:         in.PlantedDate,
		ExpectedHarvestDate: expected,
		Spacing:             in.Spacing,
		Notes:               in.Notes,
		IsActive:            true,
	}

	if err := db.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("ekim kaydedilemedi: %w", err)
	}
	return &p, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
