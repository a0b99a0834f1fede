package harvest

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/scheduler"

	"gorm.io/gorm"
)

type RecordInput struct {
	HarvestDate       time.Time
	HarvestedQuantity float64
	QualityRating     *int
	Notes             string
	WeatherConditions string
	HarvestMethod     string
	HarvestedBy       string
}

// RecordHarvest: Hasat kaydı tek durum geçişidir; hasat satırının yazılması
// ve ekimin pasifleştirilmesi aynı transaction içinde olur. Ekim zaten
// pasifse ErrInvalidState döner; eşzamanlı iki deneme is_active koşullu
// UPDATE ile serileştirilir (RowsAffected == 0 → kaybeden taraf).
func RecordHarvest(db *gorm.DB, plantingID uint, in RecordInput, th scheduler.Thresholds) (*models.Harvest, error) {
	if in.HarvestedQuantity < 0 {
		return nil, fmt.Errorf("%w: hasat miktarı negatif olamaz", scheduler.ErrInvalidInput)
	}
	if in.QualityRating != nil && (*in.QualityRating < 1 || *in.QualityRating > 5) {
		return nil, fmt.Errorf("%w: kalite puanı 1-5 arasında olmalı", scheduler.ErrInvalidInput)
	}
	if in.HarvestDate.IsZero() {
		in.HarvestDate = time.Now()
	}

	var harvest *models.Harvest
	err := db.Transaction(func(tx *gorm.DB) error {
		var planting models.Planting
		if err := tx.First(&planting, "id = ?", plantingID).Error; err != nil {
			return fmt.Errorf("%w: ekim", scheduler.ErrNotFound)
		}
		if !planting.IsActive {
			return fmt.Errorf("%w: ekim zaten hasat edilmiş", scheduler.ErrInvalidState)
		}

		var crop models.Crop
		if err := tx.First(&crop, "id = ?", planting.CropID).Error; err != nil {
			return fmt.Errorf("%w: bitki", scheduler.ErrNotFound)
		}

		outcome, err := scheduler.AnalyzeOutcome(planting, crop, in.HarvestDate, in.HarvestedQuantity, th)
		if err != nil {
			return err
		}

		expectedDate := planting.ExpectedHarvestDate
		h := models.Harvest{
			PlantingID:          planting.ID,
			FarmID:              planting.FarmID,
			BedID:               planting.BedID,
			LineID:              planting.LineID,
			CropID:              planting.CropID,
			HarvestDate:         in.HarvestDate,
			HarvestedQuantity:   in.HarvestedQuantity,
			QualityRating:       in.QualityRating,
			Notes:               in.Notes,
			ExpectedHarvestDate: &expectedDate,
			DaysEarlyLate:       outcome.DaysEarlyLate,
			ExpectedYield:       outcome.ExpectedYield,
			YieldPercentage:     outcome.YieldPercentage,
			WeatherConditions:   in.WeatherConditions,
			HarvestMethod:       in.HarvestMethod,
			HarvestedBy:         in.HarvestedBy,
			IsComplete:          true,
		}

		if err := tx.Create(&h).Error; err != nil {
			return fmt.Errorf("hasat kaydedilemedi: %w", err)
		}

		// is_active koşulu iyimser kilit görevi görür
		res := tx.Model(&models.Planting{}).
			Where("id = ? AND is_active = ?", planting.ID, true).
			Updates(map[string]interface{}{
				"is_active":           false,
				"actual_harvest_date": in.HarvestDate,
				"harvested_quantity":  in.HarvestedQuantity,
			})
		if res.Error != nil {
			return fmt.Errorf("ekim güncellenemedi: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: ekim eşzamanlı olarak hasat edildi", scheduler.ErrInvalidState)
		}

		harvest = &h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return harvest, nil
}
