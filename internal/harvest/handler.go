package harvest

import (
	"errors"
	"time"

	"ciftlik-backend/internal/audit"
	"ciftlik-backend/internal/auth"
	"ciftlik-backend/internal/config"
	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/scheduler"

	"github.com/gofiber/fiber/v2"
)

type HarvestResponse struct {
	ID                  uint     `json:"id"`
	PlantingID          uint     `json:"planting_id"`
	FarmID              uint     `json:"farm_id"`
	BedID               uint     `json:"bed_id"`
	LineID              uint     `json:"line_id"`
	CropID              uint     `json:"crop_id"`
	HarvestDate         string   `json:"harvest_date"`
	HarvestedQuantity   float64  `json:"harvested_quantity"`
	QualityRating       *int     `json:"quality_rating"`
	Notes               string   `json:"notes"`
	ExpectedHarvestDate *string  `json:"expected_harvest_date"`
	DaysEarlyLate       *int     `json:"days_early_late"`
	ExpectedYield       *float64 `json:"expected_yield"`
	YieldPercentage     *float64 `json:"yield_percentage"`
	WeatherConditions   string   `json:"weather_conditions"`
	HarvestMethod       string   `json:"harvest_method"`
	HarvestedBy         string   `json:"harvested_by"`
	IsComplete          bool     `json:"is_complete"`
}

type MarkHarvestedRequest struct {
	HarvestedQuantity float64 `json:"harvested_quantity"`
	QualityRating     *int    `json:"quality_rating"`
	Notes             string  `json:"notes"`
	HarvestDate       *string `json:"harvest_date"` // YYYY-MM-DD, boşsa bugün
}

type CreateHarvestRequest struct {
	PlantingID        uint    `json:"planting_id"`
	HarvestDate       string  `json:"harvest_date"`
	HarvestedQuantity float64 `json:"harvested_quantity"`
	QualityRating     *int    `json:"quality_rating"`
	Notes             string  `json:"notes"`
	WeatherConditions string  `json:"weather_conditions"`
	HarvestMethod     string  `json:"harvest_method"`
	HarvestedBy       string  `json:"harvested_by"`
}

func toHarvestResponse(h models.Harvest) HarvestResponse {
	res := HarvestResponse{
		ID:                h.ID,
		PlantingID:        h.PlantingID,
		FarmID:            h.FarmID,
		BedID:             h.BedID,
		LineID:            h.LineID,
		CropID:            h.CropID,
		HarvestDate:       h.HarvestDate.Format("2006-01-02"),
		HarvestedQuantity: h.HarvestedQuantity,
		QualityRating:     h.QualityRating,
		Notes:             h.Notes,
		DaysEarlyLate:     h.DaysEarlyLate,
		ExpectedYield:     h.ExpectedYield,
		YieldPercentage:   h.YieldPercentage,
		WeatherConditions: h.WeatherConditions,
		HarvestMethod:     h.HarvestMethod,
		HarvestedBy:       h.HarvestedBy,
		IsComplete:        h.IsComplete,
	}
	if h.ExpectedHarvestDate != nil {
		s := h.ExpectedHarvestDate.Format("2006-01-02")
		res.ExpectedHarvestDate = &s
	}
	return res
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, scheduler.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, scheduler.ErrInvalidState):
		return fiber.StatusConflict
	case errors.Is(err, scheduler.ErrInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func thresholdsFrom(cfg *config.Config) scheduler.Thresholds {
	return scheduler.Thresholds{
		PriorityHigh:   cfg.PriorityHighThreshold,
		PriorityMedium: cfg.PriorityMediumThreshold,
		YieldHighPct:   cfg.YieldHighPct,
		YieldLowPct:    cfg.YieldLowPct,
	}
}

// POST /api/harvests/:planting_id/mark-harvested
func MarkHarvestedHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		plantingID, err := c.ParamsInt("planting_id")
		if err != nil || plantingID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ekim ID")
		}

		var body MarkHarvestedRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		in := RecordInput{
			HarvestedQuantity: body.HarvestedQuantity,
			QualityRating:     body.QualityRating,
			Notes:             body.Notes,
		}
		if body.HarvestDate != nil {
			d, err := time.Parse("2006-01-02", *body.HarvestDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Hasat tarihi YYYY-AA-GG formatında olmalı")
			}
			in.HarvestDate = d
		}

		h, err := RecordHarvest(database.DB, uint(plantingID), in, thresholdsFrom(cfg))
		if err != nil {
			return fiber.NewError(statusFor(err), err.Error())
		}

		_ = audit.WriteLog(audit.LogOptions{
			FarmID:      &h.FarmID,
			UserID:      userIDFromCtx(c),
			EntityType:  "harvest",
			EntityID:    h.ID,
			Action:      models.AuditActionCreate,
			Description: "Hasat kaydedildi, ekim kapatıldı",
			After:       h,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    "Hasat başarıyla kaydedildi",
			"harvest_id": h.ID,
			"harvest":    toHarvestResponse(*h),
		})
	}
}

// POST /api/harvests (tam gövdeyle aynı durum geçişi)
func CreateHarvestHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateHarvestRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if body.PlantingID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "planting_id zorunlu")
		}

		harvestDate, err := time.Parse("2006-01-02", body.HarvestDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Hasat tarihi YYYY-AA-GG formatında olmalı")
		}

		in := RecordInput{
			HarvestDate:       harvestDate,
			HarvestedQuantity: body.HarvestedQuantity,
			QualityRating:     body.QualityRating,
			Notes:             body.Notes,
			WeatherConditions: body.WeatherConditions,
			HarvestMethod:     body.HarvestMethod,
			HarvestedBy:       body.HarvestedBy,
		}

		h, err := RecordHarvest(database.DB, body.PlantingID, in, thresholdsFrom(cfg))
		if err != nil {
			return fiber.NewError(statusFor(err), err.Error())
		}

		_ = audit.WriteLog(audit.LogOptions{
			FarmID:      &h.FarmID,
			UserID:      userIDFromCtx(c),
			EntityType:  "harvest",
			EntityID:    h.ID,
			Action:      models.AuditActionCreate,
			Description: "Hasat kaydedildi, ekim kapatıldı",
			After:       h,
		})

		return c.Status(fiber.StatusCreated).JSON(toHarvestResponse(*h))
	}
}

// GET /api/harvests?farm_id=&bed_id=&crop_id=&start_date=&end_date=
func ListHarvestsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("harvest_date DESC, id DESC")
		if farmID := c.Query("farm_id"); farmID != "" {
			q = q.Where("farm_id = ?", farmID)
		}
		if bedID := c.Query("bed_id"); bedID != "" {
			q = q.Where("bed_id = ?", bedID)
		}
		if cropID := c.Query("crop_id"); cropID != "" {
			q = q.Where("crop_id = ?", cropID)
		}
		if start := c.Query("start_date"); start != "" {
			d, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "start_date YYYY-AA-GG formatında olmalı")
			}
			q = q.Where("harvest_date >= ?", d)
		}
		if end := c.Query("end_date"); end != "" {
			d, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "end_date YYYY-AA-GG formatında olmalı")
			}
			q = q.Where("harvest_date <= ?", d)
		}

		var harvests []models.Harvest
		if err := q.Find(&harvests).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hasatlar listelenemedi")
		}

		res := make([]HarvestResponse, 0, len(harvests))
		for _, h := range harvests {
			res = append(res, toHarvestResponse(h))
		}
		return c.JSON(res)
	}
}

func GetHarvestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var h models.Harvest
		if err := database.DB.First(&h, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Hasat bulunamadı")
		}
		return c.JSON(toHarvestResponse(h))
	}
}

func userIDFromCtx(c *fiber.Ctx) uint {
	if id, ok := c.Locals(auth.CtxUserIDKey).(uint); ok {
		return id
	}
	return 0
}
