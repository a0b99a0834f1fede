package planting

import (
	"errors"
	"time"

	"ciftlik-backend/internal/audit"
	"ciftlik-backend/internal/auth"
	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/scheduler"

	"github.com/gofiber/fiber/v2"
)

type PlantingResponse struct {
	ID                  uint     `json:"id"`
	CropID              uint     `json:"crop_id"`
	FarmID              uint     `json:"farm_id"`
	BedID               uint     `json:"bed_id"`
	LineID              uint     `json:"line_id"`
	Quantity            int      `json:"quantity"`
	PlantedDate         string   `json:"planted_date"`
	ExpectedHarvestDate string   `json:"expected_harvest_date"`
	Spacing             *float64 `json:"spacing"`
	Notes               string   `json:"notes"`
	ActualHarvestDate   *string  `json:"actual_harvest_date"`
	HarvestedQuantity   *float64 `json:"harvested_quantity"`
	IsActive            bool     `json:"is_active"`
}

type CreatePlantingRequest struct {
	CropID              uint     `json:"crop_id"`
	LineID              uint     `json:"line_id"`
	Quantity            int      `json:"quantity"`
	PlantedDate         string   `json:"planted_date"`          // YYYY-MM-DD
	ExpectedHarvestDate *string  `json:"expected_harvest_date"` // opsiyonel, doğrulama için
	Spacing             *float64 `json:"spacing"`
	Notes               string   `json:"notes"`
}

func toPlantingResponse(p models.Planting) PlantingResponse {
	res := PlantingResponse{
		ID:                  p.ID,
		CropID:              p.CropID,
		FarmID:              p.FarmID,
		BedID:               p.BedID,
		LineID:              p.LineID,
		Quantity:            p.Quantity,
		PlantedDate:         p.PlantedDate.Format("2006-01-02"),
		ExpectedHarvestDate: p.ExpectedHarvestDate.Format("2006-01-02"),
		Spacing:             p.Spacing,
		Notes:               p.Notes,
		HarvestedQuantity:   p.HarvestedQuantity,
		IsActive:            p.IsActive,
	}
	if p.ActualHarvestDate != nil {
		s := p.ActualHarvestDate.Format("2006-01-02")
		res.ActualHarvestDate = &s
	}
	return res
}

// statusFor: Motor sentinel'lerini HTTP koduna çevirir.
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

func CreatePlantingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePlantingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		plantedDate, err := time.Parse("2006-01-02", body.PlantedDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ekim tarihi YYYY-AA-GG formatında olmalı")
		}

		in := CreateInput{
			CropID:      body.CropID,
			LineID:      body.LineID,
			Quantity:    body.Quantity,
			PlantedDate: plantedDate,
			Spacing:     body.Spacing,
			Notes:       body.Notes,
		}
		if body.ExpectedHarvestDate != nil {
			expected, err := time.Parse("2006-01-02", *body.ExpectedHarvestDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Beklenen hasat tarihi YYYY-AA-GG formatında olmalı")
			}
			in.ExpectedHarvestDate = &expected
		}

		p, err := Create(database.DB, in)
		if err != nil {
			return fiber.NewError(statusFor(err), err.Error())
		}

		_ = audit.WriteLog(audit.LogOptions{
			FarmID:      &p.FarmID,
			UserID:      userIDFromCtx(c),
			UserName:    "",
			EntityType:  "planting",
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: "Ekim oluşturuldu",
			After:       p,
		})

		return c.Status(fiber.StatusCreated).JSON(toPlantingResponse(*p))
	}
}

// GET /api/plantings?farm_id=&bed_id=&line_id=&active=true
func ListPlantingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("planted_date DESC, id DESC")
		if farmID := c.Query("farm_id"); farmID != "" {
			q = q.Where("farm_id = ?", farmID)
		}
		if bedID := c.Query("bed_id"); bedID != "" {
			q = q.Where("bed_id = ?", bedID)
		}
		if lineID := c.Query("line_id"); lineID != "" {
			q = q.Where("line_id = ?", lineID)
		}
		if active := c.Query("active"); active != "" {
			q = q.Where("is_active = ?", active == "true")
		}

		var plantings []models.Planting
		if err := q.Find(&plantings).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ekimler listelenemedi")
		}

		res := make([]PlantingResponse, 0, len(plantings))
		for _, p := range plantings {
			res = append(res, toPlantingResponse(p))
		}
		return c.JSON(res)
	}
}

func GetPlantingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Planting
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ekim bulunamadı")
		}
		return c.JSON(toPlantingResponse(p))
	}
}

func DeletePlantingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Planting
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ekim bulunamadı")
		}

		// Hasada bağlanmış ekim silinmesin, geçmiş bozulur
		var harvestCount int64
		database.DB.Model(&models.Harvest{}).Where("planting_id = ?", p.ID).Count(&harvestCount)
		if harvestCount > 0 {
			return fiber.NewError(fiber.StatusConflict, "Ekime bağlı hasat kaydı var, silinemez")
		}

		if err := database.DB.Delete(&models.Planting{}, "id = ?", p.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ekim silinemedi")
		}

		_ = audit.WriteLog(audit.LogOptions{
			FarmID:      &p.FarmID,
			UserID:      userIDFromCtx(c),
			EntityType:  "planting",
			EntityID:    p.ID,
			Action:      models.AuditActionDelete,
			Description: "Ekim silindi",
			Before:      p,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func userIDFromCtx(c *fiber.Ctx) uint {
	if id, ok := c.Locals(auth.CtxUserIDKey).(uint); ok {
		return id
	}
	return 0
}
