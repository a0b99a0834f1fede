package farm

import (
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type BedResponse struct {
	ID          uint     `json:"id"`
	FarmID      uint     `json:"farm_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Width       *float64 `json:"width"`
	Length      *float64 `json:"length"`
	Area        *float64 `json:"area"`
	SoilType    string   `json:"soil_type"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at"`
}

type CreateBedRequest struct {
	FarmID      uint     `json:"farm_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Width       *float64 `json:"width"`
	Length      *float64 `json:"length"`
	SoilType    string   `json:"soil_type"`
}

type UpdateBedRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Width       *float64 `json:"width"`
	Length      *float64 `json:"length"`
	SoilType    *string  `json:"soil_type"`
	IsActive    *bool    `json:"is_active"`
}

func toBedResponse(b models.Bed) BedResponse {
	return BedResponse{
		ID:          b.ID,
		FarmID:      b.FarmID,
		Name:        b.Name,
		Description: b.Description,
		Width:       b.Width,
		Length:      b.Length,
		Area:        b.Area,
		SoilType:    b.SoilType,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// computeArea: Genişlik ve uzunluk birlikte girildiyse alanı türet.
func computeArea(width, length *float64) *float64 {
	if width == nil || length == nil {
		return nil
	}
	area := *width * *length
	return &area
}

func CreateBedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBedRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Yatak adı boş olamaz")
		}

		var farm models.Farm
		if err := database.DB.First(&farm, "id = ?", body.FarmID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çiftlik bulunamadı")
		}

		bed := models.Bed{
			FarmID:      farm.ID,
			Name:        body.Name,
			Description: body.Description,
			Width:       body.Width,
			Length:      body.Length,
			Area:        computeArea(body.Width, body.Length),
			SoilType:    strings.TrimSpace(body.SoilType),
			IsActive:    true,
		}

		if err := database.DB.Create(&bed).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yatak oluşturulamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(toBedResponse(bed))
	}
}

// GET /api/beds?farm_id=1
func ListBedsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("farm_id ASC, name ASC")
		if farmID := c.Query("farm_id"); farmID != "" {
			q = q.Where("farm_id = ?", farmID)
		}

		var beds []models.Bed
		if err := q.Find(&beds).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yataklar listelenemedi")
		}

		res := make([]BedResponse, 0, len(beds))
		for _, b := range beds {
			res = append(res, toBedResponse(b))
		}
		return c.JSON(res)
	}
}

func GetBedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var bed models.Bed
		if err := database.DB.First(&bed, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Yatak bulunamadı")
		}
		return c.JSON(toBedResponse(bed))
	}
}

func UpdateBedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var bed models.Bed
		if err := database.DB.First(&bed, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Yatak bulunamadı")
		}

		var body UpdateBedRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Yatak adı boş olamaz")
			}
			bed.Name = name
		}
		if body.Description != nil {
			bed.Description = *body.Description
		}
		if body.Width != nil {
			bed.Width = body.Width
		}
		if body.Length != nil {
			bed.Length = body.Length
		}
		if body.SoilType != nil {
			bed.SoilType = strings.TrimSpace(*body.SoilType)
		}
		if body.IsActive != nil {
			bed.IsActive = *body.IsActive
		}
		bed.Area = computeArea(bed.Width, bed.Length)

		if err := database.DB.Save(&bed).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yatak güncellenemedi")
		}
		return c.JSON(toBedResponse(bed))
	}
}

func DeleteBedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var lineCount int64
		database.DB.Model(&models.Line{}).Where("bed_id = ?", id).Count(&lineCount)
		if lineCount > 0 {
			return fiber.NewError(fiber.StatusConflict, "Yatağa bağlı sıralar var, önce onları silin")
		}

		if err := database.DB.Delete(&models.Bed{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yatak silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
