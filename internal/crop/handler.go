package crop

import (
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CropResponse struct {
	ID                    uint     `json:"id"`
	Name                  string   `json:"name"`
	Category              string   `json:"category"`
	GrowthCycleDays       int      `json:"growth_cycle_days"`
	ExpectedYieldPerPlant float64  `json:"expected_yield_per_plant"`
	SpacingCM             *float64 `json:"spacing_cm"`
	RowSpacingCM          *float64 `json:"row_spacing_cm"`
	BestPlantingSeasons   []int    `json:"best_planting_seasons"`
	SuitableSoilTypes     []string `json:"suitable_soil_types"`
	MarketPricePerKG      *float64 `json:"market_price_per_kg"`
	StorageLifeDays       *int     `json:"storage_life_days"`
	Description           string   `json:"description"`
	IsActive              bool     `json:"is_active"`
}

type CreateCropRequest struct {
	Name                  string   `json:"name"`
	Category              string   `json:"category"`
	GrowthCycleDays       int      `json:"growth_cycle_days"`
	ExpectedYieldPerPlant float64  `json:"expected_yield_per_plant"`
	SpacingCM             *float64 `json:"spacing_cm"`
	RowSpacingCM          *float64 `json:"row_spacing_cm"`
	BestPlantingSeasons   []int    `json:"best_planting_seasons"`
	SuitableSoilTypes     []string `json:"suitable_soil_types"`
	MarketPricePerKG      *float64 `json:"market_price_per_kg"`
	StorageLifeDays       *int     `json:"storage_life_days"`
	Description           string   `json:"description"`
}

type UpdateCropRequest struct {
	Name                  *string   `json:"name"`
	Category              *string   `json:"category"`
	GrowthCycleDays       *int      `json:"growth_cycle_days"`
	ExpectedYieldPerPlant *float64  `json:"expected_yield_per_plant"`
	SpacingCM             *float64  `json:"spacing_cm"`
	RowSpacingCM          *float64  `json:"row_spacing_cm"`
	BestPlantingSeasons   *[]int    `json:"best_planting_seasons"`
	SuitableSoilTypes     *[]string `json:"suitable_soil_types"`
	MarketPricePerKG      *float64  `json:"market_price_per_kg"`
	StorageLifeDays       *int      `json:"storage_life_days"`
	Description           *string   `json:"description"`
	IsActive              *bool     `json:"is_active"`
}

func toCropResponse(cr models.Crop) CropResponse {
	return CropResponse{
		ID:                    cr.ID,
		Name:                  cr.Name,
		Category:              cr.Category,
		GrowthCycleDays:       cr.GrowthCycleDays,
		ExpectedYieldPerPlant: cr.ExpectedYieldPerPlant,
		SpacingCM:             cr.SpacingCM,
		RowSpacingCM:          cr.RowSpacingCM,
		BestPlantingSeasons:   cr.BestPlantingSeasons,
		SuitableSoilTypes:     cr.SuitableSoilTypes,
		MarketPricePerKG:      cr.MarketPricePerKG,
		StorageLifeDays:       cr.StorageLifeDays,
		Description:           cr.Description,
		IsActive:              cr.IsActive,
	}
}

func validateSeasons(months []int) bool {
	for _, m := range months {
		if m < 1 || m > 12 {
			return false
		}
	}
	return true
}

func CreateCropHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCropRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Bitki adı boş olamaz")
		}
		if body.GrowthCycleDays <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Yetiştirme süresi pozitif olmalı")
		}
		if body.ExpectedYieldPerPlant < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Beklenen verim negatif olamaz")
		}
		if !validateSeasons(body.BestPlantingSeasons) {
			return fiber.NewError(fiber.StatusBadRequest, "Ekim ayları 1-12 arasında olmalı")
		}

		var exist models.Crop
		if err := database.DB.Where("name = ?", body.Name).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu isimde bir bitki zaten kayıtlı")
		}

		cr := models.Crop{
			Name:                  body.Name,
			Category:              strings.TrimSpace(body.Category),
			GrowthCycleDays:       body.GrowthCycleDays,
			ExpectedYieldPerPlant: body.ExpectedYieldPerPlant,
			SpacingCM:             body.SpacingCM,
			RowSpacingCM:          body.RowSpacingCM,
			BestPlantingSeasons:   body.BestPlantingSeasons,
			SuitableSoilTypes:     body.SuitableSoilTypes,
			MarketPricePerKG:      body.MarketPricePerKG,
			StorageLifeDays:       body.StorageLifeDays,
			Description:           body.Description,
			IsActive:              true,
		}

		if err := database.DB.Create(&cr).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bitki oluşturulamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(toCropResponse(cr))
	}
}

func ListCropsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("name ASC")
		if cat := c.Query("category"); cat != "" {
			q = q.Where("category = ?", cat)
		}

		var crops []models.Crop
		if err := q.Find(&crops).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bitkiler listelenemedi")
		}

		res := make([]CropResponse, 0, len(crops))
		for _, cr := range crops {
			res = append(res, toCropResponse(cr))
		}
		return c.JSON(res)
	}
}

func GetCropHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cr models.Crop
		if err := database.DB.First(&cr, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bitki bulunamadı")
		}
		return c.JSON(toCropResponse(cr))
	}
}

func UpdateCropHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cr models.Crop
		if err := database.DB.First(&cr, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bitki bulunamadı")
		}

		var body UpdateCropRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Bitki adı boş olamaz")
			}
			cr.Name = name
		}
		if body.Category != nil {
			cr.Category = strings.TrimSpace(*body.Category)
		}
		if body.GrowthCycleDays != nil {
			if *body.GrowthCycleDays <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Yetiştirme süresi pozitif olmalı")
			}
			cr.GrowthCycleDays = *body.GrowthCycleDays
		}
		if body.ExpectedYieldPerPlant != nil {
			if *body.ExpectedYieldPerPlant < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Beklenen verim negatif olamaz")
			}
			cr.ExpectedYieldPerPlant = *body.ExpectedYieldPerPlant
		}
		if body.SpacingCM != nil {
			cr.SpacingCM = body.SpacingCM
		}
		if body.RowSpacingCM != nil {
			cr.RowSpacingCM = body.RowSpacingCM
		}
		if body.BestPlantingSeasons != nil {
			if !validateSeasons(*body.BestPlantingSeasons) {
				return fiber.NewError(fiber.StatusBadRequest, "Ekim ayları 1-12 arasında olmalı")
			}
			cr.BestPlantingSeasons = *body.BestPlantingSeasons
		}
		if body.SuitableSoilTypes != nil {
			cr.SuitableSoilTypes = *body.SuitableSoilTypes
		}
		if body.MarketPricePerKG != nil {
			cr.MarketPricePerKG = body.MarketPricePerKG
		}
		if body.StorageLifeDays != nil {
			cr.StorageLifeDays = body.StorageLifeDays
		}
		if body.Description != nil {
			cr.Description = *body.Description
		}
		if body.IsActive != nil {
			cr.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&cr).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bitki güncellenemedi")
		}
		return c.JSON(toCropResponse(cr))
	}
}

func DeleteCropHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var active int64
		database.DB.Model(&models.Planting{}).
			Where("crop_id = ? AND is_active = ?", id, true).
			Count(&active)
		if active > 0 {
			return fiber.NewError(fiber.StatusConflict, "Bu bitkiyle aktif ekimler var, silinemez")
		}

		if err := database.DB.Delete(&models.Crop{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bitki silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
