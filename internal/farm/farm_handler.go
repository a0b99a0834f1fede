package farm

import (
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type FarmResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	TotalArea   *float64 `json:"total_area"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at"`
}

type CreateFarmRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	TotalArea   *float64 `json:"total_area"`
}

type UpdateFarmRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	TotalArea   *float64 `json:"total_area"`
	IsActive    *bool    `json:"is_active"`
}

func toFarmResponse(f models.Farm) FarmResponse {
	return FarmResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Location:    f.Location,
		TotalArea:   f.TotalArea,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func CreateFarmHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateFarmRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Çiftlik adı boş olamaz")
		}
		if body.TotalArea != nil && *body.TotalArea < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Toplam alan negatif olamaz")
		}

		farm := models.Farm{
			Name:        body.Name,
			Description: body.Description,
			Location:    body.Location,
			TotalArea:   body.TotalArea,
			IsActive:    true,
		}

		if err := database.DB.Create(&farm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çiftlik oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toFarmResponse(farm))
	}
}

func ListFarmsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var farms []models.Farm
		if err := database.DB.Order("name ASC").Find(&farms).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çiftlikler listelenemedi")
		}

		res := make([]FarmResponse, 0, len(farms))
		for _, f := range farms {
			res = append(res, toFarmResponse(f))
		}
		return c.JSON(res)
	}
}

func GetFarmHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var farm models.Farm
		if err := database.DB.First(&farm, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çiftlik bulunamadı")
		}
		return c.JSON(toFarmResponse(farm))
	}
}

func UpdateFarmHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var farm models.Farm
		if err := database.DB.First(&farm, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çiftlik bulunamadı")
		}

		var body UpdateFarmRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Çiftlik adı boş olamaz")
			}
			farm.Name = name
		}
		if body.Description != nil {
			farm.Description = *body.Description
		}
		if body.Location != nil {
			farm.Location = *body.Location
		}
		if body.TotalArea != nil {
			if *body.TotalArea < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Toplam alan negatif olamaz")
			}
			farm.TotalArea = body.TotalArea
		}
		if body.IsActive != nil {
			farm.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&farm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çiftlik güncellenemedi")
		}
		return c.JSON(toFarmResponse(farm))
	}
}

func DeleteFarmHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Yatakları olan çiftlik silinmesin, önce altını boşalt
		var bedCount int64
		database.DB.Model(&models.Bed{}).Where("farm_id = ?", id).Count(&bedCount)
		if bedCount > 0 {
			return fiber.NewError(fiber.StatusConflict, "Çiftliğe bağlı yataklar var, önce onları silin")
		}

		if err := database.DB.Delete(&models.Farm{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çiftlik silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
