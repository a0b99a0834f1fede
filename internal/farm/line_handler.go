package farm

import (
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LineResponse struct {
	ID        uint     `json:"id"`
	BedID     uint     `json:"bed_id"`
	Name      string   `json:"name"`
	Position  int      `json:"position"`
	Length    *float64 `json:"length"`
	Width     *float64 `json:"width"`
	Spacing   *float64 `json:"spacing"`
	IsActive  bool     `json:"is_active"`
	CreatedAt string   `json:"created_at"`
}

type CreateLineRequest struct {
	BedID    uint     `json:"bed_id"`
	Name     string   `json:"name"`
	Position int      `json:"position"`
	Length   *float64 `json:"length"`
	Width    *float64 `json:"width"`
	Spacing  *float64 `json:"spacing"`
}

type UpdateLineRequest struct {
	Name     *string  `json:"name"`
	Position *int     `json:"position"`
	Length   *float64 `json:"length"`
	Width    *float64 `json:"width"`
	Spacing  *float64 `json:"spacing"`
	IsActive *bool    `json:"is_active"`
}

func toLineResponse(l models.Line) LineResponse {
	return LineResponse{
		ID:        l.ID,
		BedID:     l.BedID,
		Name:      l.Name,
		Position:  l.Position,
		Length:    l.Length,
		Width:     l.Width,
		Spacing:   l.Spacing,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func CreateLineHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLineRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Sıra adı boş olamaz")
		}
		if body.Position < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Pozisyon 1 veya daha büyük olmalı")
		}

		var bed models.Bed
		if err := database.DB.First(&bed, "id = ?", body.BedID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Yatak bulunamadı")
		}

		// Pozisyon yatak içinde benzersiz olmalı
		var exists int64
		database.DB.Model(&models.Line{}).
			Where("bed_id = ? AND position = ?", bed.ID, body.Position).
			Count(&exists)
		if exists > 0 {
			return fiber.NewError(fiber.StatusConflict, "Bu pozisyonda zaten bir sıra var")
		}

		line := models.Line{
			BedID:    bed.ID,
			Name:     body.Name,
			Position: body.Position,
			Length:   body.Length,
			Width:    body.Width,
			Spacing:  body.Spacing,
			IsActive: true,
		}

		if err := database.DB.Create(&line).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sıra oluşturulamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(toLineResponse(line))
	}
}

// GET /api/lines?bed_id=1
func ListLinesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("bed_id ASC, position ASC")
		if bedID := c.Query("bed_id"); bedID != "" {
			q = q.Where("bed_id = ?", bedID)
		}

		var lines []models.Line
		if err := q.Find(&lines).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sıralar listelenemedi")
		}

		res := make([]LineResponse, 0, len(lines))
		for _, l := range lines {
			res = append(res, toLineResponse(l))
		}
		return c.JSON(res)
	}
}

func GetLineHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var line models.Line
		if err := database.DB.First(&line, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sıra bulunamadı")
		}
		return c.JSON(toLineResponse(line))
	}
}

func UpdateLineHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var line models.Line
		if err := database.DB.First(&line, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sıra bulunamadı")
		}

		var body UpdateLineRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Sıra adı boş olamaz")
			}
			line.Name = name
		}
		if body.Position != nil {
			if *body.Position < 1 {
				return fiber.NewError(fiber.StatusBadRequest, "Pozisyon 1 veya daha büyük olmalı")
			}
			var exists int64
			database.DB.Model(&models.Line{}).
				Where("bed_id = ? AND position = ? AND id <> ?", line.BedID, *body.Position, line.ID).
				Count(&exists)
			if exists > 0 {
				return fiber.NewError(fiber.StatusConflict, "Bu pozisyonda zaten bir sıra var")
			}
			line.Position = *body.Position
		}
		if body.Length != nil {
			line.Length = body.Length
		}
		if body.Width != nil {
			line.Width = body.Width
		}
		if body.Spacing != nil {
			line.Spacing = body.Spacing
		}
		if body.IsActive != nil {
			line.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&line).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sıra güncellenemedi")
		}
		return c.JSON(toLineResponse(line))
	}
}

func DeleteLineHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Aktif ekimi olan sıra silinemez
		var active int64
		database.DB.Model(&models.Planting{}).
			Where("line_id = ? AND is_active = ?", id, true).
			Count(&active)
		if active > 0 {
			return fiber.NewError(fiber.StatusConflict, "Sırada aktif bir ekim var, önce hasat edin")
		}

		if err := database.DB.Delete(&models.Line{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sıra silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
