package harvest

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/harvests/export?farm_id=&start_date=&end_date=
// Hasat kayıtlarını analiz alanlarıyla birlikte Excel olarak indirir.
func ExportHarvestsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("harvest_date ASC, id ASC")
		if farmID := c.Query("farm_id"); farmID != "" {
			q = q.Where("farm_id = ?", farmID)
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
		if err := q.Preload("Planting").Preload("Planting.Crop").Find(&harvests).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hasatlar okunamadı")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Hasatlar"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{
			"ID", "Bitki", "Hasat Tarihi", "Miktar (kg)", "Beklenen Hasat Tarihi",
			"Gün Sapması", "Beklenen Verim (kg)", "Verim %", "Kalite", "Not",
		}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, h := range harvests {
			values := []interface{}{
				h.ID,
				h.Planting.Crop.Name,
				h.HarvestDate.Format("2006-01-02"),
				h.HarvestedQuantity,
				"",
				"",
				"",
				"",
				"",
				h.Notes,
			}
			if h.ExpectedHarvestDate != nil {
				values[4] = h.ExpectedHarvestDate.Format("2006-01-02")
			}
			if h.DaysEarlyLate != nil {
				values[5] = *h.DaysEarlyLate
			}
			if h.ExpectedYield != nil {
				values[6] = *h.ExpectedYield
			}
			if h.YieldPercentage != nil {
				values[7] = *h.YieldPercentage
			}
			if h.QualityRating != nil {
				values[8] = *h.QualityRating
			}

			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		filename := fmt.Sprintf("hasatlar-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(buf.Bytes())
	}
}
