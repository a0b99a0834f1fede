package schedule

import (
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/scheduler"

	"github.com/gofiber/fiber/v2"
)

type CreateScheduleRequest struct {
	FarmID               uint   `json:"farm_id"`
	Name                 string `json:"name"`
	FirstSellingDate     string `json:"first_selling_date"` // YYYY-MM-DD
	SellingFrequencyDays int    `json:"selling_frequency_days"`
	TargetCrops          []uint `json:"target_crops"`
	Notes                string `json:"notes"`
}

type UpdateScheduleRequest struct {
	Name                 *string `json:"name"`
	FirstSellingDate     *string `json:"first_selling_date"`
	SellingFrequencyDays *int    `json:"selling_frequency_days"`
	TargetCrops          *[]uint `json:"target_crops"`
	Notes                *string `json:"notes"`
	IsActive             *bool   `json:"is_active"`
}

// POST /api/selling-schedules
func CreateScheduleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateScheduleRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Program adı zorunludur")
		}
		if req.SellingFrequencyDays <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Satış sıklığı pozitif gün olmalıdır")
		}
		firstDate, err := time.Parse("2006-01-02", req.FirstSellingDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ilk satış tarihi, YYYY-MM-DD bekleniyor")
		}

		var farm models.Farm
		if err := database.DB.First(&farm, req.FarmID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çiftlik bulunamadı")
		}

		sched := models.SellingSchedule{
			FarmID:               req.FarmID,
			Name:                 req.Name,
			FirstSellingDate:     firstDate,
			SellingFrequencyDays: req.SellingFrequencyDays,
			TargetCrops:          req.TargetCrops,
			Notes:                req.Notes,
			IsActive:             true,
		}
		if err := database.DB.Create(&sched).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış programı oluşturulamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(sched)
	}
}

// GET /api/selling-schedules?farm_id=
func ListSchedulesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Order("first_selling_date ASC")
		if farmID := c.Query("farm_id"); farmID != "" {
			query = query.Where("farm_id = ?", farmID)
		}
		if c.Query("active") == "true" {
			query = query.Where("is_active = ?", true)
		}

		var schedules []models.SellingSchedule
		if err := query.Find(&schedules).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış programları listelenemedi")
		}
		return c.JSON(schedules)
	}
}

// GET /api/selling-schedules/:id
func GetScheduleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sched models.SellingSchedule
		if err := database.DB.First(&sched, c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Satış programı bulunamadı")
		}
		return c.JSON(sched)
	}
}

// PUT /api/selling-schedules/:id
func UpdateScheduleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sched models.SellingSchedule
		if err := database.DB.First(&sched, c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Satış programı bulunamadı")
		}

		var req UpdateScheduleRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if req.Name != nil {
			if *req.Name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Program adı boş olamaz")
			}
			sched.Name = *req.Name
		}
		if req.FirstSellingDate != nil {
			d, err := time.Parse("2006-01-02", *req.FirstSellingDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ilk satış tarihi, YYYY-MM-DD bekleniyor")
			}
			sched.FirstSellingDate = d
		}
		if req.SellingFrequencyDays != nil {
			if *req.SellingFrequencyDays <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Satış sıklığı pozitif gün olmalıdır")
			}
			sched.SellingFrequencyDays = *req.SellingFrequencyDays
		}
		if req.TargetCrops != nil {
			sched.TargetCrops = *req.TargetCrops
		}
		if req.Notes != nil {
			sched.Notes = *req.Notes
		}
		if req.IsActive != nil {
			sched.IsActive = *req.IsActive
		}

		if err := database.DB.Save(&sched).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış programı güncellenemedi")
		}
		return c.JSON(sched)
	}
}

// DELETE /api/selling-schedules/:id
func DeleteScheduleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sched models.SellingSchedule
		if err := database.DB.First(&sched, c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Satış programı bulunamadı")
		}
		if err := database.DB.Delete(&sched).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış programı silinemedi")
		}
		return c.JSON(fiber.Map{"message": "Satış programı silindi"})
	}
}

// GET /api/selling-schedules/:id/upcoming?days=
func UpcomingDatesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sched models.SellingSchedule
		if err := database.DB.First(&sched, c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Satış programı bulunamadı")
		}

		horizonDays := c.QueryInt("days", 30)
		if horizonDays <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "days pozitif olmalıdır")
		}

		dates, err := scheduler.SellingDates(sched.FirstSellingDate, sched.SellingFrequencyDays, time.Now(), horizonDays)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Satış tarihleri hesaplanamadı")
		}

		out := make([]string, 0, len(dates))
		for _, d := range dates {
			out = append(out, d.Format("2006-01-02"))
		}
		return c.JSON(fiber.Map{
			"schedule_id":    sched.ID,
			"name":           sched.Name,
			"upcoming_dates": out,
		})
	}
}
