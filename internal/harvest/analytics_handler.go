package harvest

import (
	"math"
	"time"

	"ciftlik-backend/internal/config"
	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TimingPerformance struct {
	EarlyHarvests   int     `json:"early_harvests"`
	LateHarvests    int     `json:"late_harvests"`
	OnTimeHarvests  int     `json:"on_time_harvests"`
	EarlyPercentage float64 `json:"early_percentage"`
	LatePercentage  float64 `json:"late_percentage"`
}

type YieldPerformance struct {
	HighYield           int     `json:"high_yield"`
	LowYield            int     `json:"low_yield"`
	ExpectedYield       int     `json:"expected_yield"`
	HighYieldPercentage float64 `json:"high_yield_percentage"`
	LowYieldPercentage  float64 `json:"low_yield_percentage"`
}

type AnalyticsSummary struct {
	TotalHarvests     int               `json:"total_harvests"`
	TotalYield        float64           `json:"total_yield"`
	AverageQuality    float64           `json:"average_quality"`
	TimingPerformance TimingPerformance `json:"timing_performance"`
	YieldPerformance  YieldPerformance  `json:"yield_performance"`
}

// GET /api/harvests/analytics/summary?farm_id=&start_date=&end_date=
// Kayıtlı sapma alanları üzerinden toplu performans özeti.
func AnalyticsSummaryHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.Harvest{})
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
		if err := q.Find(&harvests).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hasatlar okunamadı")
		}

		summary := AnalyticsSummary{}
		if len(harvests) == 0 {
			return c.JSON(summary)
		}

		summary.TotalHarvests = len(harvests)

		qualitySum, qualityCount := 0, 0
		for _, h := range harvests {
			summary.TotalYield += h.HarvestedQuantity

			if h.QualityRating != nil {
				qualitySum += *h.QualityRating
				qualityCount++
			}

			if h.DaysEarlyLate != nil {
				switch {
				case *h.DaysEarlyLate > 0:
					summary.TimingPerformance.EarlyHarvests++
				case *h.DaysEarlyLate < 0:
					summary.TimingPerformance.LateHarvests++
				default:
					summary.TimingPerformance.OnTimeHarvests++
				}
			}

			if h.YieldPercentage != nil {
				switch {
				case *h.YieldPercentage > cfg.YieldHighPct:
					summary.YieldPerformance.HighYield++
				case *h.YieldPercentage < cfg.YieldLowPct:
					summary.YieldPerformance.LowYield++
				default:
					summary.YieldPerformance.ExpectedYield++
				}
			}
		}

		if qualityCount > 0 {
			summary.AverageQuality = round2(float64(qualitySum) / float64(qualityCount))
		}

		total := float64(summary.TotalHarvests)
		summary.TimingPerformance.EarlyPercentage = round1(float64(summary.TimingPerformance.EarlyHarvests) / total * 100)
		summary.TimingPerformance.LatePercentage = round1(float64(summary.TimingPerformance.LateHarvests) / total * 100)
		summary.YieldPerformance.HighYieldPercentage = round1(float64(summary.YieldPerformance.HighYield) / total * 100)
		summary.YieldPerformance.LowYieldPercentage = round1(float64(summary.YieldPerformance.LowYield) / total * 100)

		return c.JSON(summary)
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
