package dashboard

import (
	"time"

	"ciftlik-backend/internal/config"
	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/scheduler"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadSnapshot: Motorun çalışacağı kesiti tek seferde okur. farm_id
// verildiyse tüm kesit o çiftliğe daraltılır. Tutarlılık sorumluluğu
// burada, motor yalnızca verilen kesiti işler.
func loadSnapshot(db *gorm.DB, farmID string) (*scheduler.Snapshot, error) {
	snap := &scheduler.Snapshot{}

	farmQ := db.Where("is_active = ?", true)
	bedQ := db.Where("is_active = ?", true)
	lineQ := db.Where("is_active = ?", true)
	plantingQ := db.Where("is_active = ?", true)

	if farmID != "" {
		farmQ = farmQ.Where("id = ?", farmID)
		bedQ = bedQ.Where("farm_id = ?", farmID)
		plantingQ = plantingQ.Where("farm_id = ?", farmID)
	}

	if err := farmQ.Find(&snap.Farms).Error; err != nil {
		return nil, err
	}
	if err := bedQ.Find(&snap.Beds).Error; err != nil {
		return nil, err
	}

	if farmID != "" {
		bedIDs := make([]uint, 0, len(snap.Beds))
		for _, b := range snap.Beds {
			bedIDs = append(bedIDs, b.ID)
		}
		if len(bedIDs) == 0 {
			bedIDs = append(bedIDs, 0) // boş IN listesi olmasın
		}
		lineQ = lineQ.Where("bed_id IN ?", bedIDs)
	}
	if err := lineQ.Find(&snap.Lines).Error; err != nil {
		return nil, err
	}

	if err := db.Where("is_active = ?", true).Find(&snap.Crops).Error; err != nil {
		return nil, err
	}
	if err := plantingQ.Find(&snap.ActivePlantings).Error; err != nil {
		return nil, err
	}

	// Rotasyon politikası için: her sıranın en son kapanan ekimi
	var closed []models.Planting
	closedQ := db.Where("is_active = ?", false).Order("planted_date ASC")
	if farmID != "" {
		closedQ = closedQ.Where("farm_id = ?", farmID)
	}
	if err := closedQ.Find(&closed).Error; err != nil {
		return nil, err
	}
	snap.LastCropByLine = make(map[uint]uint, len(closed))
	for _, p := range closed {
		snap.LastCropByLine[p.LineID] = p.CropID // tarihe göre sıralı, sonuncusu kalır
	}

	return snap, nil
}

func policyFrom(cfg *config.Config, snap *scheduler.Snapshot, signals scheduler.MarketSignals) scheduler.CropSelectionPolicy {
	if cfg.SuggestionPolicy == "rotation" {
		return &scheduler.RotationPolicy{LastCropByLine: snap.LastCropByLine}
	}
	return &scheduler.MarketDemandPolicy{Signals: signals}
}

// GET /api/dashboard?farm_id=&weeks_ahead=
func DashboardHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		farmID := c.Query("farm_id")

		weeksAhead := cfg.DashboardWeeksAhead
		if wa := c.QueryInt("weeks_ahead"); wa > 0 {
			weeksAhead = wa
		}

		snap, err := loadSnapshot(database.DB, farmID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dashboard verisi toplanamadı")
		}

		signals := scheduler.NewPriceDerivedSignals(snap.Crops)
		policy := policyFrom(cfg, snap, signals)
		th := scheduler.Thresholds{
			PriorityHigh:   cfg.PriorityHighThreshold,
			PriorityMedium: cfg.PriorityMediumThreshold,
			YieldHighPct:   cfg.YieldHighPct,
			YieldLowPct:    cfg.YieldLowPct,
		}

		data := scheduler.BuildDashboard(snap, time.Now(), weeksAhead, policy, signals, th)
		return c.JSON(data)
	}
}
