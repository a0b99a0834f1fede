package main

import (
	"log"
	"strings"

	"ciftlik-backend/internal/audit"
	"ciftlik-backend/internal/auth"
	"ciftlik-backend/internal/config"
	"ciftlik-backend/internal/crop"
	"ciftlik-backend/internal/dashboard"
	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/farm"
	"ciftlik-backend/internal/harvest"
	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/planting"
	"ciftlik-backend/internal/schedule"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Çiftlik yönetimi
	adminRoutes.Post("/farms", farm.CreateFarmHandler())
	adminRoutes.Put("/farms/:id", farm.UpdateFarmHandler())
	adminRoutes.Delete("/farms/:id", farm.DeleteFarmHandler())

	// Bitki kataloğu yönetimi
	adminRoutes.Post("/crops", crop.CreateCropHandler())
	adminRoutes.Put("/crops/:id", crop.UpdateCropHandler())
	adminRoutes.Delete("/crops/:id", crop.DeleteCropHandler())

	// Ortak (auth gerektiren) route'lar

	// Çiftlikler
	protected.Get("/farms", farm.ListFarmsHandler())
	protected.Get("/farms/:id", farm.GetFarmHandler())

	// Yataklar
	protected.Post("/beds", farm.CreateBedHandler())
	protected.Get("/beds", farm.ListBedsHandler())
	protected.Get("/beds/:id", farm.GetBedHandler())
	protected.Put("/beds/:id", farm.UpdateBedHandler())
	protected.Delete("/beds/:id", farm.DeleteBedHandler())

	// Sıralar
	protected.Post("/lines", farm.CreateLineHandler())
	protected.Get("/lines", farm.ListLinesHandler())
	protected.Get("/lines/:id", farm.GetLineHandler())
	protected.Put("/lines/:id", farm.UpdateLineHandler())
	protected.Delete("/lines/:id", farm.DeleteLineHandler())

	// Bitki kataloğu
	protected.Get("/crops", crop.ListCropsHandler())
	protected.Get("/crops/:id", crop.GetCropHandler())

	// Ekimler
	protected.Post("/plantings", planting.CreatePlantingHandler())
	protected.Get("/plantings", planting.ListPlantingsHandler())
	protected.Get("/plantings/:id", planting.GetPlantingHandler())
	protected.Delete("/plantings/:id", planting.DeletePlantingHandler())

	// Hasatlar
	protected.Post("/harvests", harvest.CreateHarvestHandler(cfg))
	protected.Post("/harvests/:planting_id/mark-harvested", harvest.MarkHarvestedHandler(cfg))
	protected.Get("/harvests", harvest.ListHarvestsHandler())
	protected.Get("/harvests/export", harvest.ExportHarvestsHandler())
	protected.Get("/harvests/analytics/summary", harvest.AnalyticsSummaryHandler(cfg))
	protected.Get("/harvests/:id", harvest.GetHarvestHandler())

	// Satış programları
	protected.Post("/selling-schedules", schedule.CreateScheduleHandler())
	protected.Get("/selling-schedules", schedule.ListSchedulesHandler())
	protected.Get("/selling-schedules/:id", schedule.GetScheduleHandler())
	protected.Put("/selling-schedules/:id", schedule.UpdateScheduleHandler())
	protected.Delete("/selling-schedules/:id", schedule.DeleteScheduleHandler())
	protected.Get("/selling-schedules/:id/upcoming", schedule.UpcomingDatesHandler())

	// Dashboard
	protected.Get("/dashboard", dashboard.DashboardHandler(cfg))

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())
	protected.Post("/audit-logs/:id/undo", audit.UndoAuditLogHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
