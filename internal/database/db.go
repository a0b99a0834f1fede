package database

import (
	"log"

	"ciftlik-backend/internal/config"
	"ciftlik-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// Migrate: Şemayı kurar. Testler aynı listeyi sqlite üzerinde kullanır.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Farm{},
		&models.Bed{},
		&models.Line{},
		&models.Crop{},
		&models.Planting{},
		&models.Harvest{},
		&models.SellingSchedule{},
		&models.AuditLog{},
	)
}
