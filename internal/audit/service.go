package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"gorm.io/gorm"
)

type LogOptions struct {
	FarmID      *uint
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// PostgreSQL jsonb için boş string yerine "null" JSON string'i kullanmalıyız
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		FarmID:      opts.FarmID,
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log kaydedilemedi: %w", err)
	}
	return nil
}

// UndoLog - Bir audit log'unu geri al
func UndoLog(logID uint, userID uint, userName string) error {
	var log models.AuditLog
	if err := database.DB.First(&log, "id = ?", logID).Error; err != nil {
		return fmt.Errorf("log bulunamadı: %w", err)
	}

	if log.IsUndone {
		return fmt.Errorf("bu işlem zaten geri alınmış")
	}

	switch log.Action {
	case models.AuditActionCreate:
		if err := undoCreate(log.EntityType, log.EntityID); err != nil {
			return err
		}
	case models.AuditActionDelete:
		if err := recreateEntity(log.EntityType, log.BeforeData); err != nil {
			return fmt.Errorf("entity geri oluşturulamadı: %w", err)
		}
	default:
		return fmt.Errorf("bu işlem türü geri alınamaz")
	}

	now := time.Now()
	log.IsUndone = true
	log.UndoneBy = &userID
	log.UndoneAt = &now

	if err := database.DB.Save(&log).Error; err != nil {
		return fmt.Errorf("log güncellenemedi: %w", err)
	}

	undoLog := models.AuditLog{
		FarmID:      log.FarmID,
		UserID:      userID,
		UserName:    userName,
		EntityType:  log.EntityType,
		EntityID:    log.EntityID,
		Action:      models.AuditActionUndo,
		Description: fmt.Sprintf("Geri alındı: %s", log.Description),
		BeforeData:  log.AfterData,
		AfterData:   log.BeforeData,
	}

	if err := database.DB.Create(&undoLog).Error; err != nil {
		return fmt.Errorf("undo log kaydedilemedi: %w", err)
	}
	return nil
}

// undoCreate - Oluşturmayı geri al. Hasat geri alınırken kaynak ekim de
// yeniden aktifleştirilir, yoksa sıra süresiz dolu görünür.
func undoCreate(entityType string, entityID uint) error {
	switch entityType {
	case "planting":
		return database.DB.Delete(&models.Planting{}, "id = ?", entityID).Error

	case "harvest":
		var harvest models.Harvest
		if err := database.DB.First(&harvest, "id = ?", entityID).Error; err != nil {
			return fmt.Errorf("hasat bulunamadı: %w", err)
		}
		return database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&models.Harvest{}, "id = ?", entityID).Error; err != nil {
				return err
			}
			return tx.Model(&models.Planting{}).
				Where("id = ?", harvest.PlantingID).
				Updates(map[string]interface{}{
					"is_active":           true,
					"actual_harvest_date": nil,
					"harvested_quantity":  nil,
				}).Error
		})

	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}

// recreateEntity - Silinen entity'yi geri oluştur
func recreateEntity(entityType string, dataJSON string) error {
	switch entityType {
	case "planting":
		var p models.Planting
		if err := json.Unmarshal([]byte(dataJSON), &p); err != nil {
			return err
		}
		p.ID = 0 // Yeni entity oluştur
		return database.DB.Create(&p).Error

	case "harvest":
		var h models.Harvest
		if err := json.Unmarshal([]byte(dataJSON), &h); err != nil {
			return err
		}
		h.ID = 0
		return database.DB.Create(&h).Error

	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}
