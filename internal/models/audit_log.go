package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionUndo   AuditAction = "undo"
)

// AuditLog: Ekim ve hasat kayıtları üzerindeki işlemlerin izi.
// Before/After alanları jsonb olarak saklanır, undo için kullanılır.
type AuditLog struct {
	ID          uint  `gorm:"primaryKey"`
	FarmID      *uint `gorm:"index"`
	UserID      uint  `gorm:"index;not null"`
	UserName    string `gorm:"size:100"`
	EntityType  string `gorm:"size:50;index;not null"` // planting, harvest
	EntityID    uint   `gorm:"index;not null"`
	Action      AuditAction `gorm:"size:20;not null"`
	Description string      `gorm:"size:500"`
	BeforeData  string      `gorm:"type:jsonb;default:'null'"`
	AfterData   string      `gorm:"type:jsonb;default:'null'"`
	IsUndone    bool        `gorm:"not null;default:false"`
	UndoneBy    *uint
	UndoneAt    *time.Time
	CreatedAt   time.Time
}
