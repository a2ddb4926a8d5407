package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel mirrors the 'audit_logs' table. ActorID is nullable so
// entries survive the deletion of the account that produced them.
type AuditLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OccurredAt time.Time  `gorm:"not null;index;default:now()"`
	ActorID    *uuid.UUID `gorm:"type:uuid;index"`
	ActorName  string     `gorm:"type:varchar(100)"`
	Method     string     `gorm:"type:varchar(10);not null"`
	Path       string     `gorm:"type:varchar(255);not null"`
	StatusCode int        `gorm:"not null"`
	IPAddress  string     `gorm:"type:varchar(64)"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
