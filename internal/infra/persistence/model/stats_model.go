package model

import (
	"time"

	"github.com/google/uuid"
)

// SiteVisitModel mirrors the 'site_visits' table, one row per recorded visit.
type SiteVisitModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IPAddress string    `gorm:"type:varchar(64);not null"`
	VisitedAt time.Time `gorm:"not null;index;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (SiteVisitModel) TableName() string {
	return "site_visits"
}
