package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Author     string    `gorm:"type:varchar(100);not null"`
	Avatar     string    `gorm:"type:text"`
	Rating     float64   `gorm:"type:numeric(3,2);not null;default:0"`
	Text       string    `gorm:"type:text"`
	ReviewDate string    `gorm:"type:varchar(64)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
