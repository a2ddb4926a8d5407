// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Identity columns are nullable pointers: locally registered accounts carry
// username and phone, federated accounts carry email only.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     *string   `gorm:"type:varchar(30);unique"`
	Name         string    `gorm:"type:varchar(100)"`
	Phone        *string   `gorm:"type:varchar(20);unique"`
	Email        *string   `gorm:"type:varchar(255);unique"`
	TelegramID   *string   `gorm:"type:varchar(64);unique"`
	PasswordHash string    `gorm:"type:varchar(255);not null;default:''"`
	IsValidated  bool      `gorm:"not null;default:false"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	ResetToken   *string   `gorm:"type:varchar(64);unique"`
	ResetExpires *time.Time
	TokenVersion int `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
