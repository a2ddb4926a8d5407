package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CategoryModel mirrors the 'categories' table (product categories).
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// MediaItem is one element of a product's media list.
type MediaItem struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// MediaList stores the ordered media entries of a product as a single JSONB
// column. Order inside the array is meaningful and preserved as written.
type MediaList []MediaItem

// Value implements driver.Valuer, serializing the list to JSONB.
func (m MediaList) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal media list")
	}

	return string(raw), nil
}

// Scan implements sql.Scanner, deserializing the JSONB column.
func (m *MediaList) Scan(value any) error {
	if value == nil {
		*m = MediaList{}

		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported media list source type %T", value)
	}

	return errors.Wrap(json.Unmarshal(raw, m), "failed to unmarshal media list")
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Price       float64    `gorm:"type:numeric(12,2);not null"`
	Stock       int        `gorm:"not null;default:0"`
	Rating      float64    `gorm:"type:numeric(3,2);not null;default:0"`
	Featured    bool       `gorm:"not null;default:false"`
	CategoryID  *uuid.UUID `gorm:"type:uuid"`
	Media       MediaList  `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
