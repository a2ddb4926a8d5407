package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is an upsert-by-name taxonomy entry for products. Categories are
// created lazily on first reference, never renamed, and deleted explicitly;
// products referencing a deleted category keep a detached (nil) category.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// Product is a catalog entry with an ordered media list. The media column is
// written as a whole alongside the scalar fields, never patched per entry.
type Product struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Stock        int        `json:"stock"`
	Rating       float64    `json:"rating"`
	Featured     bool       `json:"featured"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`
	Media        []Media    `json:"media"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
