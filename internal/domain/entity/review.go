package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer testimonial. Reviews are publicly writable by design;
// only deletion is admin-gated.
type Review struct {
	ID         uuid.UUID `json:"id"`
	Author     string    `json:"author"`
	Avatar     string    `json:"avatar,omitempty"`
	Rating     float64   `json:"rating"`
	Text       string    `json:"text"`
	ReviewDate string    `json:"date"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
