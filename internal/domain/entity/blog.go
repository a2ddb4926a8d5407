package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag is an upsert-by-name label attached to blog posts through a
// many-to-many association. Tags are never renamed; deleting a tag
// cascades its associations away and orphans nothing else.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// BlogCategory mirrors Category for the blog side of the taxonomy.
type BlogCategory struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// BlogPost is an article with a single cover image and a replaceable tag set.
// Updating a post rewrites its complete tag association set (full replace,
// not a diff), so input order and duplicates have no effect on stored state.
type BlogPost struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	Author        string     `json:"author"`
	Image         string     `json:"image"`
	ImageCaption  string     `json:"image_caption,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	CategoryName  string     `json:"category,omitempty"`
	Likes         int        `json:"likes"`
	CommentsCount int        `json:"comments"`
	ReadingTime   int        `json:"reading_time"`
	Tags          []string   `json:"tags"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
