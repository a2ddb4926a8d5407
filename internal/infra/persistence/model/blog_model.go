package model

import (
	"time"

	"github.com/google/uuid"
)

// TagModel mirrors the 'tags' table.
type TagModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}

// BlogCategoryModel mirrors the 'blog_categories' table, a namespace separate
// from product categories.
type BlogCategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogCategoryModel) TableName() string {
	return "blog_categories"
}

// BlogPostModel mirrors the 'blog_posts' table.
type BlogPostModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Excerpt       string     `gorm:"type:text"`
	Content       string     `gorm:"type:text;not null"`
	Author        string     `gorm:"type:varchar(100)"`
	Image         string     `gorm:"type:text"`
	ImageCaption  string     `gorm:"type:text"`
	CategoryID    *uuid.UUID `gorm:"type:uuid"`
	Likes         int        `gorm:"not null;default:0"`
	CommentsCount int        `gorm:"not null;default:0"`
	ReadingTime   int        `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *BlogCategoryModel `gorm:"foreignKey:CategoryID"`
	Tags     []TagModel         `gorm:"many2many:post_tags;joinForeignKey:PostID;joinReferences:TagID"`
}

// TableName explicitly sets the table name for GORM.
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// PostTagModel mirrors the 'post_tags' association table. The pair is the
// primary key; rows cascade away with their post.
type PostTagModel struct {
	PostID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (PostTagModel) TableName() string {
	return "post_tags"
}
