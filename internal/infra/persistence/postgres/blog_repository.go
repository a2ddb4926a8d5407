package postgres

import (
	"context"

	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the domain.BlogRepository interface using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// Create persists a new post row. Tag associations are written separately by
// the taxonomy repository within the caller's transaction.
func (repo *blogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	postM := fromBlogPostDomain(post)

	if err := repo.db.WithContext(ctx).Omit("Tags", "Category").Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("unknown blog category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update rewrites the post's editable fields.
func (repo *blogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BlogPostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":         post.Title,
			"excerpt":       post.Excerpt,
			"content":       post.Content,
			"author":        post.Author,
			"image":         post.Image,
			"image_caption": post.ImageCaption,
			"category_id":   post.CategoryID,
			"reading_time":  post.ReadingTime,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("unknown blog category")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogPostNotFound
	}

	return nil
}

// FindByID retrieves a single post with its category name and tag names.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	var postM model.BlogPostModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("id = ?", id).
		First(&postM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog post")
	}

	return toBlogPostDomain(&postM), nil
}

// List returns every post, newest first.
func (repo *blogRepository) List(ctx context.Context) ([]*entity.BlogPost, error) {
	var models []model.BlogPostModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	posts := make([]*entity.BlogPost, 0, len(models))
	for i := range models {
		posts = append(posts, toBlogPostDomain(&models[i]))
	}

	return posts, nil
}

// Delete removes the row; association rows cascade away with it.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BlogPostModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogPostNotFound
	}

	return nil
}

// --- Mappers between persistence models and domain entities ---

func toBlogPostDomain(data *model.BlogPostModel) *entity.BlogPost {
	tags := make([]string, 0, len(data.Tags))
	for _, tag := range data.Tags {
		tags = append(tags, tag.Name)
	}

	post := &entity.BlogPost{
		ID:            data.ID,
		Title:         data.Title,
		Excerpt:       data.Excerpt,
		Content:       data.Content,
		Author:        data.Author,
		Image:         data.Image,
		ImageCaption:  data.ImageCaption,
		CategoryID:    data.CategoryID,
		Likes:         data.Likes,
		CommentsCount: data.CommentsCount,
		ReadingTime:   data.ReadingTime,
		Tags:          tags,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Category != nil {
		post.CategoryName = data.Category.Name
	}

	return post
}

func fromBlogPostDomain(data *entity.BlogPost) *model.BlogPostModel {
	return &model.BlogPostModel{
		ID:           data.ID,
		Title:        data.Title,
		Excerpt:      data.Excerpt,
		Content:      data.Content,
		Author:       data.Author,
		Image:        data.Image,
		ImageCaption: data.ImageCaption,
		CategoryID:   data.CategoryID,
		ReadingTime:  data.ReadingTime,
	}
}
