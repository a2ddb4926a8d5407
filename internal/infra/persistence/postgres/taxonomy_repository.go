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
	"gorm.io/gorm/clause"
)

// taxonomyRepository implements the domain.TaxonomyRepository interface using GORM.
type taxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository is the constructor for taxonomyRepository.
func NewTaxonomyRepository(db *gorm.DB) repository.TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

// UpsertTagByName inserts the tag, ignoring a name conflict, then reads the
// stored row back. Concurrent callers with the same name both observe the
// winner's row.
func (repo *taxonomyRepository) UpsertTagByName(ctx context.Context, name string) (*entity.Tag, bool, error) {
	insert := &model.TagModel{Name: name}
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(insert)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert tag")
	}
	created := result.RowsAffected > 0

	var tagM model.TagModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&tagM).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to read back tag")
	}

	return &entity.Tag{ID: tagM.ID, Name: tagM.Name, CreatedAt: tagM.CreatedAt}, created, nil
}

// ListTags returns every tag in name order.
func (repo *taxonomyRepository) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	var models []model.TagModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	tags := make([]*entity.Tag, 0, len(models))
	for i := range models {
		tags = append(tags, &entity.Tag{ID: models[i].ID, Name: models[i].Name, CreatedAt: models[i].CreatedAt})
	}

	return tags, nil
}

// DeleteTag removes the tag; its association rows cascade away.
func (repo *taxonomyRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.TagModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTagNotFound
	}

	return nil
}

// UpsertCategoryByName applies the same insert-then-read reconciliation to
// whichever category table the kind selects.
func (repo *taxonomyRepository) UpsertCategoryByName(ctx context.Context, kind repository.CategoryKind, name string) (*entity.Category, bool, error) {
	onConflict := clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}

	if kind == repository.CategoryKindBlog {
		insert := &model.BlogCategoryModel{Name: name}
		result := repo.db.WithContext(ctx).Clauses(onConflict).Create(insert)
		if result.Error != nil {
			return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert blog category")
		}

		var categoryM model.BlogCategoryModel
		if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&categoryM).Error; err != nil {
			return nil, false, errors.Wrap(err, "failed to read back blog category")
		}

		return &entity.Category{ID: categoryM.ID, Name: categoryM.Name, CreatedAt: categoryM.CreatedAt},
			result.RowsAffected > 0, nil
	}

	insert := &model.CategoryModel{Name: name}
	result := repo.db.WithContext(ctx).Clauses(onConflict).Create(insert)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert category")
	}

	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&categoryM).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to read back category")
	}

	return &entity.Category{ID: categoryM.ID, Name: categoryM.Name, CreatedAt: categoryM.CreatedAt},
		result.RowsAffected > 0, nil
}

// ListCategories returns the selected kind's categories in name order.
func (repo *taxonomyRepository) ListCategories(ctx context.Context, kind repository.CategoryKind) ([]*entity.Category, error) {
	if kind == repository.CategoryKindBlog {
		var models []model.BlogCategoryModel
		if err := repo.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
			return nil, errors.Wrap(err, "failed to list blog categories")
		}

		categories := make([]*entity.Category, 0, len(models))
		for i := range models {
			categories = append(categories, &entity.Category{ID: models[i].ID, Name: models[i].Name, CreatedAt: models[i].CreatedAt})
		}

		return categories, nil
	}

	var models []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(models))
	for i := range models {
		categories = append(categories, &entity.Category{ID: models[i].ID, Name: models[i].Name, CreatedAt: models[i].CreatedAt})
	}

	return categories, nil
}

// DeleteCategory removes the category; referencing rows fall back to NULL.
func (repo *taxonomyRepository) DeleteCategory(ctx context.Context, kind repository.CategoryKind, id uuid.UUID) error {
	var result *gorm.DB
	if kind == repository.CategoryKindBlog {
		result = repo.db.WithContext(ctx).Delete(&model.BlogCategoryModel{}, "id = ?", id)
	} else {
		result = repo.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	}
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// ReplacePostTags deletes the post's association rows and inserts one row per
// given tag id. Duplicate pairs in the input are ignored at insert time.
func (repo *taxonomyRepository) ReplacePostTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.PostTagModel{}, "post_id = ?", postID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear post tags")
	}

	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]model.PostTagModel, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, model.PostTagModel{PostID: postID, TagID: tagID})
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert post tags")
	}

	return nil
}
