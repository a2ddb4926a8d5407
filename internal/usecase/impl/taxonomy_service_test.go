package impl

import (
	"context"
	"testing"

	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTaxonomyService(t *testing.T) (usecase.TaxonomyUsecase, *fakeTaxonomyRepo) {
	t.Helper()

	taxonomyRepo := newFakeTaxonomyRepo()
	svc := NewTaxonomyService(TaxonomyServiceParams{
		TaxonomyRepo: taxonomyRepo,
		Logger:       testLogger(),
	})

	return svc, taxonomyRepo
}

func TestTaxonomyService_UpsertTag_IdempotentByName(t *testing.T) {
	svc, repo := createTestTaxonomyService(t)

	first, err := svc.UpsertTag(context.Background(), usecase.UpsertTagInput{Name: "go"})
	require.NoError(t, err)

	second, err := svc.UpsertTag(context.Background(), usecase.UpsertTagInput{Name: " go "})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.tagsByName, 1)
}

func TestTaxonomyService_UpsertTag_EmptyName(t *testing.T) {
	svc, _ := createTestTaxonomyService(t)

	_, err := svc.UpsertTag(context.Background(), usecase.UpsertTagInput{Name: "   "})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestTaxonomyService_UpsertCategory_UnknownKind(t *testing.T) {
	svc, _ := createTestTaxonomyService(t)

	_, err := svc.UpsertCategory(context.Background(), usecase.UpsertCategoryInput{
		Kind: repository.CategoryKind("podcast"),
		Name: "news",
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestTaxonomyService_ListCategories_UnknownKind(t *testing.T) {
	svc, _ := createTestTaxonomyService(t)

	_, err := svc.ListCategories(context.Background(), repository.CategoryKind(""))
	require.Error(t, err)
}
