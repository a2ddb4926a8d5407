package impl

import (
	"context"
	"testing"

	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixture struct {
	service    usecase.ReviewUsecase
	reviewRepo *fakeReviewRepo
	storage    *fakeStorage
}

func createTestReviewService(t *testing.T, reviews ...*entity.Review) *reviewServiceFixture {
	t.Helper()

	reviewRepo := newFakeReviewRepo(reviews...)
	storage := &fakeStorage{}

	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo: reviewRepo,
		Storage:    storage,
		Logger:     testLogger(),
	})

	return &reviewServiceFixture{
		service:    svc,
		reviewRepo: reviewRepo,
		storage:    storage,
	}
}

func TestReviewService_Create_WithAvatar(t *testing.T) {
	fx := createTestReviewService(t)

	review, err := fx.service.Create(context.Background(), usecase.ReviewWriteInput{
		Author:     "carol",
		Rating:     4.5,
		Text:       "Great service",
		ReviewDate: "2026-08-01",
		AvatarFile: uploadPtr(newUpload("face.png", "image/png")),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/face.png", review.Avatar)
	assert.Equal(t, "2026-08-01", review.ReviewDate)
}

func TestReviewService_Create_InvalidRating(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []float64{-0.1, 5.1} {
		_, err := fx.service.Create(context.Background(), usecase.ReviewWriteInput{
			Author: "carol",
			Rating: rating,
		})
		require.Error(t, err)
	}
	assert.Empty(t, fx.reviewRepo.createAssignedIDs)
}

func TestReviewService_Update_WithoutAvatarKeepsStoredOne(t *testing.T) {
	existing := &entity.Review{Author: "carol", Avatar: "https://cdn.test/old.png", Rating: 3}
	fx := createTestReviewService(t, existing)

	review, err := fx.service.Update(context.Background(), existing.ID, usecase.ReviewWriteInput{
		Author: "carol",
		Rating: 5,
		Text:   "Even better now",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.test/old.png", review.Avatar)
	assert.Len(t, fx.reviewRepo.plainUpdates, 1)
	assert.Empty(t, fx.reviewRepo.avatarUpdates)
	assert.Empty(t, fx.storage.uploads)
}

func TestReviewService_Update_WithAvatarUsesAvatarVariant(t *testing.T) {
	existing := &entity.Review{Author: "carol", Avatar: "https://cdn.test/old.png"}
	fx := createTestReviewService(t, existing)

	review, err := fx.service.Update(context.Background(), existing.ID, usecase.ReviewWriteInput{
		Author:     "carol",
		Rating:     4,
		AvatarFile: uploadPtr(newUpload("new.png", "image/png")),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.test/new.png", review.Avatar)
	assert.Len(t, fx.reviewRepo.avatarUpdates, 1)
	assert.Empty(t, fx.reviewRepo.plainUpdates)
}

func TestReviewService_Update_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.Update(context.Background(), uuid.New(), usecase.ReviewWriteInput{Author: "x"})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestReviewService_Delete_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	err := fx.service.Delete(context.Background(), uuid.New())
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), appErr.ErrorCode())
}
