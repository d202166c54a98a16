package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/services/moderation/mocks"
)

func newTestModerationUC(t *testing.T) (*moderationUC, *mocks.MockContentRepo, *mocks.MockModerationGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContentRepo(ctrl)
	gw := mocks.NewMockModerationGW(ctrl)
	uc := NewModerationUC(&models.Config{}, repo, gw).(*moderationUC)
	return uc, repo, gw, ctrl
}

func pendingItem(kind models.ContentKind, createdAgo time.Duration) models.PendingContent {
	return models.PendingContent{
		ID:          uuid.New(),
		Kind:        kind,
		Title:       "Item",
		CreatedBy:   uuid.New(),
		Status:      models.ModerationStatusPending,
		CreatedDate: time.Now().Add(-createdAgo),
	}
}

func TestFetchPendingMergesNewestFirst(t *testing.T) {
	uc, repo, _, ctrl := newTestModerationUC(t)
	defer ctrl.Finish()

	oldest := pendingItem(models.ContentKindBusiness, 3*time.Hour)
	middle := pendingItem(models.ContentKindJob, 2*time.Hour)
	newest := pendingItem(models.ContentKindEvent, time.Hour)

	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindBusiness).Return([]models.PendingContent{oldest}, nil)
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindEvent).Return([]models.PendingContent{newest}, nil)
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindJob).Return([]models.PendingContent{middle}, nil)
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindMarketplace).Return([]models.PendingContent{}, nil)

	items, err := uc.FetchPending(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, newest.ID, items[0].ID)
	assert.Equal(t, middle.ID, items[1].ID)
	assert.Equal(t, oldest.ID, items[2].ID)
}

func TestFetchPendingSkipsFailingCollection(t *testing.T) {
	uc, repo, _, ctrl := newTestModerationUC(t)
	defer ctrl.Finish()

	business := pendingItem(models.ContentKindBusiness, time.Hour)

	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindBusiness).Return([]models.PendingContent{business}, nil)
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindEvent).Return(nil, errors.New("events table gone"))
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindJob).Return([]models.PendingContent{}, nil)
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindMarketplace).Return([]models.PendingContent{}, nil)

	items, err := uc.FetchPending(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, business.ID, items[0].ID)
}

func TestFetchPendingAllCollectionsFail(t *testing.T) {
	uc, repo, _, ctrl := newTestModerationUC(t)
	defer ctrl.Finish()

	for _, kind := range models.ContentKinds {
		repo.EXPECT().ListPending(gomock.Any(), kind).Return(nil, errors.New("db down"))
	}

	items, err := uc.FetchPending(context.Background())

	assert.Error(t, err)
	assert.Nil(t, items)
}

func TestFetchPendingServesSnapshotWithinTTL(t *testing.T) {
	uc, repo, _, ctrl := newTestModerationUC(t)
	defer ctrl.Finish()

	item := pendingItem(models.ContentKindJob, time.Hour)

	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindBusiness).Return([]models.PendingContent{}, nil)
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindEvent).Return([]models.PendingContent{}, nil)
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindJob).Return([]models.PendingContent{item}, nil)
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindMarketplace).Return([]models.PendingContent{}, nil)

	first, err := uc.FetchPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	// No further repo expectations: the second call must come from the snapshot
	second, err := uc.FetchPending(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFetchPendingRefetchesAfterTTL(t *testing.T) {
	uc, repo, _, ctrl := newTestModerationUC(t)
	defer ctrl.Finish()

	for _, kind := range models.ContentKinds {
		repo.EXPECT().ListPending(gomock.Any(), kind).Return([]models.PendingContent{}, nil).Times(2)
	}

	_, err := uc.FetchPending(context.Background())
	assert.NoError(t, err)

	uc.mu.Lock()
	uc.fetchedAt = time.Now().Add(-snapshotTTL - time.Second)
	uc.mu.Unlock()

	_, err = uc.FetchPending(context.Background())
	assert.NoError(t, err)
}

func TestDecideSuccess(t *testing.T) {
	uc, repo, gw, ctrl := newTestModerationUC(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo.EXPECT().Decide(gomock.Any(), models.ContentKindBusiness, id, models.ModerationStatusApproved).Return(nil)
	gw.EXPECT().PublishDecision(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.Decide(context.Background(), models.ContentKindBusiness, id, models.ModerationStatusApproved)

	assert.NoError(t, err)
}

func TestDecideInvalidDecision(t *testing.T) {
	uc, _, _, ctrl := newTestModerationUC(t)
	defer ctrl.Finish()

	err := uc.Decide(context.Background(), models.ContentKindBusiness, uuid.New(), models.ModerationStatusPending)

	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
}

func TestDecideRepoError(t *testing.T) {
	uc, repo, _, ctrl := newTestModerationUC(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo.EXPECT().Decide(gomock.Any(), models.ContentKindEvent, id, models.ModerationStatusRejected).Return(apperrors.ErrNotFound)

	err := uc.Decide(context.Background(), models.ContentKindEvent, id, models.ModerationStatusRejected)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDecidePublishFailureDoesNotFail(t *testing.T) {
	uc, repo, gw, ctrl := newTestModerationUC(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo.EXPECT().Decide(gomock.Any(), models.ContentKindJob, id, models.ModerationStatusRejected).Return(nil)
	gw.EXPECT().PublishDecision(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	err := uc.Decide(context.Background(), models.ContentKindJob, id, models.ModerationStatusRejected)

	assert.NoError(t, err)
}

func TestDecideDropsItemFromSnapshot(t *testing.T) {
	uc, repo, gw, ctrl := newTestModerationUC(t)
	defer ctrl.Finish()

	kept := pendingItem(models.ContentKindBusiness, time.Hour)
	decided := pendingItem(models.ContentKindEvent, 2*time.Hour)

	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindBusiness).Return([]models.PendingContent{kept}, nil)
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindEvent).Return([]models.PendingContent{decided}, nil)
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindJob).Return([]models.PendingContent{}, nil)
	repo.EXPECT().ListPending(gomock.Any(), models.ContentKindMarketplace).Return([]models.PendingContent{}, nil)

	items, err := uc.FetchPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	repo.EXPECT().Decide(gomock.Any(), models.ContentKindEvent, decided.ID, models.ModerationStatusApproved).Return(nil)
	gw.EXPECT().PublishDecision(gomock.Any(), gomock.Any()).Return(nil)

	err = uc.Decide(context.Background(), models.ContentKindEvent, decided.ID, models.ModerationStatusApproved)
	assert.NoError(t, err)

	// Snapshot is still fresh, so the refetch serves it without the decided item
	items, err = uc.FetchPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ID)
}
