package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/cashlink/cashlink/internal/pkg/logger"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/services/moderation"
)

// snapshotTTL bounds how long the pending snapshot is served before the
// collections are queried again. A decision whose upstream write failed
// silently reappears after at most one TTL.
const snapshotTTL = 30 * time.Second

type moderationUC struct {
	cfg  *models.Config
	repo moderation.ContentRepo
	gw   moderation.ModerationGW

	mu        sync.Mutex
	snapshot  []models.PendingContent
	fetchedAt time.Time
}

// NewModerationUC creates a new moderation use case
func NewModerationUC(
	cfg *models.Config,
	repo moderation.ContentRepo,
	gw moderation.ModerationGW,
) moderation.ModerationUC {
	return &moderationUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}

// FetchPending returns the moderation queue across all collections,
// newest first. The four collection queries run concurrently and a
// failing collection is skipped rather than failing the whole queue;
// only a total outage surfaces as an error.
func (uc *moderationUC) FetchPending(ctx context.Context) ([]models.PendingContent, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if time.Since(uc.fetchedAt) < snapshotTTL && uc.snapshot != nil {
		return append([]models.PendingContent(nil), uc.snapshot...), nil
	}

	results := make([][]models.PendingContent, len(models.ContentKinds))
	errs := make([]error, len(models.ContentKinds))

	var wg sync.WaitGroup
	for i, kind := range models.ContentKinds {
		wg.Add(1)
		go func(i int, kind models.ContentKind) {
			defer wg.Done()
			results[i], errs[i] = uc.repo.ListPending(ctx, kind)
		}(i, kind)
	}
	wg.Wait()

	var merged []models.PendingContent
	failures := 0
	for i, kind := range models.ContentKinds {
		if errs[i] != nil {
			failures++
			logger.Warn("Skipping collection in moderation queue",
				logger.String("kind", string(kind)),
				logger.ErrorField(errs[i]))
			continue
		}
		merged = append(merged, results[i]...)
	}
	if failures == len(models.ContentKinds) {
		return nil, fmt.Errorf("moderation queue unavailable: all collections failed")
	}

	// Stable sort keeps per-collection order on equal timestamps
	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].CreatedDate.After(merged[b].CreatedDate)
	})

	uc.snapshot = merged
	uc.fetchedAt = time.Now()
	return append([]models.PendingContent(nil), merged...), nil
}

// Decide applies a moderator's decision to one item and drops it from
// the cached queue.
func (uc *moderationUC) Decide(ctx context.Context, kind models.ContentKind, id uuid.UUID, decision models.ModerationStatus) error {
	if decision != models.ModerationStatusApproved && decision != models.ModerationStatusRejected {
		return fmt.Errorf("%w: decision must be approved or rejected", apperrors.ErrConstraintViolation)
	}

	if err := uc.repo.Decide(ctx, kind, id, decision); err != nil {
		return err
	}

	uc.dropFromSnapshot(id)

	event := models.ModerationEvent{
		Kind:      kind,
		ContentID: id,
		Decision:  decision,
		Timestamp: models.Now(),
	}
	if err := uc.gw.PublishDecision(ctx, event); err != nil {
		logger.Warn("Failed to publish moderation decision",
			logger.String("content_id", id.String()),
			logger.ErrorField(err))
	}

	logger.Info("Moderation decision recorded",
		logger.String("kind", string(kind)),
		logger.String("content_id", id.String()),
		logger.String("decision", string(decision)))
	return nil
}

func (uc *moderationUC) dropFromSnapshot(id uuid.UUID) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i, item := range uc.snapshot {
		if item.ID == id {
			uc.snapshot = append(uc.snapshot[:i], uc.snapshot[i+1:]...)
			return
		}
	}
}
