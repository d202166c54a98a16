package moderation

import (
	"context"

	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/google/uuid"
)

// ModerationUC defines the interface for the content moderation gate
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cashlink/cashlink/services/moderation ModerationUC
type ModerationUC interface {
	FetchPending(ctx context.Context) ([]models.PendingContent, error)
	Decide(ctx context.Context, kind models.ContentKind, id uuid.UUID, decision models.ModerationStatus) error
}
