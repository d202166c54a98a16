package moderation

import (
	"context"

	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/google/uuid"
)

// ContentRepo defines the interface for moderated content persistence
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cashlink/cashlink/services/moderation ContentRepo
type ContentRepo interface {
	ListPending(ctx context.Context, kind models.ContentKind) ([]models.PendingContent, error)
	Decide(ctx context.Context, kind models.ContentKind, id uuid.UUID, decision models.ModerationStatus) error
}
