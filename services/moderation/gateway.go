package moderation

import (
	"context"

	"github.com/cashlink/cashlink/internal/pkg/models"
)

// ModerationGW defines the interface for publishing moderation events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/cashlink/cashlink/services/moderation ModerationGW
type ModerationGW interface {
	PublishDecision(ctx context.Context, event models.ModerationEvent) error
}
