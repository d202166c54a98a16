package gateway

import (
	"context"
	"encoding/json"

	"github.com/cashlink/cashlink/internal/pkg/constants"
	"github.com/cashlink/cashlink/internal/pkg/models"
	natspkg "github.com/cashlink/cashlink/internal/pkg/nats"
	"github.com/cashlink/cashlink/services/moderation"
)

// ModerationGW handles NATS publishing for moderation events
type ModerationGW struct {
	natsClient *natspkg.Client
}

// NewModerationGW creates a new moderation gateway
func NewModerationGW(client *natspkg.Client) moderation.ModerationGW {
	return &ModerationGW{
		natsClient: client,
	}
}

// PublishDecision publishes a moderation decision event to NATS
func (g *ModerationGW) PublishDecision(ctx context.Context, event models.ModerationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectModerationDecided, data)
}
