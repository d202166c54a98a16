package handler

import (
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/services/moderation"
	httpHandler "github.com/cashlink/cashlink/services/moderation/handler/http"
)

// Handler combines all handlers for the moderation service
type Handler struct {
	moderationHTTP *httpHandler.ModerationHandler
	cfg            *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	moderationUC moderation.ModerationUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		moderationHTTP: httpHandler.NewModerationHandler(moderationUC),
		cfg:            cfg,
	}
}
