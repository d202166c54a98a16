package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cashlink/cashlink/internal/pkg/middleware"
	"github.com/cashlink/cashlink/internal/pkg/models"
	nrpkg "github.com/cashlink/cashlink/internal/pkg/newrelic"
	"github.com/cashlink/cashlink/internal/utils"
	"github.com/cashlink/cashlink/services/moderation"
)

// ModerationHandler handles HTTP requests for the moderation gate
type ModerationHandler struct {
	moderationUC moderation.ModerationUC
}

// NewModerationHandler creates a new moderation HTTP handler
func NewModerationHandler(moderationUC moderation.ModerationUC) *ModerationHandler {
	return &ModerationHandler{
		moderationUC: moderationUC,
	}
}

// ListPending returns the cross-collection moderation queue
func (h *ModerationHandler) ListPending(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Moderation.ListPending")

	if middleware.ActorRole(c) != models.RoleAdmin {
		return utils.ForbiddenResponse(c, "Moderator access required")
	}

	items, err := h.moderationUC.FetchPending(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to load moderation queue")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pending content retrieved", items)
}

// Decide applies a moderator's decision to one item
func (h *ModerationHandler) Decide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Moderation.Decide")

	if middleware.ActorRole(c) != models.RoleAdmin {
		return utils.ForbiddenResponse(c, "Moderator access required")
	}

	kind := models.ContentKind(c.Param("kind"))
	id, err := uuid.Parse(c.Param("contentID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid content ID")
	}

	var req models.ModerationDecisionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.moderationUC.Decide(c.Request().Context(), kind, id, req.Status); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Decision recorded", nil)
}
