package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cashlink/cashlink/internal/pkg/logger"
	"github.com/cashlink/cashlink/internal/pkg/middleware"
	"github.com/cashlink/cashlink/internal/pkg/models"
	nrpkg "github.com/cashlink/cashlink/internal/pkg/newrelic"
	"github.com/cashlink/cashlink/internal/utils"
	"github.com/cashlink/cashlink/services/transactions"
)

// TransactionsHandler handles HTTP requests for transaction operations
type TransactionsHandler struct {
	txUC transactions.TransactionUC
}

// NewTransactionsHandler creates a new transaction HTTP handler
func NewTransactionsHandler(txUC transactions.TransactionUC) *TransactionsHandler {
	return &TransactionsHandler{
		txUC: txUC,
	}
}

// CreateTransaction handles transaction creation
func (h *TransactionsHandler) CreateTransaction(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.Create")

	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	tx, err := h.txUC.Create(c.Request().Context(), actorID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created", tx)
}

// GetTransaction retrieves a single transaction
func (h *TransactionsHandler) GetTransaction(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.Get")

	id, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	tx, err := h.txUC.Get(c.Request().Context(), id)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved", tx)
}

// ListTransactions retrieves transactions matching query filters
func (h *TransactionsHandler) ListTransactions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.List")

	filter, err := filterFromQuery(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	txs, err := h.txUC.List(c.Request().Context(), filter)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", txs)
}

// UpdateTransaction applies a partial edit
func (h *TransactionsHandler) UpdateTransaction(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.Update")

	id, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var patch models.TransactionPatch
	if err := c.Bind(&patch); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	tx, err := h.txUC.Update(c.Request().Context(), id, patch)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction updated", tx)
}

// AgentConfirm records the agent's sign-off
func (h *TransactionsHandler) AgentConfirm(c echo.Context) error {
	return h.confirm(c, "Transactions.AgentConfirm", h.txUC.AgentConfirm)
}

// CustomerConfirm records the customer's sign-off
func (h *TransactionsHandler) CustomerConfirm(c echo.Context) error {
	return h.confirm(c, "Transactions.CustomerConfirm", h.txUC.CustomerConfirm)
}

func (h *TransactionsHandler) confirm(
	c echo.Context,
	name string,
	op func(ctx context.Context, id uuid.UUID) (*models.Transaction, error),
) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, name)

	id, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	tx, err := op(c.Request().Context(), id)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	logger.Info("Transaction confirmation recorded",
		logger.String("transaction_id", id.String()),
		logger.String("confirmation", string(tx.Confirmation())),
		logger.String("status", string(tx.Status)))
	return utils.SuccessResponse(c, http.StatusOK, "Confirmation recorded", tx)
}

// CompleteTransaction settles a transaction. The force flag is honored
// for admin callers only.
func (h *TransactionsHandler) CompleteTransaction(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.Complete")

	id, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.CompleteTransactionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	force := req.Force && middleware.ActorRole(c) == models.RoleAdmin

	tx, err := h.txUC.Complete(c.Request().Context(), id, force)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction completed", tx)
}

// CancelTransaction voids a pending transaction
func (h *TransactionsHandler) CancelTransaction(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.Cancel")

	id, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.CancelRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	tx, err := h.txUC.Cancel(c.Request().Context(), id, req.Reason)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction cancelled", tx)
}

// GetAgentStats returns the agent dashboard aggregates
func (h *TransactionsHandler) GetAgentStats(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.GetAgentStats")

	agentID, err := uuid.Parse(c.Param("agentID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid agent ID")
	}

	stats, err := h.txUC.GetAgentStats(c.Request().Context(), agentID, c.QueryParam("period"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Agent stats retrieved", stats)
}

func filterFromQuery(c echo.Context) (models.TransactionFilter, error) {
	var filter models.TransactionFilter

	if v := c.QueryParam("customer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("invalid customer_id filter")
		}
		filter.CustomerID = &id
	}
	if v := c.QueryParam("agent_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("invalid agent_id filter")
		}
		filter.AgentID = &id
	}
	if v := c.QueryParam("status"); v != "" {
		status := models.TransactionStatus(v)
		filter.Status = &status
	}
	if v := c.QueryParam("network"); v != "" {
		filter.Network = &v
	}
	if v := c.QueryParam("service_type"); v != "" {
		filter.ServiceType = &v
	}
	filter.OrderBy = c.QueryParam("order_by")
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, errors.New("invalid limit")
		}
		filter.Limit = limit
	}

	return filter, nil
}
