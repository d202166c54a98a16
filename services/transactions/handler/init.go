package handler

import (
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/services/transactions"
	httpHandler "github.com/cashlink/cashlink/services/transactions/handler/http"
)

// Handler combines all handlers for the transactions service
type Handler struct {
	txHTTP *httpHandler.TransactionsHandler
	cfg    *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	txUC transactions.TransactionUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		txHTTP: httpHandler.NewTransactionsHandler(txUC),
		cfg:    cfg,
	}
}
