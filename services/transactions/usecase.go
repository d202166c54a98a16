package transactions

import (
	"context"

	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/google/uuid"
)

// TransactionUC defines the interface for transaction ledger business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cashlink/cashlink/services/transactions TransactionUC
type TransactionUC interface {
	Create(ctx context.Context, actorID uuid.UUID, req models.CreateTransactionRequest) (*models.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
	Update(ctx context.Context, id uuid.UUID, patch models.TransactionPatch) (*models.Transaction, error)
	AgentConfirm(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	CustomerConfirm(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Complete(ctx context.Context, id uuid.UUID, force bool) (*models.Transaction, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*models.Transaction, error)
	GetAgentStats(ctx context.Context, agentID uuid.UUID, period string) (*models.AgentStats, error)
}
