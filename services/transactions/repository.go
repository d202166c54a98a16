package transactions

import (
	"context"
	"time"

	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/google/uuid"
)

// TransactionRepo defines the interface for transaction persistence
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cashlink/cashlink/services/transactions TransactionRepo
type TransactionRepo interface {
	Create(ctx context.Context, tx *models.Transaction) error
	Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
	Update(ctx context.Context, id uuid.UUID, patch models.TransactionPatch) error
	SetAgentConfirmed(ctx context.Context, id uuid.UUID) error
	SetCustomerConfirmed(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkCancelled(ctx context.Context, id uuid.UUID, reason string) error
	ListByAgentSince(ctx context.Context, agentID uuid.UUID, since time.Time) ([]*models.Transaction, error)
	AgentAllTimeTotals(ctx context.Context, agentID uuid.UUID) (*models.AllTimeTotals, error)
}
