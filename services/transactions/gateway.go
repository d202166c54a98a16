package transactions

import (
	"context"

	"github.com/cashlink/cashlink/internal/pkg/models"
)

// TransactionGW defines the interface for publishing transaction events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/cashlink/cashlink/services/transactions TransactionGW
type TransactionGW interface {
	PublishTransactionCompleted(ctx context.Context, event models.TransactionEvent) error
	PublishTransactionCancelled(ctx context.Context, event models.TransactionEvent) error
}
