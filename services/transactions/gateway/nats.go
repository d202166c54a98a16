package gateway

import (
	"context"
	"encoding/json"

	"github.com/cashlink/cashlink/internal/pkg/constants"
	"github.com/cashlink/cashlink/internal/pkg/models"
	natspkg "github.com/cashlink/cashlink/internal/pkg/nats"
	"github.com/cashlink/cashlink/services/transactions"
)

// TransactionGW handles NATS publishing for transaction events
type TransactionGW struct {
	natsClient *natspkg.Client
}

// NewTransactionGW creates a new transaction gateway
func NewTransactionGW(client *natspkg.Client) transactions.TransactionGW {
	return &TransactionGW{
		natsClient: client,
	}
}

// PublishTransactionCompleted publishes a settlement event to NATS
func (g *TransactionGW) PublishTransactionCompleted(ctx context.Context, event models.TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectTransactionCompleted, data)
}

// PublishTransactionCancelled publishes a cancellation event to NATS
func (g *TransactionGW) PublishTransactionCancelled(ctx context.Context, event models.TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectTransactionCancelled, data)
}
