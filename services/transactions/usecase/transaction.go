package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/cashlink/cashlink/internal/pkg/logger"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/services/fees"
	"github.com/cashlink/cashlink/services/transactions"
)

type transactionUC struct {
	cfg          *models.Config
	feeStructure models.FeeStructure
	txRepo       transactions.TransactionRepo
	txGW         transactions.TransactionGW
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(
	cfg *models.Config,
	feeStructure models.FeeStructure,
	txRepo transactions.TransactionRepo,
	txGW transactions.TransactionGW,
) transactions.TransactionUC {
	return &transactionUC{
		cfg:          cfg,
		feeStructure: feeStructure,
		txRepo:       txRepo,
		txGW:         txGW,
	}
}

// Create records a new transaction. The customer defaults to the
// authenticated actor, and the fee is computed server side unless the
// request supplies one.
func (uc *transactionUC) Create(ctx context.Context, actorID uuid.UUID, req models.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrConstraintViolation)
	}
	if req.AgentID == uuid.Nil {
		return nil, fmt.Errorf("%w: agent_id is required", apperrors.ErrConstraintViolation)
	}

	customerID := actorID
	if req.CustomerID != nil {
		customerID = *req.CustomerID
	}

	quote := fees.Calculate(req.Amount, uc.feeStructure, req.Network, req.ServiceType)
	feeAmount := quote.Fee
	if req.FeeAmount != nil {
		feeAmount = *req.FeeAmount
	}

	status := req.Status
	if status == "" {
		status = models.TransactionStatusPending
	}

	currency := req.Currency
	if currency == "" {
		currency = uc.cfg.Fees.Currency
	}

	tx := &models.Transaction{
		ID:            uuid.New(),
		CustomerID:    customerID,
		AgentID:       req.AgentID,
		Amount:        req.Amount,
		Currency:      currency,
		FeeAmount:     feeAmount,
		FeePercentage: quote.Percentage,
		Network:       req.Network,
		ServiceType:   req.ServiceType,
		Status:        status,
		Notes:         req.Notes,
		CreatedDate:   models.Now(),
	}

	if err := uc.txRepo.Create(ctx, tx); err != nil {
		logger.Error("Failed to create transaction",
			logger.String("agent_id", req.AgentID.String()),
			logger.ErrorField(err))
		return nil, err
	}

	logger.Info("Transaction created",
		logger.String("transaction_id", tx.ID.String()),
		logger.Float64("amount", tx.Amount),
		logger.Float64("fee_amount", tx.FeeAmount))
	return tx, nil
}

// Get retrieves a transaction by ID
func (uc *transactionUC) Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	return uc.txRepo.Get(ctx, id)
}

// List retrieves transactions matching the filter
func (uc *transactionUC) List(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	return uc.txRepo.List(ctx, filter)
}

// Update applies a partial edit and returns the fresh row
func (uc *transactionUC) Update(ctx context.Context, id uuid.UUID, patch models.TransactionPatch) (*models.Transaction, error) {
	if err := uc.txRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return uc.txRepo.Get(ctx, id)
}

// AgentConfirm records the agent's sign-off. The status is untouched:
// settlement stays a separate, explicit Complete call even once both
// parties have confirmed.
func (uc *transactionUC) AgentConfirm(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	tx, err := uc.txRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.Status != models.TransactionStatusPending {
		return nil, apperrors.InvalidTransition(string(tx.Status), string(models.TransactionStatusCompleted))
	}

	if err := uc.txRepo.SetAgentConfirmed(ctx, id); err != nil {
		return nil, err
	}
	tx.AgentConfirmed = true

	return tx, nil
}

// CustomerConfirm records the customer's sign-off. Like AgentConfirm it
// only sets the caller's own flag.
func (uc *transactionUC) CustomerConfirm(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	tx, err := uc.txRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.Status != models.TransactionStatusPending {
		return nil, apperrors.InvalidTransition(string(tx.Status), string(models.TransactionStatusCompleted))
	}

	if err := uc.txRepo.SetCustomerConfirmed(ctx, id); err != nil {
		return nil, err
	}
	tx.CustomerConfirmed = true

	return tx, nil
}

// Complete settles a transaction. Without force, both confirmations are
// required first.
func (uc *transactionUC) Complete(ctx context.Context, id uuid.UUID, force bool) (*models.Transaction, error) {
	tx, err := uc.txRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.Status != models.TransactionStatusPending {
		return nil, apperrors.InvalidTransition(string(tx.Status), string(models.TransactionStatusCompleted))
	}
	if !force && tx.Confirmation() != models.ConfirmationBothConfirmed {
		return nil, fmt.Errorf("%w: confirmation state is %s", apperrors.ErrInvalidTransition, tx.Confirmation())
	}
	return uc.complete(ctx, tx)
}

func (uc *transactionUC) complete(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if err := uc.txRepo.MarkCompleted(ctx, tx.ID); err != nil {
		return nil, err
	}

	updated, err := uc.txRepo.Get(ctx, tx.ID)
	if err != nil {
		return nil, err
	}

	event := models.TransactionEvent{
		TransactionID: updated.ID,
		CustomerID:    updated.CustomerID,
		AgentID:       updated.AgentID,
		Amount:        updated.Amount,
		FeeAmount:     updated.FeeAmount,
		Status:        updated.Status,
		Timestamp:     models.Now(),
	}
	if err := uc.txGW.PublishTransactionCompleted(ctx, event); err != nil {
		// The settlement already landed; the event is best effort
		logger.Warn("Failed to publish transaction completed event",
			logger.String("transaction_id", updated.ID.String()),
			logger.ErrorField(err))
	}

	logger.Info("Transaction completed",
		logger.String("transaction_id", updated.ID.String()))
	return updated, nil
}

// Cancel voids a pending transaction
func (uc *transactionUC) Cancel(ctx context.Context, id uuid.UUID, reason string) (*models.Transaction, error) {
	tx, err := uc.txRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.Status != models.TransactionStatusPending {
		return nil, apperrors.InvalidTransition(string(tx.Status), string(models.TransactionStatusCancelled))
	}

	if err := uc.txRepo.MarkCancelled(ctx, id, reason); err != nil {
		return nil, err
	}

	updated, err := uc.txRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	event := models.TransactionEvent{
		TransactionID: updated.ID,
		CustomerID:    updated.CustomerID,
		AgentID:       updated.AgentID,
		Amount:        updated.Amount,
		FeeAmount:     updated.FeeAmount,
		Status:        updated.Status,
		Timestamp:     models.Now(),
	}
	if err := uc.txGW.PublishTransactionCancelled(ctx, event); err != nil {
		logger.Warn("Failed to publish transaction cancelled event",
			logger.String("transaction_id", updated.ID.String()),
			logger.ErrorField(err))
	}

	logger.Info("Transaction cancelled",
		logger.String("transaction_id", updated.ID.String()),
		logger.String("reason", reason))
	return updated, nil
}
