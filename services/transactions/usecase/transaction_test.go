package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/services/transactions/mocks"
)

func ptrFloat(v float64) *float64 { return &v }

func testFeeStructure() models.FeeStructure {
	return models.FeeStructure{
		"default":   {Percentage: ptrFloat(2)},
		"mtn_money": {Percentage: ptrFloat(5), Flat: ptrFloat(1)},
	}
}

func newTestUC(t *testing.T) (*transactionUC, *mocks.MockTransactionRepo, *mocks.MockTransactionGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)
	cfg := &models.Config{Fees: models.FeesConfig{Currency: "XOF"}}

	uc := NewTransactionUC(cfg, testFeeStructure(), mockRepo, mockGW).(*transactionUC)
	return uc, mockRepo, mockGW
}

func TestCreateTransaction_Success(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	actorID := uuid.New()
	agentID := uuid.New()

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			assert.Equal(t, actorID, tx.CustomerID)
			assert.Equal(t, agentID, tx.AgentID)
			assert.Equal(t, models.TransactionStatusPending, tx.Status)
			assert.Equal(t, "XOF", tx.Currency)
			// 5% of 100 plus 1 flat from the mtn_money rule
			assert.Equal(t, 6.0, tx.FeeAmount)
			return nil
		})

	tx, err := uc.Create(context.Background(), actorID, models.CreateTransactionRequest{
		AgentID:     agentID,
		Amount:      100,
		Network:     "mtn_money",
		ServiceType: "transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ConfirmationAwaitingBoth, tx.Confirmation())
}

func TestCreateTransaction_ExplicitCustomerAndFee(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	customerID := uuid.New()

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			assert.Equal(t, customerID, tx.CustomerID)
			assert.Equal(t, 3.5, tx.FeeAmount)
			return nil
		})

	_, err := uc.Create(context.Background(), uuid.New(), models.CreateTransactionRequest{
		CustomerID:  &customerID,
		AgentID:     uuid.New(),
		Amount:      50,
		FeeAmount:   ptrFloat(3.5),
		Network:     "orange_money",
		ServiceType: "transfer",
	})
	require.NoError(t, err)
}

func TestCreateTransaction_RejectsNonPositiveAmount(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.Create(context.Background(), uuid.New(), models.CreateTransactionRequest{
		AgentID: uuid.New(),
		Amount:  0,
	})
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
}

func TestCreateTransaction_RejectsMissingAgent(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.Create(context.Background(), uuid.New(), models.CreateTransactionRequest{
		Amount: 100,
	})
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
}

func TestAgentConfirm_FirstConfirmationStaysPending(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	pending := &models.Transaction{ID: id, Status: models.TransactionStatusPending}

	mockRepo.EXPECT().Get(gomock.Any(), id).Return(pending, nil)
	mockRepo.EXPECT().SetAgentConfirmed(gomock.Any(), id).Return(nil)

	tx, err := uc.AgentConfirm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.ConfirmationAwaitingCustomer, tx.Confirmation())
	assert.Equal(t, models.TransactionStatusPending, tx.Status)
}

func TestCustomerConfirm_SecondConfirmationStaysPending(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	pending := &models.Transaction{ID: id, Status: models.TransactionStatusPending, AgentConfirmed: true}

	// No MarkCompleted or publish expectations: even the second
	// confirmation only sets its own flag, settlement stays an explicit
	// Complete call.
	mockRepo.EXPECT().Get(gomock.Any(), id).Return(pending, nil)
	mockRepo.EXPECT().SetCustomerConfirmed(gomock.Any(), id).Return(nil)

	tx, err := uc.CustomerConfirm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, tx.Status)
	assert.Equal(t, models.ConfirmationBothConfirmed, tx.Confirmation())
}

func TestAgentConfirm_SecondConfirmationStaysPending(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	pending := &models.Transaction{ID: id, Status: models.TransactionStatusPending, CustomerConfirmed: true}

	mockRepo.EXPECT().Get(gomock.Any(), id).Return(pending, nil)
	mockRepo.EXPECT().SetAgentConfirmed(gomock.Any(), id).Return(nil)

	tx, err := uc.AgentConfirm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, tx.Status)
	assert.Equal(t, models.ConfirmationBothConfirmed, tx.Confirmation())
}

func TestConfirm_RejectedOnSettledTransaction(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Get(gomock.Any(), id).
		Return(&models.Transaction{ID: id, Status: models.TransactionStatusCompleted}, nil)

	_, err := uc.AgentConfirm(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestComplete_RequiresBothConfirmations(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Get(gomock.Any(), id).
		Return(&models.Transaction{ID: id, Status: models.TransactionStatusPending, AgentConfirmed: true}, nil)

	_, err := uc.Complete(context.Background(), id, false)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "awaiting_customer")
}

func TestComplete_ForceBypassesConfirmations(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	id := uuid.New()
	pending := &models.Transaction{ID: id, Status: models.TransactionStatusPending}
	completed := &models.Transaction{ID: id, Status: models.TransactionStatusCompleted}

	mockRepo.EXPECT().Get(gomock.Any(), id).Return(pending, nil)
	mockRepo.EXPECT().MarkCompleted(gomock.Any(), id).Return(nil)
	mockRepo.EXPECT().Get(gomock.Any(), id).Return(completed, nil)
	mockGW.EXPECT().PublishTransactionCompleted(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := uc.Complete(context.Background(), id, true)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, tx.Status)
}

func TestComplete_PublishFailureDoesNotFailSettlement(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	id := uuid.New()
	pending := &models.Transaction{
		ID:                id,
		Status:            models.TransactionStatusPending,
		AgentConfirmed:    true,
		CustomerConfirmed: true,
	}
	completed := &models.Transaction{ID: id, Status: models.TransactionStatusCompleted}

	mockRepo.EXPECT().Get(gomock.Any(), id).Return(pending, nil)
	mockRepo.EXPECT().MarkCompleted(gomock.Any(), id).Return(nil)
	mockRepo.EXPECT().Get(gomock.Any(), id).Return(completed, nil)
	mockGW.EXPECT().PublishTransactionCompleted(gomock.Any(), gomock.Any()).
		Return(errors.New("nats unavailable"))

	tx, err := uc.Complete(context.Background(), id, false)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, tx.Status)
}

func TestCancel_PendingTransaction(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	id := uuid.New()
	pending := &models.Transaction{ID: id, Status: models.TransactionStatusPending}
	cancelled := &models.Transaction{ID: id, Status: models.TransactionStatusCancelled}

	mockRepo.EXPECT().Get(gomock.Any(), id).Return(pending, nil)
	mockRepo.EXPECT().MarkCancelled(gomock.Any(), id, "customer changed mind").Return(nil)
	mockRepo.EXPECT().Get(gomock.Any(), id).Return(cancelled, nil)
	mockGW.EXPECT().PublishTransactionCancelled(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := uc.Cancel(context.Background(), id, "customer changed mind")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCancelled, tx.Status)
}

func TestCancel_RejectedOnCompletedTransaction(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Get(gomock.Any(), id).
		Return(&models.Transaction{ID: id, Status: models.TransactionStatusCompleted}, nil)

	_, err := uc.Cancel(context.Background(), id, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestGet_NotFoundPassesThrough(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Get(gomock.Any(), id).Return(nil, apperrors.ErrNotFound)

	_, err := uc.Get(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
