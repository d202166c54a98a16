package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/services/transactions/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func txColumns() []string {
	return []string{
		"id", "customer_id", "agent_id", "amount", "currency",
		"fee_amount", "fee_percentage", "network", "service_type",
		"status", "customer_confirmed", "agent_confirmed", "notes",
		"created_date", "confirmed_at",
		"customer_name", "customer_phone", "agent_name", "agent_phone",
	}
}

func txRow(tx *models.Transaction) *sqlmock.Rows {
	return sqlmock.NewRows(txColumns()).AddRow(
		tx.ID, tx.CustomerID, tx.AgentID, tx.Amount, tx.Currency,
		tx.FeeAmount, tx.FeePercentage, tx.Network, tx.ServiceType,
		tx.Status, tx.CustomerConfirmed, tx.AgentConfirmed, nil,
		tx.CreatedDate, nil,
		tx.CustomerName, tx.CustomerPhone, tx.AgentName, tx.AgentPhone,
	)
}

func TestCreateTransaction_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	tx := &models.Transaction{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		AgentID:     uuid.New(),
		Amount:      100,
		Currency:    "XOF",
		FeeAmount:   2,
		Network:     "mtn_money",
		ServiceType: "transfer",
		Status:      models.TransactionStatusPending,
		CreatedDate: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(
			tx.ID, tx.CustomerID, tx.AgentID, tx.Amount, tx.Currency,
			tx.FeeAmount, tx.FeePercentage, tx.Network, tx.ServiceType,
			tx.Status, tx.CustomerConfirmed, tx.AgentConfirmed, tx.Notes, tx.CreatedDate,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), tx)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction_JoinsProfiles(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	want := &models.Transaction{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		AgentID:      uuid.New(),
		Amount:       100,
		Currency:     "XOF",
		Status:       models.TransactionStatusPending,
		CreatedDate:  time.Now(),
		CustomerName: "Aminata Diallo",
		AgentName:    "Moussa Traore",
	}

	mock.ExpectQuery("JOIN profiles cp ON cp.id = t.customer_id").
		WithArgs(want.ID).
		WillReturnRows(txRow(want))

	got, err := repo.Get(context.Background(), want.ID)
	assert.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "Aminata Diallo", got.CustomerName)
	assert.Equal(t, "Moussa Traore", got.AgentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectQuery("SELECT").WithArgs(id).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListTransactions_Filters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	agentID := uuid.New()
	status := models.TransactionStatusPending

	tx := &models.Transaction{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		AgentID:     agentID,
		Status:      status,
		CreatedDate: time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("t.agent_id = $1 AND t.status = $2")).
		WithArgs(agentID, status, 10).
		WillReturnRows(txRow(tx))

	got, err := repo.List(context.Background(), models.TransactionFilter{
		AgentID: &agentID,
		Status:  &status,
		Limit:   10,
	})
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_OrderByGuard(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	// An unknown column must not reach the query; the default ordering
	// applies instead.
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY t.created_date DESC")).
		WillReturnRows(sqlmock.NewRows(txColumns()))

	_, err := repo.List(context.Background(), models.TransactionFilter{
		OrderBy: "amount; DROP TABLE transactions",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_OrderByDescending(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY t.amount DESC")).
		WillReturnRows(sqlmock.NewRows(txColumns()))

	_, err := repo.List(context.Background(), models.TransactionFilter{OrderBy: "-amount"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTransaction_PartialPatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	id := uuid.New()
	amount := 250.0
	notes := "corrected amount"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions SET amount = $1, notes = $2 WHERE id = $3")).
		WithArgs(amount, notes, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), id, models.TransactionPatch{
		Amount: &amount,
		Notes:  &notes,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTransaction_EmptyPatchIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	err := repo.Update(context.Background(), uuid.New(), models.TransactionPatch{})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAgentConfirmed_NoRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("SET agent_confirmed = TRUE")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetAgentConfirmed(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMarkCompleted_SetsBothFlagsAndConfirmedAt(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	// A forced settlement goes through the same statement, so the flags
	// must be assigned here or the row reads as awaiting confirmation.
	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("SET status = $1, customer_confirmed = TRUE, agent_confirmed = TRUE, confirmed_at = $2")).
		WithArgs(models.TransactionStatusCompleted, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkCompleted(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkCancelled_WithReason(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions")).
		WithArgs(models.TransactionStatusCancelled, "duplicate entry", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkCancelled(context.Background(), id, "duplicate entry")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgentAllTimeTotals(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	agentID := uuid.New()
	rows := sqlmock.NewRows([]string{"total_transactions", "total_volume", "total_revenue"}).
		AddRow(42, 8400.0, 168.0)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
		WithArgs(agentID).
		WillReturnRows(rows)

	totals, err := repo.AgentAllTimeTotals(context.Background(), agentID)
	assert.NoError(t, err)
	assert.Equal(t, 42, totals.TotalTransactions)
	assert.Equal(t, 8400.0, totals.TotalVolume)
	assert.Equal(t, 168.0, totals.TotalRevenue)
}
