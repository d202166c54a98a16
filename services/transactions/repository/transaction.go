package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/cashlink/cashlink/internal/pkg/models"
)

// selectColumns joins the profiles table twice so every read carries the
// customer and agent display fields.
const selectColumns = `
	t.id, t.customer_id, t.agent_id, t.amount, t.currency,
	t.fee_amount, t.fee_percentage, t.network, t.service_type,
	t.status, t.customer_confirmed, t.agent_confirmed, t.notes,
	t.created_date, t.confirmed_at,
	cp.full_name AS customer_name, cp.phone_number AS customer_phone,
	ap.full_name AS agent_name, ap.phone_number AS agent_phone
`

const fromJoined = `
	FROM transactions t
	JOIN profiles cp ON cp.id = t.customer_id
	JOIN profiles ap ON ap.id = t.agent_id
`

type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewTransactionRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// Create inserts a new transaction row
func (r *TransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, customer_id, agent_id, amount, currency,
			fee_amount, fee_percentage, network, service_type,
			status, customer_confirmed, agent_confirmed, notes, created_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		tx.ID,
		tx.CustomerID,
		tx.AgentID,
		tx.Amount,
		tx.Currency,
		tx.FeeAmount,
		tx.FeePercentage,
		tx.Network,
		tx.ServiceType,
		tx.Status,
		tx.CustomerConfirmed,
		tx.AgentConfirmed,
		tx.Notes,
		tx.CreatedDate,
	)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

// Get retrieves a transaction by ID with joined party display fields
func (r *TransactionRepo) Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := "SELECT " + selectColumns + fromJoined + " WHERE t.id = $1"

	tx := &models.Transaction{}
	if err := r.db.GetContext(ctx, tx, query, id); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return tx, nil
}

// List retrieves transactions matching the filter, newest first unless
// the filter orders otherwise.
func (r *TransactionRepo) List(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	var conds []string
	var args []interface{}

	addCond := func(col string, val interface{}) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if filter.CustomerID != nil {
		addCond("t.customer_id", *filter.CustomerID)
	}
	if filter.AgentID != nil {
		addCond("t.agent_id", *filter.AgentID)
	}
	if filter.Status != nil {
		addCond("t.status", *filter.Status)
	}
	if filter.Network != nil {
		addCond("t.network", *filter.Network)
	}
	if filter.ServiceType != nil {
		addCond("t.service_type", *filter.ServiceType)
	}

	query := "SELECT " + selectColumns + fromJoined
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + orderClause(filter.OrderBy)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	txs := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &txs, query, args...); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return txs, nil
}

// orderableColumns guards the ORDER BY clause against injection; only
// known columns are accepted.
var orderableColumns = map[string]bool{
	"created_date": true,
	"amount":       true,
	"fee_amount":   true,
	"status":       true,
}

func orderClause(orderBy string) string {
	dir := "ASC"
	col := orderBy
	if strings.HasPrefix(col, "-") {
		dir = "DESC"
		col = col[1:]
	}
	if !orderableColumns[col] {
		return "t.created_date DESC"
	}
	return "t." + col + " " + dir
}

// Update applies a partial update; nil patch fields are skipped.
func (r *TransactionRepo) Update(ctx context.Context, id uuid.UUID, patch models.TransactionPatch) error {
	var sets []string
	var args []interface{}

	addSet := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Amount != nil {
		addSet("amount", *patch.Amount)
	}
	if patch.FeeAmount != nil {
		addSet("fee_amount", *patch.FeeAmount)
	}
	if patch.FeePercentage != nil {
		addSet("fee_percentage", *patch.FeePercentage)
	}
	if patch.Network != nil {
		addSet("network", *patch.Network)
	}
	if patch.ServiceType != nil {
		addSet("service_type", *patch.ServiceType)
	}
	if patch.Status != nil {
		addSet("status", *patch.Status)
	}
	if patch.Notes != nil {
		addSet("notes", *patch.Notes)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE transactions SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return requireRow(result)
}

// SetAgentConfirmed flips the agent confirmation flag. Idempotent on
// already confirmed rows.
func (r *TransactionRepo) SetAgentConfirmed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE transactions SET agent_confirmed = TRUE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return requireRow(result)
}

// SetCustomerConfirmed flips the customer confirmation flag. Idempotent
// on already confirmed rows.
func (r *TransactionRepo) SetCustomerConfirmed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE transactions SET customer_confirmed = TRUE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return requireRow(result)
}

// MarkCompleted moves the transaction to completed, forces both
// confirmation flags true and stamps the settlement time. Setting the
// flags here keeps a forced settlement from reading as awaiting
// confirmation afterwards.
func (r *TransactionRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE transactions
		SET status = $1, customer_confirmed = TRUE, agent_confirmed = TRUE, confirmed_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, models.TransactionStatusCompleted, time.Now(), id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return requireRow(result)
}

// MarkCancelled moves the transaction to cancelled, recording the reason
// in the notes when one is given.
func (r *TransactionRepo) MarkCancelled(ctx context.Context, id uuid.UUID, reason string) error {
	var (
		result sql.Result
		err    error
	)

	if reason != "" {
		query := `UPDATE transactions SET status = $1, notes = $2 WHERE id = $3`
		result, err = r.db.ExecContext(ctx, query, models.TransactionStatusCancelled, reason, id)
	} else {
		query := `UPDATE transactions SET status = $1 WHERE id = $2`
		result, err = r.db.ExecContext(ctx, query, models.TransactionStatusCancelled, id)
	}
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return requireRow(result)
}

// ListByAgentSince retrieves all of an agent's transactions created on or
// after the cutoff, newest first.
func (r *TransactionRepo) ListByAgentSince(ctx context.Context, agentID uuid.UUID, since time.Time) ([]*models.Transaction, error) {
	query := "SELECT " + selectColumns + fromJoined + `
		WHERE t.agent_id = $1 AND t.created_date >= $2
		ORDER BY t.created_date DESC
	`

	txs := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &txs, query, agentID, since); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return txs, nil
}

// AgentAllTimeTotals aggregates an agent's completed volume and revenue
// over the whole ledger.
func (r *TransactionRepo) AgentAllTimeTotals(ctx context.Context, agentID uuid.UUID) (*models.AllTimeTotals, error) {
	query := `
		SELECT
			COUNT(*) AS total_transactions,
			COALESCE(SUM(amount), 0) AS total_volume,
			COALESCE(SUM(fee_amount) FILTER (WHERE status = 'completed'), 0) AS total_revenue
		FROM transactions
		WHERE agent_id = $1
	`

	totals := &models.AllTimeTotals{}
	if err := r.db.GetContext(ctx, totals, query, agentID); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return totals, nil
}

// requireRow translates a zero row update into a not found error.
func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
