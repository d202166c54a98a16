package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/cashlink/cashlink/internal/pkg/models"
)

// contentTables maps each moderated kind to its table. Every table
// shares the id, title, created_by, status and created_date columns.
var contentTables = map[models.ContentKind]string{
	models.ContentKindBusiness:    "businesses",
	models.ContentKindEvent:       "events",
	models.ContentKindJob:         "jobs",
	models.ContentKindMarketplace: "marketplace_items",
}

type ContentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewContentRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *ContentRepo {
	return &ContentRepo{
		cfg: cfg,
		db:  db,
	}
}

// ListPending retrieves a collection's pending submissions, newest first
func (r *ContentRepo) ListPending(ctx context.Context, kind models.ContentKind) ([]models.PendingContent, error) {
	table, ok := contentTables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown content kind %q", apperrors.ErrConstraintViolation, kind)
	}

	query := fmt.Sprintf(`
		SELECT id, title, created_by, status, created_date
		FROM %s
		WHERE status = 'pending'
		ORDER BY created_date DESC
	`, table)

	items := []models.PendingContent{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	for i := range items {
		items[i].Kind = kind
	}
	return items, nil
}

// Decide applies a moderation decision. The pending guard lives in the
// statement itself so a concurrent double-decide loses cleanly: zero
// affected rows reads as not found.
func (r *ContentRepo) Decide(ctx context.Context, kind models.ContentKind, id uuid.UUID, decision models.ModerationStatus) error {
	table, ok := contentTables[kind]
	if !ok {
		return fmt.Errorf("%w: unknown content kind %q", apperrors.ErrConstraintViolation, kind)
	}

	query := fmt.Sprintf(`UPDATE %s SET status = $1 WHERE id = $2 AND status = 'pending'`, table)

	result, err := r.db.ExecContext(ctx, query, decision, id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
