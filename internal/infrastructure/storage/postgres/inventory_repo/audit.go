package inventory_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain/audit"
	"patrimonio/internal/infrastructure/storage/postgres"
)

const auditTable = "registro_auditoria_ubicacion"

// AuditRepo implements audit.Repository. The table is append-only, so the
// repo exposes no update or delete.
type AuditRepo struct {
	txManager *postgres.TxManager
}

var _ audit.Repository = (*AuditRepo)(nil)

// NewAuditRepo creates a new audit trail repository.
func NewAuditRepo(txManager *postgres.TxManager) *AuditRepo {
	return &AuditRepo{txManager: txManager}
}

func (r *AuditRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Append inserts one audit entry.
func (r *AuditRepo) Append(ctx context.Context, entry *audit.Entry) error {
	data := postgres.StructToMap(entry)

	sql, args, err := r.builder().
		Insert(auditTable).
		SetMap(data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", auditTable, err)
	}
	return nil
}

// ListByAsset returns the full trail of an asset, newest first.
func (r *AuditRepo) ListByAsset(ctx context.Context, assetID id.ID) ([]*audit.Entry, error) {
	q := r.builder().
		Select(postgres.ExtractDBColumns[audit.Entry]()...).
		From(auditTable).
		Where(squirrel.Eq{"inventario_nuevo_id": assetID}).
		OrderBy("timestamp DESC")

	return r.selectEntries(ctx, q)
}

// ListByUser returns entries recorded by a user, newest first. Bounds are
// inclusive on both ends when supplied.
func (r *AuditRepo) ListByUser(ctx context.Context, userID id.ID, from, to *time.Time) ([]*audit.Entry, error) {
	q := r.builder().
		Select(postgres.ExtractDBColumns[audit.Entry]()...).
		From(auditTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("timestamp DESC")

	if from != nil {
		q = q.Where(squirrel.GtOrEq{"timestamp": *from})
	}
	if to != nil {
		q = q.Where(squirrel.LtOrEq{"timestamp": *to})
	}

	return r.selectEntries(ctx, q)
}

func (r *AuditRepo) selectEntries(ctx context.Context, q squirrel.SelectBuilder) ([]*audit.Entry, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entries []*audit.Entry
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", auditTable, err)
	}
	return entries, nil
}
