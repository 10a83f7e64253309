package postgres

import (
	"context"
	"fmt"
	"time"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/sequence"
)

const assetTable = "inventario_nuevo"

// SequenceGenerator issues the daily tag and asset-file codes by scanning
// for the highest code already stored under the day's prefix.
//
// Callers must run it inside a transaction: the generator takes a
// pg_advisory_xact_lock on the prefix so concurrent registrations for the
// same day serialize instead of reading the same maximum. The lock is
// released automatically at commit or rollback.
type SequenceGenerator struct {
	txManager *TxManager
}

var _ sequence.Generator = (*SequenceGenerator)(nil)

// NewSequenceGenerator creates a code generator bound to the transaction manager.
func NewSequenceGenerator(txManager *TxManager) *SequenceGenerator {
	return &SequenceGenerator{txManager: txManager}
}

// NextTagCode returns the next label code for the given day, format
// YYMMDD followed by a four digit sequence.
func (g *SequenceGenerator) NextTagCode(ctx context.Context, day time.Time) (string, error) {
	return g.next(ctx, "cod_etiqueta", sequence.TagPrefix(day))
}

// NextAssetFileCode returns the next inventory code for the given day,
// format AF-YYYYMMDD-NNNN. Its sequence is independent from the tag codes.
func (g *SequenceGenerator) NextAssetFileCode(ctx context.Context, day time.Time) (string, error) {
	return g.next(ctx, "cod_af_inventario", sequence.AssetFilePrefix(day))
}

func (g *SequenceGenerator) next(ctx context.Context, column, prefix string) (string, error) {
	tx := g.txManager.GetTx(ctx)
	if tx == nil {
		return "", fmt.Errorf("code generation requires a transaction")
	}

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", prefix); err != nil {
		return "", fmt.Errorf("lock code prefix %s: %w", prefix, err)
	}

	query := fmt.Sprintf(
		"SELECT COALESCE(MAX(%s), '') FROM %s WHERE %s LIKE $1",
		column, assetTable, column,
	)

	var highest string
	if err := tx.QueryRow(ctx, query, prefix+"%").Scan(&highest); err != nil {
		return "", fmt.Errorf("scan max code for %s: %w", prefix, err)
	}

	n, ok := sequence.NextAfter(prefix, highest)
	if !ok {
		return "", apperror.NewCapacityExceeded(prefix)
	}
	return sequence.Format(prefix, n), nil
}
