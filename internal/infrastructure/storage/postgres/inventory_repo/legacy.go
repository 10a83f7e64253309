package inventory_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/id"
	"patrimonio/internal/domain"
	"patrimonio/internal/domain/asset"
	"patrimonio/internal/domain/legacy"
	"patrimonio/internal/infrastructure/storage/postgres"
)

const legacyTable = "inventario"

// LegacyRepo implements legacy.Repository. It also implements
// asset.OriginStore, which is the narrow view the reconciliation engine
// takes of the same table.
type LegacyRepo struct {
	*postgres.BaseRepo[*legacy.Asset]
	txManager *postgres.TxManager
	inserter  *postgres.BatchInserter
}

var (
	_ legacy.Repository = (*LegacyRepo)(nil)
	_ asset.OriginStore = (*LegacyRepo)(nil)
)

// NewLegacyRepo creates a new historical inventory repository.
func NewLegacyRepo(txManager *postgres.TxManager) *LegacyRepo {
	return &LegacyRepo{
		BaseRepo: postgres.NewBaseRepo(
			txManager,
			legacyTable,
			[]string{"descripcion", "cod_patrimonial", "cod_af", "cod_etiqueta"},
			"created_at DESC",
			func() *legacy.Asset { return &legacy.Asset{} },
		),
		txManager: txManager,
		inserter:  postgres.NewBatchInserter(txManager),
	}
}

// GetByPatrimonialCode retrieves a historical row by its patrimonial code.
func (r *LegacyRepo) GetByPatrimonialCode(ctx context.Context, code string) (*legacy.Asset, error) {
	return r.GetByColumn(ctx, "cod_patrimonial", code)
}

// MarkReconciled sets encontrado=true and stamps the generated asset-file
// code on the historical row.
func (r *LegacyRepo) MarkReconciled(ctx context.Context, assetID id.ID, assetFileCode string) error {
	sql, args, err := r.Builder().
		Update(legacyTable).
		Set("encontrado", true).
		Set("cod_af_inventario", assetFileCode).
		Where(squirrel.Eq{"id": assetID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("mark reconciled: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(legacyTable, assetID.String())
	}
	return nil
}

// GetOrigin returns the slice of a historical row the reconciliation engine
// needs.
func (r *LegacyRepo) GetOrigin(ctx context.Context, originID id.ID) (*asset.Origin, error) {
	row, err := r.GetByID(ctx, originID)
	if err != nil {
		return nil, err
	}
	return &asset.Origin{ID: row.ID, Category: row.Category}, nil
}

// BulkInsert loads imported rows through COPY inside one transaction.
func (r *LegacyRepo) BulkInsert(ctx context.Context, assets []*legacy.Asset) error {
	if len(assets) == 0 {
		return nil
	}

	cols := postgres.ExtractDBColumns[legacy.Asset]()
	rows := make([][]any, 0, len(assets))
	for _, a := range assets {
		data := postgres.StructToMap(a)
		row := make([]any, 0, len(cols))
		for _, col := range cols {
			row = append(row, data[col])
		}
		rows = append(rows, row)
	}

	return r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		n, err := r.inserter.CopyFromSlice(ctx, legacyTable, cols, rows)
		if err != nil {
			return fmt.Errorf("bulk insert %s: %w", legacyTable, err)
		}
		if n != int64(len(assets)) {
			return fmt.Errorf("bulk insert %s: copied %d of %d rows", legacyTable, n, len(assets))
		}
		return nil
	})
}

// List retrieves historical rows narrowed by location and found flag.
func (r *LegacyRepo) List(ctx context.Context, filter legacy.ListFilter) (domain.ListResult[*legacy.Asset], error) {
	q := r.BaseSelect()

	if filter.ProjectCode != nil {
		q = q.Where(squirrel.Eq{"cod_proyecto": *filter.ProjectCode})
	}
	if filter.BranchCode != nil {
		q = q.Where(squirrel.Eq{"cod_sucursal": *filter.BranchCode})
	}
	if filter.AreaCode != nil {
		q = q.Where(squirrel.Eq{"cod_area": *filter.AreaCode})
	}
	if filter.Found != nil {
		q = q.Where(squirrel.Eq{"encontrado": *filter.Found})
	}

	result, err := r.FindList(ctx, q, filter.ListFilter)
	if err != nil {
		return domain.ListResult[*legacy.Asset]{}, err
	}
	return *result, nil
}
