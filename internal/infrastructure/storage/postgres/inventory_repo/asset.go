// Package inventory_repo provides PostgreSQL implementations for the
// confirmed registrations, the historical inventory and the GPS audit trail.
package inventory_repo

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/id"
	"patrimonio/internal/domain"
	"patrimonio/internal/domain/asset"
	"patrimonio/internal/infrastructure/storage/postgres"
)

const (
	assetTable     = "inventario_nuevo"
	furnitureTable = "mobiliario"
	computerTable  = "equipos_informaticos"
	vehicleTable   = "vehiculos"
)

// AssetRepo implements asset.Repository.
type AssetRepo struct {
	*postgres.BaseRepo[*asset.Asset]
}

var _ asset.Repository = (*AssetRepo)(nil)

// NewAssetRepo creates a new confirmed-registration repository.
func NewAssetRepo(txManager *postgres.TxManager) *AssetRepo {
	return &AssetRepo{
		BaseRepo: postgres.NewBaseRepo(
			txManager,
			assetTable,
			[]string{"descripcion", "cod_af_inventario", "cod_etiqueta", "cod_patrimonial"},
			"created_at DESC",
			func() *asset.Asset { return &asset.Asset{} },
		),
	}
}

// List retrieves registrations narrowed by location, category and surplus flag.
func (r *AssetRepo) List(ctx context.Context, filter asset.ListFilter) (domain.ListResult[*asset.Asset], error) {
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
	if filter.Category != nil {
		q = q.Where(squirrel.Eq{"tipo_activo_fijo": *filter.Category})
	}
	if filter.SurplusOnly {
		q = q.Where(squirrel.Eq{"inventario_origen_id": nil})
	}

	result, err := r.FindList(ctx, q, filter.ListFilter)
	if err != nil {
		return domain.ListResult[*asset.Asset]{}, err
	}
	return *result, nil
}

// SaveDetails upserts the attribute row of the given category. Each asset
// has at most one row per attribute table, enforced by a unique constraint
// on inventario_nuevo_id.
func (r *AssetRepo) SaveDetails(ctx context.Context, assetID id.ID, category asset.Category, details *asset.Details) error {
	table, fields, err := detailTarget(category, details)
	if err != nil {
		return err
	}
	if fields == nil {
		return nil
	}

	data := postgres.StructToMap(fields)
	data["inventario_nuevo_id"] = assetID

	cols := make([]string, 0, len(data))
	for col := range data {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	vals := make([]any, 0, len(cols))
	setClauses := make([]string, 0, len(cols))
	for _, col := range cols {
		vals = append(vals, data[col])
		if col == "inventario_nuevo_id" {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	sql, args, err := r.Builder().
		Insert(table).
		Columns(cols...).
		Values(vals...).
		Suffix("ON CONFLICT (inventario_nuevo_id) DO UPDATE SET " + strings.Join(setClauses, ", ")).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert %s: %w", table, err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

// GetDetails loads the attribute row matching the category, or nil when
// none exists.
func (r *AssetRepo) GetDetails(ctx context.Context, assetID id.ID, category asset.Category) (*asset.Details, error) {
	switch category {
	case asset.CategoryFurniture:
		fields := &asset.FurnitureFields{}
		cols := postgres.ExtractDBColumns[asset.FurnitureFields]()
		ok, err := r.loadDetail(ctx, furnitureTable, cols, assetID, fields)
		if err != nil || !ok {
			return nil, err
		}
		return &asset.Details{Furniture: fields}, nil
	case asset.CategoryComputer:
		fields := &asset.ComputerFields{}
		cols := postgres.ExtractDBColumns[asset.ComputerFields]()
		ok, err := r.loadDetail(ctx, computerTable, cols, assetID, fields)
		if err != nil || !ok {
			return nil, err
		}
		return &asset.Details{Computer: fields}, nil
	case asset.CategoryVehicle:
		fields := &asset.VehicleFields{}
		cols := postgres.ExtractDBColumns[asset.VehicleFields]()
		ok, err := r.loadDetail(ctx, vehicleTable, cols, assetID, fields)
		if err != nil || !ok {
			return nil, err
		}
		return &asset.Details{Vehicle: fields}, nil
	}
	return nil, apperror.NewValidation("tipo_activo_fijo desconocido").
		WithDetail("tipo_activo_fijo", string(category))
}

func (r *AssetRepo) loadDetail(ctx context.Context, table string, cols []string, assetID id.ID, dest any) (bool, error) {
	sql, args, err := r.Builder().
		Select(cols...).
		From(table).
		Where(squirrel.Eq{"inventario_nuevo_id": assetID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), dest, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", table, err)
	}
	return true, nil
}

func detailTarget(category asset.Category, details *asset.Details) (string, any, error) {
	switch category {
	case asset.CategoryFurniture:
		if details == nil || details.Furniture == nil {
			return furnitureTable, nil, nil
		}
		return furnitureTable, details.Furniture, nil
	case asset.CategoryComputer:
		if details == nil || details.Computer == nil {
			return computerTable, nil, nil
		}
		return computerTable, details.Computer, nil
	case asset.CategoryVehicle:
		if details == nil || details.Vehicle == nil {
			return vehicleTable, nil, nil
		}
		return vehicleTable, details.Vehicle, nil
	}
	return "", nil, apperror.NewValidation("tipo_activo_fijo desconocido").
		WithDetail("tipo_activo_fijo", string(category))
}
