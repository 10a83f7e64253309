// Command importlegacy bulk-loads the historical inventory from the Excel
// workbook handed over by the client. It maps columns by header name, so
// column order in the workbook does not matter.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain/asset"
	"patrimonio/internal/domain/legacy"
	"patrimonio/internal/infrastructure/storage/postgres"
	"patrimonio/internal/infrastructure/storage/postgres/inventory_repo"
	"patrimonio/pkg/logger"
)

const batchSize = 500

func main() {
	var (
		filePath  = flag.String("file", "", "path to the xlsx workbook (required)")
		sheetName = flag.String("sheet", "", "sheet name (defaults to the first sheet)")
		dryRun    = flag.Bool("dry-run", false, "parse and validate without writing")
	)
	flag.Parse()

	log, err := logger.New(logger.Config{Level: "info", Development: true})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if *filePath == "" {
		log.Fatal("missing -file")
	}

	wb, err := xlsx.OpenFile(*filePath)
	if err != nil {
		log.Fatalw("open workbook", "error", err, "file", *filePath)
	}

	sheet, err := pickSheet(wb, *sheetName)
	if err != nil {
		log.Fatalw("pick sheet", "error", err)
	}

	rows, err := parseSheet(sheet)
	if err != nil {
		log.Fatalw("parse sheet", "error", err)
	}
	log.Infow("workbook parsed", "sheet", sheet.Name, "rows", len(rows))

	if *dryRun {
		log.Info("dry run, nothing written")
		return
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	if err != nil {
		log.Fatalw("connect to database", "error", err)
	}
	defer pool.Close()

	repo := inventory_repo.NewLegacyRepo(postgres.NewTxManager(pool))

	total := 0
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := repo.BulkInsert(ctx, rows[start:end]); err != nil {
			log.Fatalw("bulk insert", "error", err, "rows_written", total)
		}
		total += end - start
		log.Infow("batch inserted", "rows", total)
	}

	log.Infow("import finished", "rows", total)
}

func pickSheet(wb *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := wb.Sheet[name]
		if !ok {
			return nil, fmt.Errorf("sheet %q not found", name)
		}
		return sheet, nil
	}
	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return wb.Sheets[0], nil
}

// parseSheet reads the header row, then turns every non-empty data row into
// a historical inventory row.
func parseSheet(sheet *xlsx.Sheet) ([]*legacy.Asset, error) {
	var (
		header map[string]int
		assets []*legacy.Asset
		rowErr error
		now    = time.Now().UTC()
		rowIdx int
	)

	err := sheet.ForEachRow(func(r *xlsx.Row) error {
		defer func() { rowIdx++ }()

		cells := rowValues(r)
		if rowIdx == 0 {
			header = indexHeader(cells)
			return nil
		}
		if isEmpty(cells) {
			return nil
		}

		a, err := rowToAsset(header, cells, now)
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", rowIdx+1, err)
			return rowErr
		}
		assets = append(assets, a)
		return nil
	})
	if rowErr != nil {
		return nil, rowErr
	}
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, fmt.Errorf("sheet %q is empty", sheet.Name)
	}
	return assets, nil
}

func rowToAsset(header map[string]int, cells []string, now time.Time) (*legacy.Asset, error) {
	pick := func(col string) *string {
		i, ok := header[col]
		if !ok || i >= len(cells) {
			return nil
		}
		v := strings.TrimSpace(cells[i])
		if v == "" {
			return nil
		}
		return &v
	}

	a := &legacy.Asset{
		ID:                id.New(),
		ProjectCode:       pick("cod_proyecto"),
		BranchCode:        pick("cod_sucursal"),
		AreaCode:          pick("cod_area"),
		AFCode:            pick("cod_af"),
		PatrimonialCode:   pick("cod_patrimonial"),
		TagCode:           pick("cod_etiqueta"),
		Description:       pick("descripcion"),
		Material:          pick("material"),
		Brand:             pick("marca"),
		Model:             pick("modelo"),
		Serial:            pick("serie"),
		Color:             pick("color"),
		ResponsibleCode:   pick("cod_responsable"),
		Ubication:         pick("ubicacion"),
		CompositeDetail:   pick("detalle_compuesto"),
		AccountingAccount: pick("cta_contable"),
		DeliveryNote:      pick("guia_remision"),
		InvoiceCode:       pick("cod_factura"),
		Notes1:            pick("observaciones1"),
		Notes2:            pick("observaciones2"),
		Notes3:            pick("observaciones3"),
		CreatedAt:         now,
	}

	if v := pick("tipo_activo_fijo"); v != nil {
		c := asset.Category(*v)
		if !c.Valid() {
			return nil, fmt.Errorf("tipo_activo_fijo desconocido: %q", *v)
		}
		a.Category = &c
	}
	if v := pick("estado"); v != nil {
		c := asset.Condition(*v)
		a.Condition = &c
	}
	if v := pick("compuesto"); v != nil {
		b := strings.EqualFold(*v, "si") || strings.EqualFold(*v, "true") || *v == "1"
		a.Composite = &b
	}

	var err error
	if a.Length, err = decCell(pick("largo")); err != nil {
		return nil, fmt.Errorf("largo: %w", err)
	}
	if a.Width, err = decCell(pick("ancho")); err != nil {
		return nil, fmt.Errorf("ancho: %w", err)
	}
	if a.Depth, err = decCell(pick("profundo")); err != nil {
		return nil, fmt.Errorf("profundo: %w", err)
	}
	if a.Inches, err = decCell(pick("pulgadas")); err != nil {
		return nil, fmt.Errorf("pulgadas: %w", err)
	}
	if a.Value, err = decCell(pick("valor_activo")); err != nil {
		return nil, fmt.Errorf("valor_activo: %w", err)
	}
	if a.PurchaseDate, err = dateCell(pick("fecha_compra")); err != nil {
		return nil, fmt.Errorf("fecha_compra: %w", err)
	}

	return a, nil
}

func indexHeader(cells []string) map[string]int {
	header := make(map[string]int, len(cells))
	for i, c := range cells {
		key := strings.ToLower(strings.TrimSpace(c))
		if key != "" {
			header[key] = i
		}
	}
	return header
}

func rowValues(r *xlsx.Row) []string {
	var values []string
	_ = r.ForEachCell(func(c *xlsx.Cell) error {
		values = append(values, c.String())
		return nil
	})
	return values
}

func isEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func decCell(v *string) (*decimal.Decimal, error) {
	if v == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(*v, ",", "."))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func dateCell(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006", "01-02-06"} {
		if t, err := time.Parse(layout, *v); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", *v)
}
