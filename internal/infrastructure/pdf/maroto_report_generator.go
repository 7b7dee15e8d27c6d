// Package pdf implementa el reporte imprimible de productos bajo umbral de
// reorden (low-stock) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Categoría | Disponible | Umbral     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de productos bajo umbral                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator genera reportes PDF del inventario usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLowStockReport genera el PDF del reporte low-stock y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLowStockReport(products []dto.ProductResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de productos bajo umbral", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte y fecha de generación.
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Productos bajo umbral de reorden", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Top: 3, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right}
	return row.New(8).Add(
		col.New(2).Add(text.New("SKU", header)),
		col.New(4).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Categoría", header)),
		col.New(2).Add(text.New("Disponible", headerRight)),
		col.New(2).Add(text.New("Umbral", headerRight)),
	)
}

func productRow(p dto.ProductResponse) core.Row {
	cell := props.Text{Size: 9}
	cellRight := props.Text{Size: 9, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New(p.SKU, cell)),
		col.New(4).Add(text.New(p.Name, cell)),
		col.New(2).Add(text.New(p.Category, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.Quantity), cellRight)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.ReorderThreshold), cellRight)),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d productos requieren reposición", total), props.Text{
				Size: 9, Color: colorGray, Top: 2,
			}),
		),
	)
}
