// Package pdf genera la representación imprimible del libro de movimientos
// de inventario: una tabla Fecha | Producto | Tipo | Cantidad | Motivo | Usuario,
// más reciente primero, con un resumen al pie.
package pdf

import (
	"context"
	"fmt"

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

	"github.com/tu-usuario/inventario/internal/application/inventory"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventory.LedgerPDFGenerator = (*MarotoLedgerGenerator)(nil)

// MarotoLedgerGenerator implementa inventory.LedgerPDFGenerator usando Maroto v2.
type MarotoLedgerGenerator struct{}

// NewMarotoLedgerGenerator construye el generador.
func NewMarotoLedgerGenerator() *MarotoLedgerGenerator { return &MarotoLedgerGenerator{} }

// GenerateLedgerPDF genera el PDF del historial y devuelve sus bytes.
func (g *MarotoLedgerGenerator) GenerateLedgerPDF(_ context.Context, movements []repository.MovementWithNames) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Historial de movimientos de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, mov := range movements {
		m.AddRows(movementRow(mov))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(movements))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Historial de movimientos de inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Fecha", header)),
		col.New(3).Add(text.New("Producto", header)),
		col.New(1).Add(text.New("Tipo", header)),
		col.New(1).Add(text.New("Cantidad", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(3).Add(text.New("Motivo", header)),
		col.New(2).Add(text.New("Usuario", header)),
	)
}

func movementRow(m repository.MovementWithNames) core.Row {
	cell := props.Text{Size: 8}
	return row.New(6).Add(
		col.New(2).Add(text.New(m.CreatedAt.Format("02/01/2006 15:04"), cell)),
		col.New(3).Add(text.New(m.ProductName, cell)),
		col.New(1).Add(text.New(m.Type, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", m.Quantity), props.Text{Size: 8, Align: align.Right})),
		col.New(3).Add(text.New(m.Reason, cell)),
		col.New(2).Add(text.New(m.UserName, cell)),
	)
}

// summaryRow totaliza entradas y salidas del historial impreso.
func summaryRow(movements []repository.MovementWithNames) core.Row {
	var entradas, salidas int64
	for _, m := range movements {
		if m.Type == entity.MovementTypeEntry {
			entradas += m.Quantity
		} else {
			salidas += m.Quantity
		}
	}
	resumen := fmt.Sprintf("%d movimientos · entradas: %d unidades · salidas: %d unidades",
		len(movements), entradas, salidas)
	return row.New(8).Add(
		col.New(12).Add(
			text.New(resumen, props.Text{Size: 8, Color: colorGray, Top: 2}),
		),
	)
}
