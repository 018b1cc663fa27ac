// Package pdf implementa la representación imprimible del recibo de una venta.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Sucursal + dirección/teléfono        │
//	│          N° de venta + fecha                  │
//	│  ─────────────────────────────────────────    │
//	│  CLIENTE / ATENDIDO POR                       │
//	│  ─────────────────────────────────────────    │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal   │
//	│  ─────────────────────────────────────────    │
//	│  TOTAL                                        │
//	└───────────────────────────────────────────────┘
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

	"github.com/uis-entornos/comercio-api/internal/application/sales"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.ReciboGenerator = (*MarotoReciboGenerator)(nil)

// MarotoReciboGenerator implementa sales.ReciboGenerator usando Maroto v2.
type MarotoReciboGenerator struct{}

// NewMarotoReciboGenerator construye el generador.
func NewMarotoReciboGenerator() *MarotoReciboGenerator { return &MarotoReciboGenerator{} }

// GenerateReciboPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReciboGenerator) GenerateReciboPDF(
	_ context.Context,
	venta *entity.Venta,
	sucursal *entity.Sucursal,
	cliente *entity.Cliente,
	empleado *entity.Empleado,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(venta, sucursal))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(parteRow("Cliente", cliente.Nombre, cliente.Email))
	m.AddRows(parteRow("Atendido por", empleado.Nombre, empleado.Cargo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, d := range venta.Detalles {
		m.AddRows(detalleRow(d))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(venta))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: sucursal (izq) y número + fecha de la venta (der).
func headerRow(venta *entity.Venta, sucursal *entity.Sucursal) core.Row {
	contacto := sucursal.Direccion
	if sucursal.Telefono != "" {
		contacto += " · Tel: " + sucursal.Telefono
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(sucursal.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(contacto, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Recibo N° "+venta.ID, props.Text{
				Size: 8, Align: align.Right, Top: 2,
			}),
			text.New(venta.Fecha.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func parteRow(rol, nombre, detalle string) core.Row {
	valor := nombre
	if detalle != "" {
		valor += " · " + detalle
	}
	return row.New(6).Add(
		col.New(3).Add(text.New(rol+":", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(9).Add(text.New(valor, props.Text{Size: 8})),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(6).Add(
		col.New(2).Add(text.New("Cant", header)),
		col.New(5).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Unit", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right})),
		col.New(3).Add(text.New("Subtotal", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right})),
	)
}

func detalleRow(d entity.DetalleVenta) core.Row {
	return row.New(5).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", d.Cantidad), props.Text{Size: 8})),
		col.New(5).Add(text.New(d.ProductoNombre, props.Text{Size: 8})),
		col.New(2).Add(text.New(d.PrecioUnitario.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		col.New(3).Add(text.New(d.Subtotal.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
	)
}

func totalRow(venta *entity.Venta) core.Row {
	return row.New(8).Add(
		col.New(7),
		col.New(2).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
		col.New(3).Add(text.New(venta.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary,
		})),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New("Gracias por su compra", props.Text{
			Size: 8, Align: align.Center, Top: 3, Color: colorGray,
		})),
	)
}
