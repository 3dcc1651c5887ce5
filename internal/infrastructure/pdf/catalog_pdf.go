// Package pdf genera el catálogo imprimible de la tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Nombre de la tienda            │  Selección + fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto | Categoría | Talla | Color | Precio | Stock │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Total de productos / agotados                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 58, Blue: 138}
	colorPink    = &props.Color{Red: 236, Green: 72, Blue: 153}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CatalogPDFGenerator genera el catálogo en PDF usando Maroto v2.
type CatalogPDFGenerator struct {
	storeName string
	now       func() time.Time
}

// NewCatalogPDFGenerator construye el generador.
func NewCatalogPDFGenerator(storeName string) *CatalogPDFGenerator {
	return &CatalogPDFGenerator{storeName: storeName, now: time.Now}
}

// GenerateCatalogPDF genera el PDF de los productos dados y devuelve sus bytes.
func (g *CatalogPDFGenerator) GenerateCatalogPDF(_ context.Context, selection string, products []entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo "+g.storeName, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, selection, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPink, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(products)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(products))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar catálogo: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(storeName, selection string, now time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Catálogo de productos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(selection, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPink, Top: 1,
			}),
			text.New("Fecha: "+now.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Talla", 1, align.Left),
		h("Color", 1, align.Left),
		h("Precio", 2, align.Right),
		h("Stock", 1, align.Right),
	)
}

func tableRows(products []entity.Product) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		stock := strconv.Itoa(p.Quantity)
		if p.SoldOut() {
			stock = "Agotado"
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
		}
		rows = append(rows, row.New(7).Add(
			cell(strconv.Itoa(p.ID), 1, align.Center),
			cell(p.Name, 4, align.Left),
			cell(string(p.Category)+" / "+p.Subcategory, 2, align.Left),
			cell(p.Size, 1, align.Left),
			cell(p.Color, 1, align.Left),
			cell(p.PriceLabel(), 2, align.Right),
			cell(stock, 1, align.Right),
		))
	}
	return rows
}

func summaryRow(products []entity.Product) core.Row {
	soldOut := 0
	for _, p := range products {
		if p.SoldOut() {
			soldOut++
		}
	}
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Productos: %d   |   Agotados: %d", len(products), soldOut), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
		}),
	))
}
