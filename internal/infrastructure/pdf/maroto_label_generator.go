// Package pdf genera etiquetas imprimibles de items con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del item  │  Umbral de reposición           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por identificador: Code128 + código en texto               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/prepperstore-api/internal/application/labels"
	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
)

var _ labels.LabelGenerator = (*MarotoLabelGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 34, Green: 85, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoLabelGenerator implementa labels.LabelGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateItemLabel genera el PDF y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateItemLabel(
	_ context.Context,
	item *entity.Item,
	identifiers []*entity.Identifier,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(item.Name, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(item))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	for _, ident := range identifiers {
		m.AddRows(barcodeRows(ident)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(item *entity.Item) core.Row {
	threshold := "Sin umbral"
	if item.Threshold != nil {
		threshold = "Umbral: " + item.Threshold.String()
	}
	return row.New(14).Add(
		col.New(8).Add(text.New(item.Name, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New(threshold, props.Text{
			Size: 9, Align: align.Right, Top: 4, Color: colorGray,
		})),
	)
}

// barcodeRows: Code128 centrado y el código legible debajo.
func barcodeRows(ident *entity.Identifier) []core.Row {
	return []core.Row{
		row.New(4),
		row.New(22).Add(
			col.New(12).Add(code.NewBar(ident.Identifier, props.Barcode{
				Percent: 80,
				Center:  true,
			})),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(ident.Identifier, props.Text{
				Size: 9, Align: align.Center, Top: 1,
			})),
		),
	}
}
