package export

import (
	"fmt"
	"strconv"
	"strings"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
	"paulocell_pdv/pkg"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var headerBackground = &props.Color{Red: 220, Green: 220, Blue: 220}

// PDFExporter renders tables in landscape and the single-record documents
// (fiscal document, service order receipt) in portrait.
type PDFExporter struct{}

var (
	_ interfaces.ITableExporter    = PDFExporter{}
	_ interfaces.IDocumentRenderer = PDFExporter{}
)

func (PDFExporter) Format() string      { return "pdf" }
func (PDFExporter) ContentType() string { return "application/pdf" }

func (PDFExporter) Render(table interfaces.ExportTable) ([]byte, error) {
	cols := len(table.Headers)
	if cols == 0 {
		cols = 1
	}
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(cols).
		WithLeftMargin(10).
		WithRightMargin(10).
		WithTopMargin(10).
		Build()
	m := maroto.New(cfg)

	m.AddRow(12, text.NewCol(cols, table.Title, props.Text{Style: fontstyle.Bold, Size: 14, Align: align.Center}))

	header := make([]core.Col, 0, len(table.Headers))
	for _, h := range table.Headers {
		header = append(header, text.NewCol(1, h, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1.5, Left: 1}))
	}
	if len(header) > 0 {
		m.AddRows(row.New(7).Add(header...).WithStyle(&props.Cell{BackgroundColor: headerBackground}))
	}

	for _, r := range table.Rows {
		cells := make([]core.Col, 0, len(r))
		for _, v := range r {
			cells = append(cells, text.NewCol(1, v, props.Text{Size: 8, Top: 1, Left: 1}))
		}
		m.AddRows(row.New(6).Add(cells...))
	}
	m.AddRow(8, text.NewCol(cols, fmt.Sprintf("%d registro(s)", len(table.Rows)), props.Text{Size: 8, Top: 3, Align: align.Right}))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func (PDFExporter) RenderFiscalDocument(company entities.CompanySettings, doc entities.FiscalDocument) ([]byte, error) {
	m := newPortrait()
	addCompanyHeader(m, company)

	title := fmt.Sprintf("%s %s", doc.Type.NumberPrefix(), doc.Number)
	m.AddRow(10, text.NewCol(12, title, props.Text{Style: fontstyle.Bold, Size: 13, Align: align.Center}))
	m.AddRow(6,
		text.NewCol(6, "Emissão: "+pkg.FormatDate(doc.IssuedAt), props.Text{Size: 9}),
		text.NewCol(6, "Situação: "+string(doc.Status), props.Text{Size: 9, Align: align.Right}),
	)
	if doc.CustomerName != "" {
		m.AddRow(6, text.NewCol(12, "Cliente: "+doc.CustomerName, props.Text{Size: 9}))
	}

	m.AddRows(row.New(7).Add(
		text.NewCol(6, "Descrição", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1.5, Left: 1}),
		text.NewCol(2, "Qtd.", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1.5, Align: align.Right}),
		text.NewCol(2, "Unitário", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1.5, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1.5, Align: align.Right, Right: 1}),
	).WithStyle(&props.Cell{BackgroundColor: headerBackground}))
	for _, it := range doc.Items {
		m.AddRow(6,
			text.NewCol(6, it.Description, props.Text{Size: 9, Top: 1, Left: 1}),
			text.NewCol(2, strconv.FormatFloat(it.Quantity, 'f', -1, 64), props.Text{Size: 9, Top: 1, Align: align.Right}),
			text.NewCol(2, pkg.FormatBRL(it.UnitPrice), props.Text{Size: 9, Top: 1, Align: align.Right}),
			text.NewCol(2, pkg.FormatBRL(entities.RoundMoney(it.Total())), props.Text{Size: 9, Top: 1, Align: align.Right, Right: 1}),
		)
	}
	m.AddRow(9, text.NewCol(12, "Valor total: "+pkg.FormatBRL(doc.Value), props.Text{Style: fontstyle.Bold, Size: 11, Top: 3, Align: align.Right}))
	if doc.AccessKey != "" {
		m.AddRow(8, text.NewCol(12, "Chave de acesso: "+groupAccessKey(doc.AccessKey), props.Text{Size: 8, Top: 3}))
	}
	if doc.CancelledAt != nil {
		m.AddRow(8, text.NewCol(12, "Cancelada em "+pkg.FormatDate(*doc.CancelledAt), props.Text{Style: fontstyle.Bold, Size: 9, Top: 3}))
	}
	return generate(m)
}

func (PDFExporter) RenderServiceReceipt(company entities.CompanySettings, svc entities.Service, customer entities.Customer, device entities.Device) ([]byte, error) {
	m := newPortrait()
	addCompanyHeader(m, company)

	m.AddRow(10, text.NewCol(12, "Ordem de serviço", props.Text{Style: fontstyle.Bold, Size: 13, Align: align.Center}))
	m.AddRow(6,
		text.NewCol(6, "Abertura: "+pkg.FormatDate(svc.CreatedAt), props.Text{Size: 9}),
		text.NewCol(6, "Status: "+svc.Status.Label(), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(6, text.NewCol(12, "Cliente: "+customer.Name, props.Text{Size: 9}))
	if customer.Phone != "" {
		m.AddRow(6, text.NewCol(12, "Telefone: "+customer.Phone, props.Text{Size: 9}))
	}
	m.AddRow(6, text.NewCol(12, "Aparelho: "+device.Label(), props.Text{Size: 9}))
	if device.SerialNumber != "" {
		m.AddRow(6, text.NewCol(12, "Nº de série: "+device.SerialNumber, props.Text{Size: 9}))
	}
	m.AddRow(10, text.NewCol(12, svc.Description, props.Text{Size: 9, Top: 3}))

	if len(svc.Parts) > 0 {
		m.AddRows(row.New(7).Add(
			text.NewCol(6, "Peça", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1.5, Left: 1}),
			text.NewCol(2, "Qtd.", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1.5, Align: align.Right}),
			text.NewCol(2, "Preço", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1.5, Align: align.Right}),
			col.New(2),
		).WithStyle(&props.Cell{BackgroundColor: headerBackground}))
		for _, p := range svc.Parts {
			m.AddRow(6,
				text.NewCol(6, p.Name, props.Text{Size: 9, Top: 1, Left: 1}),
				text.NewCol(2, strconv.Itoa(p.Quantity), props.Text{Size: 9, Top: 1, Align: align.Right}),
				text.NewCol(2, pkg.FormatBRL(p.Price), props.Text{Size: 9, Top: 1, Align: align.Right}),
				col.New(2),
			)
		}
	}
	m.AddRow(7, text.NewCol(12, "Mão de obra: "+pkg.FormatBRL(svc.LaborCost), props.Text{Size: 9, Top: 2, Align: align.Right}))
	m.AddRow(9, text.NewCol(12, "Total: "+pkg.FormatBRL(svc.TotalCost), props.Text{Style: fontstyle.Bold, Size: 11, Top: 2, Align: align.Right}))
	m.AddRow(20,
		col.New(1),
		text.NewCol(10, "Assinatura do cliente: ____________________________________", props.Text{Size: 9, Top: 12, Align: align.Center}),
		col.New(1),
	)
	return generate(m)
}

func newPortrait() core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(12).
		Build()
	return maroto.New(cfg)
}

func addCompanyHeader(m core.Maroto, c entities.CompanySettings) {
	m.AddRow(9, text.NewCol(12, c.Name, props.Text{Style: fontstyle.Bold, Size: 15}))
	var lines []string
	if c.TaxID != "" {
		lines = append(lines, "CNPJ/CPF "+c.TaxID)
	}
	if addr := strings.TrimSpace(strings.Join(nonEmpty(c.Street, c.Number, c.Neighborhood, c.City, c.State), ", ")); addr != "" {
		lines = append(lines, addr)
	}
	if contact := strings.Join(nonEmpty(c.Phone, c.Email), " · "); contact != "" {
		lines = append(lines, contact)
	}
	for _, l := range lines {
		m.AddRow(5, text.NewCol(12, l, props.Text{Size: 8}))
	}
	m.AddRow(4, col.New(12))
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// groupAccessKey splits the 44-digit key in blocks of four for reading.
func groupAccessKey(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
