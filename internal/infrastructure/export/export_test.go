package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var sampleTable = interfaces.ExportTable{
	Title:   "Estoque",
	Headers: []string{"Nome", "SKU", "Preço"},
	Rows: [][]string{
		{"Tela; A52", "TEL-1", "R$ 199,90"},
		{"Película", "PEL-1", "R$ 19,99"},
	},
}

func TestCSVExporter(t *testing.T) {
	out, err := CSVExporter{}.Render(sampleTable)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, utf8BOM))

	r := csv.NewReader(bytes.NewReader(out[len(utf8BOM):]))
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, sampleTable.Headers, records[0])
	assert.Equal(t, "Tela; A52", records[1][0])
	assert.Equal(t, "csv", CSVExporter{}.Format())
}

func TestExcelExporter(t *testing.T) {
	out, err := ExcelExporter{}.Render(sampleTable)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Estoque")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Nome", rows[0][0])
	assert.Equal(t, "Película", rows[2][0])
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Dados", sheetName(""))
	assert.Len(t, []rune(sheetName("Um título bem comprido para uma planilha do Excel")), 31)
}

func TestPDFExporter_Table(t *testing.T) {
	out, err := PDFExporter{}.Render(sampleTable)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	empty, err := PDFExporter{}.Render(interfaces.ExportTable{Title: "Vazio"})
	require.NoError(t, err)
	assert.NotEmpty(t, empty)
}

func TestPDFExporter_Documents(t *testing.T) {
	company := entities.CompanySettings{Name: "Paulo Cell", TaxID: "11222333000181", City: "São Paulo", State: "SP", Phone: "+5511987654321"}
	now := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	doc := entities.FiscalDocument{
		Number:    "NFE-000001",
		Type:      entities.FiscalDocumentNFe,
		Status:    entities.FiscalDocumentEmitida,
		Items:     []entities.FiscalDocumentItem{{Description: "Troca de tela", Quantity: 1, UnitPrice: 250}},
		Value:     250,
		AccessKey: "35260211222333000181550010000000011000000019",
		IssuedAt:  now,
	}
	out, err := PDFExporter{}.RenderFiscalDocument(company, doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	svc := entities.Service{
		ID:          "s-1",
		Description: "Troca de bateria",
		Status:      entities.ServiceStatusCompleted,
		Parts:       []entities.Part{{Name: "Bateria", Price: 120, Quantity: 1}},
		LaborCost:   60,
		TotalCost:   180,
		CreatedAt:   now,
	}
	out, err = PDFExporter{}.RenderServiceReceipt(company, svc, entities.Customer{Name: "Maria"}, entities.Device{Brand: "Motorola", Model: "G8"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGroupAccessKey(t *testing.T) {
	assert.Equal(t, "3526 0211 22", groupAccessKey("3526021122"))
}
