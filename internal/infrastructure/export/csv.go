package export

import (
	"bytes"
	"encoding/csv"

	"paulocell_pdv/internal/usecase/interfaces"
)

// utf8BOM makes spreadsheet apps detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVExporter writes ';'-separated files, the default for pt-BR spreadsheets.
type CSVExporter struct{}

var _ interfaces.ITableExporter = CSVExporter{}

func (CSVExporter) Format() string      { return "csv" }
func (CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVExporter) Render(table interfaces.ExportTable) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(table.Headers); err != nil {
		return nil, err
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
