package export

import (
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

type ExcelExporter struct{}

var _ interfaces.ITableExporter = ExcelExporter{}

func (ExcelExporter) Format() string { return "xlsx" }
func (ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render writes the table on a single sheet named after the title, with a
// bold header row.
func (ExcelExporter) Render(table interfaces.ExportTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(table.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	if len(table.Headers) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, err
		}
		last, err := excelize.CoordinatesToCellName(len(table.Headers), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetName trims a title to Excel's 31-character sheet limit.
func sheetName(title string) string {
	r := []rune(title)
	if len(r) == 0 {
		return "Dados"
	}
	if len(r) > 31 {
		r = r[:31]
	}
	return string(r)
}
