// Package spreadsheet escreve os relatórios exportados em planilhas xlsx
package spreadsheet

import (
	"fmt"
	"math"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Sheet1"

	// Linhas ocupadas pelo título e pelo cabeçalho antes dos dados
	titleRow  = 1
	headerRow = 2
	firstRow  = 3

	// Espaço entre tabelas e altura reservada para cada gráfico
	tableGap    = 1
	chartHeight = 18
	columnWidth = 16
)

type Writer interface {
	Write(book domain.Workbook) ([]byte, error)
}

type excelWriter struct{}

func NewExcelWriter() Writer {
	return &excelWriter{}
}

// Write gera o xlsx com as tabelas lado a lado e os gráficos abaixo delas
func (w *excelWriter) Write(book domain.Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#9BC2E6", Style: 1},
		},
	})
	if err != nil {
		return nil, exportError("erro ao criar estilo do cabeçalho", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13},
	})
	if err != nil {
		return nil, exportError("erro ao criar estilo do título", err)
	}

	column := 1
	chartRow := firstRow + longestTable(book.Tables) + tableGap + 1

	for _, table := range book.Tables {
		if err := validateTable(table); err != nil {
			return nil, err
		}

		if err := writeTable(f, table, column, titleStyle, headerStyle); err != nil {
			return nil, err
		}

		if table.Chart != domain.ChartNone && len(table.Rows) > 0 {
			anchor, err := excelize.CoordinatesToCellName(column, chartRow)
			if err != nil {
				return nil, exportError("erro ao posicionar gráfico", err)
			}

			if err := f.AddChart(sheetName, anchor, buildChart(table, column)); err != nil {
				return nil, exportError("erro ao adicionar gráfico", err)
			}
		}

		column += len(table.Header) + tableGap
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, exportError("erro ao gerar arquivo", err)
	}

	return buffer.Bytes(), nil
}

func writeTable(f *excelize.File, table domain.Table, column, titleStyle, headerStyle int) error {
	titleCell, err := excelize.CoordinatesToCellName(column, titleRow)
	if err != nil {
		return exportError("erro ao posicionar tabela", err)
	}
	if err := f.SetCellValue(sheetName, titleCell, table.Title); err != nil {
		return exportError("erro ao escrever título", err)
	}
	if err := f.SetCellStyle(sheetName, titleCell, titleCell, titleStyle); err != nil {
		return exportError("erro ao aplicar estilo do título", err)
	}

	headerStart, _ := excelize.CoordinatesToCellName(column, headerRow)
	headerEnd, _ := excelize.CoordinatesToCellName(column+len(table.Header)-1, headerRow)

	header := make([]interface{}, len(table.Header))
	for i, name := range table.Header {
		header[i] = name
	}
	if err := f.SetSheetRow(sheetName, headerStart, &header); err != nil {
		return exportError("erro ao escrever cabeçalho", err)
	}
	if err := f.SetCellStyle(sheetName, headerStart, headerEnd, headerStyle); err != nil {
		return exportError("erro ao aplicar estilo do cabeçalho", err)
	}

	// Células vazias ficam sem valor para não aparecerem como zero nos gráficos
	for r, row := range table.Rows {
		for c, value := range row {
			if isBlank(value) {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(column+c, firstRow+r)
			if err != nil {
				return exportError("erro ao posicionar célula", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return exportError("erro ao escrever célula "+cell, err)
			}
		}
	}

	firstCol, _ := excelize.ColumnNumberToName(column)
	lastCol, _ := excelize.ColumnNumberToName(column + len(table.Header) - 1)
	if err := f.SetColWidth(sheetName, firstCol, lastCol, columnWidth); err != nil {
		return exportError("erro ao ajustar largura das colunas", err)
	}

	return nil
}

func buildChart(table domain.Table, column int) *excelize.Chart {
	lastRow := firstRow + len(table.Rows) - 1
	categories := columnRange(column+table.CategoryColumn, firstRow, lastRow)

	chart := &excelize.Chart{
		Type:   excelize.Line,
		Legend: excelize.ChartLegend{Position: "bottom"},
	}
	if table.Chart == domain.ChartPie {
		chart.Type = excelize.Pie
	}

	for _, valueColumn := range table.ValueColumns {
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       columnRange(column+valueColumn, headerRow, headerRow),
			Categories: categories,
			Values:     columnRange(column+valueColumn, firstRow, lastRow),
		})

		// Gráfico de pizza tem uma única série
		if chart.Type == excelize.Pie {
			break
		}
	}

	return chart
}

// columnRange monta a referência absoluta no formato Sheet1!$A$3:$A$10
func columnRange(column, fromRow, toRow int) string {
	name, _ := excelize.ColumnNumberToName(column)
	if fromRow == toRow {
		return fmt.Sprintf("%s!$%s$%d", sheetName, name, fromRow)
	}
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", sheetName, name, fromRow, name, toRow)
}

func validateTable(table domain.Table) error {
	if len(table.Header) == 0 {
		return fmt.Errorf("%w: tabela %q sem cabeçalho", domain.ErrExportGeneration, table.Title)
	}

	for i, row := range table.Rows {
		if len(row) != len(table.Header) {
			return fmt.Errorf("%w: tabela %q linha %d com %d colunas, cabeçalho com %d",
				domain.ErrExportGeneration, table.Title, i+1, len(row), len(table.Header))
		}
	}

	columns := append([]int{table.CategoryColumn}, table.ValueColumns...)
	for _, c := range columns {
		if c < 0 || c >= len(table.Header) {
			return fmt.Errorf("%w: tabela %q referencia coluna %d inexistente", domain.ErrExportGeneration, table.Title, c)
		}
	}

	return nil
}

func longestTable(tables []domain.Table) int {
	longest := 0
	for _, table := range tables {
		longest = max(longest, len(table.Rows))
	}
	return longest
}

func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(v) || math.IsInf(v, 0)
	}
	return false
}

func exportError(message string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrExportGeneration, message, err)
}
