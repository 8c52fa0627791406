package spreadsheet

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, content []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExcelWriter_LineChartTable(t *testing.T) {
	book := domain.Workbook{
		Name: "total-sales",
		Tables: []domain.Table{
			{
				Title:          "Total Sales",
				Header:         []string{"Month", "Total Sales", "Trend (Linear)"},
				Rows:           [][]any{{"01-2021", 15.0, 15.0}, {"02-2021", 20.0, 20.0}, {"03-2021", nil, 25.0}},
				Chart:          domain.ChartLine,
				CategoryColumn: 0,
				ValueColumns:   []int{1, 2},
			},
		},
	}

	content, err := NewExcelWriter().Write(book)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f := openWorkbook(t, content)

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Total Sales", title)

	header, err := f.GetCellValue(sheetName, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Trend (Linear)", header)

	value, err := f.GetCellValue(sheetName, "B4")
	require.NoError(t, err)
	assert.Equal(t, "20", value)

	// Linha projetada sem valor real
	empty, err := f.GetCellValue(sheetName, "B5")
	require.NoError(t, err)
	assert.Empty(t, empty)

	trend, err := f.GetCellValue(sheetName, "C5")
	require.NoError(t, err)
	assert.Equal(t, "25", trend)
}

func TestExcelWriter_TablesSideBySide(t *testing.T) {
	book := domain.Workbook{
		Name: "genre-sales",
		Tables: []domain.Table{
			{
				Title:        "Sales by Genre",
				Header:       []string{"Genre", "Total Sales"},
				Rows:         [][]any{{"Rock", 826.65}, {"Latin", 382.14}, {"Metal", 261.36}, {"Jazz", 79.2}},
				Chart:        domain.ChartPie,
				ValueColumns: []int{1},
			},
			{
				Title:  "Top 3",
				Header: []string{"Position", "Genre", "Total Sales"},
				Rows:   [][]any{{1, "Rock", 826.65}, {2, "Latin", 382.14}, {3, "Metal", 261.36}},
			},
		},
	}

	content, err := NewExcelWriter().Write(book)
	require.NoError(t, err)

	f := openWorkbook(t, content)

	// Segunda tabela começa depois das duas colunas da primeira e da coluna de espaço
	title, err := f.GetCellValue(sheetName, "D1")
	require.NoError(t, err)
	assert.Equal(t, "Top 3", title)

	genre, err := f.GetCellValue(sheetName, "E3")
	require.NoError(t, err)
	assert.Equal(t, "Rock", genre)
}

func TestExcelWriter_SkipsNaN(t *testing.T) {
	book := domain.Workbook{
		Tables: []domain.Table{
			{
				Title:        "Moving Average",
				Header:       []string{"Month", "Trend"},
				Rows:         [][]any{{"01-2021", math.NaN()}, {"02-2021", 12.5}},
				Chart:        domain.ChartLine,
				ValueColumns: []int{1},
			},
		},
	}

	content, err := NewExcelWriter().Write(book)
	require.NoError(t, err)

	f := openWorkbook(t, content)
	value, err := f.GetCellValue(sheetName, "B3")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestExcelWriter_EmptyTableWithoutChart(t *testing.T) {
	book := domain.Workbook{
		Tables: []domain.Table{
			{Title: "Total Sales", Header: []string{"Month", "Total Sales"}, Chart: domain.ChartLine, ValueColumns: []int{1}},
		},
	}

	content, err := NewExcelWriter().Write(book)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}

func TestExcelWriter_InvalidTable(t *testing.T) {
	tests := []struct {
		name  string
		table domain.Table
	}{
		{name: "sem cabeçalho", table: domain.Table{Title: "vazia"}},
		{
			name:  "linha com formato diferente",
			table: domain.Table{Header: []string{"Month", "Total Sales"}, Rows: [][]any{{"01-2021"}}},
		},
		{
			name:  "coluna de série inexistente",
			table: domain.Table{Header: []string{"Month"}, Rows: [][]any{{"01-2021"}}, ValueColumns: []int{3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := NewExcelWriter().Write(domain.Workbook{Tables: []domain.Table{tt.table}})
			assert.Nil(t, content)
			assert.ErrorIs(t, err, domain.ErrExportGeneration)
		})
	}
}
