package domain

// ChartKind define o gráfico desenhado para uma tabela exportada
type ChartKind int

const (
	ChartNone ChartKind = iota
	ChartLine
	ChartPie
)

// Table é a projeção ordenada de um relatório para exportação:
// a primeira linha é o cabeçalho e as demais têm o mesmo formato.
type Table struct {
	Title          string
	Header         []string
	Rows           [][]any
	Chart          ChartKind
	CategoryColumn int   // índice da coluna usada como eixo/categoria
	ValueColumns   []int // índices das colunas desenhadas como séries
}

// Workbook é o conjunto de tabelas de uma exportação, escritas lado a lado
type Workbook struct {
	Name   string
	Tables []Table
}

// ExportFile é o arquivo gerado por uma exportação
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}
