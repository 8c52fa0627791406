package domain

import (
	"strings"
	"time"
)

// ReportKind identifica o formato de um relatório de vendas
type ReportKind int

const (
	ReportTotalSales ReportKind = iota
	ReportByGenre
	ReportByCountry
	ReportByCountryGenre
	ReportCountryAggregateAll
	ReportCountryGenreAggregateAll
	ReportGenreAggregateAll
)

var reportKindNames = map[ReportKind]string{
	ReportTotalSales:               "total-sales",
	ReportByGenre:                  "genre-sales",
	ReportByCountry:                "country-sales",
	ReportByCountryGenre:           "country-genre-sales",
	ReportCountryAggregateAll:      "country-sales-all",
	ReportCountryGenreAggregateAll: "country-genre-sales-all",
	ReportGenreAggregateAll:        "genre-sales-all",
}

func (k ReportKind) String() string {
	if name, ok := reportKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsMonthly indica se o relatório agrupa por mês
func (k ReportKind) IsMonthly() bool {
	switch k {
	case ReportTotalSales, ReportByGenre, ReportByCountry, ReportByCountryGenre:
		return true
	}
	return false
}

// ReportFilter reúne os filtros opcionais de um relatório.
// As datas são inclusivas em granularidade de dia.
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Country   string
	Genre     string
}

// Normalize remove espaços dos filtros textuais
func (f ReportFilter) Normalize() ReportFilter {
	f.Country = strings.TrimSpace(f.Country)
	f.Genre = strings.TrimSpace(f.Genre)
	return f
}

// StartOfDay retorna o limite inferior do filtro de datas
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay retorna o limite superior (23:59:59) do filtro de datas
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// TruncateToMonth retorna o primeiro dia do mês da data
func TruncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
