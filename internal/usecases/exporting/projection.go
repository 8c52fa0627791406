package exporting

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// Quantidade de gêneros no ranking da exportação por gênero
const topGenres = 3

const (
	columnMonth         = "Month"
	columnTotalSales    = "Total Sales"
	columnNumberOfSales = "Number of Sales"
	columnGenre         = "Genre"
	columnPosition      = "Position"
)

// monthlySeries é a série mensal de um relatório pronta para virar tabela
type monthlySeries struct {
	title  string
	months []time.Time
	sales  []float64
	counts []float64
}

func totalSalesSeries(records []domain.SalesData) monthlySeries {
	series := monthlySeries{title: "Total Sales"}
	for _, r := range records {
		series.months = append(series.months, r.Month)
		series.sales = append(series.sales, r.TotalSales)
		series.counts = append(series.counts, r.NumberOfSales)
	}
	return series
}

func countrySalesSeries(title string, records []domain.CountrySalesData) monthlySeries {
	series := monthlySeries{title: title}
	for _, r := range records {
		series.months = append(series.months, r.Month)
		series.sales = append(series.sales, r.TotalSales)
		series.counts = append(series.counts, float64(r.NumberOfSales))
	}
	return series
}

// monthlyTable projeta a série em linhas Month | Total Sales | Number of Sales | Trend.
// Os meses projetados entram como linhas extras com apenas a tendência preenchida.
func monthlyTable(series monthlySeries, opts domain.TrendOptions) (domain.Table, error) {
	table := domain.Table{
		Title:          series.title,
		Header:         []string{columnMonth, columnTotalSales, columnNumberOfSales},
		Chart:          domain.ChartLine,
		CategoryColumn: 0,
		ValueColumns:   []int{1},
	}

	trend, err := forecasting.Project(opts.Function, series.sales, opts.ForecastMonths)
	switch {
	case errors.Is(err, forecasting.ErrNotEnoughPoints):
		trend = nil
	case err != nil:
		return domain.Table{}, err
	}

	if trend != nil {
		table.Header = append(table.Header, fmt.Sprintf("Trend (%s)", opts.Function))
		table.ValueColumns = append(table.ValueColumns, 3)
	}

	for i, month := range series.months {
		row := []any{
			utils.FormatMonth(month),
			utils.RoundWithTwoDecimalPlace(series.sales[i]),
			series.counts[i],
		}
		if trend != nil {
			row = append(row, trendValue(trend[i]))
		}
		table.Rows = append(table.Rows, row)
	}

	if trend == nil {
		return table, nil
	}

	last := series.months[len(series.months)-1]
	for i := 1; i <= len(trend)-len(series.months); i++ {
		table.Rows = append(table.Rows, []any{
			utils.FormatMonth(last.AddDate(0, i, 0)),
			nil,
			nil,
			trendValue(trend[len(series.months)+i-1]),
		})
	}

	return table, nil
}

func trendValue(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return utils.RoundWithTwoDecimalPlace(v)
}

// genreTables gera a tabela do gráfico de pizza e o ranking dos gêneros mais vendidos.
// Os totais chegam ordenados do maior para o menor.
func genreTables(records []domain.GenreTotalSales) []domain.Table {
	share := domain.Table{
		Title:          "Sales by Genre",
		Header:         []string{columnGenre, columnTotalSales, columnNumberOfSales},
		Chart:          domain.ChartPie,
		CategoryColumn: 0,
		ValueColumns:   []int{1},
	}

	ranking := domain.Table{
		Title:  fmt.Sprintf("Top %d", topGenres),
		Header: []string{columnPosition, columnGenre, columnTotalSales},
	}

	for i, r := range records {
		total := utils.RoundWithTwoDecimalPlace(r.TotalSales)
		share.Rows = append(share.Rows, []any{r.Genre, total, r.NumberOfSales})

		if i < topGenres {
			ranking.Rows = append(ranking.Rows, []any{i + 1, r.Genre, total})
		}
	}

	return []domain.Table{share, ranking}
}
