package exporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyTable_LinearTrendWithForecast(t *testing.T) {
	records := []domain.SalesData{
		{Month: month(2021, time.November), TotalSales: 10, NumberOfSales: 2},
		{Month: month(2021, time.December), TotalSales: 20, NumberOfSales: 4},
		{Month: month(2022, time.January), TotalSales: 30, NumberOfSales: 6},
	}

	table, err := monthlyTable(totalSalesSeries(records), domain.TrendOptions{Function: domain.TrendLinear, ForecastMonths: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"Month", "Total Sales", "Number of Sales", "Trend (Linear)"}, table.Header)
	assert.Equal(t, domain.ChartLine, table.Chart)
	assert.Equal(t, []int{1, 3}, table.ValueColumns)

	require.Len(t, table.Rows, 5)
	assert.Equal(t, []any{"11-2021", 10.0, 2.0, 10.0}, table.Rows[0])
	assert.Equal(t, []any{"01-2022", 30.0, 6.0, 30.0}, table.Rows[2])
	assert.Equal(t, []any{"02-2022", nil, nil, 40.0}, table.Rows[3])
	assert.Equal(t, []any{"03-2022", nil, nil, 50.0}, table.Rows[4])

	for _, row := range table.Rows {
		assert.Len(t, row, len(table.Header))
	}
}

func TestMonthlyTable_MovingAverageLeavesFirstPointBlank(t *testing.T) {
	records := []domain.CountrySalesData{
		{Month: month(2022, time.January), CustomerCountry: "Brazil", TotalSales: 8.91, NumberOfSales: 3},
		{Month: month(2022, time.February), CustomerCountry: "Brazil", TotalSales: 5.95, NumberOfSales: 2},
	}

	table, err := monthlyTable(countrySalesSeries("Sales in Brazil", records),
		domain.TrendOptions{Function: domain.TrendMovingAverage, ForecastMonths: 1})
	require.NoError(t, err)

	require.Len(t, table.Rows, 3)
	assert.Nil(t, table.Rows[0][3])
	assert.Equal(t, 7.43, table.Rows[1][3])
	assert.Equal(t, 7.43, table.Rows[2][3])
	assert.Equal(t, "Trend (Moving Average)", table.Header[3])
}

func TestMonthlyTable_NotEnoughPointsOmitsTrend(t *testing.T) {
	records := []domain.SalesData{{Month: month(2022, time.January), TotalSales: 15, NumberOfSales: 3}}

	table, err := monthlyTable(totalSalesSeries(records), domain.TrendOptions{Function: domain.TrendLinear, ForecastMonths: 6})
	require.NoError(t, err)

	assert.Equal(t, []string{"Month", "Total Sales", "Number of Sales"}, table.Header)
	assert.Equal(t, []int{1}, table.ValueColumns)
	assert.Len(t, table.Rows, 1)
}

func TestMonthlyTable_EmptySeries(t *testing.T) {
	table, err := monthlyTable(totalSalesSeries(nil), domain.TrendOptions{ForecastMonths: 3})
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestMonthlyTable_TrendNotSupported(t *testing.T) {
	records := []domain.SalesData{
		{Month: month(2022, time.January), TotalSales: 0},
		{Month: month(2022, time.February), TotalSales: 12},
	}

	_, err := monthlyTable(totalSalesSeries(records), domain.TrendOptions{Function: domain.TrendPower})
	assert.ErrorIs(t, err, domain.ErrTrendNotSupported)
}

func TestGenreTables(t *testing.T) {
	records := []domain.GenreTotalSales{
		{Genre: "Rock", TotalSales: 826.6499999, NumberOfSales: 587},
		{Genre: "Latin", TotalSales: 382.14, NumberOfSales: 340},
		{Genre: "Metal", TotalSales: 261.36, NumberOfSales: 201},
		{Genre: "Alternative & Punk", TotalSales: 241.56, NumberOfSales: 189},
	}

	tables := genreTables(records)
	require.Len(t, tables, 2)

	share, ranking := tables[0], tables[1]
	assert.Equal(t, domain.ChartPie, share.Chart)
	assert.Len(t, share.Rows, 4)
	assert.Equal(t, []any{"Rock", 826.65, int64(587)}, share.Rows[0])

	assert.Equal(t, "Top 3", ranking.Title)
	assert.Equal(t, domain.ChartNone, ranking.Chart)
	require.Len(t, ranking.Rows, 3)
	assert.Equal(t, []any{1, "Rock", 826.65}, ranking.Rows[0])
	assert.Equal(t, []any{3, "Metal", 261.36}, ranking.Rows[2])
}

func TestGenreTables_FewerThanThreeGenres(t *testing.T) {
	tables := genreTables([]domain.GenreTotalSales{{Genre: "Jazz", TotalSales: 79.2, NumberOfSales: 80}})

	assert.Len(t, tables[0].Rows, 1)
	assert.Len(t, tables[1].Rows, 1)
}
