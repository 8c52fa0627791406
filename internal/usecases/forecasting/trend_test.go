package forecasting

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const delta = 1e-6

func series(n int, f func(x float64) float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = f(float64(i + 1))
	}
	return values
}

func TestProject_ExactFits(t *testing.T) {
	tests := []struct {
		name  string
		fn    domain.TrendFunction
		model func(x float64) float64
	}{
		{
			name:  "linear",
			fn:    domain.TrendLinear,
			model: func(x float64) float64 { return 3 + 2*x },
		},
		{
			name:  "polinomial de segunda ordem",
			fn:    domain.TrendPolynomial,
			model: func(x float64) float64 { return 1 - 2*x + 0.5*x*x },
		},
		{
			name:  "logarítmica",
			fn:    domain.TrendLogarithmic,
			model: func(x float64) float64 { return 4 + 1.5*math.Log(x) },
		},
		{
			name:  "exponencial",
			fn:    domain.TrendExponential,
			model: func(x float64) float64 { return 2 * math.Exp(0.3*x) },
		},
		{
			name:  "potência",
			fn:    domain.TrendPower,
			model: func(x float64) float64 { return 5 * math.Pow(x, 1.2) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := series(6, tt.model)

			projected, err := Project(tt.fn, values, 3)
			require.NoError(t, err)

			require.Len(t, projected, 9)
			assert.InDeltaSlice(t, series(9, tt.model), projected, delta)
		})
	}
}

func TestProject_MovingAverage(t *testing.T) {
	projected, err := Project(domain.TrendMovingAverage, []float64{10, 20, 40}, 2)
	require.NoError(t, err)

	require.Len(t, projected, 5)
	assert.True(t, math.IsNaN(projected[0]))
	assert.Equal(t, []float64{15, 30, 30, 30}, projected[1:])
}

func TestProject_UnknownFunctionFallsBackToLinear(t *testing.T) {
	values := []float64{1, 2, 3}

	projected, err := Project(domain.ParseTrendFunction(42), values, 1)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1, 2, 3, 4}, projected, delta)
}

func TestProject_NonPositiveValues(t *testing.T) {
	values := []float64{3, 0, 5}

	for _, fn := range []domain.TrendFunction{domain.TrendExponential, domain.TrendPower} {
		t.Run(fn.String(), func(t *testing.T) {
			projected, err := Project(fn, values, 0)
			assert.Nil(t, projected)
			assert.ErrorIs(t, err, domain.ErrTrendNotSupported)
		})
	}
}

func TestProject_NotEnoughPoints(t *testing.T) {
	tests := []struct {
		name   string
		fn     domain.TrendFunction
		values []float64
	}{
		{name: "linear com um ponto", fn: domain.TrendLinear, values: []float64{1}},
		{name: "polinomial com dois pontos", fn: domain.TrendPolynomial, values: []float64{1, 2}},
		{name: "média móvel vazia", fn: domain.TrendMovingAverage, values: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(tt.fn, tt.values, 1)
			assert.ErrorIs(t, err, ErrNotEnoughPoints)
		})
	}
}

func TestEstimateMonth(t *testing.T) {
	month := func(year int, m time.Month) time.Time {
		return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	}

	// Crescimento de 10 por mês atravessando a virada do ano
	points := []domain.MonthlyPoint{
		{Month: month(2021, time.November), Value: 100},
		{Month: month(2021, time.December), Value: 110},
		{Month: month(2022, time.January), Value: 120},
	}

	estimate, err := EstimateMonth(points, month(2022, time.March))
	require.NoError(t, err)

	assert.InDelta(t, 140.0, estimate.EstimatedSales, delta)
	assert.InDelta(t, 10.0, estimate.Slope, delta)
	assert.Equal(t, 3, estimate.SampleSize)
	assert.Equal(t, month(2022, time.March), estimate.Month)
}

func TestEstimateMonth_NotEnoughMonths(t *testing.T) {
	points := []domain.MonthlyPoint{{Month: time.Now(), Value: 10}}

	estimate, err := EstimateMonth(points, time.Now())
	assert.Nil(t, estimate)
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestEstimateMonth_RepeatedMonth(t *testing.T) {
	january := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	points := []domain.MonthlyPoint{
		{Month: january, Value: 10},
		{Month: january, Value: 8},
	}

	estimate, err := EstimateMonth(points, time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, estimate)
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestMonthIndex(t *testing.T) {
	assert.Equal(t, float64(2022*12), MonthIndex(time.Date(2022, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, float64(2022*12+11), MonthIndex(time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC)))
}
