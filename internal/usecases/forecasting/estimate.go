package forecasting

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// MonthIndex converte o mês em um índice contínuo (ano*12 + mês começando em zero)
func MonthIndex(t time.Time) float64 {
	return float64(t.Year()*12 + int(t.Month()) - 1)
}

// EstimateMonth estima o valor do mês alvo por regressão linear simples sobre a série mensal
func EstimateMonth(points []domain.MonthlyPoint, target time.Time) (*domain.SalesEstimate, error) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	months := make(map[float64]struct{}, len(points))
	for i, point := range points {
		xs[i] = MonthIndex(point.Month)
		ys[i] = point.Value
		months[xs[i]] = struct{}{}
	}

	// Com um único mês distinto a reta não é definida
	if len(months) < 2 {
		return nil, fmt.Errorf("%w: são necessários ao menos 2 meses distintos para a estimativa, recebidos %d",
			domain.ErrInvalidFilter, len(months))
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	return &domain.SalesEstimate{
		Month:          domain.TruncateToMonth(target),
		EstimatedSales: intercept + slope*MonthIndex(target),
		Slope:          slope,
		Intercept:      intercept,
		SampleSize:     len(points),
	}, nil
}
