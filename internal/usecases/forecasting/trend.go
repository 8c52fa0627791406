// Package forecasting ajusta linhas de tendência e estimativas sobre séries mensais de vendas
package forecasting

import (
	"errors"
	"fmt"
	"math"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Período da média móvel, o mesmo usado nos gráficos do dashboard
const movingAveragePeriod = 2

// ErrNotEnoughPoints indica que a série é curta demais para a função escolhida
var ErrNotEnoughPoints = errors.New("not enough points to fit trend")

// Project ajusta a função de tendência sobre values (x = 1..n) e devolve os valores
// ajustados para os n pontos seguidos de horizon pontos projetados.
// Na média móvel os pontos sem janela completa são NaN.
func Project(fn domain.TrendFunction, values []float64, horizon int) ([]float64, error) {
	if horizon < 0 {
		horizon = 0
	}

	if fn == domain.TrendMovingAverage {
		return movingAverage(values, horizon)
	}

	model, err := fit(fn, values)
	if err != nil {
		return nil, err
	}

	projected := make([]float64, len(values)+horizon)
	for i := range projected {
		projected[i] = model(float64(i + 1))
	}

	return projected, nil
}

func fit(fn domain.TrendFunction, values []float64) (func(x float64) float64, error) {
	switch fn {
	case domain.TrendPolynomial:
		return fitPolynomial(values, 2)
	case domain.TrendLogarithmic:
		return fitLogarithmic(values)
	case domain.TrendExponential:
		return fitExponential(values)
	case domain.TrendPower:
		return fitPower(values)
	default:
		return fitLinear(values)
	}
}

func positions(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	return xs
}

func requirePoints(values []float64, min int, fn domain.TrendFunction) error {
	if len(values) < min {
		return fmt.Errorf("%w: %s precisa de %d pontos, recebidos %d", ErrNotEnoughPoints, fn, min, len(values))
	}
	return nil
}

func requirePositive(values []float64, fn domain.TrendFunction) error {
	for i, v := range values {
		if v <= 0 {
			return fmt.Errorf("%w: %s exige valores positivos (ponto %d = %v)", domain.ErrTrendNotSupported, fn, i+1, v)
		}
	}
	return nil
}

func fitLinear(values []float64) (func(x float64) float64, error) {
	if err := requirePoints(values, 2, domain.TrendLinear); err != nil {
		return nil, err
	}

	alpha, beta := stat.LinearRegression(positions(len(values)), values, nil, false)
	return func(x float64) float64 {
		return alpha + beta*x
	}, nil
}

// fitPolynomial resolve os mínimos quadrados da matriz de Vandermonde
func fitPolynomial(values []float64, order int) (func(x float64) float64, error) {
	if err := requirePoints(values, order+1, domain.TrendPolynomial); err != nil {
		return nil, err
	}

	n := len(values)
	a := mat.NewDense(n, order+1, nil)
	for i := 0; i < n; i++ {
		x := float64(i + 1)
		for j := 0; j <= order; j++ {
			a.Set(i, j, math.Pow(x, float64(j)))
		}
	}

	var coefficients mat.VecDense
	if err := coefficients.SolveVec(a, mat.NewVecDense(n, values)); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrTrendNotSupported, domain.TrendPolynomial, err)
	}

	return func(x float64) float64 {
		var y float64
		for j := 0; j <= order; j++ {
			y += coefficients.AtVec(j) * math.Pow(x, float64(j))
		}
		return y
	}, nil
}

func fitLogarithmic(values []float64) (func(x float64) float64, error) {
	if err := requirePoints(values, 2, domain.TrendLogarithmic); err != nil {
		return nil, err
	}

	xs := positions(len(values))
	for i := range xs {
		xs[i] = math.Log(xs[i])
	}

	alpha, beta := stat.LinearRegression(xs, values, nil, false)
	return func(x float64) float64 {
		return alpha + beta*math.Log(x)
	}, nil
}

// fitExponential ajusta y = a·e^(bx) pela regressão de ln(y)
func fitExponential(values []float64) (func(x float64) float64, error) {
	if err := requirePoints(values, 2, domain.TrendExponential); err != nil {
		return nil, err
	}
	if err := requirePositive(values, domain.TrendExponential); err != nil {
		return nil, err
	}

	alpha, beta := stat.LinearRegression(positions(len(values)), logs(values), nil, false)
	return func(x float64) float64 {
		return math.Exp(alpha) * math.Exp(beta*x)
	}, nil
}

// fitPower ajusta y = a·x^b pela regressão de ln(y) sobre ln(x)
func fitPower(values []float64) (func(x float64) float64, error) {
	if err := requirePoints(values, 2, domain.TrendPower); err != nil {
		return nil, err
	}
	if err := requirePositive(values, domain.TrendPower); err != nil {
		return nil, err
	}

	alpha, beta := stat.LinearRegression(logs(positions(len(values))), logs(values), nil, false)
	return func(x float64) float64 {
		return math.Exp(alpha) * math.Pow(x, beta)
	}, nil
}

func logs(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Log(v)
	}
	return out
}

// movingAverage repete a última média nos pontos projetados
func movingAverage(values []float64, horizon int) ([]float64, error) {
	if err := requirePoints(values, movingAveragePeriod, domain.TrendMovingAverage); err != nil {
		return nil, err
	}

	projected := make([]float64, len(values)+horizon)
	for i := range values {
		if i < movingAveragePeriod-1 {
			projected[i] = math.NaN()
			continue
		}
		projected[i] = stat.Mean(values[i-movingAveragePeriod+1:i+1], nil)
	}

	last := projected[len(values)-1]
	for i := len(values); i < len(projected); i++ {
		projected[i] = last
	}

	return projected, nil
}
