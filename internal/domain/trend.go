package domain

// TrendFunction é o tipo de linha de tendência aplicada nos gráficos exportados.
// O valor ordinal é o mesmo enviado pelo front end.
type TrendFunction int

const (
	TrendLinear TrendFunction = iota
	TrendPolynomial
	TrendLogarithmic
	TrendExponential
	TrendPower
	TrendMovingAverage
)

var trendFunctionNames = []string{
	"Linear",
	"Polynomial",
	"Logarithmic",
	"Exponential",
	"Power",
	"Moving Average",
}

// ParseTrendFunction converte o ordinal recebido, usando Linear para valores desconhecidos
func ParseTrendFunction(ordinal int) TrendFunction {
	if ordinal < 0 || ordinal >= len(trendFunctionNames) {
		return TrendLinear
	}
	return TrendFunction(ordinal)
}

func (t TrendFunction) String() string {
	if t < 0 || int(t) >= len(trendFunctionNames) {
		return trendFunctionNames[TrendLinear]
	}
	return trendFunctionNames[t]
}

// TrendOptions são as opções de tendência repassadas ao gerador de planilhas
type TrendOptions struct {
	Function       TrendFunction
	ForecastMonths int
}
