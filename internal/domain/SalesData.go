package domain

import "time"

// AllGenres é a marcação usada quando o relatório por país não filtra gênero
const AllGenres = "All"

// SalesData representa o total de vendas de um mês
type SalesData struct {
	Month         time.Time `json:"month"`
	TotalSales    float64   `json:"totalSales"`
	NumberOfSales float64   `json:"numberOfSales"` // Soma das quantidades das linhas da fatura
}

// GenreSalesData representa o total de vendas de um gênero em um mês
type GenreSalesData struct {
	Genre         string    `json:"genre"`
	Month         time.Time `json:"month"`
	TotalSales    float64   `json:"totalSales"`
	NumberOfSales int64     `json:"numberOfSales"` // Contagem de faturas
}

// CountrySalesData representa o total de vendas de um país em um mês, opcionalmente por gênero
type CountrySalesData struct {
	Month           time.Time `json:"month"`
	CustomerCountry string    `json:"customerCountry"`
	TotalSales      float64   `json:"totalSales"`
	NumberOfSales   int64     `json:"numberOfSales"`
	Genre           string    `json:"genre,omitempty"`
}

// CountryAllSales representa o total acumulado de um país, sem dimensão de mês
type CountryAllSales struct {
	CustomerCountry string  `json:"customerCountry"`
	TotalSales      float64 `json:"totalSales"`
	Genre           string  `json:"genre"`
}

// GenreTotalSales representa o total acumulado de um gênero no período
type GenreTotalSales struct {
	Genre         string  `json:"genre"`
	TotalSales    float64 `json:"totalSales"`
	NumberOfSales int64   `json:"numberOfSales"`
}

// SalesEstimate é a estimativa de vendas para um mês por regressão linear
type SalesEstimate struct {
	Month          time.Time `json:"month"`
	EstimatedSales float64   `json:"estimatedSales"`
	Slope          float64   `json:"slope"`
	Intercept      float64   `json:"intercept"`
	SampleSize     int       `json:"sampleSize"`
}

// MonthlyPoint é um ponto da série mensal usado nas estimativas e tendências
type MonthlyPoint struct {
	Month time.Time
	Value float64
}
