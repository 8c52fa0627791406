package repository

import (
	"database/sql"
	"fmt"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// rowMapper converte uma linha do resultado em um registro tipado.
// columns é a quantidade de colunas esperada para o tipo de relatório.
type rowMapper[T any] struct {
	columns int
	scan    func(rows *sql.Rows) (T, error)
}

var salesDataMapper = rowMapper[domain.SalesData]{
	columns: 3,
	scan: func(rows *sql.Rows) (domain.SalesData, error) {
		var item domain.SalesData
		err := rows.Scan(&item.Month, &item.TotalSales, &item.NumberOfSales)
		return item, err
	},
}

var genreSalesMapper = rowMapper[domain.GenreSalesData]{
	columns: 4,
	scan: func(rows *sql.Rows) (domain.GenreSalesData, error) {
		var item domain.GenreSalesData
		err := rows.Scan(&item.Genre, &item.Month, &item.TotalSales, &item.NumberOfSales)
		return item, err
	},
}

var countrySalesMapper = rowMapper[domain.CountrySalesData]{
	columns: 4,
	scan: func(rows *sql.Rows) (domain.CountrySalesData, error) {
		var item domain.CountrySalesData
		err := rows.Scan(&item.Month, &item.CustomerCountry, &item.TotalSales, &item.NumberOfSales)
		return item, err
	},
}

var countryGenreSalesMapper = rowMapper[domain.CountrySalesData]{
	columns: 5,
	scan: func(rows *sql.Rows) (domain.CountrySalesData, error) {
		var item domain.CountrySalesData
		err := rows.Scan(&item.CustomerCountry, &item.Genre, &item.Month, &item.TotalSales, &item.NumberOfSales)
		return item, err
	},
}

// Sem filtro de gênero o total recebe a marcação fixa "All"
var countryAllSalesMapper = rowMapper[domain.CountryAllSales]{
	columns: 2,
	scan: func(rows *sql.Rows) (domain.CountryAllSales, error) {
		item := domain.CountryAllSales{Genre: domain.AllGenres}
		err := rows.Scan(&item.CustomerCountry, &item.TotalSales)
		return item, err
	},
}

var countryGenreAllSalesMapper = rowMapper[domain.CountryAllSales]{
	columns: 3,
	scan: func(rows *sql.Rows) (domain.CountryAllSales, error) {
		var item domain.CountryAllSales
		err := rows.Scan(&item.CustomerCountry, &item.Genre, &item.TotalSales)
		return item, err
	},
}

var genreTotalSalesMapper = rowMapper[domain.GenreTotalSales]{
	columns: 3,
	scan: func(rows *sql.Rows) (domain.GenreTotalSales, error) {
		var item domain.GenreTotalSales
		err := rows.Scan(&item.Genre, &item.TotalSales, &item.NumberOfSales)
		return item, err
	},
}

var nameMapper = rowMapper[string]{
	columns: 1,
	scan: func(rows *sql.Rows) (string, error) {
		var name string
		err := rows.Scan(&name)
		return name, err
	},
}

// mapRows percorre o resultado validando o formato antes de escanear qualquer linha
func mapRows[T any](rows *sql.Rows, mapper rowMapper[T]) ([]T, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao ler colunas: %w", domain.ErrResultMapping, err)
	}

	if len(columns) != mapper.columns {
		return nil, fmt.Errorf("%w: esperadas %d colunas, recebidas %d (%v)",
			domain.ErrResultMapping, mapper.columns, len(columns), columns)
	}

	items := make([]T, 0)
	for rows.Next() {
		item, err := mapper.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: erro ao escanear linha %d: %w", domain.ErrResultMapping, len(items)+1, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: erro durante a iteração de linhas: %w", domain.ErrQueryExecution, err)
	}

	return items, nil
}
