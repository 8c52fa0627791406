package repository

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// Layout usado nos limites de data; o texto é interpretado no fuso horário do banco
const invoiceDateLayout = "2006-01-02 15:04:05"

const (
	invoiceTable = "invoice i"

	monthExpr        = "DATE_TRUNC('month', i.invoice_date)"
	monthColumn      = monthExpr + " AS month"
	totalSalesColumn = "SUM(il.unit_price * il.quantity) AS total_sales"
	quantityColumn   = "SUM(il.quantity) AS number_of_sales"
	invoiceCountCol  = "COUNT(i.invoice_id) AS number_of_sales"
	genreColumn      = "g.name AS genre"
	countryColumn    = "c.country AS customer_country"

	// Com filtro case-insensitive o mês é a única chave do grupo; variações de caixa
	// do mesmo país ou gênero somam na mesma linha
	filteredGenreColumn   = "MIN(g.name) AS genre"
	filteredCountryColumn = "MIN(c.country) AS customer_country"

	joinInvoiceLine = "invoice_line il ON i.invoice_id = il.invoice_id"
	joinTrack       = "track t ON il.track_id = t.track_id"
	joinGenre       = "genre g ON t.genre_id = g.genre_id"
	joinCustomer    = "customer c ON i.customer_id = c.customer_id"

	genrePredicate   = "UPPER(g.name) = UPPER(?)"
	countryPredicate = "UPPER(c.country) = UPPER(?)"
	startPredicate   = "i.invoice_date >= ?"
	endPredicate     = "i.invoice_date <= ?"
)

// requirement marca os filtros obrigatórios de um tipo de relatório
type requirement uint8

const (
	requiresGenre requirement = 1 << iota
	requiresCountry
)

// reportTemplate descreve o formato fixo de um relatório: colunas, joins, agrupamento e ordenação
type reportTemplate struct {
	columns  []string
	joins    []string
	requires requirement
	notNull  []string
	groupBy  []string
	orderBy  []string
}

var (
	genreJoins        = []string{joinInvoiceLine, joinTrack, joinGenre}
	countryJoins      = []string{joinCustomer, joinInvoiceLine}
	countryGenreJoins = []string{joinCustomer, joinInvoiceLine, joinTrack, joinGenre}
)

var reportTemplates = map[domain.ReportKind]reportTemplate{
	domain.ReportTotalSales: {
		columns: []string{monthColumn, totalSalesColumn, quantityColumn},
		joins:   []string{joinInvoiceLine, joinTrack},
		groupBy: []string{monthExpr},
		orderBy: []string{"month ASC"},
	},
	domain.ReportByGenre: {
		columns:  []string{filteredGenreColumn, monthColumn, totalSalesColumn, invoiceCountCol},
		joins:    genreJoins,
		requires: requiresGenre,
		groupBy:  []string{monthExpr},
		orderBy:  []string{"month ASC"},
	},
	domain.ReportByCountry: {
		columns:  []string{monthColumn, filteredCountryColumn, totalSalesColumn, invoiceCountCol},
		joins:    countryJoins,
		requires: requiresCountry,
		groupBy:  []string{monthExpr},
		orderBy:  []string{"month ASC"},
	},
	domain.ReportByCountryGenre: {
		columns:  []string{filteredCountryColumn, filteredGenreColumn, monthColumn, totalSalesColumn, invoiceCountCol},
		joins:    countryGenreJoins,
		requires: requiresCountry | requiresGenre,
		groupBy:  []string{monthExpr},
		orderBy:  []string{"month ASC"},
	},
	domain.ReportCountryAggregateAll: {
		columns: []string{countryColumn, totalSalesColumn},
		joins:   countryJoins,
		notNull: []string{"c.country"},
		groupBy: []string{"c.country"},
		orderBy: []string{"total_sales DESC", "customer_country ASC"},
	},
	domain.ReportCountryGenreAggregateAll: {
		columns:  []string{countryColumn, filteredGenreColumn, totalSalesColumn},
		joins:    countryGenreJoins,
		requires: requiresGenre,
		notNull:  []string{"c.country"},
		groupBy:  []string{"c.country"},
		orderBy:  []string{"total_sales DESC", "customer_country ASC"},
	},
	domain.ReportGenreAggregateAll: {
		columns: []string{genreColumn, totalSalesColumn, invoiceCountCol},
		joins:   genreJoins,
		notNull: []string{"g.name"},
		groupBy: []string{"g.name"},
		orderBy: []string{"total_sales DESC", "genre ASC"},
	},
}

// ReportQuery é a consulta pronta para execução e seus parâmetros posicionais
type ReportQuery struct {
	Kind domain.ReportKind
	SQL  string
	Args []interface{}
}

// BuildReportQuery compõe a consulta agregada de um tipo de relatório.
// Todo valor vindo do chamador é enviado como parâmetro, nunca concatenado no SQL.
func BuildReportQuery(kind domain.ReportKind, filter domain.ReportFilter) (*ReportQuery, error) {
	tmpl, ok := reportTemplates[kind]
	if !ok {
		return nil, fmt.Errorf("%w: tipo de relatório desconhecido (%d)", domain.ErrInvalidFilter, kind)
	}

	filter = filter.Normalize()
	if err := tmpl.validate(filter); err != nil {
		return nil, err
	}

	builder := squirrel.
		Select(tmpl.columns...).
		From(invoiceTable)

	for _, join := range tmpl.joins {
		builder = builder.Join(join)
	}

	for _, predicate := range tmpl.predicates(filter) {
		builder = builder.Where(predicate)
	}

	sqlQuery, args, err := builder.
		GroupBy(tmpl.groupBy...).
		OrderBy(tmpl.orderBy...).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return &ReportQuery{Kind: kind, SQL: sqlQuery, Args: args}, nil
}

func (t reportTemplate) validate(filter domain.ReportFilter) error {
	var missing []string

	if t.requires&requiresCountry != 0 && filter.Country == "" {
		missing = append(missing, "country")
	}
	if t.requires&requiresGenre != 0 && filter.Genre == "" {
		missing = append(missing, "genre")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: filtro obrigatório ausente (%s)", domain.ErrInvalidFilter, strings.Join(missing, ", "))
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return fmt.Errorf("%w: startDate posterior a endDate", domain.ErrInvalidFilter)
	}

	return nil
}

// predicates monta os predicados na ordem dos parâmetros: país, gênero, datas.
// Colunas agrupadas sem filtro descartam nomes nulos.
func (t reportTemplate) predicates(filter domain.ReportFilter) []squirrel.Sqlizer {
	predicates := make([]squirrel.Sqlizer, 0, 4+len(t.notNull))

	for _, column := range t.notNull {
		predicates = append(predicates, squirrel.Expr(column+" IS NOT NULL"))
	}

	if t.requires&requiresCountry != 0 {
		predicates = append(predicates, squirrel.Expr(countryPredicate, filter.Country))
	}
	if t.requires&requiresGenre != 0 {
		predicates = append(predicates, squirrel.Expr(genrePredicate, filter.Genre))
	}

	if filter.StartDate != nil {
		start := domain.StartOfDay(*filter.StartDate).Format(invoiceDateLayout)
		predicates = append(predicates, squirrel.Expr(startPredicate, start))
	}
	if filter.EndDate != nil {
		end := domain.EndOfDay(*filter.EndDate).Format(invoiceDateLayout)
		predicates = append(predicates, squirrel.Expr(endPredicate, end))
	}

	return predicates
}
