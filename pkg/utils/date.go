package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "01-2006"

	// Primeiro ano aceito nas estimativas mensais
	MinEstimateYear = 2000
)

var monthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])-\d{4}$`)

// ParseDate converte yyyy-MM-dd; texto vazio significa filtro ausente e retorna nil
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseMonth converte o rótulo MM-YYYY usado no dashboard no primeiro dia do mês
func ParseMonth(month string) (time.Time, error) {
	month = strings.TrimSpace(month)
	if !monthPattern.MatchString(month) {
		return time.Time{}, fmt.Errorf("mês inválido %q, formato esperado MM-YYYY", month)
	}

	year, _ := strconv.Atoi(month[3:])
	if year < MinEstimateYear {
		return time.Time{}, fmt.Errorf("ano %d anterior a %d", year, MinEstimateYear)
	}

	return time.Parse(MonthLayout, month)
}

// FormatMonth gera o rótulo MM-YYYY de um mês
func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}
