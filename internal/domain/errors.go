package domain

import "errors"

// Erros de relatório compartilhados entre repositório, casos de uso e handlers
var (
	ErrInvalidFilter     = errors.New("invalid report filter")
	ErrQueryExecution    = errors.New("report query execution failed")
	ErrResultMapping     = errors.New("unexpected report row shape")
	ErrExportGeneration  = errors.New("export generation failed")
	ErrTrendNotSupported = errors.New("trend function not applicable to series")
)
