package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Tabelas mínimas lidas pelos relatórios; bancos com o catálogo completo já as possuem
//
//go:embed schema.sql
var schemaSQL string

// ApplySchema cria as tabelas de vendas que ainda não existem, em uma única transação
func ApplySchema(ctx context.Context, conn *Connection) error {
	startTime := time.Now()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação do schema: %w", err)
	}

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("erro ao aplicar schema: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("erro ao confirmar schema: %w", err)
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Schema de vendas aplicado")
	return nil
}
