package domain

import "time"

// DatabaseHealth é o resultado da última verificação do banco de dados
type DatabaseHealth struct {
	Status          string        `json:"status"`
	CheckedAt       time.Time     `json:"checkedAt"`
	Latency         time.Duration `json:"latencyNs"`
	Error           string        `json:"error,omitempty"`
	OpenConnections int           `json:"openConnections"`
	InUse           int           `json:"inUse"`
	Idle            int           `json:"idle"`
	WaitCount       int64         `json:"waitCount"`
}

const (
	HealthStatusUnknown = "unknown"
	HealthStatusUp      = "up"
	HealthStatusDown    = "down"
)
