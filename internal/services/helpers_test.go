package services

import (
	"time"

	"budget-coach/internal/config"
	"budget-coach/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func txn(id string, date time.Time, amount, name string) models.Transaction {
	return models.Transaction{
		ID:     id,
		Date:   date,
		Amount: dec(amount),
		Name:   name,
	}
}

func testAnalysisConfig() config.AnalysisConfig {
	return config.DefaultAnalysis()
}

func testMetrics() MetricsRecorderInterface {
	return NewPrometheusMetrics(prometheus.NewRegistry())
}
