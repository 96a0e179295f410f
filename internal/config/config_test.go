package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Analysis.IncomeThreshold.Equal(decimal.NewFromInt(100)))
	assert.True(t, cfg.Analysis.MidIncomeFloor.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 30, cfg.Analysis.CategorizationWindowDays)
	assert.Equal(t, 90, cfg.Analysis.ForecastHorizonDays)
	assert.Equal(t, "https://sandbox.plaid.com", cfg.Plaid.BaseURL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.False(t, cfg.AuthEnabled())
	require.NotNil(t, cfg.Auth.PrivateKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("PLAID_ENV", "production")
	t.Setenv("ANALYSIS_INCOME_THRESHOLD", "250.50")
	t.Setenv("ANALYSIS_GROCERY_KEYWORDS", "bakery, butcher ,")
	t.Setenv("OWNER_PASSWORD_HASH", "$2a$12$abc")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "https://production.plaid.com", cfg.Plaid.BaseURL)
	assert.Equal(t, "250.5", cfg.Analysis.IncomeThreshold.String())
	assert.Equal(t, []string{"bakery", "butcher"}, cfg.Analysis.GroceryKeywords)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("ANALYSIS_FORECAST_HORIZON_DAYS", "ninety")
	t.Setenv("ANALYSIS_AMOUNT_TOLERANCE_PCT", "five")

	cfg := Load()

	assert.Equal(t, 90, cfg.Analysis.ForecastHorizonDays)
	assert.True(t, cfg.Analysis.AmountTolerancePct.Equal(decimal.NewFromInt(5)))
}

func TestDecodeKeyPair(t *testing.T) {
	privateKey, publicKey, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
	publicDER, err := x509.MarshalPKIXPublicKey(publicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	gotPrivate, gotPublic, err := decodeKeyPair(
		base64.StdEncoding.EncodeToString(privatePEM),
		base64.StdEncoding.EncodeToString(publicPEM),
	)
	require.NoError(t, err)
	assert.True(t, privateKey.Equal(gotPrivate))
	assert.True(t, publicKey.Equal(gotPublic))

	_, _, err = decodeKeyPair("not-base64!", "x")
	assert.Error(t, err)
}

func TestDatabaseConfig_URL(t *testing.T) {
	db := DatabaseConfig{User: "u", Password: "p", Host: "h", Port: "5432", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", db.URL())
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", db.DSN())
}
