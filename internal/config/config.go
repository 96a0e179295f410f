package config

import (
	"crypto/rsa"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Plaid    PlaidConfig
	Analysis AnalysisConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

// DatabaseConfig selects between a postgres server and a local sqlite file.
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	AutoMigrate     bool
	MigrationsPath  string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
	// OwnerPasswordHash is a bcrypt hash. Empty disables authentication.
	OwnerPasswordHash string
	OwnerUsername     string
}

type PlaidConfig struct {
	ClientID       string
	Secret         string
	Environment    string
	BaseURL        string
	ClientName     string
	CountryCodes   []string
	Products       []string
	RequestTimeout time.Duration
	PageSize       int
	MaxPages       int
	// UseSandbox swaps the HTTP client for the generated sandbox provider.
	UseSandbox bool
}

// AnalysisConfig holds every threshold the analysis engine uses.
type AnalysisConfig struct {
	IncomeThreshold decimal.Decimal
	// MidIncomeFloor is the exclusive lower bound for untagged deposits
	// below IncomeThreshold that still count as income.
	MidIncomeFloor           decimal.Decimal
	CategorizationWindowDays int
	AmountTolerancePct       decimal.Decimal
	ForecastHorizonDays      int
	HighInterestAPR          decimal.Decimal
	DebtToIncomeMultiple     decimal.Decimal
	RecentTransactionsLimit  int
	GroceryKeywords          []string
	BillKeywords             []string
	IncomeKeywords           []string
	IgnoreKeywords           []string
}

type SecurityConfig struct {
	BCryptCost         int
	RateLimitPerSecond int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "budget_user"),
			Password:        getEnv("DB_PASSWORD", "budget_password"),
			Name:            getEnv("DB_NAME", "budget_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "budget.db"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Auth: AuthConfig{
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 12*time.Hour),
			Issuer:              getEnv("JWT_ISSUER", "budget-coach"),
			OwnerPasswordHash:   getEnv("OWNER_PASSWORD_HASH", ""),
			OwnerUsername:       getEnv("OWNER_USERNAME", "owner"),
		},
		Plaid: PlaidConfig{
			ClientID:       getEnv("PLAID_CLIENT_ID", ""),
			Secret:         getEnv("PLAID_SECRET", ""),
			Environment:    getEnv("PLAID_ENV", "sandbox"),
			ClientName:     getEnv("PLAID_CLIENT_NAME", "Budget Coach"),
			CountryCodes:   getListEnv("PLAID_COUNTRY_CODES", []string{"US"}),
			Products:       getListEnv("PLAID_PRODUCTS", []string{"transactions"}),
			RequestTimeout: getDurationEnv("PLAID_REQUEST_TIMEOUT", 20*time.Second),
			PageSize:       getIntEnv("PLAID_PAGE_SIZE", 500),
			MaxPages:       getIntEnv("PLAID_MAX_PAGES", 20),
			UseSandbox:     getBoolEnv("PLAID_USE_GENERATED_SANDBOX", false),
		},
		Analysis: AnalysisConfig{
			IncomeThreshold:          getDecimalEnv("ANALYSIS_INCOME_THRESHOLD", decimal.NewFromInt(100)),
			MidIncomeFloor:           getDecimalEnv("ANALYSIS_MID_INCOME_FLOOR", decimal.NewFromInt(50)),
			CategorizationWindowDays: getIntEnv("ANALYSIS_CATEGORIZATION_WINDOW_DAYS", 30),
			AmountTolerancePct:       getDecimalEnv("ANALYSIS_AMOUNT_TOLERANCE_PCT", decimal.NewFromInt(5)),
			ForecastHorizonDays:      getIntEnv("ANALYSIS_FORECAST_HORIZON_DAYS", 90),
			HighInterestAPR:          getDecimalEnv("ANALYSIS_HIGH_INTEREST_APR", decimal.NewFromInt(20)),
			DebtToIncomeMultiple:     getDecimalEnv("ANALYSIS_DEBT_TO_INCOME_MULTIPLE", decimal.NewFromInt(6)),
			RecentTransactionsLimit:  getIntEnv("ANALYSIS_RECENT_TRANSACTIONS", 10),
			GroceryKeywords:          getListEnv("ANALYSIS_GROCERY_KEYWORDS", DefaultGroceryKeywords),
			BillKeywords:             getListEnv("ANALYSIS_BILL_KEYWORDS", DefaultBillKeywords),
			IncomeKeywords:           getListEnv("ANALYSIS_INCOME_KEYWORDS", DefaultIncomeKeywords),
			IgnoreKeywords:           getListEnv("ANALYSIS_IGNORE_KEYWORDS", DefaultIgnoreKeywords),
		},
		Security: SecurityConfig{
			BCryptCost:         getIntEnv("BCRYPT_COST", 12),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()
	config.Plaid.BaseURL = getEnv("PLAID_BASE_URL", plaidBaseURL(config.Plaid.Environment))

	var err error
	config.Auth.PrivateKey, config.Auth.PublicKey, err = config.loadJWTKeys()
	if err != nil {
		slog.Error("failed to load RSA keys", "error", err)
		os.Exit(1)
	}

	return config
}

var (
	DefaultGroceryKeywords = []string{
		"grocery", "market", "food", "walmart", "target", "costco",
		"whole foods", "aldi", "kroger", "publix", "safeway", "trader joe",
	}
	DefaultBillKeywords = []string{
		"electric", "water", "gas", "internet", "phone", "insurance", "rent",
		"mortgage", "utilities", "cable", "wireless", "verizon", "at&t", "t-mobile", "comcast",
	}
	DefaultIncomeKeywords = []string{
		"payroll", "salary", "direct dep", "paycheck", "wages", "employer",
	}
	DefaultIgnoreKeywords = []string{
		"round-up", "round up", "transfer", "refund", "reversal",
	}
)

// DefaultAnalysis returns the analysis thresholds without reading the environment.
func DefaultAnalysis() AnalysisConfig {
	return AnalysisConfig{
		IncomeThreshold:          decimal.NewFromInt(100),
		MidIncomeFloor:           decimal.NewFromInt(50),
		CategorizationWindowDays: 30,
		AmountTolerancePct:       decimal.NewFromInt(5),
		ForecastHorizonDays:      90,
		HighInterestAPR:          decimal.NewFromInt(20),
		DebtToIncomeMultiple:     decimal.NewFromInt(6),
		RecentTransactionsLimit:  10,
		GroceryKeywords:          DefaultGroceryKeywords,
		BillKeywords:             DefaultBillKeywords,
		IncomeKeywords:           DefaultIncomeKeywords,
		IgnoreKeywords:           DefaultIgnoreKeywords,
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL is the connection string form golang-migrate expects.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// AuthEnabled reports whether the API requires a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.Auth.OwnerPasswordHash != ""
}

func plaidBaseURL(env string) string {
	switch env {
	case "production":
		return "https://production.plaid.com"
	case "development":
		return "https://development.plaid.com"
	default:
		return "https://sandbox.plaid.com"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getListEnv splits a comma separated value and trims each entry.
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
