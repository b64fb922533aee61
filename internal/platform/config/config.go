package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/simcard_ledger/pkg/database"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort        = "8080"
	defaultSQLitePath  = "./data/ledger.db"
	defaultArchiveDir  = "./contracts"
	defaultTimezone    = "Asia/Tehran"
	defaultLogLevel    = "info"
	defaultRateLimit   = "100-M"
	defaultCORSOrigins = "*"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	DBDriver   database.Dialect
	SQLitePath string
	// DatabaseURL is the PostgreSQL connection string, used when DBDriver is postgres.
	DatabaseURL      string
	MigrateToVersion uint // 0 migrates to the latest version

	ArchiveDir string
	Location   *time.Location

	LogLevel  string
	LogFormat string // json or text

	RateLimit          string
	CORSAllowedOrigins []string
}

// DSN returns the PostgreSQL URL or the SQLite file path of the configured store.
func (c *Config) DSN() string {
	if c.DBDriver == database.DialectPostgres {
		return c.DatabaseURL
	}
	return c.SQLitePath
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Invalid values fall back to their defaults with a warning.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DB_DRIVER", string(database.DialectSQLite))
	viper.SetDefault("SQLITE_PATH", defaultSQLitePath)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATE_TO_VERSION", 0)
	viper.SetDefault("ARCHIVE_DIR", defaultArchiveDir)
	viper.SetDefault("TIMEZONE", defaultTimezone)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("LOG_FORMAT", "")
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)

	viper.AutomaticEnv()

	cfg := &Config{
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck: viper.GetBool("ENABLE_DB_CHECK"),
		DatabaseURL:   viper.GetString("PGSQL_URL"),
		ArchiveDir:    viper.GetString("ARCHIVE_DIR"),
		LogLevel:      strings.ToLower(viper.GetString("LOG_LEVEL")),
		RateLimit:     viper.GetString("RATE_LIMIT"),
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	driverStr := viper.GetString("DB_DRIVER")
	driver, err := database.ParseDialect(driverStr)
	if err != nil {
		driver = database.DialectSQLite
		log.Printf("Warning: Invalid value for DB_DRIVER ('%s'). Defaulting to %s.\n", driverStr, driver)
	}
	cfg.DBDriver = driver
	if cfg.DBDriver == database.DialectPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = defaultSQLitePath
	}

	version := viper.GetInt("MIGRATE_TO_VERSION")
	if version < 0 {
		log.Printf("Warning: Invalid value for MIGRATE_TO_VERSION (%d). Migrating to latest.\n", version)
		version = 0
	}
	cfg.MigrateToVersion = uint(version)

	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = defaultArchiveDir
	}

	tzName := viper.GetString("TIMEZONE")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Warning: Invalid value for TIMEZONE ('%s'). Defaulting to %s.\n", tzName, defaultTimezone)
		if loc, err = time.LoadLocation(defaultTimezone); err != nil {
			loc = time.Local
		}
	}
	cfg.Location = loc

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", cfg.LogLevel, defaultLogLevel)
		cfg.LogLevel = defaultLogLevel
	}

	cfg.LogFormat = strings.ToLower(viper.GetString("LOG_FORMAT"))
	switch cfg.LogFormat {
	case "json", "text":
	case "":
		// development gets the colored handler
		cfg.LogFormat = "text"
		if cfg.IsProduction {
			cfg.LogFormat = "json"
		}
	default:
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to json.\n", cfg.LogFormat)
		cfg.LogFormat = "json"
	}

	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultCORSOrigins}
	}

	return cfg, nil
}
