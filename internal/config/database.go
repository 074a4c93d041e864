package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DatabaseConfig is one Postgres endpoint. The writer and reader each read
// it under their own prefix.
type DatabaseConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	DBName   string `env:"DB_NAME"  envDefault:"business_feed"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"`
}

type ConnectionPoolConfig struct {
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS"    envDefault:"50"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS"    envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
}

type PostgresConfig struct {
	Writer DatabaseConfig `envPrefix:"POSTGRES_WRITER_"`
	Reader DatabaseConfig `envPrefix:"POSTGRES_READER_"`
	Pool   ConnectionPoolConfig
	// LogLevel is one of silent, error, warn, info.
	LogLevel string `env:"DB_LOG_LEVEL" envDefault:"warn"`
}

func LoadPostgresConfig() (*PostgresConfig, error) {
	cfg, err := parse[PostgresConfig]()
	if err != nil {
		return nil, err
	}
	if _, err := cfg.gormLogLevel(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *DatabaseConfig) dsn() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func (c *PostgresConfig) gormLogLevel() (gormlogger.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "silent":
		return gormlogger.Silent, nil
	case "error":
		return gormlogger.Error, nil
	case "warn":
		return gormlogger.Warn, nil
	case "info":
		return gormlogger.Info, nil
	}
	return 0, fmt.Errorf("unknown DB_LOG_LEVEL %q", c.LogLevel)
}

func (c *PostgresConfig) open(endpoint DatabaseConfig) (*gorm.DB, error) {
	level, err := c.gormLogLevel()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(endpoint.dsn()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s:%d: %w", endpoint.Host, endpoint.Port, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(c.Pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.Pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(c.Pool.ConnMaxLifetime)

	return db, nil
}

// DatabaseConnections holds the writer pool and the read-replica pool.
type DatabaseConnections struct {
	Writer *gorm.DB
	Reader *gorm.DB
}

// NewDatabaseConnections loads PostgresConfig from the environment and opens
// both pools.
func NewDatabaseConnections() (*DatabaseConnections, error) {
	cfg, err := LoadPostgresConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Connect()
}

func (c *PostgresConfig) Connect() (*DatabaseConnections, error) {
	writer, err := c.open(c.Writer)
	if err != nil {
		return nil, fmt.Errorf("failed to create writer database connection: %w", err)
	}

	reader, err := c.open(c.Reader)
	if err != nil {
		conns := &DatabaseConnections{Writer: writer}
		_ = conns.Close()
		return nil, fmt.Errorf("failed to create reader database connection: %w", err)
	}

	return &DatabaseConnections{Writer: writer, Reader: reader}, nil
}

// Ping checks that both pools can reach the server.
func (dc *DatabaseConnections) Ping(ctx context.Context) error {
	for name, db := range map[string]*gorm.DB{"writer": dc.Writer, "reader": dc.Reader} {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("%s pool: %w", name, err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("ping %s database: %w", name, err)
		}
	}
	return nil
}

func (dc *DatabaseConnections) Close() error {
	var errs []error
	for name, db := range map[string]*gorm.DB{"writer": dc.Writer, "reader": dc.Reader} {
		if db == nil {
			continue
		}
		sqlDB, err := db.DB()
		if err != nil {
			continue
		}
		if err := sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s database connection: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
