package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"harvest/internal/adapters/out/postgres/jobrepo"
	"harvest/internal/adapters/out/postgres/providerrepo"

	"github.com/glebarez/sqlite"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Settings selects and addresses the job store.
type Settings struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN returns the connection string for the configured driver.
func (s Settings) DSN() string {
	if s.Driver == DriverSQLite {
		return s.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.Name, s.SSLMode)
}

// Open connects to PostgreSQL or, for local runs and tests, an embedded
// SQLite file. GORM's warnings and errors go to log; a missing record is
// reported to the caller only.
func Open(s Settings, log *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch s.Driver {
	case DriverPostgres, "":
		dialector = gormpostgres.Open(s.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(s.DSN())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, s.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(log),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", s.Driver, err)
	}

	return db, nil
}

// AutoMigrate creates or updates the harvest_jobs and users tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&jobrepo.JobDTO{}, &providerrepo.UserDTO{})
}

// NewGormLogger routes GORM's log output through log at warn level. Slow
// queries and SQL errors are logged; gorm.ErrRecordNotFound is not.
func NewGormLogger(log *slog.Logger) logger.Interface {
	if log == nil {
		log = slog.Default()
	}
	return logger.New(slogWriter{log: log.With("component", "gorm")}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// slogWriter adapts a slog.Logger to GORM's printf-style logger.Writer.
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Log(context.Background(), slog.LevelWarn, fmt.Sprintf(format, args...))
}
