// Package schema creates and evolves the ledger schema with golang-migrate
// using migrations embedded in the binary.
package schema

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/SscSPs/simcard_ledger/pkg/database"
	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFS embed.FS

// maxRecoveries bounds how many already-applied steps a single run may skip.
const maxRecoveries = 64

// Manager applies the embedded migrations to one database.
type Manager struct {
	dialect database.Dialect
	dsn     string
	logger  *slog.Logger
}

// NewManager creates a schema manager. dsn is a PostgreSQL URL or an SQLite file path.
func NewManager(dialect database.Dialect, dsn string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{dialect: dialect, dsn: dsn, logger: logger}
}

// Initialize applies every pending migration.
func (m *Manager) Initialize(ctx context.Context) error {
	return m.run(ctx, "initialize", func(mg *migrate.Migrate) error { return mg.Up() })
}

// Migrate moves the schema to the given version, up or down.
func (m *Manager) Migrate(ctx context.Context, version uint) error {
	return m.run(ctx, fmt.Sprintf("migrate to %d", version), func(mg *migrate.Migrate) error { return mg.Migrate(version) })
}

// Version reports the applied version and whether the last step left the schema dirty.
// A database with no migration history reports version 0.
func (m *Manager) Version(ctx context.Context) (uint, bool, error) {
	mg, err := m.open(ctx)
	if err != nil {
		return 0, false, err
	}
	defer m.close(mg)

	v, dirty, err := mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, dirty, nil
}

func (m *Manager) run(ctx context.Context, op string, step func(*migrate.Migrate) error) error {
	mg, err := m.open(ctx)
	if err != nil {
		return err
	}
	defer m.close(mg)

	for i := 0; i <= maxRecoveries; i++ {
		err = step(mg)
		if err == nil {
			m.logger.Info("Database migrations applied", slog.String("op", op), slog.String("dialect", string(m.dialect)))
			return nil
		}
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.Info("No new migrations to apply", slog.String("op", op))
			return nil
		}
		if !isAlreadyApplied(err) {
			return fmt.Errorf("failed to %s schema: %w", op, err)
		}

		v, dirty, verr := mg.Version()
		if verr != nil || !dirty {
			return fmt.Errorf("failed to %s schema: %w", op, err)
		}
		m.logger.Warn("Migration step already present in database, marking as applied",
			slog.Uint64("version", uint64(v)), slog.String("error", err.Error()))
		if ferr := mg.Force(int(v)); ferr != nil {
			return fmt.Errorf("failed to mark migration %d as applied: %w", v, ferr)
		}
	}
	return fmt.Errorf("failed to %s schema: too many conflicting steps", op)
}

// isAlreadyApplied matches the errors an additive step raises on a legacy
// database that already has the table, column or index.
func isAlreadyApplied(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate column")
}

func (m *Manager) open(ctx context.Context) (*migrate.Migrate, error) {
	sub, err := fs.Sub(migrationFS, "migrations/"+string(m.dialect))
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s migrations: %w", m.dialect, err)
	}
	src, err := iofs.New(sub, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	db, driver, err := m.openDriver(ctx)
	if err != nil {
		src.Close()
		return nil, err
	}

	mg, err := migrate.NewWithInstance("iofs", src, string(m.dialect), driver)
	if err != nil {
		src.Close()
		db.Close()
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return mg, nil
}

func (m *Manager) openDriver(ctx context.Context) (*sql.DB, migratedb.Driver, error) {
	switch m.dialect {
	case database.DialectPostgres:
		db, err := sql.Open("pgx", m.dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database connection for migrations: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping database for migrations: %w", err)
		}
		driver, err := postgres.WithInstance(db, &postgres.Config{})
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
		}
		return db, driver, nil
	case database.DialectSQLite:
		db, err := database.OpenSQLite(ctx, m.dsn)
		if err != nil {
			return nil, nil, err
		}
		driver, err := sqlite.WithInstance(db, &sqlite.Config{})
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("could not create sqlite driver instance for migrations: %w", err)
		}
		return db, driver, nil
	}
	return nil, nil, fmt.Errorf("unsupported dialect %q", m.dialect)
}

func (m *Manager) close(mg *migrate.Migrate) {
	sourceErr, dbErr := mg.Close()
	if sourceErr != nil {
		m.logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
	}
	if dbErr != nil {
		m.logger.Error("Migration database error", slog.String("error", dbErr.Error()))
	}
}
