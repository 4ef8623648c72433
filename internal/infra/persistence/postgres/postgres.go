package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"callbell/config"
	"callbell/internal/domain/constants"
	"callbell/internal/domain/lifecycle"
	"callbell/internal/errors"
	"callbell/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the GORM client for the configured driver
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config)
	if err != nil {
		return nil, err
	}
	db = db.Session(&gorm.Session{
		// Every write is a single statement; the claim relies on one conditional UPDATE.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	if params.Config.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to PostgreSQL (primary plus replicas) or to a SQLite file.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case constants.DatabaseDriverSQLite:
		return OpenSQLite(cfg.Database.SQLitePath)
	case constants.DatabaseDriverPostgres, "":
		if cfg.Postgres == nil {
			return nil, errors.New("postgres configuration is required for the postgres driver")
		}
		db, err := pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}

		return db, nil
	default:
		return nil, errors.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}
}

// OpenSQLite opens a SQLite database. SQLite allows one writer at a time, so the
// pool is limited to a single connection.
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required for the sqlite driver")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates or updates the tables of every persisted model.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(model.AllModels()...), "failed to migrate schema")
}

// poolWatcher reports connection pool contention: requests that had to wait
// for a free connection since the previous observation.
type poolWatcher struct {
	logger    *slog.Logger
	warnAfter time.Duration
	prev      sql.DBStats
}

func (w *poolWatcher) observe(ctx context.Context, cur sql.DBStats) {
	waits := cur.WaitCount - w.prev.WaitCount
	waited := cur.WaitDuration - w.prev.WaitDuration
	w.prev = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= w.warnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Database pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	watcher := &poolWatcher{logger: logger, warnAfter: dbPoolWarnDurationThreshold, prev: sqlDB.Stats()}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			watcher.observe(ctx, sqlDB.Stats())
		}
	}
}
