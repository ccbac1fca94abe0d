package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fairstand/tillpoint/internal/observability/logger"
	"github.com/fairstand/tillpoint/internal/schema"
	"github.com/fairstand/tillpoint/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageUnavailable reports that the embedded store failed to open or
// upgrade. The store must not be used after this error.
var ErrStorageUnavailable = errors.New("storage_unavailable")

// Store owns the embedded database connection. The connection is opened
// lazily on first use, upgraded to the current schema version, and then
// shared for the life of the process. Open never retries: a failed open
// poisons the handle and every later call reports the same error.
type Store struct {
	cfg db.Config
	log *zap.Logger

	once sync.Once
	conn *gorm.DB
	err  error
}

func New(cfg db.Config, log *zap.Logger) *Store {
	return &Store{
		cfg: cfg,
		log: log.Named("store"),
	}
}

// Open returns the shared connection, opening and upgrading the database on
// the first call. Concurrent callers block until the first open completes
// and all receive the same handle.
func (s *Store) Open(ctx context.Context) (*gorm.DB, error) {
	s.once.Do(func() {
		s.conn, s.err = s.open(ctx)
	})
	if s.err != nil {
		return nil, s.err
	}
	return s.conn, nil
}

// SchemaVersion reads the version stamped on the opened database.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	conn, err := s.Open(ctx)
	if err != nil {
		return 0, err
	}
	return schema.Version(conn.WithContext(ctx))
}

// Close releases the underlying connection if one was opened.
func (s *Store) Close() error {
	if s.conn == nil {
		return nil
	}
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) open(ctx context.Context) (*gorm.DB, error) {
	dialector, err := db.Dialect(s.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(logger.DefaultGormLoggerConfig()),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStorageUnavailable, s.cfg.Path, err)
	}

	// One device, one operator: a single connection sidesteps sqlite write
	// contention and keeps read-modify-write sequences on one handle.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	sqlDB.SetMaxOpenConns(1)

	fail := func(err error) (*gorm.DB, error) {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if s.cfg.BusyTimeoutMS > 0 {
		if err := conn.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", s.cfg.BusyTimeoutMS)).Error; err != nil {
			return fail(fmt.Errorf("set busy timeout: %w", err))
		}
	}

	version, err := schema.Version(conn.WithContext(ctx))
	if err != nil {
		return fail(err)
	}
	target := schema.Target()
	if version > target {
		return fail(fmt.Errorf("store schema v%d is newer than this build (v%d)", version, target))
	}
	if version < target {
		s.log.Info("upgrading store schema",
			zap.String("path", s.cfg.Path),
			zap.Int("from", version),
			zap.Int("to", target),
		)
		if err := schema.Apply(conn.WithContext(ctx), version); err != nil {
			return fail(err)
		}
	}

	return conn, nil
}
