package store

import (
	"context"

	"github.com/fairstand/tillpoint/internal/config"
	"github.com/fairstand/tillpoint/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("store",
	fx.Provide(provideDBConfig),
	fx.Provide(New),
	fx.Invoke(registerLifecycle),
)

func provideDBConfig(cfg config.Config) db.Config {
	return db.Config{
		Path:          cfg.DBPath,
		BusyTimeoutMS: 5000,
	}
}

func registerLifecycle(lc fx.Lifecycle, s *Store, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := s.Open(ctx); err != nil {
				return err
			}
			version, err := s.SchemaVersion(ctx)
			if err != nil {
				return err
			}
			log.Info("store ready", zap.Int("schema_version", version))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = ctx
			return s.Close()
		},
	})
}
