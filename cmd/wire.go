package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	kafkaevents "github.com/bnema/nextlevel-elevator/internal/adapters/events/kafka"
	csvexport "github.com/bnema/nextlevel-elevator/internal/adapters/export/csv"
	statusadapter "github.com/bnema/nextlevel-elevator/internal/adapters/render/status"
	"github.com/bnema/nextlevel-elevator/internal/adapters/storage/memory"
	"github.com/bnema/nextlevel-elevator/internal/adapters/storage/sqlite"
	tomlstore "github.com/bnema/nextlevel-elevator/internal/adapters/storage/toml"
	"github.com/bnema/nextlevel-elevator/internal/application"
	"github.com/bnema/nextlevel-elevator/internal/config"
	"github.com/bnema/nextlevel-elevator/internal/logging"
	"github.com/bnema/nextlevel-elevator/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg            config.Config
	logger         *slog.Logger
	store          ports.Store
	publisher      *kafkaevents.Publisher
	service        *application.Service
	statusRenderer func([]application.ElevatorStatus, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func (a *app) wire(ctx context.Context, configPath string, logOut io.Writer) error {
	cfg, err := config.Load(viper.New(), configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	loc, err := cfg.History.Location()
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("wire %s store: %w", cfg.Storage.Driver, err)
	}

	publisher, err := kafkaevents.NewPublisher(kafkaevents.Config{
		Enabled: cfg.Kafka.Enabled,
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	}, logger)
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("wire history publisher: %w", err)
	}

	service, err := application.NewServiceChecked(store, application.Options{
		Publisher: publisher,
		Clock:     ports.SystemClock{},
		Location:  loc,
		Encoders: map[string]ports.DatasetEncoder{
			csvexport.Format: csvexport.NewEncoder(),
		},
		Logger: logger,
	})
	if err != nil {
		_ = publisher.Close()
		_ = store.Close()
		return fmt.Errorf("wire service: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.store = store
	a.publisher = publisher
	a.service = service
	a.statusRenderer = statusadapter.Render
	a.now = time.Now

	return nil
}

func openStore(ctx context.Context, cfg config.StorageConfig) (ports.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverTOML:
		store, err := tomlstore.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Close drains the publisher before releasing the store. Safe on an unwired app.
func (a *app) Close() error {
	var errs []error
	if a.publisher != nil {
		errs = append(errs, a.publisher.Close())
		a.publisher = nil
	}
	if a.store != nil {
		errs = append(errs, a.store.Close())
		a.store = nil
	}

	return errors.Join(errs...)
}
