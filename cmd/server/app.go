package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/bizdesk/internal/auth"
	"github.com/rpggio/bizdesk/internal/config"
	"github.com/rpggio/bizdesk/internal/dashboard"
	"github.com/rpggio/bizdesk/internal/domain/catalog"
	"github.com/rpggio/bizdesk/internal/domain/client"
	"github.com/rpggio/bizdesk/internal/domain/finance"
	"github.com/rpggio/bizdesk/internal/domain/schedule"
	"github.com/rpggio/bizdesk/internal/entity"
	"github.com/rpggio/bizdesk/internal/i18n"
	"github.com/rpggio/bizdesk/internal/memory"
	"github.com/rpggio/bizdesk/internal/metrics"
	"github.com/rpggio/bizdesk/internal/sqlite"
)

// app holds the collaborators shared by every surface.
type app struct {
	dashboard  *dashboard.Dashboard
	translator *i18n.Translator
	auth       *auth.Service
	metrics    *metrics.Metrics
	db         *sqlite.DB
}

func (a *app) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// seedReport says, per kind, whether seed records were inserted.
type seedReport map[string]bool

func buildApp(ctx context.Context, cfg config.Config, logger *slog.Logger, now time.Time) (*app, seedReport, error) {
	a := &app{metrics: metrics.New()}

	var tokens auth.TokenStore = auth.NewMemoryTokenStore()
	if cfg.Store.Backend == config.BackendSQLite {
		if err := ensureParentDir(cfg.Store.Path); err != nil {
			return nil, nil, fmt.Errorf("failed to prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, nil, err
		}
		a.db = db
		tokens = sqlite.NewTokenRepository(db)
	}

	report := seedReport{}
	opts := []entity.Option{entity.WithObserver(a.metrics)}

	clients, err := newStore(ctx, a.db, client.Kind, client.Seed(), cfg.Store.Seed, report, logger, opts)
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	transactions, err := newStore(ctx, a.db, finance.Kind, finance.Seed(), cfg.Store.Seed, report, logger, opts)
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	tasks, err := newStore(ctx, a.db, schedule.Kind, schedule.Seed(now), cfg.Store.Seed, report, logger, opts)
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	items, err := newStore(ctx, a.db, catalog.Kind, catalog.Seed(), cfg.Store.Seed, report, logger, opts)
	if err != nil {
		a.Close()
		return nil, nil, err
	}

	a.dashboard = dashboard.New(dashboard.Stores{
		Clients:      clients,
		Transactions: transactions,
		Tasks:        tasks,
		Items:        items,
	}, dashboard.Options{
		Observer: a.metrics,
		Location: time.Local,
		Logger:   logger,
	})

	a.translator = i18n.NewTranslator(i18n.Locale(cfg.I18n.Locale))
	if cfg.Auth.Enabled {
		a.auth = auth.NewService(
			auth.NewBcryptVerifier(cfg.Auth.Admins), tokens, a.translator, logger,
			auth.WithDelay(cfg.Auth.LoginDelay),
			auth.WithObserver(a.metrics),
		)
	}
	return a, report, nil
}

// newStore opens the repository of one kind, seeding it when asked and
// empty.
func newStore[T entity.Record[T]](
	ctx context.Context,
	db *sqlite.DB,
	kind string,
	seed []T,
	doSeed bool,
	report seedReport,
	logger *slog.Logger,
	opts []entity.Option,
) (*entity.Service[T], error) {
	var repo entity.Repository[T]
	if db != nil {
		repo = sqlite.NewRecordRepository[T](db, kind)
	} else {
		repo = memory.NewRepository[T]()
	}

	if doSeed {
		inserted, err := entity.Seed(ctx, repo, seed)
		if err != nil {
			return nil, fmt.Errorf("seeding %s: %w", kind, err)
		}
		report[kind] = inserted
	}
	return entity.NewService[T](kind, repo, logger, opts...), nil
}
