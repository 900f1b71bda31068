package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tscat/internal/adapters/cli"
	"tscat/internal/application"
	"tscat/internal/config"
	"tscat/internal/domain/entities"
	"tscat/internal/infrastructure/database"
	"tscat/internal/infrastructure/i18n"
	"tscat/internal/infrastructure/logging"
	"tscat/internal/infrastructure/tsfile"
	"tscat/internal/ports/input"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tscat: %v\n", err)
		os.Exit(cli.ExitUsage)
	}

	logger := logging.New(os.Stderr, cfg.Level, cfg.LogNoColor)
	slog.SetDefault(logger)

	codec := tsfile.Codec{}
	exporter := i18n.Exporter{}

	deps := cli.Deps{
		Config:   cfg,
		Catalogs: application.NewCatalogService(codec, exporter, nil, logger),
		T:        i18n.NewTranslator(cfg.UILocale, logger),
		NewTranslator: func(cats []*entities.Catalog, locale string) input.TranslateUseCase {
			return application.NewTranslator(cats, locale, logger)
		},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}

	if cfg.DatabaseURL != "" {
		deps.OpenStore = func(ctx context.Context) (input.CatalogUseCase, func(), error) {
			pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
			if err != nil {
				return nil, nil, fmt.Errorf("connect database: %w", err)
			}
			repo := database.NewCatalogRepository(pool)
			return application.NewCatalogService(codec, exporter, repo, logger), pool.Close, nil
		}
		deps.Migrate = func(context.Context) error {
			return database.RunMigrations(cfg.DatabaseURL, logger)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.NewApp(deps).Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
