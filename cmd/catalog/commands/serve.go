// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/catalog/cmd/catalog/api"
	"github.com/l3montree-dev/catalog/config"
	"github.com/l3montree-dev/catalog/controllers"
	"github.com/l3montree-dev/catalog/database"
	"github.com/l3montree-dev/catalog/database/repositories"
	"github.com/l3montree-dev/catalog/router"
	"github.com/l3montree-dev/catalog/services"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/l3montree-dev/catalog/storage"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.ErrorTrackingDSN != "" {
		initSentry(cfg)
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	pool, err := database.NewPgxConnPool(cfg.Database)
	if err != nil {
		return errors.Wrap(err, "failed to setup database connection")
	}
	defer pool.Close()

	db, err := database.NewGormDB(pool)
	if err != nil {
		return errors.Wrap(err, "failed to setup database connection")
	}

	if !cfg.DisableAutomigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			return errors.Wrap(err, "failed to run database migrations")
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	app := fx.New(
		fx.Supply(cfg),
		fx.Supply(pool),
		fx.Supply(db),
		fx.Provide(provideLogoStorage),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.ServiceModule,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(router.APIV1Router) {}),
		fx.Invoke(func(router.ProductRouter) {}),
		fx.Invoke(func(router.ProjectRouter) {}),
		fx.Invoke(func(router.PartnerRouter) {}),
		fx.Invoke(func(router.ReferenceRouter) {}),
		fx.Invoke(func(router.MediaRouter) {}),
	)
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

func provideLogoStorage(cfg config.Config) (shared.LogoStorage, error) {
	switch cfg.LogoStorage {
	case config.LogoStorageS3:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s, err := storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return nil, errors.Wrap(err, "could not create s3 logo storage")
		}
		slog.Info("storing logos in s3", "bucket", cfg.S3.Bucket)
		return s, nil
	default:
		s, err := storage.NewFilesystemStorage(cfg.MediaRoot, cfg.MediaURL)
		if err != nil {
			return nil, errors.Wrap(err, "could not create filesystem logo storage")
		}
		slog.Info("storing logos on the filesystem", "root", s.Root())
		return s, nil
	}
}

func initSentry(cfg config.Config) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.ErrorTrackingDSN,
		Environment: cfg.Environment,
		Release:     release,

		Debug:            cfg.Environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
