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

package router

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/catalog/cmd/catalog/api"
	"github.com/l3montree-dev/catalog/config"
	"github.com/l3montree-dev/catalog/database"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv api.Server, cfg config.Config, db shared.DB, pool *pgxpool.Pool) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/info/", info(cfg.Database, db, pool))
	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", health(db))

	return APIV1Router{Group: apiV1Router}
}

func health(db shared.DB) echo.HandlerFunc {
	return func(ctx shared.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.PingContext(ctx.Request().Context()); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	}
}

func info(poolCfg database.PoolConfig, db shared.DB, pool *pgxpool.Pool) echo.HandlerFunc {
	return func(ctx shared.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Build: BuildInfo{
				Version:   config.Version,
				Commit:    config.Commit,
				Branch:    config.Branch,
				BuildDate: config.BuildDate,
			},
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
				Mem: MemStats{
					Alloc:      mem.Alloc,
					TotalAlloc: mem.TotalAlloc,
					Sys:        mem.Sys,
					HeapAlloc:  mem.HeapAlloc,
				},
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
			},
		}
		if host, _ := os.Hostname(); host != "" {
			resp.Process.Hostname = host
		}

		poolInfo := PoolInfo{
			DBName:          poolCfg.DBName,
			MaxOpenConns:    poolCfg.MaxOpenConns,
			ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
			ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
		}
		dbInfo := DatabaseInfo{Status: "unknown", Pool: &poolInfo}

		sqlDB, err := db.DB()
		switch {
		case err != nil:
			errMsg := "failed to get database instance"
			dbInfo.Status = "unhealthy"
			dbInfo.Error = &errMsg
		case sqlDB.PingContext(ctx.Request().Context()) != nil:
			errMsg := "database ping failed"
			dbInfo.Status = "unhealthy"
			dbInfo.Error = &errMsg
		default:
			dbInfo.Status = "healthy"
			if pool != nil {
				stats := pool.Stat()
				poolInfo.TotalConns = int(stats.TotalConns())
				poolInfo.IdleConns = int(stats.IdleConns())
				poolInfo.AcquiredConns = int(stats.AcquiredConns())
			} else {
				dbInfo.DBStats = sqlDB.Stats()
			}

			if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
				dbInfo.MigrationVersion = &ver
				dbInfo.MigrationDirty = &dirty
			} else {
				errStr := err.Error()
				dbInfo.MigrationError = &errStr
			}
		}
		resp.Database = dbInfo

		return ctx.JSON(http.StatusOK, resp)
	}
}
