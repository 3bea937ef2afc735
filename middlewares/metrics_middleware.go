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

package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/l3montree-dev/catalog/monitoring"
	"github.com/labstack/echo/v4"
)

// metrics records request counts and durations by route template, so that
// ids in the path do not create new series.
func metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			now := time.Now()
			err := next(ctx)

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			status := ctx.Response().Status
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			} else if err != nil {
				status = 500
			}

			monitoring.HTTPRequestsTotal.WithLabelValues(ctx.Request().Method, route, strconv.Itoa(status)).Inc()
			monitoring.HTTPRequestDuration.WithLabelValues(ctx.Request().Method, route).Observe(time.Since(now).Seconds())
			return err
		}
	}
}
