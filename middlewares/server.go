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
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/l3montree-dev/catalog/monitoring"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const maxBodySize = "8M"

// isLogoUpload matches the logo upload routes. Their body size is limited by
// the logo handlers so that oversized logos are answered with a validation
// error instead of a 413.
func isLogoUpload(ctx echo.Context) bool {
	return ctx.Request().Method == http.MethodPut && strings.HasSuffix(ctx.Path(), "/logo/")
}

func registerMiddlewares(e *echo.Echo, allowedOrigins []string) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     allowedOrigins,
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))
	e.Use(middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		Skipper: isLogoUpload,
		Limit:   maxBodySize,
	}))

	e.Use(logger())
	e.Use(metrics())
	e.Use(recovermiddleware())

	e.HTTPErrorHandler = ErrorHandler
}

// ErrorHandler logs err and renders it as {"message": ...}.
func ErrorHandler(err error, ctx echo.Context) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).WithInternal(err)
	}

	// do the logging straight inside the error handler
	// this keeps controller methods clean
	if he.Code >= http.StatusInternalServerError {
		monitoring.Alert(fmt.Sprintf("%s %s failed", ctx.Request().Method, ctx.Request().URL.Path), err)
	} else {
		slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL, "status", he.Code)
	}

	if ctx.Response().Committed {
		return
	}

	var body any
	switch m := he.Message.(type) {
	case string:
		body = echo.Map{"message": m}
	case error:
		body = echo.Map{"message": m.Error()}
	default:
		body = m
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(he.Code)
	} else {
		err = ctx.JSON(he.Code, body)
	}
	if err != nil {
		slog.Error("could not send error response", "error", err)
	}
}

func Server(allowedOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e, allowedOrigins)
	return e
}
