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
	"log/slog"
	"net/url"
	"strings"

	"github.com/l3montree-dev/catalog/cmd/catalog/api"
	"github.com/l3montree-dev/catalog/config"
	"github.com/l3montree-dev/catalog/controllers"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type crudController interface {
	List(ctx echo.Context) error
	Create(ctx echo.Context) error
	Read(ctx echo.Context) error
	Update(ctx echo.Context) error
	Patch(ctx echo.Context) error
	Delete(ctx echo.Context) error
}

func registerCRUD(g *echo.Group, c crudController) {
	g.GET("/", c.List)
	g.POST("/", c.Create)
	g.GET("/:id/", c.Read)
	g.PUT("/:id/", c.Update)
	g.PATCH("/:id/", c.Patch)
	g.DELETE("/:id/", c.Delete)
}

// ReferenceRouter serves the lookup tables and the remaining plain CRUD resources.
type ReferenceRouter struct {
	*echo.Group
}

func NewReferenceRouter(
	apiV1Router APIV1Router,
	sphereController *controllers.SphereController,
	productStatusController *controllers.ProductStatusController,
	projectStatusController *controllers.ProjectStatusController,
	salesModelController *controllers.SalesModelController,
	roleController *controllers.RoleController,
	projectStageController *controllers.ProjectStageController,
	projectRoleController *controllers.ProjectRoleController,
	userController *controllers.UserController,
) ReferenceRouter {
	g := apiV1Router.Group

	registerCRUD(g.Group("/spheres"), sphereController)
	registerCRUD(g.Group("/product-statuses"), productStatusController)
	registerCRUD(g.Group("/project-statuses"), projectStatusController)
	registerCRUD(g.Group("/sales-models"), salesModelController)
	registerCRUD(g.Group("/roles"), roleController)

	registerCRUD(g.Group("/project-stages"), projectStageController)
	registerCRUD(g.Group("/project-roles"), projectRoleController)
	registerCRUD(g.Group("/users"), userController)

	return ReferenceRouter{Group: g}
}

const mediaContentSecurityPolicy = "default-src 'none'; style-src 'unsafe-inline'; sandbox"

// MediaRouter serves uploaded logos when they are kept on the local filesystem.
type MediaRouter struct{}

func NewMediaRouter(srv api.Server, cfg config.Config) MediaRouter {
	if cfg.LogoStorage != config.LogoStorageFilesystem {
		return MediaRouter{}
	}
	// MEDIA_URL may point to a CDN in front of this server, only its path is routed here
	mediaURL, err := url.Parse(cfg.MediaURL)
	if err != nil {
		slog.Warn("invalid MEDIA_URL, not serving media files", "err", err)
		return MediaRouter{}
	}
	prefix := "/" + strings.Trim(mediaURL.Path, "/")
	if prefix == "/" {
		slog.Warn("MEDIA_URL has no path, not serving media files")
		return MediaRouter{}
	}
	// uploaded svgs must never run scripts in the api origin
	srv.Echo.Group(prefix).Use(
		middleware.SecureWithConfig(middleware.SecureConfig{
			ContentTypeNosniff:    "nosniff",
			XFrameOptions:         "DENY",
			ContentSecurityPolicy: mediaContentSecurityPolicy,
		}),
		middleware.StaticWithConfig(middleware.StaticConfig{
			Root:   cfg.MediaRoot,
			Browse: false,
		}),
	)
	return MediaRouter{}
}
