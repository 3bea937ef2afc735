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
	"github.com/l3montree-dev/catalog/controllers"
	"github.com/labstack/echo/v4"
)

type ProductRouter struct {
	*echo.Group
}

func NewProductRouter(apiV1Router APIV1Router, productController *controllers.ProductController) ProductRouter {
	productRouter := apiV1Router.Group.Group("/products")
	productRouter.GET("/", productController.List)
	productRouter.POST("/", productController.Create)

	productScoped := productRouter.Group("/:id")
	productScoped.GET("/", productController.Read)
	productScoped.PUT("/", productController.Update)
	productScoped.PATCH("/", productController.Patch)
	productScoped.DELETE("/", productController.Delete)

	productScoped.GET("/owners/", productController.Owners)
	productScoped.POST("/owners/", productController.AddOwner)
	productScoped.GET("/curators/", productController.Curators)
	productScoped.POST("/curators/", productController.AddCurator)
	productScoped.GET("/projects/", productController.Projects)

	productScoped.PUT("/logo/", productController.UploadLogo)
	productScoped.DELETE("/logo/", productController.DeleteLogo)

	return ProductRouter{Group: productRouter}
}

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(apiV1Router APIV1Router, projectController *controllers.ProjectController) ProjectRouter {
	projectRouter := apiV1Router.Group.Group("/projects")
	projectRouter.GET("/", projectController.List)
	projectRouter.POST("/", projectController.Create)

	projectScoped := projectRouter.Group("/:id")
	projectScoped.GET("/", projectController.Read)
	projectScoped.PUT("/", projectController.Update)
	projectScoped.PATCH("/", projectController.Patch)
	projectScoped.DELETE("/", projectController.Delete)

	projectScoped.GET("/curators/", projectController.Curators)
	projectScoped.POST("/curators/", projectController.AddCurator)
	projectScoped.GET("/members/", projectController.Members)
	projectScoped.POST("/members/", projectController.AddMember)
	projectScoped.GET("/stages/", projectController.Stages)
	projectScoped.GET("/roles/", projectController.Roles)

	projectScoped.PUT("/logo/", projectController.UploadLogo)
	projectScoped.DELETE("/logo/", projectController.DeleteLogo)

	return ProjectRouter{Group: projectRouter}
}

type PartnerRouter struct {
	*echo.Group
}

func NewPartnerRouter(apiV1Router APIV1Router, partnerController *controllers.PartnerController) PartnerRouter {
	partnerRouter := apiV1Router.Group.Group("/partners")
	registerCRUD(partnerRouter, partnerController)
	partnerRouter.PUT("/:id/logo/", partnerController.UploadLogo)
	partnerRouter.DELETE("/:id/logo/", partnerController.DeleteLogo)

	return PartnerRouter{Group: partnerRouter}
}
