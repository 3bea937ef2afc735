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

package controllers

import (
	"net/http"

	"github.com/l3montree-dev/catalog/database/models"
	"github.com/l3montree-dev/catalog/dtos"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/l3montree-dev/catalog/transformer"
	"github.com/l3montree-dev/catalog/utils"
)

type ProductController struct {
	productRepository shared.ProductRepository
	projectRepository shared.ProjectRepository
	productService    shared.ProductService
	logoService       shared.LogoService
}

func NewProductController(productRepository shared.ProductRepository, projectRepository shared.ProjectRepository, productService shared.ProductService, logoService shared.LogoService) *ProductController {
	return &ProductController{
		productRepository: productRepository,
		projectRepository: projectRepository,
		productService:    productService,
		logoService:       logoService,
	}
}

func (c *ProductController) toDTO(product models.Product) dtos.ProductDTO {
	return transformer.ProductModelToDTO(product, c.logoService.URL)
}

func (c *ProductController) read(ctx shared.Context) (models.Product, error) {
	id, err := pathID(ctx, "Product")
	if err != nil {
		return models.Product{}, err
	}
	product, err := c.productRepository.Read(id)
	if err != nil {
		return models.Product{}, shared.NotFoundError(err, "Product")
	}
	return product, nil
}

func (c *ProductController) respond(ctx shared.Context, code int, id uint) error {
	product, err := c.productRepository.ReadWithRelations(id)
	if err != nil {
		return shared.NotFoundError(err, "Product")
	}
	return ctx.JSON(code, c.toDTO(product))
}

// @Summary List products
// @Param status query int false "Product status id"
// @Param search query string false "Case insensitive part of the name"
// @Success 200 {array} dtos.ProductDTO
// @Router /products [get]
func (c *ProductController) List(ctx shared.Context) error {
	statusID, err := queryID(ctx, "status")
	if err != nil {
		return err
	}
	products, err := c.productRepository.FindByFilter(shared.ProductFilter{
		StatusID: statusID,
		Search:   ctx.QueryParam("search"),
	})
	if err != nil {
		return shared.ToHTTPError(err, "could not list products")
	}
	return ctx.JSON(http.StatusOK, utils.Map(products, c.toDTO))
}

// @Summary Create product
// @Param body body dtos.ProductCreateRequest true "Request body"
// @Success 201 {object} dtos.ProductDTO
// @Router /products [post]
func (c *ProductController) Create(ctx shared.Context) error {
	var req dtos.ProductCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	product, relations := transformer.ProductCreateRequestToModel(req)
	if err := c.productService.Create(ctx.Request().Context(), &product, relations); err != nil {
		return err
	}
	return c.respond(ctx, http.StatusCreated, product.ID)
}

func (c *ProductController) Read(ctx shared.Context) error {
	id, err := pathID(ctx, "Product")
	if err != nil {
		return err
	}
	return c.respond(ctx, http.StatusOK, id)
}

func (c *ProductController) Update(ctx shared.Context) error {
	product, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.ProductCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	relations := transformer.ApplyProductCreateRequest(req, &product)
	if err := c.productService.Update(ctx.Request().Context(), &product, relations); err != nil {
		return err
	}
	return c.respond(ctx, http.StatusOK, product.ID)
}

func (c *ProductController) Patch(ctx shared.Context) error {
	product, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.ProductPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	relations := transformer.ApplyProductPatchRequest(req, &product)
	if err := c.productService.Update(ctx.Request().Context(), &product, relations); err != nil {
		return err
	}
	return c.respond(ctx, http.StatusOK, product.ID)
}

// @Summary Delete product
// @Description Deletes the product together with its projects, their stages and role assignments.
// @Success 204
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx shared.Context) error {
	product, err := c.read(ctx)
	if err != nil {
		return err
	}
	projects, err := c.projectRepository.FindByFilter(shared.ProjectFilter{ProductID: &product.ID})
	if err != nil {
		return shared.ToHTTPError(err, "could not list projects of product")
	}

	if err := c.productRepository.Delete(nil, product.ID); err != nil {
		return shared.ToHTTPError(err, "could not delete product")
	}

	c.logoService.Discard(ctx.Request().Context(), product.Logo)
	for _, project := range projects {
		c.logoService.Discard(ctx.Request().Context(), project.Logo)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *ProductController) listUsers(ctx shared.Context, association string) error {
	product, err := c.read(ctx)
	if err != nil {
		return err
	}
	users, err := c.productRepository.ListUsers(product.ID, association)
	if err != nil {
		return shared.ToHTTPError(err, "could not list users of product")
	}
	return ctx.JSON(http.StatusOK, utils.Map(users, transformer.UserModelToSummaryDTO))
}

func (c *ProductController) addUser(ctx shared.Context, association string, relation string) error {
	product, err := c.read(ctx)
	if err != nil {
		return err
	}
	userID, err := userIDFromRequest(ctx)
	if err != nil {
		return err
	}
	user, err := c.productService.AddUser(ctx.Request().Context(), product.ID, association, userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, addedMessage(user.Username, relation))
}

// @Summary List product owners
// @Success 200 {array} dtos.UserSummaryDTO
// @Router /products/{id}/owners [get]
func (c *ProductController) Owners(ctx shared.Context) error {
	return c.listUsers(ctx, models.AssociationOwners)
}

// @Summary Add product owner
// @Param body body dtos.AddUserRequest true "Request body"
// @Success 200 {object} dtos.MessageResponse
// @Router /products/{id}/owners [post]
func (c *ProductController) AddOwner(ctx shared.Context) error {
	return c.addUser(ctx, models.AssociationOwners, "owner")
}

func (c *ProductController) Curators(ctx shared.Context) error {
	return c.listUsers(ctx, models.AssociationCurators)
}

func (c *ProductController) AddCurator(ctx shared.Context) error {
	return c.addUser(ctx, models.AssociationCurators, "curator")
}

func (c *ProductController) Projects(ctx shared.Context) error {
	product, err := c.read(ctx)
	if err != nil {
		return err
	}
	projects, err := c.projectRepository.FindByFilter(shared.ProjectFilter{ProductID: &product.ID})
	if err != nil {
		return shared.ToHTTPError(err, "could not list projects of product")
	}
	return ctx.JSON(http.StatusOK, utils.Map(projects, func(p models.Project) dtos.ProjectDTO {
		return transformer.ProjectModelToDTO(p, c.logoService.URL)
	}))
}

func (c *ProductController) UploadLogo(ctx shared.Context) error {
	product, err := c.read(ctx)
	if err != nil {
		return err
	}
	data, err := readLogo(ctx)
	if err != nil {
		return err
	}
	return replaceLogo(ctx, c.logoService, &product, data, func(key *string) error {
		return c.productRepository.UpdateLogo(nil, product.ID, key)
	})
}

func (c *ProductController) DeleteLogo(ctx shared.Context) error {
	product, err := c.read(ctx)
	if err != nil {
		return err
	}
	return removeLogo(ctx, c.logoService, &product, func(key *string) error {
		return c.productRepository.UpdateLogo(nil, product.ID, key)
	})
}
