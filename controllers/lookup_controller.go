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

type lookupPtr[T any] interface {
	*T
	GetLookup() *models.Lookup
}

// LookupController serves the CRUD endpoints of a reference table like
// spheres or roles.
type LookupController[T utils.Tabler, P lookupPtr[T]] struct {
	repository shared.LookupRepository[T]
	entity     string
}

func newLookupController[T utils.Tabler, P lookupPtr[T]](repository shared.LookupRepository[T], entity string) *LookupController[T, P] {
	return &LookupController[T, P]{
		repository: repository,
		entity:     entity,
	}
}

type SphereController = LookupController[models.Sphere, *models.Sphere]
type ProductStatusController = LookupController[models.ProductStatus, *models.ProductStatus]
type ProjectStatusController = LookupController[models.ProjectStatus, *models.ProjectStatus]
type SalesModelController = LookupController[models.SalesModel, *models.SalesModel]
type RoleController = LookupController[models.Role, *models.Role]

func NewSphereController(repository shared.LookupRepository[models.Sphere]) *SphereController {
	return newLookupController[models.Sphere, *models.Sphere](repository, "Sphere")
}

func NewProductStatusController(repository shared.LookupRepository[models.ProductStatus]) *ProductStatusController {
	return newLookupController[models.ProductStatus, *models.ProductStatus](repository, "Product status")
}

func NewProjectStatusController(repository shared.LookupRepository[models.ProjectStatus]) *ProjectStatusController {
	return newLookupController[models.ProjectStatus, *models.ProjectStatus](repository, "Project status")
}

func NewSalesModelController(repository shared.LookupRepository[models.SalesModel]) *SalesModelController {
	return newLookupController[models.SalesModel, *models.SalesModel](repository, "Sales model")
}

func NewRoleController(repository shared.LookupRepository[models.Role]) *RoleController {
	return newLookupController[models.Role, *models.Role](repository, "Role")
}

func (c *LookupController[T, P]) toDTO(t T) dtos.LookupDTO {
	return transformer.LookupModelToDTO(P(&t).GetLookup())
}

func (c *LookupController[T, P]) List(ctx shared.Context) error {
	ts, err := c.repository.FindBySearch(ctx.QueryParam("search"))
	if err != nil {
		return shared.ToHTTPError(err, "could not list entries")
	}
	return ctx.JSON(http.StatusOK, utils.Map(ts, c.toDTO))
}

func (c *LookupController[T, P]) Create(ctx shared.Context) error {
	var req dtos.LookupCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	var t T
	transformer.ApplyLookupCreateRequest(req, P(&t).GetLookup())
	if err := c.repository.Create(nil, &t); err != nil {
		return shared.ToHTTPError(err, "could not create entry")
	}
	return ctx.JSON(http.StatusCreated, c.toDTO(t))
}

func (c *LookupController[T, P]) read(ctx shared.Context) (T, error) {
	var t T
	id, err := pathID(ctx, c.entity)
	if err != nil {
		return t, err
	}
	t, err = c.repository.Read(id)
	if err != nil {
		return t, shared.NotFoundError(err, c.entity)
	}
	return t, nil
}

func (c *LookupController[T, P]) Read(ctx shared.Context) error {
	t, err := c.read(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c.toDTO(t))
}

func (c *LookupController[T, P]) Update(ctx shared.Context) error {
	t, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.LookupCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	transformer.ApplyLookupCreateRequest(req, P(&t).GetLookup())
	if err := c.repository.Save(nil, &t); err != nil {
		return shared.ToHTTPError(err, "could not update entry")
	}
	return ctx.JSON(http.StatusOK, c.toDTO(t))
}

func (c *LookupController[T, P]) Patch(ctx shared.Context) error {
	t, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.LookupPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	transformer.ApplyLookupPatchRequest(req, P(&t).GetLookup())
	if err := c.repository.Save(nil, &t); err != nil {
		return shared.ToHTTPError(err, "could not update entry")
	}
	return ctx.JSON(http.StatusOK, c.toDTO(t))
}

func (c *LookupController[T, P]) Delete(ctx shared.Context) error {
	id, err := pathID(ctx, c.entity)
	if err != nil {
		return err
	}
	if err := c.repository.Delete(nil, id); err != nil {
		return shared.NotFoundError(err, c.entity)
	}
	return ctx.NoContent(http.StatusNoContent)
}
