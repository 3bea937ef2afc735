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
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	projectRepository      shared.ProjectRepository
	projectStageRepository shared.ProjectStageRepository
	projectRoleRepository  shared.ProjectRoleRepository
	projectService         shared.ProjectService
	logoService            shared.LogoService
}

func NewProjectController(
	projectRepository shared.ProjectRepository,
	projectStageRepository shared.ProjectStageRepository,
	projectRoleRepository shared.ProjectRoleRepository,
	projectService shared.ProjectService,
	logoService shared.LogoService,
) *ProjectController {
	return &ProjectController{
		projectRepository:      projectRepository,
		projectStageRepository: projectStageRepository,
		projectRoleRepository:  projectRoleRepository,
		projectService:         projectService,
		logoService:            logoService,
	}
}

func (c *ProjectController) toDTO(project models.Project) dtos.ProjectDTO {
	return transformer.ProjectModelToDTO(project, c.logoService.URL)
}

func (c *ProjectController) read(ctx shared.Context) (models.Project, error) {
	id, err := pathID(ctx, "Project")
	if err != nil {
		return models.Project{}, err
	}
	project, err := c.projectRepository.Read(id)
	if err != nil {
		return models.Project{}, shared.NotFoundError(err, "Project")
	}
	return project, nil
}

func (c *ProjectController) respond(ctx shared.Context, code int, id uint) error {
	project, err := c.projectRepository.ReadWithRelations(id)
	if err != nil {
		return shared.NotFoundError(err, "Project")
	}
	return ctx.JSON(code, c.toDTO(project))
}

// @Summary List projects
// @Param status query int false "Project status id"
// @Param product_id query int false "Only projects of this product"
// @Param search query string false "Case insensitive part of the name"
// @Success 200 {array} dtos.ProjectDTO
// @Router /projects [get]
func (c *ProjectController) List(ctx shared.Context) error {
	statusID, err := queryID(ctx, "status")
	if err != nil {
		return err
	}
	productID, err := queryID(ctx, "product_id")
	if err != nil {
		return err
	}
	projects, err := c.projectRepository.FindByFilter(shared.ProjectFilter{
		StatusID:  statusID,
		ProductID: productID,
		Search:    ctx.QueryParam("search"),
	})
	if err != nil {
		return shared.ToHTTPError(err, "could not list projects")
	}
	return ctx.JSON(http.StatusOK, utils.Map(projects, c.toDTO))
}

func (c *ProjectController) Create(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project, relations, err := transformer.ProjectCreateRequestToModel(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	if err := c.projectService.Create(ctx.Request().Context(), &project, relations); err != nil {
		return err
	}
	return c.respond(ctx, http.StatusCreated, project.ID)
}

func (c *ProjectController) Read(ctx shared.Context) error {
	id, err := pathID(ctx, "Project")
	if err != nil {
		return err
	}
	return c.respond(ctx, http.StatusOK, id)
}

func (c *ProjectController) Update(ctx shared.Context) error {
	project, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.ProjectCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	relations, err := transformer.ApplyProjectCreateRequest(req, &project)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	if err := c.projectService.Update(ctx.Request().Context(), &project, relations); err != nil {
		return err
	}
	return c.respond(ctx, http.StatusOK, project.ID)
}

func (c *ProjectController) Patch(ctx shared.Context) error {
	project, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.ProjectPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	relations, err := transformer.ApplyProjectPatchRequest(req, &project)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	if err := c.projectService.Update(ctx.Request().Context(), &project, relations); err != nil {
		return err
	}
	return c.respond(ctx, http.StatusOK, project.ID)
}

func (c *ProjectController) Delete(ctx shared.Context) error {
	project, err := c.read(ctx)
	if err != nil {
		return err
	}
	if err := c.projectRepository.Delete(nil, project.ID); err != nil {
		return shared.ToHTTPError(err, "could not delete project")
	}
	c.logoService.Discard(ctx.Request().Context(), project.Logo)
	return ctx.NoContent(http.StatusNoContent)
}

func (c *ProjectController) listUsers(ctx shared.Context, association string) error {
	project, err := c.read(ctx)
	if err != nil {
		return err
	}
	users, err := c.projectRepository.ListUsers(project.ID, association)
	if err != nil {
		return shared.ToHTTPError(err, "could not list users of project")
	}
	return ctx.JSON(http.StatusOK, utils.Map(users, transformer.UserModelToSummaryDTO))
}

func (c *ProjectController) addUser(ctx shared.Context, association string, relation string) error {
	project, err := c.read(ctx)
	if err != nil {
		return err
	}
	userID, err := userIDFromRequest(ctx)
	if err != nil {
		return err
	}
	user, err := c.projectService.AddUser(ctx.Request().Context(), project.ID, association, userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, addedMessage(user.Username, relation))
}

func (c *ProjectController) Curators(ctx shared.Context) error {
	return c.listUsers(ctx, models.AssociationCurators)
}

func (c *ProjectController) AddCurator(ctx shared.Context) error {
	return c.addUser(ctx, models.AssociationCurators, "curator")
}

func (c *ProjectController) Members(ctx shared.Context) error {
	return c.listUsers(ctx, models.AssociationMembers)
}

func (c *ProjectController) AddMember(ctx shared.Context) error {
	return c.addUser(ctx, models.AssociationMembers, "member")
}

// @Summary List project stages
// @Success 200 {array} dtos.ProjectStageDTO
// @Router /projects/{id}/stages [get]
func (c *ProjectController) Stages(ctx shared.Context) error {
	project, err := c.read(ctx)
	if err != nil {
		return err
	}
	stages, err := c.projectStageRepository.FindByProjectID(&project.ID)
	if err != nil {
		return shared.ToHTTPError(err, "could not list project stages")
	}
	return ctx.JSON(http.StatusOK, utils.Map(stages, transformer.ProjectStageModelToDTO))
}

// @Summary List member roles of the project
// @Success 200 {array} dtos.ProjectRoleDTO
// @Router /projects/{id}/roles [get]
func (c *ProjectController) Roles(ctx shared.Context) error {
	project, err := c.read(ctx)
	if err != nil {
		return err
	}
	projectRoles, err := c.projectRoleRepository.FindByProjectID(&project.ID)
	if err != nil {
		return shared.ToHTTPError(err, "could not list project roles")
	}
	return ctx.JSON(http.StatusOK, utils.Map(projectRoles, transformer.ProjectRoleModelToDTO))
}

func (c *ProjectController) UploadLogo(ctx shared.Context) error {
	project, err := c.read(ctx)
	if err != nil {
		return err
	}
	data, err := readLogo(ctx)
	if err != nil {
		return err
	}
	return replaceLogo(ctx, c.logoService, &project, data, func(key *string) error {
		return c.projectRepository.UpdateLogo(nil, project.ID, key)
	})
}

func (c *ProjectController) DeleteLogo(ctx shared.Context) error {
	project, err := c.read(ctx)
	if err != nil {
		return err
	}
	return removeLogo(ctx, c.logoService, &project, func(key *string) error {
		return c.projectRepository.UpdateLogo(nil, project.ID, key)
	})
}
