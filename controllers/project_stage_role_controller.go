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

type ProjectStageController struct {
	projectStageRepository shared.ProjectStageRepository
	projectStageService    shared.ProjectStageService
}

func NewProjectStageController(projectStageRepository shared.ProjectStageRepository, projectStageService shared.ProjectStageService) *ProjectStageController {
	return &ProjectStageController{
		projectStageRepository: projectStageRepository,
		projectStageService:    projectStageService,
	}
}

func (c *ProjectStageController) read(ctx shared.Context) (models.ProjectStage, error) {
	id, err := pathID(ctx, "Project stage")
	if err != nil {
		return models.ProjectStage{}, err
	}
	stage, err := c.projectStageRepository.Read(id)
	if err != nil {
		return models.ProjectStage{}, shared.NotFoundError(err, "Project stage")
	}
	return stage, nil
}

// @Summary List project stages
// @Param project query int false "Only stages of this project"
// @Success 200 {array} dtos.ProjectStageDTO
// @Router /project-stages [get]
func (c *ProjectStageController) List(ctx shared.Context) error {
	projectID, err := queryID(ctx, "project")
	if err != nil {
		return err
	}
	stages, err := c.projectStageRepository.FindByProjectID(projectID)
	if err != nil {
		return shared.ToHTTPError(err, "could not list project stages")
	}
	return ctx.JSON(http.StatusOK, utils.Map(stages, transformer.ProjectStageModelToDTO))
}

func (c *ProjectStageController) Create(ctx shared.Context) error {
	var req dtos.ProjectStageCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	stage, err := transformer.ProjectStageCreateRequestToModel(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	if err := c.projectStageService.Create(ctx.Request().Context(), &stage); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, transformer.ProjectStageModelToDTO(stage))
}

func (c *ProjectStageController) Read(ctx shared.Context) error {
	stage, err := c.read(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, transformer.ProjectStageModelToDTO(stage))
}

func (c *ProjectStageController) Update(ctx shared.Context) error {
	stage, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.ProjectStageCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if err := transformer.ApplyProjectStageCreateRequest(req, &stage); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	if err := c.projectStageService.Update(ctx.Request().Context(), &stage); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, transformer.ProjectStageModelToDTO(stage))
}

func (c *ProjectStageController) Patch(ctx shared.Context) error {
	stage, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.ProjectStagePatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if err := transformer.ApplyProjectStagePatchRequest(req, &stage); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	if err := c.projectStageService.Update(ctx.Request().Context(), &stage); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, transformer.ProjectStageModelToDTO(stage))
}

func (c *ProjectStageController) Delete(ctx shared.Context) error {
	id, err := pathID(ctx, "Project stage")
	if err != nil {
		return err
	}
	if err := c.projectStageRepository.Delete(nil, id); err != nil {
		return shared.NotFoundError(err, "Project stage")
	}
	return ctx.NoContent(http.StatusNoContent)
}

type ProjectRoleController struct {
	projectRoleRepository shared.ProjectRoleRepository
	projectRoleService    shared.ProjectRoleService
}

func NewProjectRoleController(projectRoleRepository shared.ProjectRoleRepository, projectRoleService shared.ProjectRoleService) *ProjectRoleController {
	return &ProjectRoleController{
		projectRoleRepository: projectRoleRepository,
		projectRoleService:    projectRoleService,
	}
}

func (c *ProjectRoleController) read(ctx shared.Context) (models.ProjectRole, error) {
	id, err := pathID(ctx, "Project role")
	if err != nil {
		return models.ProjectRole{}, err
	}
	projectRole, err := c.projectRoleRepository.Read(id)
	if err != nil {
		return models.ProjectRole{}, shared.NotFoundError(err, "Project role")
	}
	return projectRole, nil
}

func (c *ProjectRoleController) respond(ctx shared.Context, code int, id uint) error {
	projectRole, err := c.projectRoleRepository.ReadWithRelations(id)
	if err != nil {
		return shared.NotFoundError(err, "Project role")
	}
	return ctx.JSON(code, transformer.ProjectRoleModelToDTO(projectRole))
}

// @Summary List project roles
// @Param project_id query int false "Only roles within this project"
// @Success 200 {array} dtos.ProjectRoleDTO
// @Router /project-roles [get]
func (c *ProjectRoleController) List(ctx shared.Context) error {
	projectID, err := queryID(ctx, "project_id")
	if err != nil {
		return err
	}
	projectRoles, err := c.projectRoleRepository.FindByProjectID(projectID)
	if err != nil {
		return shared.ToHTTPError(err, "could not list project roles")
	}
	return ctx.JSON(http.StatusOK, utils.Map(projectRoles, transformer.ProjectRoleModelToDTO))
}

func (c *ProjectRoleController) Create(ctx shared.Context) error {
	var req dtos.ProjectRoleCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	projectRole := transformer.ProjectRoleCreateRequestToModel(req)
	if err := c.projectRoleService.Create(ctx.Request().Context(), &projectRole); err != nil {
		return err
	}
	return c.respond(ctx, http.StatusCreated, projectRole.ID)
}

func (c *ProjectRoleController) Read(ctx shared.Context) error {
	id, err := pathID(ctx, "Project role")
	if err != nil {
		return err
	}
	return c.respond(ctx, http.StatusOK, id)
}

func (c *ProjectRoleController) Update(ctx shared.Context) error {
	projectRole, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.ProjectRoleCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	projectRole.MemberID = req.Member
	projectRole.RoleID = req.Role
	projectRole.ProjectID = req.Project
	if err := c.projectRoleService.Update(ctx.Request().Context(), &projectRole); err != nil {
		return err
	}
	return c.respond(ctx, http.StatusOK, projectRole.ID)
}

func (c *ProjectRoleController) Patch(ctx shared.Context) error {
	projectRole, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.ProjectRolePatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	transformer.ApplyProjectRolePatchRequest(req, &projectRole)
	if err := c.projectRoleService.Update(ctx.Request().Context(), &projectRole); err != nil {
		return err
	}
	return c.respond(ctx, http.StatusOK, projectRole.ID)
}

func (c *ProjectRoleController) Delete(ctx shared.Context) error {
	id, err := pathID(ctx, "Project role")
	if err != nil {
		return err
	}
	if err := c.projectRoleRepository.Delete(nil, id); err != nil {
		return shared.NotFoundError(err, "Project role")
	}
	return ctx.NoContent(http.StatusNoContent)
}
