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

package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/l3montree-dev/catalog/database"
	"github.com/l3montree-dev/catalog/database/models"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type projectStageService struct {
	projectStageRepository shared.ProjectStageRepository
	projectRepository      shared.ProjectRepository
}

func NewProjectStageService(projectStageRepository shared.ProjectStageRepository, projectRepository shared.ProjectRepository) *projectStageService {
	return &projectStageService{
		projectStageRepository: projectStageRepository,
		projectRepository:      projectRepository,
	}
}

func (s *projectStageService) Create(ctx context.Context, stage *models.ProjectStage) error {
	if err := checkExists(s.projectRepository.Read, stage.ProjectID, "project"); err != nil {
		return err
	}
	return shared.ToHTTPError(s.projectStageRepository.Create(nil, stage), "could not create project stage")
}

func (s *projectStageService) Update(ctx context.Context, stage *models.ProjectStage) error {
	if err := checkExists(s.projectRepository.Read, stage.ProjectID, "project"); err != nil {
		return err
	}
	return shared.ToHTTPError(s.projectStageRepository.Save(nil, stage), "could not update project stage")
}

type projectRoleService struct {
	projectRoleRepository shared.ProjectRoleRepository
	projectRepository     shared.ProjectRepository
	userRepository        shared.UserRepository
	roleRepository        shared.LookupRepository[models.Role]
}

func NewProjectRoleService(
	projectRoleRepository shared.ProjectRoleRepository,
	projectRepository shared.ProjectRepository,
	userRepository shared.UserRepository,
	roleRepository shared.LookupRepository[models.Role],
) *projectRoleService {
	return &projectRoleService{
		projectRoleRepository: projectRoleRepository,
		projectRepository:     projectRepository,
		userRepository:        userRepository,
		roleRepository:        roleRepository,
	}
}

var errDuplicateProjectRole = echo.NewHTTPError(http.StatusBadRequest, "the member already has a role in this project")

func (s *projectRoleService) check(projectRole *models.ProjectRole) error {
	if err := checkExists(s.userRepository.Read, projectRole.MemberID, "member"); err != nil {
		return err
	}
	if err := checkExists(s.roleRepository.Read, projectRole.RoleID, "role"); err != nil {
		return err
	}
	if err := checkExists(s.projectRepository.Read, projectRole.ProjectID, "project"); err != nil {
		return err
	}

	existing, err := s.projectRoleRepository.FindByMemberAndProject(projectRole.MemberID, projectRole.ProjectID)
	switch {
	case err == nil && existing.ID != projectRole.ID:
		return errDuplicateProjectRole
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusInternalServerError, "could not check project role").WithInternal(err)
	}
	return nil
}

func (s *projectRoleService) save(projectRole *models.ProjectRole, write func(shared.DB, *models.ProjectRole) error, msg string) error {
	if err := s.check(projectRole); err != nil {
		return err
	}
	err := write(nil, projectRole)
	if database.IsDuplicateKeyError(err) {
		// the unique index still guards concurrent writes
		return errDuplicateProjectRole.WithInternal(err)
	}
	return shared.ToHTTPError(err, msg)
}

// Create assigns the role. A member holds at most one role per project.
func (s *projectRoleService) Create(ctx context.Context, projectRole *models.ProjectRole) error {
	return s.save(projectRole, s.projectRoleRepository.Create, "could not create project role")
}

func (s *projectRoleService) Update(ctx context.Context, projectRole *models.ProjectRole) error {
	return s.save(projectRole, s.projectRoleRepository.Save, "could not update project role")
}
