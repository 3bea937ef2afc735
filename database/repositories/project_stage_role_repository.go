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

package repositories

import (
	"github.com/l3montree-dev/catalog/database/models"
	"gorm.io/gorm"
)

type projectStageRepository struct {
	db *gorm.DB
	*GormRepository[uint, models.ProjectStage]
}

func NewProjectStageRepository(db *gorm.DB) *projectStageRepository {
	return &projectStageRepository{
		db:             db,
		GormRepository: newGormRepository[uint, models.ProjectStage](db),
	}
}

// FindByProjectID lists stages ordered by their start date. A nil projectID
// lists the stages of all projects.
func (r *projectStageRepository) FindByProjectID(projectID *uint) ([]models.ProjectStage, error) {
	query := r.db
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	var stages []models.ProjectStage
	err := query.Order("start_date").Order("id").Find(&stages).Error
	return stages, err
}

type projectRoleRepository struct {
	db *gorm.DB
	*GormRepository[uint, models.ProjectRole]
}

func NewProjectRoleRepository(db *gorm.DB) *projectRoleRepository {
	return &projectRoleRepository{
		db:             db,
		GormRepository: newGormRepository[uint, models.ProjectRole](db),
	}
}

func (r *projectRoleRepository) ReadWithRelations(id uint) (models.ProjectRole, error) {
	var projectRole models.ProjectRole
	err := r.db.Preload("Member").Preload("Role").First(&projectRole, "id = ?", id).Error
	return projectRole, err
}

func (r *projectRoleRepository) FindByProjectID(projectID *uint) ([]models.ProjectRole, error) {
	query := r.db.Preload("Member").Preload("Role")
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	var projectRoles []models.ProjectRole
	err := query.Order("id").Find(&projectRoles).Error
	return projectRoles, err
}

func (r *projectRoleRepository) FindByMemberAndProject(memberID, projectID uint) (models.ProjectRole, error) {
	var projectRole models.ProjectRole
	err := r.db.Where("member_id = ? AND project_id = ?", memberID, projectID).First(&projectRole).Error
	return projectRole, err
}
