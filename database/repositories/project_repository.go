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
	"github.com/l3montree-dev/catalog/shared"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	*GormRepository[uint, models.Project]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:             db,
		GormRepository: newGormRepository[uint, models.Project](db),
	}
}

func (r *projectRepository) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload(models.AssociationCurators, orderByID).
		Preload(models.AssociationMembers, orderByID).
		Preload(models.AssociationPartners, orderByID)
}

func (r *projectRepository) ReadWithRelations(id uint) (models.Project, error) {
	var project models.Project
	err := r.preload(r.db).First(&project, "id = ?", id).Error
	return project, err
}

func (r *projectRepository) FindByFilter(filter shared.ProjectFilter) ([]models.Project, error) {
	query := r.preload(r.db)
	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.Search != "" {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, searchPattern(filter.Search))
	}

	var projects []models.Project
	err := query.Order("id").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) AppendUser(tx *gorm.DB, projectID uint, association string, user *models.User) error {
	project := models.Project{Model: models.Model{ID: projectID}}
	return r.AppendAssociation(tx, &project, association, user)
}

func (r *projectRepository) ListUsers(projectID uint, association string) ([]models.User, error) {
	project := models.Project{Model: models.Model{ID: projectID}}
	users := []models.User{}
	err := r.FindAssociation(&project, association, &users)
	return users, err
}

func (r *projectRepository) UpdateLogo(tx *gorm.DB, id uint, logo *string) error {
	return r.UpdateColumn(tx, id, "logo", logo)
}
