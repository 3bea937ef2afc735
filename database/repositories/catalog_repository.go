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
	"github.com/l3montree-dev/catalog/utils"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
	*GormRepository[uint, models.User]
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db:             db,
		GormRepository: newGormRepository[uint, models.User](db),
	}
}

func (r *userRepository) FindBySearch(search string) ([]models.User, error) {
	query := r.db
	if search != "" {
		pattern := searchPattern(search)
		query = query.Where(`LOWER(username) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`, pattern, pattern)
	}
	var users []models.User
	err := query.Order("id").Find(&users).Error
	return users, err
}

type partnerRepository struct {
	db *gorm.DB
	*GormRepository[uint, models.Partner]
}

func NewPartnerRepository(db *gorm.DB) *partnerRepository {
	return &partnerRepository{
		db:             db,
		GormRepository: newGormRepository[uint, models.Partner](db),
	}
}

func (r *partnerRepository) FindBySearch(search string) ([]models.Partner, error) {
	return findByName[models.Partner](r.db, search)
}

func (r *partnerRepository) UpdateLogo(tx *gorm.DB, id uint, logo *string) error {
	return r.UpdateColumn(tx, id, "logo", logo)
}

// lookupRepository serves all reference tables sharing the lookup shape.
type lookupRepository[T utils.Tabler] struct {
	db *gorm.DB
	*GormRepository[uint, T]
}

func newLookupRepository[T utils.Tabler](db *gorm.DB) *lookupRepository[T] {
	return &lookupRepository[T]{
		db:             db,
		GormRepository: newGormRepository[uint, T](db),
	}
}

func (r *lookupRepository[T]) FindBySearch(search string) ([]T, error) {
	return findByName[T](r.db, search)
}

func NewSphereRepository(db *gorm.DB) shared.LookupRepository[models.Sphere] {
	return newLookupRepository[models.Sphere](db)
}

func NewProductStatusRepository(db *gorm.DB) shared.LookupRepository[models.ProductStatus] {
	return newLookupRepository[models.ProductStatus](db)
}

func NewProjectStatusRepository(db *gorm.DB) shared.LookupRepository[models.ProjectStatus] {
	return newLookupRepository[models.ProjectStatus](db)
}

func NewSalesModelRepository(db *gorm.DB) shared.LookupRepository[models.SalesModel] {
	return newLookupRepository[models.SalesModel](db)
}

func NewRoleRepository(db *gorm.DB) shared.LookupRepository[models.Role] {
	return newLookupRepository[models.Role](db)
}

func findByName[T utils.Tabler](db *gorm.DB, search string) ([]T, error) {
	query := db
	if search != "" {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, searchPattern(search))
	}
	var ts []T
	err := query.Order("id").Find(&ts).Error
	return ts, err
}
