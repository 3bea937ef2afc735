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

type productRepository struct {
	db *gorm.DB
	*GormRepository[uint, models.Product]
}

func NewProductRepository(db *gorm.DB) *productRepository {
	return &productRepository{
		db:             db,
		GormRepository: newGormRepository[uint, models.Product](db),
	}
}

func (r *productRepository) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload(models.AssociationOwners, orderByID).
		Preload(models.AssociationCurators, orderByID).
		Preload(models.AssociationPartners, orderByID).
		Preload(models.AssociationSpheres, orderByID)
}

func (r *productRepository) ReadWithRelations(id uint) (models.Product, error) {
	var product models.Product
	err := r.preload(r.db).First(&product, "id = ?", id).Error
	return product, err
}

func (r *productRepository) FindByFilter(filter shared.ProductFilter) ([]models.Product, error) {
	query := r.preload(r.db)
	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}
	if filter.Search != "" {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, searchPattern(filter.Search))
	}

	var products []models.Product
	err := query.Order("id").Find(&products).Error
	return products, err
}

func (r *productRepository) AppendUser(tx *gorm.DB, productID uint, association string, user *models.User) error {
	product := models.Product{Model: models.Model{ID: productID}}
	return r.AppendAssociation(tx, &product, association, user)
}

func (r *productRepository) ListUsers(productID uint, association string) ([]models.User, error) {
	product := models.Product{Model: models.Model{ID: productID}}
	users := []models.User{}
	err := r.FindAssociation(&product, association, &users)
	return users, err
}

func (r *productRepository) UpdateLogo(tx *gorm.DB, id uint, logo *string) error {
	return r.UpdateColumn(tx, id, "logo", logo)
}
