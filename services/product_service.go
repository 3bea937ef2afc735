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
	"log/slog"

	"github.com/l3montree-dev/catalog/database/models"
	"github.com/l3montree-dev/catalog/shared"
)

type productService struct {
	productRepository       shared.ProductRepository
	userRepository          shared.UserRepository
	partnerRepository       shared.PartnerRepository
	sphereRepository        shared.LookupRepository[models.Sphere]
	productStatusRepository shared.LookupRepository[models.ProductStatus]
	salesModelRepository    shared.LookupRepository[models.SalesModel]
}

func NewProductService(
	productRepository shared.ProductRepository,
	userRepository shared.UserRepository,
	partnerRepository shared.PartnerRepository,
	sphereRepository shared.LookupRepository[models.Sphere],
	productStatusRepository shared.LookupRepository[models.ProductStatus],
	salesModelRepository shared.LookupRepository[models.SalesModel],
) *productService {
	return &productService{
		productRepository:       productRepository,
		userRepository:          userRepository,
		partnerRepository:       partnerRepository,
		sphereRepository:        sphereRepository,
		productStatusRepository: productStatusRepository,
		salesModelRepository:    salesModelRepository,
	}
}

func (s *productService) checkReferences(product *models.Product) error {
	if err := checkOptionalExists(s.productStatusRepository.Read, product.StatusID, "status"); err != nil {
		return err
	}
	return checkOptionalExists(s.salesModelRepository.Read, product.SalesModelID, "sales_model")
}

type resolvedProductRelations struct {
	owners   []models.User
	curators []models.User
	partners []models.Partner
	spheres  []models.Sphere
}

func (s *productService) resolveRelations(relations shared.ProductRelations) (resolvedProductRelations, error) {
	var resolved resolvedProductRelations
	var err error
	if relations.OwnerIDs != nil {
		if resolved.owners, err = resolveAll(s.userRepository.List, relations.OwnerIDs, "owner_ids"); err != nil {
			return resolved, err
		}
	}
	if relations.CuratorIDs != nil {
		if resolved.curators, err = resolveAll(s.userRepository.List, relations.CuratorIDs, "curator_ids"); err != nil {
			return resolved, err
		}
	}
	if relations.PartnerIDs != nil {
		if resolved.partners, err = resolveAll(s.partnerRepository.List, relations.PartnerIDs, "partner_ids"); err != nil {
			return resolved, err
		}
	}
	if relations.SphereIDs != nil {
		if resolved.spheres, err = resolveAll(s.sphereRepository.List, relations.SphereIDs, "sphere_ids"); err != nil {
			return resolved, err
		}
	}
	return resolved, nil
}

func (s *productService) replaceRelations(tx shared.DB, product *models.Product, resolved resolvedProductRelations) error {
	if resolved.owners != nil {
		if err := s.productRepository.ReplaceAssociation(tx, product, models.AssociationOwners, resolved.owners); err != nil {
			return err
		}
	}
	if resolved.curators != nil {
		if err := s.productRepository.ReplaceAssociation(tx, product, models.AssociationCurators, resolved.curators); err != nil {
			return err
		}
	}
	if resolved.partners != nil {
		if err := s.productRepository.ReplaceAssociation(tx, product, models.AssociationPartners, resolved.partners); err != nil {
			return err
		}
	}
	if resolved.spheres != nil {
		if err := s.productRepository.ReplaceAssociation(tx, product, models.AssociationSpheres, resolved.spheres); err != nil {
			return err
		}
	}
	return nil
}

func (s *productService) Create(ctx context.Context, product *models.Product, relations shared.ProductRelations) error {
	if err := s.checkReferences(product); err != nil {
		return err
	}
	resolved, err := s.resolveRelations(relations)
	if err != nil {
		return err
	}

	err = s.productRepository.Transaction(func(tx shared.DB) error {
		if err := s.productRepository.Create(tx, product); err != nil {
			return err
		}
		return s.replaceRelations(tx, product, resolved)
	})
	if err != nil {
		return shared.ToHTTPError(err, "could not create product")
	}

	slog.Info("product created", "productID", product.ID, "name", product.Name)
	return nil
}

func (s *productService) Update(ctx context.Context, product *models.Product, relations shared.ProductRelations) error {
	if err := s.checkReferences(product); err != nil {
		return err
	}
	resolved, err := s.resolveRelations(relations)
	if err != nil {
		return err
	}

	err = s.productRepository.Transaction(func(tx shared.DB) error {
		if err := s.productRepository.Save(tx, product); err != nil {
			return err
		}
		return s.replaceRelations(tx, product, resolved)
	})
	return shared.ToHTTPError(err, "could not update product")
}

// AddUser adds the user to the owners or curators of the product. Adding a
// user twice keeps a single relation.
func (s *productService) AddUser(ctx context.Context, productID uint, association string, userID uint) (models.User, error) {
	if _, err := s.productRepository.Read(productID); err != nil {
		return models.User{}, shared.NotFoundError(err, "Product")
	}
	user, err := s.userRepository.Read(userID)
	if err != nil {
		return models.User{}, shared.NotFoundError(err, "User")
	}
	if err := s.productRepository.AppendUser(nil, productID, association, &user); err != nil {
		return models.User{}, shared.ToHTTPError(err, "could not add user to product")
	}
	slog.Info("user added to product", "productID", productID, "userID", userID, "relation", association)
	return user, nil
}
