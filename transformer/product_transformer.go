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

package transformer

import (
	"github.com/l3montree-dev/catalog/database/models"
	"github.com/l3montree-dev/catalog/dtos"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/l3montree-dev/catalog/utils"
)

func ProductModelToDTO(m models.Product, logoURL LogoURLFunc) dtos.ProductDTO {
	return dtos.ProductDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		Logo:        logoURL(m.Logo),
		Status:      m.StatusID,
		SalesModel:  m.SalesModelID,
		Owners:      utils.Map(m.Owners, UserModelToDTO),
		Curators:    utils.Map(m.Curators, UserModelToDTO),
		Partners: utils.Map(m.Partners, func(p models.Partner) dtos.PartnerDTO {
			return PartnerModelToDTO(p, logoURL)
		}),
		Spheres: utils.Map(m.Spheres, func(s models.Sphere) dtos.LookupDTO {
			return LookupModelToDTO(&s.Lookup)
		}),
	}
}

func ProductCreateRequestToModel(req dtos.ProductCreateRequest) (models.Product, shared.ProductRelations) {
	return models.Product{
			Name:         req.Name,
			Description:  utils.EmptyThenNil(utils.SafeDereference(req.Description)),
			StatusID:     req.Status,
			SalesModelID: req.SalesModel,
		}, shared.ProductRelations{
			OwnerIDs:   req.OwnerIDs,
			CuratorIDs: req.CuratorIDs,
			PartnerIDs: req.PartnerIDs,
			SphereIDs:  req.SphereIDs,
		}
}

// ApplyProductCreateRequest overwrites every writable field of m, as done by PUT.
func ApplyProductCreateRequest(req dtos.ProductCreateRequest, m *models.Product) shared.ProductRelations {
	replacement, relations := ProductCreateRequestToModel(req)
	m.Name = replacement.Name
	m.Description = replacement.Description
	m.StatusID = replacement.StatusID
	m.SalesModelID = replacement.SalesModelID
	return relations
}

// ApplyProductPatchRequest changes the fields present in req. Nullable fields
// sent as null are cleared.
func ApplyProductPatchRequest(req dtos.ProductPatchRequest, m *models.Product) shared.ProductRelations {
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Description.Set {
		m.Description = utils.EmptyThenNil(utils.SafeDereference(req.Description.Value))
	}
	if req.Status.Set {
		m.StatusID = req.Status.Value
	}
	if req.SalesModel.Set {
		m.SalesModelID = req.SalesModel.Value
	}
	return shared.ProductRelations{
		OwnerIDs:   req.OwnerIDs,
		CuratorIDs: req.CuratorIDs,
		PartnerIDs: req.PartnerIDs,
		SphereIDs:  req.SphereIDs,
	}
}
