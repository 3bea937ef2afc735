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

package dtos

import "time"

type ProductDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Logo        *string   `json:"logo"`

	Status     *uint `json:"status"`
	SalesModel *uint `json:"sales_model"`

	Owners   []UserDTO    `json:"owners"`
	Curators []UserDTO    `json:"curators"`
	Partners []PartnerDTO `json:"partners"`
	Spheres  []LookupDTO  `json:"spheres"`
}

type ProductCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	Status      *uint   `json:"status"`
	SalesModel  *uint   `json:"sales_model"`

	OwnerIDs   []uint `json:"owner_ids"`
	CuratorIDs []uint `json:"curator_ids"`
	PartnerIDs []uint `json:"partner_ids"`
	SphereIDs  []uint `json:"sphere_ids"`
}

type ProductPatchRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description Nullable[string] `json:"description"`
	Status      Nullable[uint]   `json:"status"`
	SalesModel  Nullable[uint]   `json:"sales_model"`

	OwnerIDs   []uint `json:"owner_ids"`
	CuratorIDs []uint `json:"curator_ids"`
	PartnerIDs []uint `json:"partner_ids"`
	SphereIDs  []uint `json:"sphere_ids"`
}
