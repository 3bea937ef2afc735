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

type LookupDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type LookupCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}

type LookupPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

type PartnerDTO struct {
	ID   uint    `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo"`
	URL  *string `json:"url"`
}

type PartnerCreateRequest struct {
	Name string  `json:"name" validate:"required,max=255"`
	URL  *string `json:"url" validate:"omitempty,url,max=200"`
}

type PartnerPatchRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
	URL  *string `json:"url" validate:"omitempty,url,max=200"`
}
