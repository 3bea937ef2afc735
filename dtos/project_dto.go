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

// DateLayout is the wire format of all date fields.
const DateLayout = "2006-01-02"

type ProjectDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Product     uint      `json:"product"`
	Description *string   `json:"description"`
	Principles  *string   `json:"principles"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	Status      *uint     `json:"status"`
	Logo        *string   `json:"logo"`
	CreatedAt   time.Time `json:"created_at"`

	Curators []UserDTO    `json:"curators"`
	Members  []UserDTO    `json:"members"`
	Partners []PartnerDTO `json:"partners"`
}

type ProjectCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Product     uint    `json:"product" validate:"required"`
	Description *string `json:"description"`
	Principles  *string `json:"principles"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *uint   `json:"status"`

	CuratorIDs []uint `json:"curator_ids"`
	MemberIDs  []uint `json:"member_ids"`
	PartnerIDs []uint `json:"partner_ids"`
}

type ProjectPatchRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Product     *uint            `json:"product" validate:"omitempty,min=1"`
	Description Nullable[string] `json:"description"`
	Principles  Nullable[string] `json:"principles"`
	StartDate   *string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     Nullable[string] `json:"end_date"`
	Status      Nullable[uint]   `json:"status"`

	CuratorIDs []uint `json:"curator_ids"`
	MemberIDs  []uint `json:"member_ids"`
	PartnerIDs []uint `json:"partner_ids"`
}

type ProjectStageDTO struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Project   uint    `json:"project"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type ProjectStageCreateRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Project   uint    `json:"project" validate:"required"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type ProjectStagePatchRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Project   *uint            `json:"project" validate:"omitempty,min=1"`
	StartDate *string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   Nullable[string] `json:"end_date"`
}

type ProjectRoleDTO struct {
	ID      uint      `json:"id"`
	Member  UserDTO   `json:"member"`
	Role    LookupDTO `json:"role"`
	Project uint      `json:"project"`
}

type ProjectRoleCreateRequest struct {
	Member  uint `json:"member" validate:"required"`
	Role    uint `json:"role" validate:"required"`
	Project uint `json:"project" validate:"required"`
}

type ProjectRolePatchRequest struct {
	Member  *uint `json:"member" validate:"omitempty,min=1"`
	Role    *uint `json:"role" validate:"omitempty,min=1"`
	Project *uint `json:"project" validate:"omitempty,min=1"`
}
