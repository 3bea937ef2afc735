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

package models

import "time"

type Model struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m Model) GetID() uint {
	return m.ID
}

// association names of the many to many relations
const (
	AssociationOwners   = "Owners"
	AssociationCurators = "Curators"
	AssociationMembers  = "Members"
	AssociationPartners = "Partners"
	AssociationSpheres  = "Spheres"
)

// All returns every model the catalog persists. The order does not matter,
// gorm resolves the dependencies between the tables itself.
func All() []any {
	return []any{
		&User{},
		&Sphere{},
		&ProductStatus{},
		&ProjectStatus{},
		&SalesModel{},
		&Role{},
		&Partner{},
		&Product{},
		&Project{},
		&ProjectStage{},
		&ProjectRole{},
	}
}
