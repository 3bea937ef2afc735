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

// Lookup is the shape shared by all reference tables of the catalog.
type Lookup struct {
	Model
	Name        string  `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description *string `json:"description" gorm:"type:text"`
}

func (l *Lookup) GetLookup() *Lookup {
	return l
}

// Sphere is a business-domain tag applied to products.
type Sphere struct {
	Lookup
}

func (Sphere) TableName() string {
	return "spheres"
}

type ProductStatus struct {
	Lookup
}

func (ProductStatus) TableName() string {
	return "product_statuses"
}

type ProjectStatus struct {
	Lookup
}

func (ProjectStatus) TableName() string {
	return "project_statuses"
}

type SalesModel struct {
	Lookup
}

func (SalesModel) TableName() string {
	return "sales_models"
}

type Role struct {
	Lookup
}

func (Role) TableName() string {
	return "roles"
}
