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

type Product struct {
	Model
	Name        string  `json:"name" gorm:"type:varchar(255);not null"`
	Description *string `json:"description" gorm:"type:text"`
	Logo        *string `json:"logo" gorm:"type:varchar(255)"`

	StatusID     *uint          `json:"status" gorm:"index"`
	Status       *ProductStatus `json:"-" gorm:"foreignKey:StatusID;references:ID;constraint:OnDelete:SET NULL;"`
	SalesModelID *uint          `json:"sales_model" gorm:"index"`
	SalesModel   *SalesModel    `json:"-" gorm:"foreignKey:SalesModelID;references:ID;constraint:OnDelete:SET NULL;"`

	Owners   []User    `json:"owners" gorm:"many2many:product_owners;constraint:OnDelete:CASCADE;"`
	Curators []User    `json:"curators" gorm:"many2many:product_curators;constraint:OnDelete:CASCADE;"`
	Partners []Partner `json:"partners" gorm:"many2many:product_partners;constraint:OnDelete:CASCADE;"`
	Spheres  []Sphere  `json:"spheres" gorm:"many2many:product_spheres;constraint:OnDelete:CASCADE;"`

	Projects []Project `json:"-" gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (Product) TableName() string {
	return "products"
}

func (m *Product) GetLogo() *string {
	return m.Logo
}

func (m *Product) SetLogo(key *string) {
	m.Logo = key
}

func (m *Product) GetName() string {
	return m.Name
}
