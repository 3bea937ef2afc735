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

// Partner is an external organization associated with products and projects.
type Partner struct {
	Model
	Name string  `json:"name" gorm:"type:varchar(255);not null"`
	Logo *string `json:"logo" gorm:"type:varchar(255)"`
	URL  *string `json:"url" gorm:"column:url;type:varchar(200)"`
}

func (Partner) TableName() string {
	return "partners"
}

func (m *Partner) GetLogo() *string {
	return m.Logo
}

func (m *Partner) SetLogo(key *string) {
	m.Logo = key
}

func (m *Partner) GetName() string {
	return m.Name
}
