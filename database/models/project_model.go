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

import "gorm.io/datatypes"

// Project is a workstream under a product. Deleting the product deletes the
// project, its stages and its role assignments.
type Project struct {
	Model
	Name        string          `json:"name" gorm:"type:varchar(255);not null"`
	ProductID   uint            `json:"product" gorm:"not null;index"`
	Description *string         `json:"description" gorm:"type:text"`
	Principles  *string         `json:"principles" gorm:"type:text"`
	StartDate   datatypes.Date  `json:"start_date" gorm:"type:date;not null"`
	EndDate     *datatypes.Date `json:"end_date" gorm:"type:date"`
	Logo        *string         `json:"logo" gorm:"type:varchar(255)"`

	StatusID *uint          `json:"status" gorm:"index"`
	Status   *ProjectStatus `json:"-" gorm:"foreignKey:StatusID;references:ID;constraint:OnDelete:SET NULL;"`

	Curators []User    `json:"curators" gorm:"many2many:project_curators;constraint:OnDelete:CASCADE;"`
	Members  []User    `json:"members" gorm:"many2many:project_members;constraint:OnDelete:CASCADE;"`
	Partners []Partner `json:"partners" gorm:"many2many:project_partners;constraint:OnDelete:CASCADE;"`

	Stages []ProjectStage `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
	Roles  []ProjectRole  `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (Project) TableName() string {
	return "projects"
}

func (m *Project) GetLogo() *string {
	return m.Logo
}

func (m *Project) SetLogo(key *string) {
	m.Logo = key
}

func (m *Project) GetName() string {
	return m.Name
}

type ProjectStage struct {
	Model
	Name      string          `json:"name" gorm:"type:varchar(255);not null"`
	ProjectID uint            `json:"project" gorm:"not null;index"`
	StartDate datatypes.Date  `json:"start_date" gorm:"type:date;not null"`
	EndDate   *datatypes.Date `json:"end_date" gorm:"type:date"`
}

func (ProjectStage) TableName() string {
	return "project_stages"
}

// ProjectRole assigns a named role to a user within one project. A user holds
// at most one role per project.
type ProjectRole struct {
	Model
	MemberID  uint  `json:"member" gorm:"not null;uniqueIndex:idx_project_roles_member_project"`
	Member    *User `json:"-" gorm:"foreignKey:MemberID;references:ID;constraint:OnDelete:CASCADE;"`
	RoleID    uint  `json:"role" gorm:"not null;index"`
	Role      *Role `json:"-" gorm:"foreignKey:RoleID;references:ID;constraint:OnDelete:CASCADE;"`
	ProjectID uint  `json:"project" gorm:"not null;uniqueIndex:idx_project_roles_member_project"`
}

func (ProjectRole) TableName() string {
	return "project_roles"
}
