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

func ProjectModelToDTO(m models.Project, logoURL LogoURLFunc) dtos.ProjectDTO {
	return dtos.ProjectDTO{
		ID:          m.ID,
		Name:        m.Name,
		Product:     m.ProductID,
		Description: m.Description,
		Principles:  m.Principles,
		StartDate:   FormatDate(m.StartDate),
		EndDate:     formatOptionalDate(m.EndDate),
		Status:      m.StatusID,
		Logo:        logoURL(m.Logo),
		CreatedAt:   m.CreatedAt,
		Curators:    utils.Map(m.Curators, UserModelToDTO),
		Members:     utils.Map(m.Members, UserModelToDTO),
		Partners: utils.Map(m.Partners, func(p models.Partner) dtos.PartnerDTO {
			return PartnerModelToDTO(p, logoURL)
		}),
	}
}

func ProjectCreateRequestToModel(req dtos.ProjectCreateRequest) (models.Project, shared.ProjectRelations, error) {
	startDate, err := ParseDate(req.StartDate)
	if err != nil {
		return models.Project{}, shared.ProjectRelations{}, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return models.Project{}, shared.ProjectRelations{}, err
	}

	return models.Project{
			Name:        req.Name,
			ProductID:   req.Product,
			Description: utils.EmptyThenNil(utils.SafeDereference(req.Description)),
			Principles:  utils.EmptyThenNil(utils.SafeDereference(req.Principles)),
			StartDate:   startDate,
			EndDate:     endDate,
			StatusID:    req.Status,
		}, shared.ProjectRelations{
			CuratorIDs: req.CuratorIDs,
			MemberIDs:  req.MemberIDs,
			PartnerIDs: req.PartnerIDs,
		}, nil
}

// ApplyProjectCreateRequest overwrites every writable field of m, as done by PUT.
func ApplyProjectCreateRequest(req dtos.ProjectCreateRequest, m *models.Project) (shared.ProjectRelations, error) {
	replacement, relations, err := ProjectCreateRequestToModel(req)
	if err != nil {
		return relations, err
	}
	m.Name = replacement.Name
	m.ProductID = replacement.ProductID
	m.Description = replacement.Description
	m.Principles = replacement.Principles
	m.StartDate = replacement.StartDate
	m.EndDate = replacement.EndDate
	m.StatusID = replacement.StatusID
	return relations, nil
}

func ApplyProjectPatchRequest(req dtos.ProjectPatchRequest, m *models.Project) (shared.ProjectRelations, error) {
	relations := shared.ProjectRelations{
		CuratorIDs: req.CuratorIDs,
		MemberIDs:  req.MemberIDs,
		PartnerIDs: req.PartnerIDs,
	}
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Product != nil {
		m.ProductID = *req.Product
	}
	if req.Description.Set {
		m.Description = utils.EmptyThenNil(utils.SafeDereference(req.Description.Value))
	}
	if req.Principles.Set {
		m.Principles = utils.EmptyThenNil(utils.SafeDereference(req.Principles.Value))
	}
	if req.StartDate != nil {
		startDate, err := ParseDate(*req.StartDate)
		if err != nil {
			return relations, err
		}
		m.StartDate = startDate
	}
	if req.EndDate.Set {
		endDate, err := parseOptionalDate(req.EndDate.Value)
		if err != nil {
			return relations, err
		}
		m.EndDate = endDate
	}
	if req.Status.Set {
		m.StatusID = req.Status.Value
	}
	return relations, nil
}

func ProjectStageModelToDTO(m models.ProjectStage) dtos.ProjectStageDTO {
	return dtos.ProjectStageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Project:   m.ProjectID,
		StartDate: FormatDate(m.StartDate),
		EndDate:   formatOptionalDate(m.EndDate),
	}
}

func ProjectStageCreateRequestToModel(req dtos.ProjectStageCreateRequest) (models.ProjectStage, error) {
	startDate, err := ParseDate(req.StartDate)
	if err != nil {
		return models.ProjectStage{}, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return models.ProjectStage{}, err
	}
	return models.ProjectStage{
		Name:      req.Name,
		ProjectID: req.Project,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func ApplyProjectStageCreateRequest(req dtos.ProjectStageCreateRequest, m *models.ProjectStage) error {
	replacement, err := ProjectStageCreateRequestToModel(req)
	if err != nil {
		return err
	}
	m.Name = replacement.Name
	m.ProjectID = replacement.ProjectID
	m.StartDate = replacement.StartDate
	m.EndDate = replacement.EndDate
	return nil
}

func ApplyProjectStagePatchRequest(req dtos.ProjectStagePatchRequest, m *models.ProjectStage) error {
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Project != nil {
		m.ProjectID = *req.Project
	}
	if req.StartDate != nil {
		startDate, err := ParseDate(*req.StartDate)
		if err != nil {
			return err
		}
		m.StartDate = startDate
	}
	if req.EndDate.Set {
		endDate, err := parseOptionalDate(req.EndDate.Value)
		if err != nil {
			return err
		}
		m.EndDate = endDate
	}
	return nil
}

func ProjectRoleModelToDTO(m models.ProjectRole) dtos.ProjectRoleDTO {
	dto := dtos.ProjectRoleDTO{
		ID:      m.ID,
		Project: m.ProjectID,
		Member:  dtos.UserDTO{ID: m.MemberID},
		Role:    dtos.LookupDTO{ID: m.RoleID},
	}
	if m.Member != nil {
		dto.Member = UserModelToDTO(*m.Member)
	}
	if m.Role != nil {
		dto.Role = LookupModelToDTO(&m.Role.Lookup)
	}
	return dto
}

func ProjectRoleCreateRequestToModel(req dtos.ProjectRoleCreateRequest) models.ProjectRole {
	return models.ProjectRole{
		MemberID:  req.Member,
		RoleID:    req.Role,
		ProjectID: req.Project,
	}
}

func ApplyProjectRolePatchRequest(req dtos.ProjectRolePatchRequest, m *models.ProjectRole) {
	if req.Member != nil {
		m.MemberID = *req.Member
	}
	if req.Role != nil {
		m.RoleID = *req.Role
	}
	if req.Project != nil {
		m.ProjectID = *req.Project
	}
}
