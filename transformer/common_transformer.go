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
	"fmt"
	"time"

	"github.com/l3montree-dev/catalog/database/models"
	"github.com/l3montree-dev/catalog/dtos"
	"github.com/l3montree-dev/catalog/utils"
	"gorm.io/datatypes"
)

// LogoURLFunc resolves a stored logo key to its public url.
type LogoURLFunc func(key *string) *string

func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dtos.DateLayout, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return datatypes.Date(t), nil
}

func parseOptionalDate(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(dtos.DateLayout)
}

func formatOptionalDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	return utils.Ptr(FormatDate(*d))
}

func UserModelToDTO(m models.User) dtos.UserDTO {
	return dtos.UserDTO{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}

func UserModelToSummaryDTO(m models.User) dtos.UserSummaryDTO {
	return dtos.UserSummaryDTO{
		ID:       m.ID,
		Username: m.Username,
	}
}

func UserCreateRequestToModel(req dtos.UserCreateRequest) models.User {
	return models.User{
		Username: req.Username,
		Email:    req.Email,
	}
}

func ApplyUserPatchRequest(req dtos.UserPatchRequest, m *models.User) {
	if req.Username != nil {
		m.Username = *req.Username
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
}

func LookupModelToDTO(m *models.Lookup) dtos.LookupDTO {
	return dtos.LookupDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}

func ApplyLookupCreateRequest(req dtos.LookupCreateRequest, m *models.Lookup) {
	m.Name = req.Name
	m.Description = utils.EmptyThenNil(utils.SafeDereference(req.Description))
}

func ApplyLookupPatchRequest(req dtos.LookupPatchRequest, m *models.Lookup) {
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Description != nil {
		m.Description = utils.EmptyThenNil(utils.SafeDereference(req.Description))
	}
}

func PartnerModelToDTO(m models.Partner, logoURL LogoURLFunc) dtos.PartnerDTO {
	return dtos.PartnerDTO{
		ID:   m.ID,
		Name: m.Name,
		Logo: logoURL(m.Logo),
		URL:  m.URL,
	}
}

func PartnerCreateRequestToModel(req dtos.PartnerCreateRequest) models.Partner {
	return models.Partner{
		Name: req.Name,
		URL:  utils.EmptyThenNil(utils.SafeDereference(req.URL)),
	}
}

func ApplyPartnerPatchRequest(req dtos.PartnerPatchRequest, m *models.Partner) {
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.URL != nil {
		m.URL = utils.EmptyThenNil(utils.SafeDereference(req.URL))
	}
}
