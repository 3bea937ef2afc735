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

package controllers

import (
	"net/http"

	"github.com/l3montree-dev/catalog/database/models"
	"github.com/l3montree-dev/catalog/dtos"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/l3montree-dev/catalog/transformer"
	"github.com/l3montree-dev/catalog/utils"
)

type PartnerController struct {
	partnerRepository shared.PartnerRepository
	logoService       shared.LogoService
}

func NewPartnerController(partnerRepository shared.PartnerRepository, logoService shared.LogoService) *PartnerController {
	return &PartnerController{
		partnerRepository: partnerRepository,
		logoService:       logoService,
	}
}

func (c *PartnerController) toDTO(partner models.Partner) dtos.PartnerDTO {
	return transformer.PartnerModelToDTO(partner, c.logoService.URL)
}

func (c *PartnerController) read(ctx shared.Context) (models.Partner, error) {
	id, err := pathID(ctx, "Partner")
	if err != nil {
		return models.Partner{}, err
	}
	partner, err := c.partnerRepository.Read(id)
	if err != nil {
		return models.Partner{}, shared.NotFoundError(err, "Partner")
	}
	return partner, nil
}

func (c *PartnerController) List(ctx shared.Context) error {
	partners, err := c.partnerRepository.FindBySearch(ctx.QueryParam("search"))
	if err != nil {
		return shared.ToHTTPError(err, "could not list partners")
	}
	return ctx.JSON(http.StatusOK, utils.Map(partners, c.toDTO))
}

func (c *PartnerController) Create(ctx shared.Context) error {
	var req dtos.PartnerCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	partner := transformer.PartnerCreateRequestToModel(req)
	if err := c.partnerRepository.Create(nil, &partner); err != nil {
		return shared.ToHTTPError(err, "could not create partner")
	}
	return ctx.JSON(http.StatusCreated, c.toDTO(partner))
}

func (c *PartnerController) Read(ctx shared.Context) error {
	partner, err := c.read(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c.toDTO(partner))
}

func (c *PartnerController) Update(ctx shared.Context) error {
	partner, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.PartnerCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	replacement := transformer.PartnerCreateRequestToModel(req)
	partner.Name = replacement.Name
	partner.URL = replacement.URL
	if err := c.partnerRepository.Save(nil, &partner); err != nil {
		return shared.ToHTTPError(err, "could not update partner")
	}
	return ctx.JSON(http.StatusOK, c.toDTO(partner))
}

func (c *PartnerController) Patch(ctx shared.Context) error {
	partner, err := c.read(ctx)
	if err != nil {
		return err
	}
	var req dtos.PartnerPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	transformer.ApplyPartnerPatchRequest(req, &partner)
	if err := c.partnerRepository.Save(nil, &partner); err != nil {
		return shared.ToHTTPError(err, "could not update partner")
	}
	return ctx.JSON(http.StatusOK, c.toDTO(partner))
}

func (c *PartnerController) Delete(ctx shared.Context) error {
	partner, err := c.read(ctx)
	if err != nil {
		return err
	}
	if err := c.partnerRepository.Delete(nil, partner.ID); err != nil {
		return shared.ToHTTPError(err, "could not delete partner")
	}
	c.logoService.Discard(ctx.Request().Context(), partner.Logo)
	return ctx.NoContent(http.StatusNoContent)
}

func (c *PartnerController) UploadLogo(ctx shared.Context) error {
	partner, err := c.read(ctx)
	if err != nil {
		return err
	}
	data, err := readLogo(ctx)
	if err != nil {
		return err
	}
	return replaceLogo(ctx, c.logoService, &partner, data, func(key *string) error {
		return c.partnerRepository.UpdateLogo(nil, partner.ID, key)
	})
}

func (c *PartnerController) DeleteLogo(ctx shared.Context) error {
	partner, err := c.read(ctx)
	if err != nil {
		return err
	}
	return removeLogo(ctx, c.logoService, &partner, func(key *string) error {
		return c.partnerRepository.UpdateLogo(nil, partner.ID, key)
	})
}
