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

	"github.com/l3montree-dev/catalog/dtos"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/l3montree-dev/catalog/transformer"
	"github.com/l3montree-dev/catalog/utils"
)

type UserController struct {
	userRepository shared.UserRepository
}

func NewUserController(userRepository shared.UserRepository) *UserController {
	return &UserController{
		userRepository: userRepository,
	}
}

func (c *UserController) List(ctx shared.Context) error {
	users, err := c.userRepository.FindBySearch(ctx.QueryParam("search"))
	if err != nil {
		return shared.ToHTTPError(err, "could not list users")
	}
	return ctx.JSON(http.StatusOK, utils.Map(users, transformer.UserModelToDTO))
}

func (c *UserController) Create(ctx shared.Context) error {
	var req dtos.UserCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	user := transformer.UserCreateRequestToModel(req)
	if err := c.userRepository.Create(nil, &user); err != nil {
		return shared.ToHTTPError(err, "could not create user")
	}
	return ctx.JSON(http.StatusCreated, transformer.UserModelToDTO(user))
}

func (c *UserController) Read(ctx shared.Context) error {
	id, err := pathID(ctx, "User")
	if err != nil {
		return err
	}
	user, err := c.userRepository.Read(id)
	if err != nil {
		return shared.NotFoundError(err, "User")
	}
	return ctx.JSON(http.StatusOK, transformer.UserModelToDTO(user))
}

func (c *UserController) Update(ctx shared.Context) error {
	id, err := pathID(ctx, "User")
	if err != nil {
		return err
	}
	user, err := c.userRepository.Read(id)
	if err != nil {
		return shared.NotFoundError(err, "User")
	}
	var req dtos.UserCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	user.Username = req.Username
	user.Email = req.Email
	if err := c.userRepository.Save(nil, &user); err != nil {
		return shared.ToHTTPError(err, "could not update user")
	}
	return ctx.JSON(http.StatusOK, transformer.UserModelToDTO(user))
}

func (c *UserController) Patch(ctx shared.Context) error {
	id, err := pathID(ctx, "User")
	if err != nil {
		return err
	}
	user, err := c.userRepository.Read(id)
	if err != nil {
		return shared.NotFoundError(err, "User")
	}
	var req dtos.UserPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	transformer.ApplyUserPatchRequest(req, &user)
	if err := c.userRepository.Save(nil, &user); err != nil {
		return shared.ToHTTPError(err, "could not update user")
	}
	return ctx.JSON(http.StatusOK, transformer.UserModelToDTO(user))
}

func (c *UserController) Delete(ctx shared.Context) error {
	id, err := pathID(ctx, "User")
	if err != nil {
		return err
	}
	if err := c.userRepository.Delete(nil, id); err != nil {
		return shared.NotFoundError(err, "User")
	}
	return ctx.NoContent(http.StatusNoContent)
}
