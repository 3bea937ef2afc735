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
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/l3montree-dev/catalog/dtos"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/l3montree-dev/catalog/storage"
	"github.com/l3montree-dev/catalog/utils"
	"github.com/labstack/echo/v4"
)

// pathID reads the numeric id path parameter. Ids which cannot exist are
// answered with not found.
func pathID(ctx shared.Context, entity string) (uint, error) {
	id, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, entity+" not found").WithInternal(err)
	}
	return id, nil
}

// queryID reads an optional numeric filter from the query string.
func queryID(ctx shared.Context, name string) (*uint, error) {
	raw := strings.TrimSpace(ctx.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	id, err := utils.ParseID(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s: %q is not a valid id", name, raw)).WithInternal(err)
	}
	return &id, nil
}

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("could not validate request: %s", err.Error())).WithInternal(err)
	}
	return nil
}

// maxLogoRequestSize leaves room for the multipart envelope around a logo.
const maxLogoRequestSize = storage.MaxLogoSize + 1<<20

// readLogo returns the content of the multipart field "logo". The request
// and the declared size are checked before reading, the content is checked
// by the logo service.
func readLogo(ctx shared.Context) ([]byte, error) {
	req := ctx.Request()
	req.Body = http.MaxBytesReader(ctx.Response(), req.Body, maxLogoRequestSize)

	fileHeader, err := ctx.FormFile("logo")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, echo.NewHTTPError(http.StatusBadRequest, storage.ErrLogoTooLarge.Error()).WithInternal(err)
		}
		if errors.Is(err, http.ErrMissingFile) {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "logo is required").WithInternal(err)
		}
		return nil, echo.NewHTTPError(http.StatusBadRequest, "could not read multipart form").WithInternal(err)
	}
	if fileHeader.Size > storage.MaxLogoSize {
		return nil, echo.NewHTTPError(http.StatusBadRequest, storage.ErrLogoTooLarge.Error())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "could not open logo").WithInternal(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxLogoSize+1))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "could not read logo").WithInternal(err)
	}
	return data, nil
}

type logoResponse struct {
	Logo *string `json:"logo"`
}

// replaceLogo stores data as the new logo of owner, persists the key and
// removes the previous object.
func replaceLogo(ctx shared.Context, logoService shared.LogoService, owner shared.LogoOwner, data []byte, persist func(key *string) error) error {
	previous := owner.GetLogo()
	key, err := logoService.Store(ctx.Request().Context(), owner, data)
	if err != nil {
		return err
	}
	if err := persist(&key); err != nil {
		logoService.Discard(ctx.Request().Context(), &key)
		return shared.ToHTTPError(err, "could not save logo")
	}
	logoService.Discard(ctx.Request().Context(), previous)
	owner.SetLogo(&key)

	return ctx.JSON(http.StatusOK, logoResponse{Logo: logoService.URL(&key)})
}

func removeLogo(ctx shared.Context, logoService shared.LogoService, owner shared.LogoOwner, persist func(key *string) error) error {
	previous := owner.GetLogo()
	if err := persist(nil); err != nil {
		return shared.ToHTTPError(err, "could not remove logo")
	}
	logoService.Discard(ctx.Request().Context(), previous)
	owner.SetLogo(nil)
	return ctx.NoContent(http.StatusNoContent)
}

func addedMessage(username string, relation string) dtos.MessageResponse {
	return dtos.MessageResponse{Message: fmt.Sprintf("User %s added as %s.", username, relation)}
}

// userIDFromRequest extracts user_id of a relation action. A missing or zero
// value is a bad request, any other value which cannot reference a user is
// reported as unknown user.
func userIDFromRequest(ctx shared.Context) (uint, error) {
	var req dtos.AddUserRequest
	if err := ctx.Bind(&req); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if n, err := req.UserID.Float64(); req.UserID == "" || (err == nil && n == 0) {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	id, err := utils.ParseID(req.UserID.String())
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "User not found").WithInternal(err)
	}
	return id, nil
}
