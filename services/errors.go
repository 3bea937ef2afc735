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

package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/l3montree-dev/catalog/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// checkExists returns a bad request if id does not reference an existing row.
func checkExists[T any](read func(uint) (T, error), id uint, field string) error {
	if _, err := read(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s: %d does not exist", field, id)).WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not check "+field).WithInternal(err)
	}
	return nil
}

func checkOptionalExists[T any](read func(uint) (T, error), id *uint, field string) error {
	if id == nil {
		return nil
	}
	return checkExists(read, *id, field)
}

// resolveAll loads the rows referenced by ids. Duplicates are ignored and a
// single unknown id fails the whole set.
func resolveAll[T any](list func([]uint) ([]T, error), ids []uint, field string) ([]T, error) {
	ids = utils.Uniq(ids)
	ts, err := list(ids)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "could not resolve "+field).WithInternal(err)
	}
	if len(ts) != len(ids) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s: at least one id does not exist", field))
	}
	return ts, nil
}
