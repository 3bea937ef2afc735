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

package shared

import (
	"errors"
	"net/http"

	"github.com/l3montree-dev/catalog/database"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ToHTTPError keeps http errors created further down and maps constraint
// violations to bad requests. Everything else becomes an internal server
// error with msg.
func ToHTTPError(err error, msg string) error {
	if err == nil {
		return nil
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found").WithInternal(err)
	case database.IsDuplicateKeyError(err):
		return echo.NewHTTPError(http.StatusBadRequest, "an entry with these values already exists").WithInternal(err)
	case database.IsForeignKeyError(err):
		return echo.NewHTTPError(http.StatusBadRequest, "a referenced entity does not exist").WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, msg).WithInternal(err)
}

// NotFoundError returns 404 "<entity> not found" for missing rows and 500
// for any other failure.
func NotFoundError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, entity+" not found").WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch "+entity).WithInternal(err)
}
