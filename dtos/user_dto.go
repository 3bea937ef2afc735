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

package dtos

import (
	"encoding/json"
	"time"
)

type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummaryDTO is returned by the relation listings of products and projects.
type UserSummaryDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
}

type UserPatchRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=150"`
	Email    *string `json:"email" validate:"omitempty,email,max=254"`
}

// AddUserRequest adds a user to a relation. It is accepted as json or as
// form body. Numbers and numeric strings are both accepted as id.
type AddUserRequest struct {
	UserID json.Number `json:"user_id" form:"user_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
