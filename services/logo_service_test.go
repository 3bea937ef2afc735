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
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/l3montree-dev/catalog/database/models"
	"github.com/l3montree-dev/catalog/mocks"
	"github.com/l3montree-dev/catalog/storage"
	"github.com/l3montree-dev/catalog/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestLogoService(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid logo under a key derived from the owner", func(t *testing.T) {
		logoStorage := mocks.NewLogoStorage(t)
		logoStorage.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "products/7-my-product-") && strings.HasSuffix(key, ".png")
		}), "image/png", mock.Anything, int64(len(pngHeader))).Return(nil)

		product := models.Product{Model: models.Model{ID: 7}, Name: "My Product"}
		key, err := NewLogoService(logoStorage).Store(ctx, &product, pngHeader)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "products/7-my-product-"))
	})

	t.Run("rejects unsupported content", func(t *testing.T) {
		logoStorage := mocks.NewLogoStorage(t)
		partner := models.Partner{Model: models.Model{ID: 1}, Name: "ACME"}

		_, err := NewLogoService(logoStorage).Store(ctx, &partner, []byte("just some text"))
		assertHTTPError(t, err, http.StatusBadRequest, "")
		logoStorage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects logos above the size limit", func(t *testing.T) {
		logoStorage := mocks.NewLogoStorage(t)
		partner := models.Partner{Model: models.Model{ID: 1}, Name: "ACME"}
		data := append(append([]byte{}, pngHeader...), make([]byte, storage.MaxLogoSize)...)

		_, err := NewLogoService(logoStorage).Store(ctx, &partner, data)
		assertHTTPError(t, err, http.StatusBadRequest, "")
	})

	t.Run("storage failures are internal errors", func(t *testing.T) {
		logoStorage := mocks.NewLogoStorage(t)
		logoStorage.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)
		partner := models.Partner{Model: models.Model{ID: 1}, Name: "ACME"}

		_, err := NewLogoService(logoStorage).Store(ctx, &partner, pngHeader)
		assertHTTPError(t, err, http.StatusInternalServerError, "could not store logo")
	})

	t.Run("discard ignores empty keys and storage errors", func(t *testing.T) {
		logoStorage := mocks.NewLogoStorage(t)
		logoStorage.On("Delete", mock.Anything, "partners/1-acme.png").Return(assert.AnError).Once()

		service := NewLogoService(logoStorage)
		service.Discard(ctx, nil)
		service.Discard(ctx, utils.Ptr(""))
		service.Discard(ctx, utils.Ptr("partners/1-acme.png"))
	})

	t.Run("url", func(t *testing.T) {
		logoStorage := mocks.NewLogoStorage(t)
		logoStorage.On("URL", "partners/1-acme.png").Return("/media/partners/1-acme.png")

		service := NewLogoService(logoStorage)
		assert.Nil(t, service.URL(nil))
		assert.Equal(t, "/media/partners/1-acme.png", *service.URL(utils.Ptr("partners/1-acme.png")))
	})
}
