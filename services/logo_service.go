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
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/catalog/monitoring"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/l3montree-dev/catalog/storage"
	"github.com/l3montree-dev/catalog/utils"
	"github.com/labstack/echo/v4"
)

type logoService struct {
	storage shared.LogoStorage
}

func NewLogoService(logoStorage shared.LogoStorage) *logoService {
	return &logoService{
		storage: logoStorage,
	}
}

func (s *logoService) Store(ctx context.Context, owner shared.LogoOwner, data []byte) (string, error) {
	kind := owner.TableName()
	contentType, ext, err := storage.ValidateLogo(data)
	if err != nil {
		monitoring.LogoUploadsTotal.WithLabelValues(kind, "rejected").Inc()
		if errors.Is(err, storage.ErrLogoTooLarge) || errors.Is(err, storage.ErrUnsupportedLogoType) || errors.Is(err, storage.ErrEmptyLogo) {
			return "", echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
		}
		return "", echo.NewHTTPError(http.StatusInternalServerError, "could not validate logo").WithInternal(err)
	}

	key := storage.LogoKey(kind, owner.GetID(), owner.GetName(), ext)
	if err := s.storage.Put(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		monitoring.LogoUploadsTotal.WithLabelValues(kind, "failed").Inc()
		return "", echo.NewHTTPError(http.StatusInternalServerError, "could not store logo").WithInternal(err)
	}

	monitoring.LogoUploadsTotal.WithLabelValues(kind, "stored").Inc()
	monitoring.LogoUploadBytes.Observe(float64(len(data)))
	slog.Info("logo stored", "kind", kind, "id", owner.GetID(), "key", key, "contentType", contentType)
	return key, nil
}

func (s *logoService) Discard(ctx context.Context, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := s.storage.Delete(ctx, *key); err != nil {
		slog.Warn("could not delete logo", "key", *key, "err", err)
	}
}

func (s *logoService) URL(key *string) *string {
	if key == nil || *key == "" {
		return nil
	}
	return utils.Ptr(s.storage.URL(*key))
}
