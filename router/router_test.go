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

package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/l3montree-dev/catalog/cmd/catalog/api"
	"github.com/l3montree-dev/catalog/config"
	"github.com/l3montree-dev/catalog/controllers"
	"github.com/l3montree-dev/catalog/database/repositories"
	"github.com/l3montree-dev/catalog/integrationtestutil"
	middleware "github.com/l3montree-dev/catalog/middlewares"
	"github.com/l3montree-dev/catalog/services"
	"github.com/l3montree-dev/catalog/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db := integrationtestutil.NewSQLiteDB(t)

	cfg := config.Config{
		LogoStorage: config.LogoStorageFilesystem,
		MediaRoot:   t.TempDir(),
		MediaURL:    "/media/",
	}
	fs, err := storage.NewFilesystemStorage(cfg.MediaRoot, cfg.MediaURL)
	require.NoError(t, err)
	srv := api.Server{Echo: middleware.Server([]string{"http://localhost:3000"})}

	productRepository := repositories.NewProductRepository(db)
	projectRepository := repositories.NewProjectRepository(db)
	projectStageRepository := repositories.NewProjectStageRepository(db)
	projectRoleRepository := repositories.NewProjectRoleRepository(db)
	userRepository := repositories.NewUserRepository(db)
	partnerRepository := repositories.NewPartnerRepository(db)
	sphereRepository := repositories.NewSphereRepository(db)
	productStatusRepository := repositories.NewProductStatusRepository(db)
	projectStatusRepository := repositories.NewProjectStatusRepository(db)
	salesModelRepository := repositories.NewSalesModelRepository(db)
	roleRepository := repositories.NewRoleRepository(db)

	logoService := services.NewLogoService(fs)
	productService := services.NewProductService(productRepository, userRepository, partnerRepository, sphereRepository, productStatusRepository, salesModelRepository)
	projectService := services.NewProjectService(projectRepository, productRepository, userRepository, partnerRepository, projectStatusRepository)

	apiV1Router := NewAPIV1Router(srv, cfg, db, nil)
	NewProductRouter(apiV1Router, controllers.NewProductController(productRepository, projectRepository, productService, logoService))
	NewProjectRouter(apiV1Router, controllers.NewProjectController(projectRepository, projectStageRepository, projectRoleRepository, projectService, logoService))
	NewPartnerRouter(apiV1Router, controllers.NewPartnerController(partnerRepository, logoService))
	NewReferenceRouter(apiV1Router,
		controllers.NewSphereController(sphereRepository),
		controllers.NewProductStatusController(productStatusRepository),
		controllers.NewProjectStatusController(projectStatusRepository),
		controllers.NewSalesModelController(salesModelRepository),
		controllers.NewRoleController(roleRepository),
		controllers.NewProjectStageController(projectStageRepository, services.NewProjectStageService(projectStageRepository, projectRepository)),
		controllers.NewProjectRoleController(projectRoleRepository, services.NewProjectRoleService(projectRoleRepository, projectRepository, userRepository, roleRepository)),
		controllers.NewUserController(userRepository),
	)
	NewMediaRouter(srv, cfg)

	return srv.Echo
}

func do(t *testing.T, e *echo.Echo, method string, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var b []byte
	if body != nil {
		var err error
		b, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRoutes(t *testing.T) {
	e := newTestServer(t)

	t.Run("health without trailing slash", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "healthy"}`, rec.Body.String())
	})

	t.Run("info reports the database", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/info/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		info := decode[InfoResponse](t, rec)
		assert.Equal(t, "healthy", info.Database.Status)
		assert.Equal(t, config.Version, info.Build.Version)
	})

	t.Run("metrics", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/metrics/", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "catalog_http_requests_total")
	})

	var productID uint
	t.Run("product lifecycle", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/products/", map[string]any{"name": "Catalog"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		productID = decode[struct {
			ID uint `json:"id"`
		}](t, rec).ID

		rec = do(t, e, http.MethodPatch, "/api/v1/products/"+itoa(productID)+"/", map[string]any{"description": "all products"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		product := decode[map[string]any](t, rec)
		assert.Equal(t, "Catalog", product["name"])
		assert.Equal(t, "all products", product["description"])

		rec = do(t, e, http.MethodGet, "/api/v1/products/?search=cat", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]map[string]any](t, rec), 1)
	})

	t.Run("errors are rendered as message", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/products/abc/", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message": "Product not found"}`, rec.Body.String())

		rec = do(t, e, http.MethodPost, "/api/v1/products/"+itoa(productID)+"/owners/", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message": "user_id is required"}`, rec.Body.String())
	})

	t.Run("relation action", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/users/", map[string]any{"username": "alice", "email": "alice@example.com"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		userID := decode[struct {
			ID uint `json:"id"`
		}](t, rec).ID

		rec = do(t, e, http.MethodPost, "/api/v1/products/"+itoa(productID)+"/curators/", map[string]any{"user_id": userID})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message": "User alice added as curator."}`, rec.Body.String())
	})

	t.Run("oversized logo is a validation error", func(t *testing.T) {
		data := make([]byte, storage.MaxLogoSize+1)
		copy(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
		rec := uploadLogo(t, e, "/api/v1/products/"+itoa(productID)+"/logo/", data)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "2 MiB")
	})

	t.Run("logo beyond the request body limit is a validation error", func(t *testing.T) {
		data := make([]byte, 9<<20)
		copy(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
		rec := uploadLogo(t, e, "/api/v1/products/"+itoa(productID)+"/logo/", data)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message": "logo must not be larger than 2 MiB"}`, rec.Body.String())
	})

	t.Run("other routes keep the request body limit", func(t *testing.T) {
		body := bytes.Repeat([]byte("a"), 9<<20)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/spheres/", bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("uploaded logo is served under media", func(t *testing.T) {
		data := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`)
		rec := uploadLogo(t, e, "/api/v1/products/"+itoa(productID)+"/logo/", data)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		logo := decode[map[string]string](t, rec)["logo"]
		require.True(t, strings.HasPrefix(logo, "/media/products/"), logo)

		rec = do(t, e, http.MethodGet, logo, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, string(data), rec.Body.String())
		assert.Equal(t, "default-src 'none'; style-src 'unsafe-inline'; sandbox", rec.Header().Get(echo.HeaderContentSecurityPolicy))
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	})

	t.Run("svg logo starting with a comment is accepted", func(t *testing.T) {
		data := []byte("<!-- Generator: Adobe Illustrator -->\n" + `<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`)
		rec := uploadLogo(t, e, "/api/v1/products/"+itoa(productID)+"/logo/", data)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.True(t, strings.HasSuffix(decode[map[string]string](t, rec)["logo"], ".svg"))
	})

	t.Run("owner can be added with a form body", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/users/", map[string]any{"username": "bob"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		userID := decode[struct {
			ID uint `json:"id"`
		}](t, rec).ID

		req := httptest.NewRequest(http.MethodPost, "/api/v1/products/"+itoa(productID)+"/owners/", strings.NewReader("user_id="+itoa(userID)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"message": "User bob added as owner."}`, rec.Body.String())
	})

	t.Run("deleting the product cascades to its projects", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/projects/", map[string]any{
			"name": "Child", "product": productID, "start_date": "2024-01-01",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		projectID := decode[struct {
			ID uint `json:"id"`
		}](t, rec).ID

		rec = do(t, e, http.MethodPost, "/api/v1/project-stages/", map[string]any{
			"name": "Kickoff", "project": projectID, "start_date": "2024-01-02",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = do(t, e, http.MethodGet, "/api/v1/projects/"+itoa(projectID)+"/stages/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]map[string]any](t, rec), 1)

		rec = do(t, e, http.MethodDelete, "/api/v1/products/"+itoa(productID)+"/", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, e, http.MethodGet, "/api/v1/projects/"+itoa(projectID)+"/", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		rec = do(t, e, http.MethodGet, "/api/v1/project-stages/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[[]map[string]any](t, rec))
	})
}

func uploadLogo(t *testing.T, e *echo.Echo, target string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("logo", "logo")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
