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
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/l3montree-dev/catalog/database/models"
	"github.com/l3montree-dev/catalog/database/repositories"
	"github.com/l3montree-dev/catalog/dtos"
	"github.com/l3montree-dev/catalog/integrationtestutil"
	"github.com/l3montree-dev/catalog/services"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/l3montree-dev/catalog/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type testControllers struct {
	product     *ProductController
	project     *ProjectController
	projectRole *ProjectRoleController
	partner     *PartnerController
	role        *RoleController
	user        *UserController
}

func newTestControllers(t *testing.T, db *gorm.DB) testControllers {
	t.Helper()

	productRepository := repositories.NewProductRepository(db)
	projectRepository := repositories.NewProjectRepository(db)
	projectStageRepository := repositories.NewProjectStageRepository(db)
	projectRoleRepository := repositories.NewProjectRoleRepository(db)
	userRepository := repositories.NewUserRepository(db)
	partnerRepository := repositories.NewPartnerRepository(db)
	roleRepository := repositories.NewRoleRepository(db)

	fs, err := storage.NewFilesystemStorage(t.TempDir(), "/media/")
	require.NoError(t, err)
	logoService := services.NewLogoService(fs)

	productService := services.NewProductService(productRepository, userRepository, partnerRepository,
		repositories.NewSphereRepository(db), repositories.NewProductStatusRepository(db), repositories.NewSalesModelRepository(db))
	projectService := services.NewProjectService(projectRepository, productRepository, userRepository, partnerRepository,
		repositories.NewProjectStatusRepository(db))
	projectRoleService := services.NewProjectRoleService(projectRoleRepository, projectRepository, userRepository, roleRepository)

	return testControllers{
		product:     NewProductController(productRepository, projectRepository, productService, logoService),
		project:     NewProjectController(projectRepository, projectStageRepository, projectRoleRepository, projectService, logoService),
		projectRole: NewProjectRoleController(projectRoleRepository, projectRoleService),
		partner:     NewPartnerController(partnerRepository, logoService),
		role:        NewRoleController(roleRepository),
		user:        NewUserController(userRepository),
	}
}

func newJSONContext(t *testing.T, method string, target string, body any) (shared.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func withID(ctx shared.Context, id uint) shared.Context {
	ctx.SetParamNames("id")
	ctx.SetParamValues(strconv.FormatUint(uint64(id), 10))
	return ctx
}

func newLogoContext(t *testing.T, data []byte) (shared.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	assert.Equal(t, code, he.Code)
	if message != "" {
		assert.Equal(t, message, he.Message)
	}
}

var pngLogo = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestProductController(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	c := newTestControllers(t, db)

	alice := models.User{Username: "alice"}
	require.NoError(t, db.Create(&alice).Error)

	var product dtos.ProductDTO
	t.Run("create and retrieve returns the same name", func(t *testing.T) {
		ctx, rec := newJSONContext(t, http.MethodPost, "/products/", map[string]any{"name": "Catalog"})
		require.NoError(t, c.product.Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))

		ctx, rec = newJSONContext(t, http.MethodGet, "/", nil)
		require.NoError(t, c.product.Read(withID(ctx, product.ID)))
		var read dtos.ProductDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &read))
		assert.Equal(t, "Catalog", read.Name)
		assert.NotNil(t, read.Owners)
	})

	t.Run("create without name is a bad request", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, "/products/", map[string]any{"description": "no name"})
		assertHTTPError(t, c.product.Create(ctx), http.StatusBadRequest, "")
	})

	t.Run("non numeric id is not found", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodGet, "/", nil)
		ctx.SetParamNames("id")
		ctx.SetParamValues("abc")
		assertHTTPError(t, c.product.Read(ctx), http.StatusNotFound, "Product not found")
	})

	t.Run("invalid status filter is a bad request", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodGet, "/products/?status=abc", nil)
		assertHTTPError(t, c.product.List(ctx), http.StatusBadRequest, "")
	})

	t.Run("add owner", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, "/", map[string]any{})
		assertHTTPError(t, c.product.AddOwner(withID(ctx, product.ID)), http.StatusBadRequest, "user_id is required")

		ctx, _ = newJSONContext(t, http.MethodPost, "/", map[string]any{"user_id": 4711})
		assertHTTPError(t, c.product.AddOwner(withID(ctx, product.ID)), http.StatusNotFound, "User not found")

		ctx, _ = newJSONContext(t, http.MethodPost, "/", map[string]any{"user_id": alice.ID})
		assertHTTPError(t, c.product.AddOwner(withID(ctx, 4711)), http.StatusNotFound, "Product not found")

		for range 2 {
			ctx, rec := newJSONContext(t, http.MethodPost, "/", map[string]any{"user_id": strconv.FormatUint(uint64(alice.ID), 10)})
			require.NoError(t, c.product.AddOwner(withID(ctx, product.ID)))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"message": "User alice added as owner."}`, rec.Body.String())
		}

		ctx, rec := newJSONContext(t, http.MethodGet, "/", nil)
		require.NoError(t, c.product.Owners(withID(ctx, product.ID)))
		var owners []dtos.UserSummaryDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &owners))
		assert.Equal(t, []dtos.UserSummaryDTO{{ID: alice.ID, Username: "alice"}}, owners)
	})

	t.Run("zero user_id is treated as missing", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, "/", map[string]any{"user_id": 0})
		assertHTTPError(t, c.product.AddOwner(withID(ctx, product.ID)), http.StatusBadRequest, "user_id is required")

		ctx, _ = newJSONContext(t, http.MethodPost, "/", map[string]any{"user_id": "0"})
		assertHTTPError(t, c.product.AddOwner(withID(ctx, product.ID)), http.StatusBadRequest, "user_id is required")
	})

	t.Run("add owner from a form body", func(t *testing.T) {
		form := url.Values{"user_id": {strconv.FormatUint(uint64(alice.ID), 10)}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		require.NoError(t, c.product.AddOwner(withID(ctx, product.ID)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message": "User alice added as owner."}`, rec.Body.String())
	})

	t.Run("patch with null clears the status", func(t *testing.T) {
		status := models.ProductStatus{Lookup: models.Lookup{Name: "active"}}
		require.NoError(t, db.Create(&status).Error)

		ctx, rec := newJSONContext(t, http.MethodPatch, "/", map[string]any{"status": status.ID})
		require.NoError(t, c.product.Patch(withID(ctx, product.ID)))
		var patched dtos.ProductDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patched))
		require.NotNil(t, patched.Status)
		assert.Equal(t, status.ID, *patched.Status)

		ctx, rec = newJSONContext(t, http.MethodPatch, "/", map[string]any{"name": "Catalog"})
		require.NoError(t, c.product.Patch(withID(ctx, product.ID)))
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patched))
		assert.NotNil(t, patched.Status)

		ctx, rec = newJSONContext(t, http.MethodPatch, "/", map[string]any{"status": nil})
		require.NoError(t, c.product.Patch(withID(ctx, product.ID)))
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patched))
		assert.Nil(t, patched.Status)

		var read models.Product
		require.NoError(t, db.First(&read, product.ID).Error)
		assert.Nil(t, read.StatusID)
	})

	t.Run("add curator message", func(t *testing.T) {
		ctx, rec := newJSONContext(t, http.MethodPost, "/", map[string]any{"user_id": alice.ID})
		require.NoError(t, c.product.AddCurator(withID(ctx, product.ID)))
		assert.JSONEq(t, `{"message": "User alice added as curator."}`, rec.Body.String())
	})

	t.Run("logo larger than 2 MiB is rejected", func(t *testing.T) {
		data := append(append([]byte{}, pngLogo...), make([]byte, storage.MaxLogoSize)...)
		ctx, _ := newLogoContext(t, data)
		assertHTTPError(t, c.product.UploadLogo(withID(ctx, product.ID)), http.StatusBadRequest, "")

		var read models.Product
		require.NoError(t, db.First(&read, product.ID).Error)
		assert.Nil(t, read.Logo)
	})

	t.Run("logo which is not an image is rejected", func(t *testing.T) {
		ctx, _ := newLogoContext(t, []byte("plain text"))
		assertHTTPError(t, c.product.UploadLogo(withID(ctx, product.ID)), http.StatusBadRequest, "")
	})

	t.Run("upload and delete logo", func(t *testing.T) {
		ctx, rec := newLogoContext(t, pngLogo)
		require.NoError(t, c.product.UploadLogo(withID(ctx, product.ID)))
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Regexp(t, `^/media/products/\d+-catalog-[0-9a-f-]+\.png$`, resp["logo"])

		ctx, rec = newJSONContext(t, http.MethodDelete, "/", nil)
		require.NoError(t, c.product.DeleteLogo(withID(ctx, product.ID)))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		ctx, rec := newJSONContext(t, http.MethodDelete, "/", nil)
		require.NoError(t, c.product.Delete(withID(ctx, product.ID)))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		ctx, _ = newJSONContext(t, http.MethodGet, "/", nil)
		assertHTTPError(t, c.product.Read(withID(ctx, product.ID)), http.StatusNotFound, "Product not found")
	})
}

func TestProjectController(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	c := newTestControllers(t, db)

	first := models.Product{Name: "First"}
	second := models.Product{Name: "Second"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	for _, p := range []models.Project{
		{Name: "Alpha", ProductID: first.ID, StartDate: datatypes.Date(time.Now())},
		{Name: "Beta", ProductID: second.ID, StartDate: datatypes.Date(time.Now())},
		{Name: "Gamma", ProductID: first.ID, StartDate: datatypes.Date(time.Now())},
	} {
		require.NoError(t, db.Omit("Curators", "Members", "Partners").Create(&p).Error)
	}

	t.Run("product_id filter returns only the projects of that product", func(t *testing.T) {
		ctx, rec := newJSONContext(t, http.MethodGet, "/projects/?product_id="+strconv.FormatUint(uint64(first.ID), 10), nil)
		require.NoError(t, c.project.List(ctx))

		var projects []dtos.ProjectDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
		require.Len(t, projects, 2)
		for _, p := range projects {
			assert.Equal(t, first.ID, p.Product)
		}
	})

	t.Run("create validates the date format", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, "/projects/", map[string]any{
			"name": "Delta", "product": first.ID, "start_date": "01.02.2024",
		})
		assertHTTPError(t, c.project.Create(ctx), http.StatusBadRequest, "")
	})

	t.Run("create with unknown product is a bad request", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, "/projects/", map[string]any{
			"name": "Delta", "product": 4711, "start_date": "2024-02-01",
		})
		assertHTTPError(t, c.project.Create(ctx), http.StatusBadRequest, "invalid product: 4711 does not exist")
	})

	t.Run("create returns the stored dates", func(t *testing.T) {
		ctx, rec := newJSONContext(t, http.MethodPost, "/projects/", map[string]any{
			"name": "Delta", "product": first.ID, "start_date": "2024-02-01", "end_date": "2024-12-31",
		})
		require.NoError(t, c.project.Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var project dtos.ProjectDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
		assert.Equal(t, "2024-02-01", project.StartDate)
		require.NotNil(t, project.EndDate)
		assert.Equal(t, "2024-12-31", *project.EndDate)
	})
}

func TestProjectRoleController(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	c := newTestControllers(t, db)

	product := models.Product{Name: "Parent"}
	require.NoError(t, db.Create(&product).Error)
	project := models.Project{Name: "Pilot", ProductID: product.ID, StartDate: datatypes.Date(time.Now())}
	require.NoError(t, db.Create(&project).Error)
	member := models.User{Username: "member"}
	require.NoError(t, db.Create(&member).Error)
	role := models.Role{Lookup: models.Lookup{Name: "Lead"}}
	require.NoError(t, db.Create(&role).Error)

	body := map[string]any{"member": member.ID, "role": role.ID, "project": project.ID}

	ctx, rec := newJSONContext(t, http.MethodPost, "/project-roles/", body)
	require.NoError(t, c.projectRole.Create(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created dtos.ProjectRoleDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "member", created.Member.Username)
	assert.Equal(t, "Lead", created.Role.Name)
	assert.Equal(t, project.ID, created.Project)

	t.Run("the same member and project cannot be assigned twice", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, "/project-roles/", body)
		assertHTTPError(t, c.projectRole.Create(ctx), http.StatusBadRequest, "the member already has a role in this project")
	})

	t.Run("list by project", func(t *testing.T) {
		ctx, rec := newJSONContext(t, http.MethodGet, "/project-roles/?project_id="+strconv.FormatUint(uint64(project.ID), 10), nil)
		require.NoError(t, c.projectRole.List(ctx))
		var roles []dtos.ProjectRoleDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roles))
		assert.Len(t, roles, 1)
	})
}

func TestLookupController(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	c := newTestControllers(t, db)

	ctx, rec := newJSONContext(t, http.MethodPost, "/roles/", map[string]any{"name": "Lead"})
	require.NoError(t, c.role.Create(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)

	t.Run("names are unique", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, "/roles/", map[string]any{"name": "Lead"})
		assertHTTPError(t, c.role.Create(ctx), http.StatusBadRequest, "an entry with these values already exists")
	})

	t.Run("search", func(t *testing.T) {
		ctx, rec := newJSONContext(t, http.MethodGet, "/roles/?search=LEA", nil)
		require.NoError(t, c.role.List(ctx))
		var roles []dtos.LookupDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roles))
		require.Len(t, roles, 1)
		assert.Equal(t, "Lead", roles[0].Name)
	})

	t.Run("delete a missing role", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodDelete, "/", nil)
		assertHTTPError(t, c.role.Delete(withID(ctx, 4711)), http.StatusNotFound, "")
	})
}
