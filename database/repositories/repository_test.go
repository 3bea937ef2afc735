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

package repositories

import (
	"testing"
	"time"

	"github.com/l3montree-dev/catalog/database"
	"github.com/l3montree-dev/catalog/database/models"
	"github.com/l3montree-dev/catalog/integrationtestutil"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/l3montree-dev/catalog/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func date(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%idea%", searchPattern("  IDEA "))
	assert.Equal(t, `%50\%\_off\\%`, searchPattern(`50%_off\`))
	assert.Equal(t, "%%", searchPattern(""))
}

func TestGormRepository(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	repository := NewUserRepository(db)

	t.Run("delete of a missing row returns record not found", func(t *testing.T) {
		err := repository.Delete(nil, 4711)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("list keeps the id order and ignores unknown ids", func(t *testing.T) {
		a := models.User{Username: "list-a"}
		b := models.User{Username: "list-b"}
		require.NoError(t, repository.Create(nil, &a))
		require.NoError(t, repository.Create(nil, &b))

		users, err := repository.List([]uint{b.ID, a.ID, 9999})
		require.NoError(t, err)
		assert.Equal(t, []string{"list-a", "list-b"}, utils.Map(users, func(u models.User) string { return u.Username }))
	})

	t.Run("empty id list does not query", func(t *testing.T) {
		users, err := repository.List(nil)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		err := repository.Transaction(func(tx *gorm.DB) error {
			if err := repository.Create(tx, &models.User{Username: "rolled-back"}); err != nil {
				return err
			}
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)

		users, err := repository.FindBySearch("rolled-back")
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("duplicate username is reported as duplicate key", func(t *testing.T) {
		require.NoError(t, repository.Create(nil, &models.User{Username: "unique"}))
		err := repository.Create(nil, &models.User{Username: "unique"})
		assert.True(t, database.IsDuplicateKeyError(err))
	})
}

func TestProductRepository(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	productRepository := NewProductRepository(db)
	projectRepository := NewProjectRepository(db)
	stageRepository := NewProjectStageRepository(db)
	userRepository := NewUserRepository(db)
	statusRepository := NewProductStatusRepository(db)

	t.Run("create and read returns the same name", func(t *testing.T) {
		product := models.Product{Name: "Catalog"}
		require.NoError(t, productRepository.Create(nil, &product))

		read, err := productRepository.ReadWithRelations(product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Catalog", read.Name)
		assert.Empty(t, read.Owners)
	})

	t.Run("adding the same owner twice keeps one relation", func(t *testing.T) {
		product := models.Product{Name: "Owned"}
		require.NoError(t, productRepository.Create(nil, &product))
		owner := models.User{Username: "owner"}
		require.NoError(t, userRepository.Create(nil, &owner))

		require.NoError(t, productRepository.AppendUser(nil, product.ID, models.AssociationOwners, &owner))
		require.NoError(t, productRepository.AppendUser(nil, product.ID, models.AssociationOwners, &owner))

		owners, err := productRepository.ListUsers(product.ID, models.AssociationOwners)
		require.NoError(t, err)
		require.Len(t, owners, 1)
		assert.Equal(t, "owner", owners[0].Username)

		var rows int64
		require.NoError(t, db.Table("product_owners").Where("product_id = ?", product.ID).Count(&rows).Error)
		assert.EqualValues(t, 1, rows)

		curators, err := productRepository.ListUsers(product.ID, models.AssociationCurators)
		require.NoError(t, err)
		assert.Empty(t, curators)
	})

	t.Run("replace with an empty set clears the relation", func(t *testing.T) {
		product := models.Product{Name: "Cleared"}
		require.NoError(t, productRepository.Create(nil, &product))
		curator := models.User{Username: "curator"}
		require.NoError(t, userRepository.Create(nil, &curator))

		require.NoError(t, productRepository.ReplaceAssociation(nil, &product, models.AssociationCurators, []models.User{curator}))
		read, err := productRepository.ReadWithRelations(product.ID)
		require.NoError(t, err)
		assert.Len(t, read.Curators, 1)

		require.NoError(t, productRepository.ReplaceAssociation(nil, &product, models.AssociationCurators, []models.User{}))
		read, err = productRepository.ReadWithRelations(product.ID)
		require.NoError(t, err)
		assert.Empty(t, read.Curators)

		// the user itself survives
		_, err = userRepository.Read(curator.ID)
		assert.NoError(t, err)
	})

	t.Run("deleting a product cascades to its projects and their stages", func(t *testing.T) {
		product := models.Product{Name: "Cascade"}
		require.NoError(t, productRepository.Create(nil, &product))
		project := models.Project{Name: "Child", ProductID: product.ID, StartDate: date(2024, time.January, 1)}
		require.NoError(t, projectRepository.Create(nil, &project))
		stage := models.ProjectStage{Name: "Kickoff", ProjectID: project.ID, StartDate: date(2024, time.January, 2)}
		require.NoError(t, stageRepository.Create(nil, &stage))

		require.NoError(t, productRepository.Delete(nil, product.ID))

		_, err := projectRepository.Read(project.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		_, err = stageRepository.Read(stage.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("deleting a status sets the status of its products to null", func(t *testing.T) {
		status := models.ProductStatus{Lookup: models.Lookup{Name: "Active"}}
		require.NoError(t, statusRepository.Create(nil, &status))
		product := models.Product{Name: "With status", StatusID: &status.ID}
		require.NoError(t, productRepository.Create(nil, &product))

		require.NoError(t, statusRepository.Delete(nil, status.ID))

		read, err := productRepository.Read(product.ID)
		require.NoError(t, err)
		assert.Nil(t, read.StatusID)
	})

	t.Run("filter by status and search", func(t *testing.T) {
		status := models.ProductStatus{Lookup: models.Lookup{Name: "Idea"}}
		require.NoError(t, statusRepository.Create(nil, &status))
		require.NoError(t, productRepository.Create(nil, &models.Product{Name: "Search Engine", StatusID: &status.ID}))
		require.NoError(t, productRepository.Create(nil, &models.Product{Name: "Searchlight"}))
		require.NoError(t, productRepository.Create(nil, &models.Product{Name: "100% Cotton"}))

		products, err := productRepository.FindByFilter(shared.ProductFilter{Search: "SEARCH"})
		require.NoError(t, err)
		assert.Len(t, products, 2)

		products, err = productRepository.FindByFilter(shared.ProductFilter{Search: "search", StatusID: &status.ID})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Search Engine", products[0].Name)

		products, err = productRepository.FindByFilter(shared.ProductFilter{Search: "%"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "100% Cotton", products[0].Name)
	})

	t.Run("update logo of a missing product", func(t *testing.T) {
		err := productRepository.UpdateLogo(nil, 4711, utils.Ptr("product/logo.png"))
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestProjectRepository(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	productRepository := NewProductRepository(db)
	projectRepository := NewProjectRepository(db)
	stageRepository := NewProjectStageRepository(db)
	roleRepository := NewRoleRepository(db)
	projectRoleRepository := NewProjectRoleRepository(db)
	userRepository := NewUserRepository(db)

	first := models.Product{Name: "First"}
	second := models.Product{Name: "Second"}
	require.NoError(t, productRepository.Create(nil, &first))
	require.NoError(t, productRepository.Create(nil, &second))

	a := models.Project{Name: "Alpha", ProductID: first.ID, StartDate: date(2024, time.March, 1)}
	b := models.Project{Name: "Beta", ProductID: second.ID, StartDate: date(2024, time.March, 1)}
	require.NoError(t, projectRepository.Create(nil, &a))
	require.NoError(t, projectRepository.Create(nil, &b))

	t.Run("product filter returns only the projects of that product", func(t *testing.T) {
		projects, err := projectRepository.FindByFilter(shared.ProjectFilter{ProductID: &first.ID})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Alpha", projects[0].Name)
		assert.Equal(t, first.ID, projects[0].ProductID)
	})

	t.Run("start date survives the round trip", func(t *testing.T) {
		read, err := projectRepository.ReadWithRelations(a.ID)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", time.Time(read.StartDate).Format("2006-01-02"))
		assert.Nil(t, read.EndDate)
	})

	t.Run("stages are ordered by start date", func(t *testing.T) {
		require.NoError(t, stageRepository.Create(nil, &models.ProjectStage{Name: "late", ProjectID: a.ID, StartDate: date(2024, time.June, 1)}))
		require.NoError(t, stageRepository.Create(nil, &models.ProjectStage{Name: "early", ProjectID: a.ID, StartDate: date(2024, time.April, 1)}))
		require.NoError(t, stageRepository.Create(nil, &models.ProjectStage{Name: "other", ProjectID: b.ID, StartDate: date(2024, time.May, 1)}))

		stages, err := stageRepository.FindByProjectID(&a.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"early", "late"}, utils.Map(stages, func(s models.ProjectStage) string { return s.Name }))

		all, err := stageRepository.FindByProjectID(nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("a member holds one role per project", func(t *testing.T) {
		member := models.User{Username: "member"}
		require.NoError(t, userRepository.Create(nil, &member))
		lead := models.Role{Lookup: models.Lookup{Name: "Lead"}}
		dev := models.Role{Lookup: models.Lookup{Name: "Developer"}}
		require.NoError(t, roleRepository.Create(nil, &lead))
		require.NoError(t, roleRepository.Create(nil, &dev))

		projectRole := models.ProjectRole{MemberID: member.ID, RoleID: lead.ID, ProjectID: a.ID}
		require.NoError(t, projectRoleRepository.Create(nil, &projectRole))

		err := projectRoleRepository.Create(nil, &models.ProjectRole{MemberID: member.ID, RoleID: dev.ID, ProjectID: a.ID})
		assert.True(t, database.IsDuplicateKeyError(err))

		// the same member may hold a role in another project
		require.NoError(t, projectRoleRepository.Create(nil, &models.ProjectRole{MemberID: member.ID, RoleID: dev.ID, ProjectID: b.ID}))

		found, err := projectRoleRepository.FindByMemberAndProject(member.ID, a.ID)
		require.NoError(t, err)
		assert.Equal(t, projectRole.ID, found.ID)

		roles, err := projectRoleRepository.FindByProjectID(&a.ID)
		require.NoError(t, err)
		require.Len(t, roles, 1)
		require.NotNil(t, roles[0].Member)
		require.NotNil(t, roles[0].Role)
		assert.Equal(t, "member", roles[0].Member.Username)
		assert.Equal(t, "Lead", roles[0].Role.Name)
	})

	t.Run("deleting a project removes its role assignments", func(t *testing.T) {
		require.NoError(t, projectRepository.Delete(nil, b.ID))
		roles, err := projectRoleRepository.FindByProjectID(&b.ID)
		require.NoError(t, err)
		assert.Empty(t, roles)
	})
}

func TestLookupRepository(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	sphereRepository := NewSphereRepository(db)

	require.NoError(t, sphereRepository.Create(nil, &models.Sphere{Lookup: models.Lookup{Name: "Public Sector"}}))
	require.NoError(t, sphereRepository.Create(nil, &models.Sphere{Lookup: models.Lookup{Name: "Health"}}))

	t.Run("names are unique", func(t *testing.T) {
		err := sphereRepository.Create(nil, &models.Sphere{Lookup: models.Lookup{Name: "Health"}})
		assert.True(t, database.IsDuplicateKeyError(err))
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		spheres, err := sphereRepository.FindBySearch("public")
		require.NoError(t, err)
		require.Len(t, spheres, 1)
		assert.Equal(t, "Public Sector", spheres[0].Name)
	})

	t.Run("empty search lists all", func(t *testing.T) {
		spheres, err := sphereRepository.FindBySearch("")
		require.NoError(t, err)
		assert.Len(t, spheres, 2)
	})
}
