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
	"context"
	"io"

	"github.com/l3montree-dev/catalog/database/models"
	"github.com/l3montree-dev/catalog/utils"
)

type ProductFilter struct {
	StatusID *uint
	Search   string
}

type ProjectFilter struct {
	StatusID  *uint
	ProductID *uint
	Search    string
}

type UserRepository interface {
	utils.Repository[uint, models.User, DB]
	FindBySearch(search string) ([]models.User, error)
}

type LookupRepository[T utils.Tabler] interface {
	utils.Repository[uint, T, DB]
	FindBySearch(search string) ([]T, error)
}

type PartnerRepository interface {
	utils.Repository[uint, models.Partner, DB]
	FindBySearch(search string) ([]models.Partner, error)
	UpdateLogo(tx DB, id uint, logo *string) error
}

type ProductRepository interface {
	utils.Repository[uint, models.Product, DB]
	ReadWithRelations(id uint) (models.Product, error)
	FindByFilter(filter ProductFilter) ([]models.Product, error)
	AppendUser(tx DB, productID uint, association string, user *models.User) error
	ListUsers(productID uint, association string) ([]models.User, error)
	ReplaceAssociation(tx DB, product *models.Product, association string, values any) error
	UpdateLogo(tx DB, id uint, logo *string) error
}

type ProjectRepository interface {
	utils.Repository[uint, models.Project, DB]
	ReadWithRelations(id uint) (models.Project, error)
	FindByFilter(filter ProjectFilter) ([]models.Project, error)
	AppendUser(tx DB, projectID uint, association string, user *models.User) error
	ListUsers(projectID uint, association string) ([]models.User, error)
	ReplaceAssociation(tx DB, project *models.Project, association string, values any) error
	UpdateLogo(tx DB, id uint, logo *string) error
}

type ProjectStageRepository interface {
	utils.Repository[uint, models.ProjectStage, DB]
	FindByProjectID(projectID *uint) ([]models.ProjectStage, error)
}

type ProjectRoleRepository interface {
	utils.Repository[uint, models.ProjectRole, DB]
	ReadWithRelations(id uint) (models.ProjectRole, error)
	FindByProjectID(projectID *uint) ([]models.ProjectRole, error)
	FindByMemberAndProject(memberID, projectID uint) (models.ProjectRole, error)
}

// ProductRelations holds the identifier sets of a product write request.
// A nil slice leaves the relation untouched, an empty slice clears it.
type ProductRelations struct {
	OwnerIDs   []uint
	CuratorIDs []uint
	PartnerIDs []uint
	SphereIDs  []uint
}

type ProjectRelations struct {
	CuratorIDs []uint
	MemberIDs  []uint
	PartnerIDs []uint
}

type ProductService interface {
	Create(ctx context.Context, product *models.Product, relations ProductRelations) error
	Update(ctx context.Context, product *models.Product, relations ProductRelations) error
	AddUser(ctx context.Context, productID uint, association string, userID uint) (models.User, error)
}

type ProjectService interface {
	Create(ctx context.Context, project *models.Project, relations ProjectRelations) error
	Update(ctx context.Context, project *models.Project, relations ProjectRelations) error
	AddUser(ctx context.Context, projectID uint, association string, userID uint) (models.User, error)
}

type ProjectStageService interface {
	Create(ctx context.Context, stage *models.ProjectStage) error
	Update(ctx context.Context, stage *models.ProjectStage) error
}

type ProjectRoleService interface {
	Create(ctx context.Context, projectRole *models.ProjectRole) error
	Update(ctx context.Context, projectRole *models.ProjectRole) error
}

// LogoOwner is implemented by every model which carries a logo.
type LogoOwner interface {
	utils.Tabler
	GetID() uint
	GetName() string
	GetLogo() *string
	SetLogo(key *string)
}

type LogoService interface {
	// Store validates data and saves it as the new logo object of owner.
	// It returns the object key, the caller persists it.
	Store(ctx context.Context, owner LogoOwner, data []byte) (string, error)
	// Discard removes a no longer referenced logo object. Failures are only logged.
	Discard(ctx context.Context, key *string)
	URL(key *string) *string
}

// LogoStorage persists logo objects under a key.
type LogoStorage interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
