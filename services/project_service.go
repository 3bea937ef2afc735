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
	"log/slog"

	"github.com/l3montree-dev/catalog/database/models"
	"github.com/l3montree-dev/catalog/shared"
)

type projectService struct {
	projectRepository       shared.ProjectRepository
	productRepository       shared.ProductRepository
	userRepository          shared.UserRepository
	partnerRepository       shared.PartnerRepository
	projectStatusRepository shared.LookupRepository[models.ProjectStatus]
}

func NewProjectService(
	projectRepository shared.ProjectRepository,
	productRepository shared.ProductRepository,
	userRepository shared.UserRepository,
	partnerRepository shared.PartnerRepository,
	projectStatusRepository shared.LookupRepository[models.ProjectStatus],
) *projectService {
	return &projectService{
		projectRepository:       projectRepository,
		productRepository:       productRepository,
		userRepository:          userRepository,
		partnerRepository:       partnerRepository,
		projectStatusRepository: projectStatusRepository,
	}
}

func (s *projectService) checkReferences(project *models.Project) error {
	if err := checkExists(s.productRepository.Read, project.ProductID, "product"); err != nil {
		return err
	}
	return checkOptionalExists(s.projectStatusRepository.Read, project.StatusID, "status")
}

type resolvedProjectRelations struct {
	curators []models.User
	members  []models.User
	partners []models.Partner
}

func (s *projectService) resolveRelations(relations shared.ProjectRelations) (resolvedProjectRelations, error) {
	var resolved resolvedProjectRelations
	var err error
	if relations.CuratorIDs != nil {
		if resolved.curators, err = resolveAll(s.userRepository.List, relations.CuratorIDs, "curator_ids"); err != nil {
			return resolved, err
		}
	}
	if relations.MemberIDs != nil {
		if resolved.members, err = resolveAll(s.userRepository.List, relations.MemberIDs, "member_ids"); err != nil {
			return resolved, err
		}
	}
	if relations.PartnerIDs != nil {
		if resolved.partners, err = resolveAll(s.partnerRepository.List, relations.PartnerIDs, "partner_ids"); err != nil {
			return resolved, err
		}
	}
	return resolved, nil
}

func (s *projectService) replaceRelations(tx shared.DB, project *models.Project, resolved resolvedProjectRelations) error {
	if resolved.curators != nil {
		if err := s.projectRepository.ReplaceAssociation(tx, project, models.AssociationCurators, resolved.curators); err != nil {
			return err
		}
	}
	if resolved.members != nil {
		if err := s.projectRepository.ReplaceAssociation(tx, project, models.AssociationMembers, resolved.members); err != nil {
			return err
		}
	}
	if resolved.partners != nil {
		if err := s.projectRepository.ReplaceAssociation(tx, project, models.AssociationPartners, resolved.partners); err != nil {
			return err
		}
	}
	return nil
}

func (s *projectService) Create(ctx context.Context, project *models.Project, relations shared.ProjectRelations) error {
	if err := s.checkReferences(project); err != nil {
		return err
	}
	resolved, err := s.resolveRelations(relations)
	if err != nil {
		return err
	}

	err = s.projectRepository.Transaction(func(tx shared.DB) error {
		if err := s.projectRepository.Create(tx, project); err != nil {
			return err
		}
		return s.replaceRelations(tx, project, resolved)
	})
	if err != nil {
		return shared.ToHTTPError(err, "could not create project")
	}

	slog.Info("project created", "projectID", project.ID, "productID", project.ProductID, "name", project.Name)
	return nil
}

func (s *projectService) Update(ctx context.Context, project *models.Project, relations shared.ProjectRelations) error {
	if err := s.checkReferences(project); err != nil {
		return err
	}
	resolved, err := s.resolveRelations(relations)
	if err != nil {
		return err
	}

	err = s.projectRepository.Transaction(func(tx shared.DB) error {
		if err := s.projectRepository.Save(tx, project); err != nil {
			return err
		}
		return s.replaceRelations(tx, project, resolved)
	})
	return shared.ToHTTPError(err, "could not update project")
}

// AddUser adds the user to the curators or members of the project.
func (s *projectService) AddUser(ctx context.Context, projectID uint, association string, userID uint) (models.User, error) {
	if _, err := s.projectRepository.Read(projectID); err != nil {
		return models.User{}, shared.NotFoundError(err, "Project")
	}
	user, err := s.userRepository.Read(userID)
	if err != nil {
		return models.User{}, shared.NotFoundError(err, "User")
	}
	if err := s.projectRepository.AppendUser(nil, projectID, association, &user); err != nil {
		return models.User{}, shared.ToHTTPError(err, "could not add user to project")
	}
	slog.Info("user added to project", "projectID", projectID, "userID", userID, "relation", association)
	return user, nil
}
