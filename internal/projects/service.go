package projects

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/devfolio/devfolio-backend/pkg/db"
	"github.com/devfolio/devfolio-backend/pkg/db/models"
	pkgerrors "github.com/devfolio/devfolio-backend/pkg/errors"
	"github.com/devfolio/devfolio-backend/pkg/pagination"
)

type repository interface {
	Create(ctx context.Context, dto CreateProjectDTO) (*models.Project, error)
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]models.Project, error)
	FindByID(ctx context.Context, projectID, userID int64) (*models.Project, error)
	Update(ctx context.Context, projectID, userID int64, dto UpdateProjectDTO) (*models.Project, error)
	Delete(ctx context.Context, projectID, userID int64) (int64, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// Service implements the portfolio project operations.
type Service struct {
	repo  repository
	users userFinder
}

// NewService builds a projects service with the required dependencies.
func NewService(repo repository, users userFinder) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("projects repository required")
	}
	if users == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &Service{repo: repo, users: users}, nil
}

// Create persists a new project for an existing user. A missing owner maps
// to a validation error; the FK constraint backstops the pre-check race.
func (s *Service) Create(ctx context.Context, dto CreateProjectDTO) (*ProjectDTO, error) {
	if _, err := s.users.FindByID(ctx, dto.UserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "user does not exist").
				WithDetails(map[string]any{"user_id": dto.UserID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check project owner")
	}

	project, err := s.repo.Create(ctx, dto)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "user does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist project")
	}
	return FromModel(project), nil
}

// List returns a page of the user's projects. An unknown user yields an
// empty page rather than an error.
func (s *Service) List(ctx context.Context, userID int64, offset, limit int) ([]ProjectDTO, error) {
	p := pagination.Params{Offset: offset, Limit: limit}.Normalize()

	list, err := s.repo.ListByUser(ctx, userID, p.Offset, p.Limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list projects")
	}

	out := make([]ProjectDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out, nil
}

// Get loads a single project scoped to its owner.
func (s *Service) Get(ctx context.Context, projectID, userID int64) (*ProjectDTO, error) {
	project, err := s.repo.FindByID(ctx, projectID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load project")
	}
	return FromModel(project), nil
}

// Update applies a partial update to the user's project.
func (s *Service) Update(ctx context.Context, projectID, userID int64, dto UpdateProjectDTO) (*ProjectDTO, error) {
	project, err := s.repo.Update(ctx, projectID, userID, dto)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update project")
	}
	return FromModel(project), nil
}

// Delete removes the user's project.
func (s *Service) Delete(ctx context.Context, projectID, userID int64) error {
	rows, err := s.repo.Delete(ctx, projectID, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete project")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
	}
	return nil
}
