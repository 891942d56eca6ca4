package users

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/devfolio/devfolio-backend/pkg/db"
	"github.com/devfolio/devfolio-backend/pkg/db/models"
	pkgerrors "github.com/devfolio/devfolio-backend/pkg/errors"
	"github.com/devfolio/devfolio-backend/pkg/pagination"
)

const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

type repository interface {
	Create(ctx context.Context, dto CreateUserDTO) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, username, email string) (bool, bool, error)
	Update(ctx context.Context, id int64, dto UpdateUserDTO) (*models.User, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service implements the user-facing account operations.
type Service struct {
	repo repository
}

// NewService builds a users service with the required dependencies.
func NewService(repo repository) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &Service{repo: repo}, nil
}

// Create registers a new account. Username and email must be unused; the
// pre-check races with concurrent inserts, so the storage unique constraint
// is mapped to the same conflict error.
func (s *Service) Create(ctx context.Context, dto CreateUserDTO) (*UserDTO, error) {
	usernameTaken, emailTaken, err := s.repo.Exists(ctx, dto.Username, dto.Email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check user uniqueness")
	}
	if usernameTaken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
	}
	if emailTaken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}

	user, err := s.repo.Create(ctx, dto)
	if err != nil {
		return nil, mapCreateError(err)
	}
	return FromModel(user), nil
}

// List returns a page of users ordered by id.
func (s *Service) List(ctx context.Context, offset, limit int) ([]UserDTO, error) {
	p := pagination.Params{Offset: offset, Limit: limit}.Normalize()

	list, err := s.repo.List(ctx, p.Offset, p.Limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}

	out := make([]UserDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out, nil
}

// Get loads a single user by id.
func (s *Service) Get(ctx context.Context, id int64) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return FromModel(user), nil
}

// Update applies a partial update. Fields left nil keep their stored values;
// a new username or email must not belong to another account.
func (s *Service) Update(ctx context.Context, id int64, dto UpdateUserDTO) (*UserDTO, error) {
	if dto.Username != nil {
		if err := s.checkAvailable(ctx, id, *dto.Username, ""); err != nil {
			return nil, err
		}
	}
	if dto.Email != nil {
		if err := s.checkAvailable(ctx, id, "", *dto.Email); err != nil {
			return nil, err
		}
	}

	user, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, mapCreateError(err)
	}
	return FromModel(user), nil
}

// Delete removes the user and, through the FK constraint, their projects.
func (s *Service) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete user")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return nil
}

func (s *Service) checkAvailable(ctx context.Context, selfID int64, username, email string) error {
	if username != "" {
		existing, err := s.repo.FindByUsername(ctx, username)
		if err != nil && err != gorm.ErrRecordNotFound {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check username")
		}
		if err == nil && existing.ID != selfID {
			return pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
		}
	}
	if email != "" {
		existing, err := s.repo.FindByEmail(ctx, email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check email")
		}
		if err == nil && existing.ID != selfID {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
	}
	return nil
}

func mapCreateError(err error) error {
	switch {
	case db.IsUniqueViolation(err, usernameConstraint):
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "username already taken")
	case db.IsUniqueViolation(err, emailConstraint):
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "email already registered")
	case db.IsUniqueViolation(err, ""):
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "user already exists")
	default:
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist user")
	}
}
