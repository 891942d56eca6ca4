package projects

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio-backend/pkg/db/models"
	pkgerrors "github.com/devfolio/devfolio-backend/pkg/errors"
)

type stubProjectsRepo struct {
	create     func(ctx context.Context, dto CreateProjectDTO) (*models.Project, error)
	listByUser func(ctx context.Context, userID int64, offset, limit int) ([]models.Project, error)
	findByID   func(ctx context.Context, projectID, userID int64) (*models.Project, error)
	update     func(ctx context.Context, projectID, userID int64, dto UpdateProjectDTO) (*models.Project, error)
	delete     func(ctx context.Context, projectID, userID int64) (int64, error)
}

func (s *stubProjectsRepo) Create(ctx context.Context, dto CreateProjectDTO) (*models.Project, error) {
	return s.create(ctx, dto)
}

func (s *stubProjectsRepo) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]models.Project, error) {
	return s.listByUser(ctx, userID, offset, limit)
}

func (s *stubProjectsRepo) FindByID(ctx context.Context, projectID, userID int64) (*models.Project, error) {
	return s.findByID(ctx, projectID, userID)
}

func (s *stubProjectsRepo) Update(ctx context.Context, projectID, userID int64, dto UpdateProjectDTO) (*models.Project, error) {
	return s.update(ctx, projectID, userID, dto)
}

func (s *stubProjectsRepo) Delete(ctx context.Context, projectID, userID int64) (int64, error) {
	return s.delete(ctx, projectID, userID)
}

type stubUserFinder struct {
	findByID func(ctx context.Context, id int64) (*models.User, error)
}

func (s *stubUserFinder) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	return &models.User{ID: id}, nil
}

func TestServiceCreateSuccess(t *testing.T) {
	repo := &stubProjectsRepo{
		create: func(ctx context.Context, dto CreateProjectDTO) (*models.Project, error) {
			m := dto.ToModel()
			m.ID = 7
			m.CreatedAt = time.Now()
			return m, nil
		},
	}
	svc, err := NewService(repo, &stubUserFinder{})
	require.NoError(t, err)

	got, err := svc.Create(context.Background(), CreateProjectDTO{
		UserID:      1,
		ProjectName: "portfolio",
		Description: "site",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.True(t, got.IsActive)
	assert.Nil(t, got.DescriptionEnhanced)
}

func TestServiceCreateUnknownOwner(t *testing.T) {
	repo := &stubProjectsRepo{
		create: func(ctx context.Context, dto CreateProjectDTO) (*models.Project, error) {
			t.Fatal("create should not be reached for unknown owner")
			return nil, nil
		},
	}
	users := &stubUserFinder{
		findByID: func(ctx context.Context, id int64) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, err := NewService(repo, users)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateProjectDTO{UserID: 999, ProjectName: "x", Description: "y"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestServiceListNormalizesPagination(t *testing.T) {
	var gotOffset, gotLimit int
	repo := &stubProjectsRepo{
		listByUser: func(ctx context.Context, userID int64, offset, limit int) ([]models.Project, error) {
			gotOffset, gotLimit = offset, limit
			return nil, nil
		},
	}
	svc, err := NewService(repo, &stubUserFinder{})
	require.NoError(t, err)

	out, err := svc.List(context.Background(), 1, -3, -1)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Zero(t, gotOffset)
	assert.Equal(t, 100, gotLimit)

	_, err = svc.List(context.Background(), 1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, gotOffset)
	assert.Zero(t, gotLimit)
}

func TestServiceGetNotFound(t *testing.T) {
	repo := &stubProjectsRepo{
		findByID: func(ctx context.Context, projectID, userID int64) (*models.Project, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, err := NewService(repo, &stubUserFinder{})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), 1, 2)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceUpdatePassesDTOThrough(t *testing.T) {
	var gotDTO UpdateProjectDTO
	now := time.Now()
	repo := &stubProjectsRepo{
		update: func(ctx context.Context, projectID, userID int64, dto UpdateProjectDTO) (*models.Project, error) {
			gotDTO = dto
			return &models.Project{ID: projectID, UserID: userID, ProjectName: "kept", Description: *dto.Description, UpdatedAt: &now}, nil
		},
	}
	svc, err := NewService(repo, &stubUserFinder{})
	require.NoError(t, err)

	desc := "new description"
	got, err := svc.Update(context.Background(), 5, 1, UpdateProjectDTO{Description: &desc})
	require.NoError(t, err)
	require.NotNil(t, gotDTO.Description)
	assert.Equal(t, "new description", got.Description)
	assert.NotNil(t, got.UpdatedAt)
}

func TestServiceDeleteNotFound(t *testing.T) {
	repo := &stubProjectsRepo{
		delete: func(ctx context.Context, projectID, userID int64) (int64, error) {
			return 0, nil
		},
	}
	svc, err := NewService(repo, &stubUserFinder{})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), 5, 1)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestNewServiceRequiresDeps(t *testing.T) {
	if _, err := NewService(nil, &stubUserFinder{}); err == nil {
		t.Fatal("expected error for nil repo")
	}
	if _, err := NewService(&stubProjectsRepo{}, nil); err == nil {
		t.Fatal("expected error for nil users repo")
	}
}
