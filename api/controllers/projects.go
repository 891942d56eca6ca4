package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/devfolio-backend/api/responses"
	"github.com/devfolio/devfolio-backend/api/validators"
	"github.com/devfolio/devfolio-backend/internal/projects"
	pkgerrors "github.com/devfolio/devfolio-backend/pkg/errors"
	"github.com/devfolio/devfolio-backend/pkg/logger"
	"github.com/devfolio/devfolio-backend/pkg/pagination"
	"github.com/devfolio/devfolio-backend/pkg/types"
)

// ProjectsService is the surface the project controllers need.
type ProjectsService interface {
	Create(ctx context.Context, dto projects.CreateProjectDTO) (*projects.ProjectDTO, error)
	List(ctx context.Context, userID int64, offset, limit int) ([]projects.ProjectDTO, error)
	Get(ctx context.Context, projectID, userID int64) (*projects.ProjectDTO, error)
	Update(ctx context.Context, projectID, userID int64, dto projects.UpdateProjectDTO) (*projects.ProjectDTO, error)
	Delete(ctx context.Context, projectID, userID int64) error
}

type createProjectRequest struct {
	UserID      int64    `json:"user_id" validate:"required,gt=0"`
	ProjectName string   `json:"project_name" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"required"`
	Highlights  []string `json:"highlights,omitempty"`

	ProjectURL       *string     `json:"project_url,omitempty" validate:"omitempty,url,max=500"`
	GithubURL        *string     `json:"github_url,omitempty" validate:"omitempty,url,max=500"`
	StartDate        *types.Date `json:"start_date,omitempty"`
	EndDate          *types.Date `json:"end_date,omitempty"`
	TechnologiesUsed []string    `json:"technologies_used,omitempty"`

	IsFeatured   *bool `json:"is_featured,omitempty"`
	DisplayOrder *int  `json:"display_order,omitempty" validate:"omitempty,min=0"`
	IsActive     *bool `json:"is_active,omitempty"`
}

func (r createProjectRequest) toDTO() projects.CreateProjectDTO {
	return projects.CreateProjectDTO{
		UserID:           r.UserID,
		ProjectName:      strings.TrimSpace(r.ProjectName),
		Description:      r.Description,
		Highlights:       types.StringList(r.Highlights),
		ProjectURL:       r.ProjectURL,
		GithubURL:        r.GithubURL,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		TechnologiesUsed: types.StringList(r.TechnologiesUsed),
		IsFeatured:       r.IsFeatured,
		DisplayOrder:     r.DisplayOrder,
		IsActive:         r.IsActive,
	}
}

type updateProjectRequest struct {
	ProjectName *string   `json:"project_name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string   `json:"description,omitempty" validate:"omitempty,min=1"`
	Highlights  *[]string `json:"highlights,omitempty"`

	ProjectURL       *string     `json:"project_url,omitempty" validate:"omitempty,url,max=500"`
	GithubURL        *string     `json:"github_url,omitempty" validate:"omitempty,url,max=500"`
	StartDate        *types.Date `json:"start_date,omitempty"`
	EndDate          *types.Date `json:"end_date,omitempty"`
	TechnologiesUsed *[]string   `json:"technologies_used,omitempty"`

	IsFeatured   *bool `json:"is_featured,omitempty"`
	DisplayOrder *int  `json:"display_order,omitempty" validate:"omitempty,min=0"`
	IsActive     *bool `json:"is_active,omitempty"`
}

func (r updateProjectRequest) toDTO() projects.UpdateProjectDTO {
	dto := projects.UpdateProjectDTO{
		ProjectName:  r.ProjectName,
		Description:  r.Description,
		ProjectURL:   r.ProjectURL,
		GithubURL:    r.GithubURL,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		IsFeatured:   r.IsFeatured,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}
	if r.Highlights != nil {
		list := types.StringList(*r.Highlights)
		dto.Highlights = &list
	}
	if r.TechnologiesUsed != nil {
		list := types.StringList(*r.TechnologiesUsed)
		dto.TechnologiesUsed = &list
	}
	return dto
}

// ProjectCreate persists a new portfolio project for an existing user.
func ProjectCreate(svc ProjectsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "projects service unavailable"))
			return
		}

		var payload createProjectRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		project, err := svc.Create(r.Context(), payload.toDTO())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, project)
	}
}

// ProjectList returns a page of the user's projects ordered for display.
func ProjectList(svc ProjectsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "projects service unavailable"))
			return
		}

		userID, err := validators.RequireQueryID(r, "user_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		skip, err := validators.ParseQueryInt(r, "skip", 0, 0, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 0, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.List(r.Context(), userID, skip, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// ProjectDetail loads one project scoped to its owner.
func ProjectDetail(svc ProjectsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "projects service unavailable"))
			return
		}

		projectID, userID, err := projectScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		project, err := svc.Get(r.Context(), projectID, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, project)
	}
}

// ProjectUpdate applies a partial update scoped to the owner.
func ProjectUpdate(svc ProjectsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "projects service unavailable"))
			return
		}

		projectID, userID, err := projectScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProjectRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		project, err := svc.Update(r.Context(), projectID, userID, payload.toDTO())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, project)
	}
}

// ProjectDelete removes one project scoped to the owner.
func ProjectDelete(svc ProjectsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "projects service unavailable"))
			return
		}

		projectID, userID, err := projectScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), projectID, userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func projectScope(r *http.Request) (projectID, userID int64, err error) {
	projectID, err = validators.ParsePathID(chi.URLParam(r, "projectId"), "projectId")
	if err != nil {
		return 0, 0, err
	}
	userID, err = validators.RequireQueryID(r, "user_id")
	if err != nil {
		return 0, 0, err
	}
	return projectID, userID, nil
}
