package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"
)

// ProjectHandler handles project catalog endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProjectRequest represents a project creation request. List fields
// accept JSON arrays or pre-serialized array strings.
type CreateProjectRequest struct {
	ID          string           `json:"id"`
	Title       string           `json:"title" validate:"required"`
	Client      string           `json:"client" validate:"required"`
	Agency      string           `json:"agency" validate:"required"`
	Type        model.StringList `json:"type" validate:"required"`
	Year        int              `json:"year" validate:"required"`
	Duration    *string          `json:"duration"`
	Tools       model.StringList `json:"tools"`
	Description string           `json:"description" validate:"required"`
	Results     model.StringList `json:"results"`
	Published   *bool            `json:"published"`
}

// UpdateProjectRequest represents a partial project update. Absent fields
// are left unchanged.
type UpdateProjectRequest struct {
	Title       *string           `json:"title"`
	Client      *string           `json:"client"`
	Agency      *string           `json:"agency"`
	Type        *model.StringList `json:"type"`
	Year        *int              `json:"year"`
	Duration    *string           `json:"duration"`
	Tools       *model.StringList `json:"tools"`
	Description *string           `json:"description"`
	Results     *model.StringList `json:"results"`
	Published   *bool             `json:"published"`
}

// ListResponse represents one page of the project listing.
type ListResponse struct {
	Projects   []model.Project     `json:"projects"`
	Pagination *service.Pagination `json:"pagination"`
}

// List godoc
// @Summary List projects with filtering and pagination
// @Tags projects
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param per_page query int false "Page size"
// @Param client query string false "Client substring"
// @Param agency query string false "Agency substring"
// @Param type query string false "Exact type tag"
// @Param year query int false "Exact year"
// @Param search query string false "Free-text search"
// @Param published_only query bool false "Restrict to published projects (default true)"
// @Success 200 {object} ListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 20)

	filter := repository.ProjectFilter{
		Client:        c.QueryParam("client"),
		Agency:        c.QueryParam("agency"),
		Type:          c.QueryParam("type"),
		Year:          queryInt(c, "year", 0),
		Search:        c.QueryParam("search"),
		PublishedOnly: queryBool(c, "published_only", true),
	}

	projects, pagination, err := h.projectService.List(c.Request().Context(), filter, page, perPage)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ListResponse{
		Projects:   projects,
		Pagination: pagination,
	})
}

// Get godoc
// @Summary Fetch one project with its gallery
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projectService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"project": project})
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProjectRequest true "Project fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}
	project := &model.Project{
		ID:          req.ID,
		Title:       req.Title,
		Client:      req.Client,
		Agency:      req.Agency,
		Type:        req.Type,
		Year:        req.Year,
		Duration:    req.Duration,
		Tools:       req.Tools,
		Description: req.Description,
		Results:     req.Results,
		Published:   published,
	}

	created, err := h.projectService.Create(c.Request().Context(), project)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "project created successfully",
		"project": created,
	})
}

// Update godoc
// @Summary Partially update a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body UpdateProjectRequest true "Changed fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	update := service.ProjectUpdate{
		Title:       req.Title,
		Client:      req.Client,
		Agency:      req.Agency,
		Type:        req.Type,
		Year:        req.Year,
		Duration:    req.Duration,
		Tools:       req.Tools,
		Description: req.Description,
		Results:     req.Results,
		Published:   req.Published,
	}

	project, err := h.projectService.Update(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "project updated successfully",
		"project": project,
	})
}

// Delete godoc
// @Summary Delete a project and its gallery
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projectService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "project deleted successfully",
	})
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// queryBool parses a boolean query parameter the way the frontend sends it.
func queryBool(c echo.Context, name string, def bool) bool {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	return strings.EqualFold(v, "true")
}
