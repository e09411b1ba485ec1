package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// HomepageHandler handles the singleton homepage content endpoints.
type HomepageHandler struct {
	homepageService service.HomepageService
}

// NewHomepageHandler creates a new homepage handler.
func NewHomepageHandler(homepageService service.HomepageService) *HomepageHandler {
	return &HomepageHandler{homepageService: homepageService}
}

// Get godoc
// @Summary Fetch homepage content
// @Tags homepage
// @Produce json
// @Success 200 {object} model.HomePage
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /homepage [get]
func (h *HomepageHandler) Get(c echo.Context) error {
	page, err := h.homepageService.Get(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, page)
}

// Update godoc
// @Summary Upsert homepage content
// @Tags homepage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.HomePage true "Changed fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /homepage [put]
func (h *HomepageHandler) Update(c echo.Context) error {
	var patch model.HomePage
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	page, err := h.homepageService.Update(c.Request().Context(), &patch)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "homepage content updated successfully",
		"homepage": page,
	})
}
