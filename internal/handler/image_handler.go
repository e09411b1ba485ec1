package handler

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// ImageHandler handles gallery image endpoints.
type ImageHandler struct {
	imageService service.ImageService
	store        *storage.FileStore
}

// NewImageHandler creates a new image handler.
func NewImageHandler(imageService service.ImageService, store *storage.FileStore) *ImageHandler {
	return &ImageHandler{imageService: imageService, store: store}
}

// UpdateImageMetadataRequest represents an alt text / caption edit.
type UpdateImageMetadataRequest struct {
	AltText *string `json:"alt_text"`
	Caption *string `json:"caption"`
}

// ReorderImagesRequest represents a gallery reorder request.
type ReorderImagesRequest struct {
	ImageIDs *[]uint `json:"image_ids" validate:"required"`
}

// Upload godoc
// @Summary Upload gallery images for a project
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param files formData file true "Image files"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id}/images [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "no files provided",
			Code:  "NO_FILES",
		})
	}
	files := form.File["files"]

	images, err := h.imageService.Upload(c.Request().Context(), c.Param("id"), files)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": fmt.Sprintf("%d images uploaded successfully", len(images)),
		"images":  images,
	})
}

// UpdateMetadata godoc
// @Summary Edit alt text and caption of an image
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Param request body UpdateImageMetadataRequest true "Metadata fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /images/{id}/metadata [put]
func (h *ImageHandler) UpdateMetadata(c echo.Context) error {
	imageID, err := imageIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateImageMetadataRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	image, err := h.imageService.UpdateMetadata(c.Request().Context(), imageID, req.AltText, req.Caption)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "image metadata updated successfully",
		"image":   image,
	})
}

// Reorder godoc
// @Summary Reorder a project's gallery
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body ReorderImagesRequest true "Image IDs in the new order"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id}/images/reorder [put]
func (h *ImageHandler) Reorder(c echo.Context) error {
	var req ReorderImagesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.imageService.Reorder(c.Request().Context(), c.Param("id"), *req.ImageIDs); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "images reordered successfully",
	})
}

// Delete godoc
// @Summary Delete one image
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /images/{id} [delete]
func (h *ImageHandler) Delete(c echo.Context) error {
	imageID, err := imageIDParam(c)
	if err != nil {
		return err
	}

	if err := h.imageService.Delete(c.Request().Context(), imageID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "image deleted successfully",
	})
}

// Serve godoc
// @Summary Serve an uploaded image file
// @Tags images
// @Produce octet-stream
// @Param id path string true "Stored filename"
// @Success 200 {file} file
// @Failure 404 {object} errors.ErrorResponse
// @Router /images/{id} [get]
func (h *ImageHandler) Serve(c echo.Context) error {
	path, err := h.store.Resolve(c.Param("id"))
	if err != nil {
		return imageNotFound()
	}
	if _, err := os.Stat(path); err != nil {
		return imageNotFound()
	}
	return c.File(path)
}

// imageIDParam parses the numeric image ID path parameter. A non-numeric ID
// cannot name any image, so it reads as not found.
func imageIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, imageNotFound()
	}
	return uint(id), nil
}

func imageNotFound() error {
	return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
		Error: errors.ErrImageNotFound.Error(),
		Code:  "IMAGE_NOT_FOUND",
	})
}
