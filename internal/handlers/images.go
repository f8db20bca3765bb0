package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"maquete-admin-backend/internal/database"
	"maquete-admin-backend/internal/models"
	"maquete-admin-backend/internal/storage"
)

type ImagesHandler struct {
	store         *database.Store
	storageClient *storage.Client
	logger        *zap.Logger
}

func NewImagesHandler(store *database.Store, storageClient *storage.Client, logger *zap.Logger) *ImagesHandler {
	return &ImagesHandler{
		store:         store,
		storageClient: storageClient,
		logger:        logger,
	}
}

// ListImages godoc
// @Summary     List maquete images
// @Description Returns the image set of a maquete ordered by position, unpositioned images last
// @Tags        images
// @Produce     json
// @Security    BasicAuth
// @Param       id path int true "Maquete ID"
// @Success     200 {object} models.ImagesResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/maquetes/{id}/images [get]
func (h *ImagesHandler) ListImages(c *gin.Context) {
	maqueteID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if !dbGate(c, h.store) {
		return
	}

	images, err := h.store.ListImages(maqueteID)
	if err != nil {
		h.logger.Error("failed to list images", zap.Int64("maquete_id", maqueteID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:  "query_error",
			Detail: err.Error(),
		})
		return
	}

	responses := make([]models.ImageResponse, len(images))
	for i := range images {
		responses[i] = models.NewImageResponse(&images[i])

		// Rows uploaded straight to the bucket carry only a public_id;
		// resolve a display URL for them when the host is configured.
		if responses[i].URL == nil && responses[i].PublicID != nil && h.storageClient != nil {
			url := h.storageClient.PublicURL(*responses[i].PublicID)
			responses[i].URL = &url
		}
	}

	c.JSON(http.StatusOK, models.ImagesResponse{Images: responses})
}

// CreateImage godoc
// @Summary     Add an image to a maquete
// @Description Requires url or public_id; assigns the next position within the maquete's image set when none is given
// @Tags        images
// @Accept      json
// @Produce     json
// @Security    BasicAuth
// @Param       id path int true "Maquete ID"
// @Param       image body models.ImageCreatePayload true "Image fields"
// @Success     201 {object} models.CreateImageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/maquetes/{id}/images [post]
func (h *ImagesHandler) CreateImage(c *gin.Context) {
	maqueteID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload models.ImageCreatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:  "invalid_input",
			Detail: err.Error(),
		})
		return
	}

	fields, err := payload.Normalize()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:  "invalid_input",
			Detail: err.Error(),
		})
		return
	}

	if !dbGate(c, h.store) {
		return
	}

	id, position, err := h.store.CreateImage(maqueteID, fields)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:  "not_found",
				Detail: "maquete not found",
			})
			return
		}
		var dup *database.DuplicateError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:  "duplicate_image",
				Detail: dup.Constraint,
			})
			return
		}
		h.logger.Error("failed to create image", zap.Int64("maquete_id", maqueteID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:  "insert_error",
			Detail: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.CreateImageResponse{ID: id, Position: position})
}

// DeleteImage godoc
// @Summary     Delete a maquete image
// @Description Removes an image when both its id and owning maquete id match
// @Tags        images
// @Security    BasicAuth
// @Param       id path int true "Maquete ID"
// @Param       imgId path int true "Image ID"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/maquetes/{id}/images/{imgId} [delete]
func (h *ImagesHandler) DeleteImage(c *gin.Context) {
	maqueteID, ok := deleteIDParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := deleteIDParam(c, "imgId")
	if !ok {
		return
	}

	if !dbGate(c, h.store) {
		return
	}

	publicID, err := h.store.DeleteImage(maqueteID, imageID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not_found"})
			return
		}
		h.logger.Error("failed to delete image",
			zap.Int64("maquete_id", maqueteID),
			zap.Int64("image_id", imageID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:  "delete_error",
			Detail: err.Error(),
		})
		return
	}

	if h.storageClient != nil && publicID.Valid {
		h.storageClient.Remove(publicID.String)
	}

	c.Status(http.StatusNoContent)
}
