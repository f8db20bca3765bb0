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

type MaquetesHandler struct {
	store         *database.Store
	storageClient *storage.Client
	logger        *zap.Logger
}

func NewMaquetesHandler(store *database.Store, storageClient *storage.Client, logger *zap.Logger) *MaquetesHandler {
	return &MaquetesHandler{
		store:         store,
		storageClient: storageClient,
		logger:        logger,
	}
}

// ListMaquetes godoc
// @Summary     List maquetes
// @Description Returns every catalog entry in a reduced projection, most recent first
// @Tags        maquetes
// @Produce     json
// @Security    BasicAuth
// @Success     200 {object} models.MaquetesResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/maquetes [get]
func (h *MaquetesHandler) ListMaquetes(c *gin.Context) {
	if !dbGate(c, h.store) {
		return
	}

	maquetes, err := h.store.ListMaquetes()
	if err != nil {
		h.logger.Error("failed to list maquetes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:  "query_error",
			Detail: err.Error(),
		})
		return
	}

	summaries := make([]models.MaqueteSummaryResponse, len(maquetes))
	for i := range maquetes {
		summaries[i] = models.NewMaqueteSummaryResponse(&maquetes[i])
	}

	c.JSON(http.StatusOK, models.MaquetesResponse{Maquetes: summaries})
}

// CreateMaquete godoc
// @Summary     Create a maquete
// @Description Validates and inserts a new catalog entry, returning its generated id
// @Tags        maquetes
// @Accept      json
// @Produce     json
// @Security    BasicAuth
// @Param       maquete body models.MaquetePayload true "Maquete fields"
// @Success     201 {object} models.CreateMaqueteResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/maquetes [post]
func (h *MaquetesHandler) CreateMaquete(c *gin.Context) {
	var payload models.MaquetePayload
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
	if !fields.Nome.Valid {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:  "invalid_input",
			Detail: "nome is required",
		})
		return
	}

	if !dbGate(c, h.store) {
		return
	}

	id, err := h.store.CreateMaquete(fields)
	if err != nil {
		var dup *database.DuplicateError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:  "duplicate_nome",
				Detail: dup.Constraint,
			})
			return
		}
		h.logger.Error("failed to create maquete", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:  "insert_error",
			Detail: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.CreateMaqueteResponse{ID: id})
}

// GetMaquete godoc
// @Summary     Get a maquete
// @Description Returns the full record for one catalog entry
// @Tags        maquetes
// @Produce     json
// @Security    BasicAuth
// @Param       id path int true "Maquete ID"
// @Success     200 {object} models.MaqueteResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/maquetes/{id} [get]
func (h *MaquetesHandler) GetMaquete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if !dbGate(c, h.store) {
		return
	}

	maquete, err := h.store.GetMaquete(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not_found"})
			return
		}
		h.logger.Error("failed to get maquete", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:  "query_error",
			Detail: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewMaqueteResponse(maquete))
}

// UpdateMaquete godoc
// @Summary     Update a maquete
// @Description Applies a partial update; omitted fields keep their stored value, info is always overwritten when present
// @Tags        maquetes
// @Accept      json
// @Produce     json
// @Security    BasicAuth
// @Param       id path int true "Maquete ID"
// @Param       maquete body models.MaquetePayload true "Fields to update"
// @Success     200 {object} models.MaqueteResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/maquetes/{id} [put]
func (h *MaquetesHandler) UpdateMaquete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload models.MaquetePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:  "invalid_input",
			Detail: err.Error(),
		})
		return
	}
	if !payload.HasFields() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:  "no_fields",
			Detail: "no fields to update",
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

	if err := h.store.UpdateMaquete(id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not_found"})
			return
		}
		var dup *database.DuplicateError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:  "duplicate_nome",
				Detail: dup.Constraint,
			})
			return
		}
		h.logger.Error("failed to update maquete", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:  "update_error",
			Detail: err.Error(),
		})
		return
	}

	maquete, err := h.store.GetMaquete(id)
	if err != nil {
		h.logger.Error("failed to reload maquete", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:  "query_error",
			Detail: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewMaqueteResponse(maquete))
}

// DeleteMaquete godoc
// @Summary     Delete a maquete
// @Description Removes a catalog entry and its images; deleting an id that does not exist still returns 204
// @Tags        maquetes
// @Security    BasicAuth
// @Param       id path int true "Maquete ID"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/maquetes/{id} [delete]
func (h *MaquetesHandler) DeleteMaquete(c *gin.Context) {
	id, ok := deleteIDParam(c, "id")
	if !ok {
		return
	}

	if !dbGate(c, h.store) {
		return
	}

	// Collect hosted-object paths before the row (and its image rows,
	// via the FK cascade) disappears.
	publicIDs, err := h.store.MaquetePublicIDs(id)
	if err != nil {
		h.logger.Warn("failed to collect public ids before delete", zap.Int64("id", id), zap.Error(err))
	}

	if err := h.store.DeleteMaquete(id); err != nil {
		h.logger.Error("failed to delete maquete", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:  "delete_error",
			Detail: err.Error(),
		})
		return
	}

	if h.storageClient != nil {
		h.storageClient.Remove(publicIDs...)
	}

	c.Status(http.StatusNoContent)
}
