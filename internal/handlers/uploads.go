package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"maquete-admin-backend/internal/models"
	"maquete-admin-backend/internal/storage"
)

type UploadsHandler struct {
	storageClient *storage.Client
}

func NewUploadsHandler(storageClient *storage.Client) *UploadsHandler {
	return &UploadsHandler{storageClient: storageClient}
}

// GetConfig godoc
// @Summary     Image upload settings
// @Description Returns the storage bucket and public base URL the dashboard uses for direct uploads
// @Tags        uploads
// @Produce     json
// @Security    BasicAuth
// @Success     200 {object} models.UploadConfigResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/uploads/config [get]
func (h *UploadsHandler) GetConfig(c *gin.Context) {
	if h.storageClient == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:  "missing_config",
			Detail: "image host is not configured",
		})
		return
	}

	c.JSON(http.StatusOK, models.UploadConfigResponse{
		Bucket:        h.storageClient.Bucket(),
		PublicBaseURL: h.storageClient.PublicBaseURL(),
	})
}
