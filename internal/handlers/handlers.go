package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"maquete-admin-backend/internal/database"
	"maquete-admin-backend/internal/models"
)

// dbGate short-circuits a resource operation when the store is
// unconfigured or unreachable. Payload validation runs before this
// gate; nothing touches the database after it fails.
func dbGate(c *gin.Context, store *database.Store) bool {
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:  "db_unavailable",
			Detail: "missing_config",
		})
		return false
	}
	if err := store.Probe(); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:  "db_unavailable",
			Detail: err.Error(),
		})
		return false
	}
	return true
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:  "invalid_input",
			Detail: "invalid " + name,
		})
		return 0, false
	}
	return id, true
}

// deleteIDParam accepts any integer id: deletes are resolved against
// the row set, so an id that never existed is not invalid input — it
// is simply a no-op delete or a not_found.
func deleteIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:  "invalid_input",
			Detail: "invalid " + name,
		})
		return 0, false
	}
	return id, true
}
