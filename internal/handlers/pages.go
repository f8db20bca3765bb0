package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"maquete-admin-backend/internal/config"
)

// PagesHandler renders the HTML shells. The pages are static scaffolds
// that talk to the JSON API from the browser.
type PagesHandler struct {
	cfg *config.Config
}

func NewPagesHandler(cfg *config.Config) *PagesHandler {
	return &PagesHandler{cfg: cfg}
}

func (h *PagesHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"BaseURL": h.cfg.BaseURL,
	})
}

func (h *PagesHandler) Admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"BaseURL": h.cfg.BaseURL,
	})
}

func (h *PagesHandler) Edit(c *gin.Context) {
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"BaseURL":   h.cfg.BaseURL,
		"MaqueteID": c.Param("id"),
	})
}
