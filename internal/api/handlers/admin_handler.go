package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adayportal/backend/internal/repositories"
)

type AdminHandler struct {
	repo repositories.ApplicationRepository
}

func NewAdminHandler(repo repositories.ApplicationRepository) *AdminHandler {
	return &AdminHandler{repo: repo}
}

// List renders every submitted application, newest first.
func (h *AdminHandler) List(c *gin.Context) {
	rows, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{"Applications": rows})
}
