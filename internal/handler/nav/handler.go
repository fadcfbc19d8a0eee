// Package nav exposes the navigation shell over the JSON facade.
package nav

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-console/internal/nav"
	"github.com/jwalitptl/clinic-console/pkg/httputil"
)

type Handler struct {
	shell *nav.Shell
}

func NewHandler(shell *nav.Shell) *Handler {
	return &Handler{shell: shell}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/nav", h.entries)
}

type navResponse struct {
	Role    int         `json:"role"`
	Entries []nav.Entry `json:"entries"`
}

func (h *Handler) entries(c *gin.Context) {
	httputil.RespondWithSuccess(c, navResponse{
		Role:    h.shell.Role(),
		Entries: h.shell.Entries(),
	}, "")
}
