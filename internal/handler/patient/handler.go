// Package patient exposes the pacientes screen over the JSON facade.
package patient

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-console/internal/model"
	screen "github.com/jwalitptl/clinic-console/internal/screen/patient"
	"github.com/jwalitptl/clinic-console/pkg/apierror"
	"github.com/jwalitptl/clinic-console/pkg/httputil"
)

type Handler struct {
	screen   *screen.Screen
	pageSize int
}

func NewHandler(s *screen.Screen, pageSize int) *Handler {
	return &Handler{screen: s, pageSize: pageSize}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	pacientes := r.Group("/pacientes")
	pacientes.GET("", h.list)
	pacientes.POST("", h.create)
	pacientes.PUT("/:id", h.update)
	pacientes.DELETE("/:id", h.deactivate)
}

type formRequest struct {
	Nombre      string `json:"nombre"`
	ApellidoPat string `json:"apellido_pat"`
	ApellidoMat string `json:"apellido_mat"`
	Telefono    string `json:"telefono"`
	Genero      int    `json:"genero"`
	Seguro      bool   `json:"seguro"`
	Curp        string `json:"curp"`
}

func (h *Handler) list(c *gin.Context) {
	if c.Query("refresh") == "true" {
		if err := h.screen.Fetch(c.Request.Context()); err != nil {
			httputil.RespondWithError(c, err)
			return
		}
	}

	h.screen.SetFilterText(c.Query("search"))
	projection := h.screen.Project()
	screen.SortFechaDesc(projection)

	var paging model.Pagination
	if err := c.ShouldBindQuery(&paging); err != nil {
		httputil.RespondWithError(c, apierror.New(apierror.KindValidation, "invalid pagination parameters", err))
		return
	}
	paging = paging.Normalize(h.pageSize)

	httputil.RespondWithPagination(c, model.PageOf(projection, paging), paging.Page, paging.PageSize, len(projection))
}

func (h *Handler) apply(req formRequest) {
	form := h.screen.Form()
	form.Values.Nombre = req.Nombre
	form.Values.ApellidoPat = req.ApellidoPat
	form.Values.ApellidoMat = req.ApellidoMat
	form.Values.Telefono = req.Telefono
	form.Values.Genero = req.Genero
	form.Values.Seguro = req.Seguro
	form.Values.Curp = req.Curp
}

func (h *Handler) create(c *gin.Context) {
	var req formRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apierror.New(apierror.KindValidation, "invalid request body", err))
		return
	}

	h.screen.ResetForm()
	h.apply(req)

	if err := h.screen.SubmitCreate(c.Request.Context()); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	_, exito := h.screen.Mensajes()
	httputil.RespondWithSuccess(c, nil, exito)
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, apierror.New(apierror.KindValidation, "invalid paciente id", err))
		return
	}

	paciente, ok := h.screen.Paciente(id)
	if !ok {
		httputil.RespondWithError(c, apierror.New(apierror.KindNotFound, "paciente not found", nil))
		return
	}

	var req formRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apierror.New(apierror.KindValidation, "invalid request body", err))
		return
	}

	h.screen.LoadPaciente(paciente)
	h.apply(req)

	if err := h.screen.SubmitUpdate(c.Request.Context()); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	_, exito := h.screen.Mensajes()
	httputil.RespondWithSuccess(c, nil, exito)
}

func (h *Handler) deactivate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, apierror.New(apierror.KindValidation, "invalid paciente id", err))
		return
	}

	if err := h.screen.Eliminar(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil, "")
}
