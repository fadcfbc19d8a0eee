// Package appointment exposes the citas screen over the JSON facade.
// Handlers only translate between HTTP and the screen; the screen owns
// all behavior.
package appointment

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-console/internal/model"
	screen "github.com/jwalitptl/clinic-console/internal/screen/appointment"
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
	citas := r.Group("/citas")
	citas.GET("", h.list)
	citas.POST("", h.create)
	citas.PUT("/:id", h.update)
	citas.DELETE("/:id", h.cancel)
	citas.GET("/personal", h.personal)
	citas.GET("/pacientes", h.pacientes)
}

// citaRow decorates an appointment with its display labels.
type citaRow struct {
	model.Appointment
	TipoLabel   string `json:"tipo_label"`
	EstadoLabel string `json:"estado_label"`
}

type formRequest struct {
	FechaCita string `json:"fecha_cita"`
	HoraCita  string `json:"hora_cita"`
	Personal  int64  `json:"personal"`
	Paciente  int64  `json:"paciente"`
	Tipo      int    `json:"tipo"`
	Estado    int    `json:"estado"`
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

	rows := make([]citaRow, 0, paging.PageSize)
	for _, cita := range model.PageOf(projection, paging) {
		rows = append(rows, citaRow{
			Appointment: cita,
			TipoLabel:   model.TipoCitaLabel(cita.TipoCita),
			EstadoLabel: model.EstadoCitaLabel(cita.Estado),
		})
	}
	httputil.RespondWithPagination(c, rows, paging.Page, paging.PageSize, len(projection))
}

func (h *Handler) create(c *gin.Context) {
	var req formRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apierror.New(apierror.KindValidation, "invalid request body", err))
		return
	}

	h.screen.ResetForm()
	form := h.screen.Form()
	form.Values.FechaCita = req.FechaCita
	form.Values.HoraCita = req.HoraCita
	form.Values.Paciente = req.Paciente
	form.Values.Tipo = req.Tipo
	if !form.PersonalLocked() {
		form.Values.Personal = req.Personal
	}

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
		httputil.RespondWithError(c, apierror.New(apierror.KindValidation, "invalid cita id", err))
		return
	}

	cita, ok := h.screen.Cita(id)
	if !ok {
		httputil.RespondWithError(c, apierror.New(apierror.KindNotFound, "cita not found", nil))
		return
	}

	var req formRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apierror.New(apierror.KindValidation, "invalid request body", err))
		return
	}

	h.screen.LoadCita(cita)
	form := h.screen.Form()
	form.Values.FechaCita = req.FechaCita
	form.Values.HoraCita = req.HoraCita
	form.Values.Paciente = req.Paciente
	form.Values.Tipo = req.Tipo
	if !form.PersonalLocked() {
		form.Values.Personal = req.Personal
	}
	if form.EstadoEditable() {
		form.Values.Estado = req.Estado
	}

	if err := h.screen.SubmitUpdate(c.Request.Context()); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	_, exito := h.screen.Mensajes()
	httputil.RespondWithSuccess(c, nil, exito)
}

func (h *Handler) cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, apierror.New(apierror.KindValidation, "invalid cita id", err))
		return
	}

	if err := h.screen.Eliminar(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil, "")
}

func (h *Handler) personal(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.screen.Personal(), "")
}

func (h *Handler) pacientes(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.screen.Pacientes(), "")
}
