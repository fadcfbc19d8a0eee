// Package patient implements the pacientes screen: list view model and
// create/edit form controller. The shape intentionally mirrors the
// citas screen; each screen owns its state and duplicates the pattern.
package patient

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-console/internal/model"
	"github.com/jwalitptl/clinic-console/internal/screen/messages"
	"github.com/jwalitptl/clinic-console/internal/session"
	"github.com/jwalitptl/clinic-console/pkg/metrics"
)

// PacienteService is what the screen needs from the pacientes client.
type PacienteService interface {
	List(ctx context.Context) ([]model.Patient, error)
	Create(ctx context.Context, p model.PatientPayload) (*model.Patient, error)
	Update(ctx context.Context, id int64, p model.PatientPayload) (*model.Patient, error)
	Deactivate(ctx context.Context, id int64) (*model.Patient, error)
}

// Screen owns the fetched pacientes collection; projections are always
// recomputed from items and never stored.
type Screen struct {
	pacientes PacienteService
	sess      session.Session
	hasSess   bool
	log       zerolog.Logger
	metrics   *metrics.Metrics

	mu           sync.Mutex
	items        []model.Patient
	filterText   string
	fetchToken   uuid.UUID
	mensajeError string
	mensajeExito string

	form Form
}

func NewScreen(pacientes PacienteService, sessions session.Provider, log zerolog.Logger, m *metrics.Metrics) *Screen {
	s := &Screen{
		pacientes: pacientes,
		log:       log.With().Str("screen", "pacientes").Logger(),
		metrics:   m,
	}
	s.sess, s.hasSess = sessions.Current()
	s.form.Reset()
	return s
}

// Activate runs the screen's initial fetch.
func (s *Screen) Activate(ctx context.Context) error {
	return s.Fetch(ctx)
}

// Fetch replaces items with a fresh list() result, guarded by the same
// sequencing token as the citas screen so only the most recently issued
// fetch commits. On failure items keeps its previous value.
func (s *Screen) Fetch(ctx context.Context) error {
	token := uuid.New()
	s.mu.Lock()
	s.fetchToken = token
	s.mu.Unlock()

	start := time.Now()
	pacientes, err := s.pacientes.List(ctx)
	if s.metrics != nil {
		s.metrics.FetchDuration.WithLabelValues("pacientes").Observe(time.Since(start).Seconds())
	}
	if err != nil {
		s.countFetch("error")
		s.log.Error().Err(err).Msg("failed to fetch pacientes")
		s.setMensajes(messages.ErrorCargaLista, "")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchToken != token {
		s.countFetch("stale")
		return nil
	}
	s.items = pacientes
	s.countFetch("ok")
	return nil
}

// SetFilterText stores the search text, trimmed and lower-cased; empty
// resets the projection to the unfiltered view.
func (s *Screen) SetFilterText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterText = strings.ToLower(strings.TrimSpace(text))
}

func (s *Screen) FilterText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterText
}

// Project recomputes the table view from items. The filter matches id,
// CURP, given name and both surnames by substring, case-insensitively.
func (s *Screen) Project() []model.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Patient, 0, len(s.items))
	for _, paciente := range s.items {
		if s.filterText != "" && !matches(&paciente, s.filterText) {
			continue
		}
		out = append(out, paciente)
	}
	return out
}

func matches(p *model.Patient, filter string) bool {
	return strings.Contains(strconv.FormatInt(p.ID, 10), filter) ||
		strings.Contains(strings.ToLower(p.Curp), filter) ||
		strings.Contains(strings.ToLower(p.Nombre), filter) ||
		strings.Contains(strings.ToLower(p.ApellidoPaterno), filter) ||
		strings.Contains(strings.ToLower(p.ApellidoMaterno), filter)
}

// Paciente finds a row in the fetched collection by id, ignoring any
// active filter, for loading into the edit form.
func (s *Screen) Paciente(id int64) (model.Patient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, paciente := range s.items {
		if paciente.ID == id {
			return paciente, true
		}
	}
	return model.Patient{}, false
}

// SortFechaDesc orders a projection by registration date, newest first.
func SortFechaDesc(pacientes []model.Patient) {
	sort.SliceStable(pacientes, func(i, j int) bool {
		return pacientes[i].FechaTime().After(pacientes[j].FechaTime())
	})
}

// Mensajes returns the current screen messages (error, éxito).
func (s *Screen) Mensajes() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mensajeError, s.mensajeExito
}

func (s *Screen) setMensajes(mensajeError, mensajeExito string) {
	s.mu.Lock()
	s.mensajeError = mensajeError
	s.mensajeExito = mensajeExito
	s.mu.Unlock()
}

func (s *Screen) countFetch(status string) {
	if s.metrics != nil {
		s.metrics.FetchesTotal.WithLabelValues("pacientes", status).Inc()
	}
}

func (s *Screen) countSubmit(op, status string) {
	if s.metrics != nil {
		s.metrics.SubmitsTotal.WithLabelValues("pacientes", op, status).Inc()
	}
}
