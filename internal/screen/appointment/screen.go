// Package appointment implements the citas screen: the list view model
// with its filter, sort and role scoping, and the create/edit form
// controller bound to it.
package appointment

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

// CitaService is what the screen needs from the citas service client.
type CitaService interface {
	List(ctx context.Context) ([]model.Appointment, error)
	Create(ctx context.Context, p model.AppointmentPayload) (*model.Appointment, error)
	Update(ctx context.Context, id int64, p model.AppointmentPayload) (*model.Appointment, error)
	Cancel(ctx context.Context, id int64) (*model.Appointment, error)
}

// PersonalPicker feeds the staff selector.
type PersonalPicker interface {
	ListActivos(ctx context.Context) ([]model.StaffMember, error)
}

// PacientePicker feeds the patient selector.
type PacientePicker interface {
	ListAsegurados(ctx context.Context) ([]model.Patient, error)
}

// Screen owns the fetched citas collection and everything derived from
// it. items is the source of truth, replaced wholesale on each fetch;
// projections are recomputed from it on every read and never stored.
type Screen struct {
	citas     CitaService
	personal  PersonalPicker
	pacientes PacientePicker
	sess      session.Session
	hasSess   bool
	log       zerolog.Logger
	metrics   *metrics.Metrics

	mu             sync.Mutex
	items          []model.Appointment
	filterText     string
	fetchToken     uuid.UUID
	listaPersonal  []model.StaffMember
	listaPacientes []model.Patient
	mensajeError   string
	mensajeExito   string

	form Form
}

func NewScreen(citas CitaService, personal PersonalPicker, pacientes PacientePicker, sessions session.Provider, log zerolog.Logger, m *metrics.Metrics) *Screen {
	s := &Screen{
		citas:     citas,
		personal:  personal,
		pacientes: pacientes,
		log:       log.With().Str("screen", "citas").Logger(),
		metrics:   m,
	}
	s.sess, s.hasSess = sessions.Current()
	s.form.Reset(s.sess, s.hasSess)
	return s
}

// Activate runs the screen's initial loads: the citas collection and
// both picker lists. Picker failures degrade to empty selectors with a
// screen message rather than failing activation.
func (s *Screen) Activate(ctx context.Context) error {
	if err := s.Fetch(ctx); err != nil {
		return err
	}

	personal, err := s.personal.ListActivos(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load personal picker")
		s.setMensajes(messages.ErrorCargaLista, "")
	}
	pacientes, err := s.pacientes.ListAsegurados(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load paciente picker")
		s.setMensajes(messages.ErrorCargaLista, "")
	}

	s.mu.Lock()
	s.listaPersonal = personal
	s.listaPacientes = pacientes
	s.mu.Unlock()
	return nil
}

// Fetch replaces items with a fresh list() result. Overlapping fetches
// are resolved by a sequencing token: only the most recently issued
// fetch commits, so a slow early response can never clobber a newer one.
// On failure items keeps its previous value.
func (s *Screen) Fetch(ctx context.Context) error {
	token := uuid.New()
	s.mu.Lock()
	s.fetchToken = token
	s.mu.Unlock()

	start := time.Now()
	citas, err := s.citas.List(ctx)
	if s.metrics != nil {
		s.metrics.FetchDuration.WithLabelValues("citas").Observe(time.Since(start).Seconds())
	}
	if err != nil {
		s.countFetch("error")
		s.log.Error().Err(err).Msg("failed to fetch citas")
		s.setMensajes(messages.ErrorCargaLista, "")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchToken != token {
		// A newer fetch was issued while this one was in flight.
		s.countFetch("stale")
		return nil
	}
	s.items = citas
	s.countFetch("ok")
	return nil
}

// SetFilterText stores the search text, trimmed and lower-cased. An
// empty value resets the projection to the role-default view.
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

// Project recomputes the table view from items: the restricted-role
// badge scope applies always, the text filter on top of it. The result
// is a fresh slice, never the backing collection.
func (s *Screen) Project() []model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Appointment, 0, len(s.items))
	for _, cita := range s.items {
		if s.restricted() && cita.Matricula != s.sess.Matricula {
			continue
		}
		if s.filterText != "" && !matches(&cita, s.filterText) {
			continue
		}
		out = append(out, cita)
	}
	return out
}

func (s *Screen) restricted() bool {
	return s.hasSess && s.sess.Restricted()
}

// matches checks the designated filter fields: cita id, patient name,
// staff name and staff badge, case-insensitive substring containment.
func matches(cita *model.Appointment, filter string) bool {
	return strings.Contains(strconv.FormatInt(cita.ID, 10), filter) ||
		strings.Contains(strings.ToLower(cita.PacienteNombre()), filter) ||
		strings.Contains(strings.ToLower(cita.PersonalNombre()), filter) ||
		strings.Contains(strconv.FormatInt(cita.Matricula, 10), filter)
}

// Cita finds a row in the fetched collection by id, ignoring any
// active filter, for loading into the edit form.
func (s *Screen) Cita(id int64) (model.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cita := range s.items {
		if cita.ID == id {
			return cita, true
		}
	}
	return model.Appointment{}, false
}

// SortFechaDesc orders a projection most recent first. It is a one-shot
// ordering applied to the materialized projection after a fetch, not a
// maintained invariant of items.
func SortFechaDesc(citas []model.Appointment) {
	sort.SliceStable(citas, func(i, j int) bool {
		return citas[i].FechaTime().After(citas[j].FechaTime())
	})
}

// Personal returns the staff picker entries loaded at activation.
func (s *Screen) Personal() []model.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listaPersonal
}

// Pacientes returns the patient picker entries loaded at activation.
func (s *Screen) Pacientes() []model.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listaPacientes
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
		s.metrics.FetchesTotal.WithLabelValues("citas", status).Inc()
	}
}

func (s *Screen) countSubmit(op, status string) {
	if s.metrics != nil {
		s.metrics.SubmitsTotal.WithLabelValues("citas", op, status).Inc()
	}
}
