package appointment

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-console/internal/model"
	"github.com/jwalitptl/clinic-console/internal/screen/messages"
	"github.com/jwalitptl/clinic-console/internal/session"
	"github.com/jwalitptl/clinic-console/pkg/apierror"
	"github.com/jwalitptl/clinic-console/pkg/fieldcheck"
)

// FormState tracks the controller's lifecycle.
type FormState int

const (
	StateEmpty FormState = iota
	StateEditing
	StateSubmitting
)

// FormValues are the bound field values. The struct is comparable on
// purpose: the no-op update check is whole-value equality against the
// snapshot, not a per-field diff.
type FormValues struct {
	FechaCita string `validate:"required"`
	HoraCita  string `validate:"required"`
	Personal  int64
	Paciente  int64
	Tipo      int
	Estado    int
}

// Form is the create/edit controller for one cita.
type Form struct {
	Values FormValues

	state          FormState
	editingID      int64
	snapshot       FormValues
	personalLocked bool
	estadoEditable bool
}

func (f *Form) State() FormState { return f.state }

// EditingID is the cita loaded into the form, zero when creating.
func (f *Form) EditingID() int64 { return f.editingID }

// PersonalLocked reports whether the staff selector is pinned to the
// session badge and disabled (restricted roles schedule only themselves).
func (f *Form) PersonalLocked() bool { return f.personalLocked }

// EstadoEditable reports whether the status selector is shown; a
// cancelled cita's status can no longer be changed.
func (f *Form) EstadoEditable() bool { return f.estadoEditable }

// Reset returns the form to its empty state with role-aware defaults.
func (f *Form) Reset(sess session.Session, hasSess bool) {
	f.Values = FormValues{}
	f.state = StateEmpty
	f.editingID = 0
	f.snapshot = FormValues{}
	f.estadoEditable = false
	f.personalLocked = false
	if hasSess && sess.Restricted() {
		f.Values.Personal = sess.Matricula
		f.personalLocked = true
	}
}

// Load populates the form from a selected row and captures the snapshot
// used to short-circuit no-op resubmissions.
func (f *Form) Load(cita model.Appointment) {
	f.Values = FormValues{
		FechaCita: cita.FechaCita,
		HoraCita:  cita.HoraCita,
		Personal:  cita.Matricula,
		Paciente:  cita.PacienteID,
		Tipo:      cita.TipoCita,
		Estado:    cita.Estado,
	}
	f.snapshot = f.Values
	f.editingID = cita.ID
	f.state = StateEditing
	f.estadoEditable = cita.Estado != model.CitaCancelado
}

// Form exposes the screen's form controller.
func (s *Screen) Form() *Form {
	return &s.form
}

// LoadCita selects a row into the edit form.
func (s *Screen) LoadCita(cita model.Appointment) {
	s.form.Load(cita)
}

// ResetForm clears the form back to its role-default values.
func (s *Screen) ResetForm() {
	s.form.Reset(s.sess, s.hasSess)
}

// SubmitCreate validates and registers a new cita. Status is always
// pendiente on creation and the record starts active. On success the
// form resets and the collection is re-fetched exactly once.
func (s *Screen) SubmitCreate(ctx context.Context) error {
	s.setMensajes("", "")

	if res := fieldcheck.Validar(s.form.Values); !res.OK() {
		s.setMensajes(res.MensajeError, "")
		s.countSubmit("create", "validation")
		return apierror.New(apierror.KindValidation, res.MensajeError, nil)
	}

	payload := model.AppointmentPayload{
		FechaCita:  s.form.Values.FechaCita,
		HoraCita:   s.form.Values.HoraCita,
		TipoCita:   s.form.Values.Tipo,
		PacienteID: s.form.Values.Paciente,
		Matricula:  s.form.Values.Personal,
		Estado:     model.CitaPendiente,
		Activo:     true,
	}

	s.form.state = StateSubmitting
	if _, err := s.citas.Create(ctx, payload); err != nil {
		s.form.state = StateEditing
		s.countSubmit("create", "error")
		s.log.Error().Err(err).Msg("failed to create cita")
		s.setMensajes(messages.ErrorAltaCita, "")
		return err
	}

	s.countSubmit("create", "ok")
	s.setMensajes("", messages.ExitoRegistroCita)
	s.ResetForm()
	return s.Fetch(ctx)
}

// SubmitUpdate validates and saves the loaded cita. A submission whose
// values equal the snapshot is rejected locally without a network call.
func (s *Screen) SubmitUpdate(ctx context.Context) error {
	s.setMensajes("", "")

	if res := fieldcheck.Validar(s.form.Values); !res.OK() {
		s.setMensajes(res.MensajeError, "")
		s.countSubmit("update", "validation")
		return apierror.New(apierror.KindValidation, res.MensajeError, nil)
	}

	if s.form.Values == s.form.snapshot {
		s.setMensajes(messages.SinCambio, "")
		s.countSubmit("update", "no_change")
		return apierror.New(apierror.KindNoChange, messages.SinCambio, nil)
	}

	payload := model.AppointmentPayload{
		FechaCita:  s.form.Values.FechaCita,
		HoraCita:   s.form.Values.HoraCita,
		TipoCita:   s.form.Values.Tipo,
		PacienteID: s.form.Values.Paciente,
		Matricula:  s.form.Values.Personal,
		Estado:     s.form.Values.Estado,
		Activo:     true,
	}

	s.form.state = StateSubmitting
	if _, err := s.citas.Update(ctx, s.form.editingID, payload); err != nil {
		s.form.state = StateEditing
		if apierror.IsNoChange(err) {
			s.countSubmit("update", "no_change")
			s.setMensajes(messages.SinCambio, "")
		} else {
			s.countSubmit("update", "error")
			s.log.Error().Err(err).Int64("id", s.form.editingID).Msg("failed to update cita")
			s.setMensajes(fmt.Sprintf("Ocurrió un error al actualizar la cita: %v", err), "")
		}
		return err
	}

	s.form.state = StateEditing
	s.countSubmit("update", "ok")
	s.setMensajes("", messages.ExitoActualizacionCita)
	return s.Fetch(ctx)
}

// Eliminar soft-deletes a cita and refreshes the collection.
func (s *Screen) Eliminar(ctx context.Context, id int64) error {
	if _, err := s.citas.Cancel(ctx, id); err != nil {
		s.countSubmit("delete", "error")
		s.log.Error().Err(err).Int64("id", id).Msg("failed to cancel cita")
		s.setMensajes(fmt.Sprintf("Ocurrió un error al cancelar la cita: %v", err), "")
		return err
	}
	s.countSubmit("delete", "ok")
	return s.Fetch(ctx)
}
