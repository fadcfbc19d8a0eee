package patient

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-console/internal/model"
	"github.com/jwalitptl/clinic-console/internal/screen/messages"
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

// FormValues are the bound field values; comparable so the no-op update
// check is whole-value equality against the snapshot.
type FormValues struct {
	Nombre      string `validate:"required"`
	ApellidoPat string `validate:"required"`
	ApellidoMat string
	Telefono    string `validate:"required,len=10,numeric"`
	Genero      int
	Seguro      bool
	Curp        string `validate:"required"`
}

// Form is the create/edit controller for one paciente.
type Form struct {
	Values FormValues

	state     FormState
	editingID int64
	snapshot  FormValues
}

func (f *Form) State() FormState { return f.state }

// EditingID is the paciente loaded into the form, zero when creating.
func (f *Form) EditingID() int64 { return f.editingID }

// Reset returns the form to its empty state.
func (f *Form) Reset() {
	f.Values = FormValues{}
	f.state = StateEmpty
	f.editingID = 0
	f.snapshot = FormValues{}
}

// Load populates the form from a selected row and captures the snapshot
// used to short-circuit no-op resubmissions.
func (f *Form) Load(p model.Patient) {
	f.Values = FormValues{
		Nombre:      p.Nombre,
		ApellidoPat: p.ApellidoPaterno,
		ApellidoMat: p.ApellidoMaterno,
		Telefono:    p.Telefono,
		Genero:      p.Sexo,
		Seguro:      p.Seguro,
		Curp:        p.Curp,
	}
	f.snapshot = f.Values
	f.editingID = p.ID
	f.state = StateEditing
}

// Form exposes the screen's form controller.
func (s *Screen) Form() *Form {
	return &s.form
}

// LoadPaciente selects a row into the edit form.
func (s *Screen) LoadPaciente(p model.Patient) {
	s.form.Load(p)
}

// ResetForm clears the form.
func (s *Screen) ResetForm() {
	s.form.Reset()
}

func (s *Screen) payload(activo bool) model.PatientPayload {
	return model.PatientPayload{
		Curp:            s.form.Values.Curp,
		Nombre:          s.form.Values.Nombre,
		ApellidoPaterno: s.form.Values.ApellidoPat,
		ApellidoMaterno: s.form.Values.ApellidoMat,
		Sexo:            s.form.Values.Genero,
		Telefono:        s.form.Values.Telefono,
		Seguro:          s.form.Values.Seguro,
		Activo:          activo,
	}
}

// SubmitCreate validates and registers a new paciente. On success the
// form resets and the collection is re-fetched exactly once.
func (s *Screen) SubmitCreate(ctx context.Context) error {
	s.setMensajes("", "")

	if res := fieldcheck.Validar(s.form.Values); !res.OK() {
		s.setMensajes(res.MensajeError, "")
		s.countSubmit("create", "validation")
		return apierror.New(apierror.KindValidation, res.MensajeError, nil)
	}

	s.form.state = StateSubmitting
	if _, err := s.pacientes.Create(ctx, s.payload(true)); err != nil {
		s.form.state = StateEditing
		s.countSubmit("create", "error")
		s.log.Error().Err(err).Msg("failed to create paciente")
		s.setMensajes(messages.ErrorAltaPaciente, "")
		return err
	}

	s.countSubmit("create", "ok")
	s.setMensajes("", messages.ExitoRegistroPaciente)
	s.ResetForm()
	return s.Fetch(ctx)
}

// SubmitUpdate validates and saves the loaded paciente. A submission
// equal to the snapshot is rejected locally without a network call.
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

	s.form.state = StateSubmitting
	if _, err := s.pacientes.Update(ctx, s.form.editingID, s.payload(true)); err != nil {
		s.form.state = StateEditing
		if apierror.IsNoChange(err) {
			s.countSubmit("update", "no_change")
			s.setMensajes(messages.SinCambio, "")
		} else {
			s.countSubmit("update", "error")
			s.log.Error().Err(err).Int64("id", s.form.editingID).Msg("failed to update paciente")
			s.setMensajes(fmt.Sprintf("Ocurrió un error al actualizar el paciente: %v", err), "")
		}
		return err
	}

	s.form.state = StateEditing
	s.countSubmit("update", "ok")
	s.setMensajes("", messages.ExitoActualizacionPaciente)
	return s.Fetch(ctx)
}

// Eliminar soft-deletes a paciente (clears the active flag) and
// refreshes the collection.
func (s *Screen) Eliminar(ctx context.Context, id int64) error {
	if _, err := s.pacientes.Deactivate(ctx, id); err != nil {
		s.countSubmit("delete", "error")
		s.log.Error().Err(err).Int64("id", id).Msg("failed to deactivate paciente")
		s.setMensajes(fmt.Sprintf("Ocurrió un error al eliminar el paciente: %v", err), "")
		return err
	}
	s.countSubmit("delete", "ok")
	return s.Fetch(ctx)
}
