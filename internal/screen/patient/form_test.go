package patient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-console/internal/model"
	"github.com/jwalitptl/clinic-console/internal/screen/patient"
	"github.com/jwalitptl/clinic-console/pkg/apierror"
)

func validValues() patient.FormValues {
	return patient.FormValues{
		Nombre:      "Laura",
		ApellidoPat: "Gómez",
		ApellidoMat: "Cruz",
		Telefono:    "5512345678",
		Genero:      model.SexoMujer,
		Seguro:      true,
		Curp:        "GOMC900101HDFLRL09",
	}
}

func TestShortTelefonoFailsValidationWithoutNetwork(t *testing.T) {
	svc := &fakePacientes{}
	s := newScreen(t, svc)
	calls := svc.listCalls

	values := validValues()
	values.Telefono = "12345"
	s.Form().Values = values

	err := s.SubmitCreate(context.Background())
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Empty(t, svc.created)
	assert.Equal(t, calls, svc.listCalls)

	mensajeError, mensajeExito := s.Mensajes()
	assert.NotEmpty(t, mensajeError)
	assert.Empty(t, mensajeExito)
}

func TestSubmitCreateSuccessResetsAndFetchesOnce(t *testing.T) {
	svc := &fakePacientes{}
	s := newScreen(t, svc)
	calls := svc.listCalls

	s.Form().Values = validValues()
	require.NoError(t, s.SubmitCreate(context.Background()))

	require.Len(t, svc.created, 1)
	assert.True(t, svc.created[0].Activo)
	assert.Equal(t, "GOMC900101HDFLRL09", svc.created[0].Curp)
	assert.Equal(t, calls+1, svc.listCalls)

	assert.Equal(t, patient.StateEmpty, s.Form().State())
	assert.Zero(t, s.Form().Values.Nombre)
}

func TestSubmitUpdateNoChangesShortCircuits(t *testing.T) {
	row := paciente(5, "GOMC900101HDFLRL09", "Laura", "Gómez", "Cruz", "2024-01-05")
	svc := &fakePacientes{items: []model.Patient{row}}
	s := newScreen(t, svc)
	calls := svc.listCalls

	s.LoadPaciente(row)
	err := s.SubmitUpdate(context.Background())
	require.Error(t, err)
	assert.True(t, apierror.IsNoChange(err))
	assert.Empty(t, svc.updated)
	assert.Equal(t, calls, svc.listCalls)
}

func TestSubmitUpdateChangedValueSaves(t *testing.T) {
	row := paciente(5, "GOMC900101HDFLRL09", "Laura", "Gómez", "Cruz", "2024-01-05")
	svc := &fakePacientes{items: []model.Patient{row}}
	s := newScreen(t, svc)
	calls := svc.listCalls

	s.LoadPaciente(row)
	s.Form().Values.Telefono = "5598765432"

	require.NoError(t, s.SubmitUpdate(context.Background()))
	require.Contains(t, svc.updated, int64(5))
	assert.Equal(t, "5598765432", svc.updated[5].Telefono)
	assert.Equal(t, calls+1, svc.listCalls)
}

func TestEliminarDeactivatesAndRefetches(t *testing.T) {
	row := paciente(5, "GOMC900101HDFLRL09", "Laura", "Gómez", "Cruz", "2024-01-05")
	svc := &fakePacientes{items: []model.Patient{row}}
	s := newScreen(t, svc)
	calls := svc.listCalls

	require.NoError(t, s.Eliminar(context.Background(), 5))
	assert.Equal(t, []int64{5}, svc.deactivated)
	assert.Equal(t, calls+1, svc.listCalls)
}
