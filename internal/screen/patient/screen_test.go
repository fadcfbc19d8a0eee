package patient_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-console/internal/model"
	"github.com/jwalitptl/clinic-console/internal/screen/patient"
	"github.com/jwalitptl/clinic-console/internal/session"
	"github.com/jwalitptl/clinic-console/pkg/logger"
)

type fakePacientes struct {
	mu          sync.Mutex
	items       []model.Patient
	listErr     error
	listCalls   int
	created     []model.PatientPayload
	createErr   error
	updated     map[int64]model.PatientPayload
	updateErr   error
	deactivated []int64
}

func (f *fakePacientes) List(ctx context.Context) ([]model.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakePacientes) Create(ctx context.Context, p model.PatientPayload) (*model.Patient, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, p)
	return &model.Patient{ID: 100}, nil
}

func (f *fakePacientes) Update(ctx context.Context, id int64, p model.PatientPayload) (*model.Patient, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[int64]model.PatientPayload)
	}
	f.updated[id] = p
	return &model.Patient{ID: id}, nil
}

func (f *fakePacientes) Deactivate(ctx context.Context, id int64) (*model.Patient, error) {
	f.deactivated = append(f.deactivated, id)
	return &model.Patient{ID: id, Activo: false}, nil
}

func paciente(id int64, curp, nombre, apPat, apMat, fecha string) model.Patient {
	return model.Patient{
		ID:              id,
		Curp:            curp,
		Nombre:          nombre,
		ApellidoPaterno: apPat,
		ApellidoMaterno: apMat,
		Telefono:        "5512345678",
		Seguro:          true,
		Activo:          true,
		Fecha:           fecha,
	}
}

func newScreen(t *testing.T, svc *fakePacientes) *patient.Screen {
	t.Helper()
	s := patient.NewScreen(svc, session.Absent, logger.Nop(), nil)
	require.NoError(t, s.Activate(context.Background()))
	return s
}

func TestProjectFiltersDesignatedFields(t *testing.T) {
	svc := &fakePacientes{items: []model.Patient{
		paciente(1, "GOMC900101HDFLRL09", "Laura", "Gómez", "Cruz", "2024-01-05"),
		paciente(2, "DIAP850215MDFRRD02", "Pedro", "Díaz", "Pérez", "2024-02-10"),
	}}
	s := newScreen(t, svc)

	s.SetFilterText(" GÓMEZ ")
	proj := s.Project()
	require.Len(t, proj, 1)
	assert.Equal(t, int64(1), proj[0].ID)

	s.SetFilterText("diap850215")
	proj = s.Project()
	require.Len(t, proj, 1)
	assert.Equal(t, int64(2), proj[0].ID)

	s.SetFilterText("pérez")
	require.Len(t, s.Project(), 1)

	s.SetFilterText("")
	assert.Len(t, s.Project(), 2)
}

func TestSortFechaDescending(t *testing.T) {
	svc := &fakePacientes{items: []model.Patient{
		paciente(1, "A", "Laura", "Gómez", "", "2024-01-05"),
		paciente(2, "B", "Pedro", "Díaz", "", "2024-03-01"),
		paciente(3, "C", "Ana", "Soto", "", "2024-02-10"),
	}}
	s := newScreen(t, svc)

	proj := s.Project()
	patient.SortFechaDesc(proj)

	for i := 1; i < len(proj); i++ {
		assert.False(t, proj[i-1].FechaTime().Before(proj[i].FechaTime()))
	}
	assert.Equal(t, int64(2), proj[0].ID)
}

func TestFetchFailureKeepsPreviousItems(t *testing.T) {
	svc := &fakePacientes{items: []model.Patient{paciente(1, "A", "Laura", "Gómez", "", "2024-01-05")}}
	s := newScreen(t, svc)

	svc.mu.Lock()
	svc.listErr = errors.New("connection refused")
	svc.mu.Unlock()

	require.Error(t, s.Fetch(context.Background()))
	assert.Len(t, s.Project(), 1)
}

func TestProjectionIsAFreshSlice(t *testing.T) {
	svc := &fakePacientes{items: []model.Patient{paciente(1, "A", "Laura", "Gómez", "", "2024-01-05")}}
	s := newScreen(t, svc)

	first := s.Project()
	first[0].Nombre = "mutated"

	second := s.Project()
	assert.Equal(t, "Laura", second[0].Nombre)
}
