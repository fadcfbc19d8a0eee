package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jwalitptl/clinic-console/internal/model"
)

const cacheKeyAsegurados = "pacientes_asegurados"

// Patients is the service client for the pacientes collection. The
// insured-picker projection is cached briefly because the appointment
// form re-reads it every time it opens.
type Patients struct {
	c     *Client
	cache *gocache.Cache
}

func NewPatients(c *Client, pickerTTL time.Duration) *Patients {
	return &Patients{
		c:     c,
		cache: gocache.New(pickerTTL, 2*pickerTTL),
	}
}

func (p *Patients) List(ctx context.Context) ([]model.Patient, error) {
	var pacientes []model.Patient
	if err := p.c.do(ctx, "pacientes", http.MethodGet, "/pacientes", nil, &pacientes); err != nil {
		return nil, fmt.Errorf("failed to list pacientes: %w", err)
	}
	return pacientes, nil
}

// ListAsegurados returns the picker view: only active, insured patients
// may be scheduled for an appointment.
func (p *Patients) ListAsegurados(ctx context.Context) ([]model.Patient, error) {
	if cached, ok := p.cache.Get(cacheKeyAsegurados); ok {
		return cached.([]model.Patient), nil
	}

	pacientes, err := p.List(ctx)
	if err != nil {
		return nil, err
	}

	asegurados := make([]model.Patient, 0, len(pacientes))
	for _, paciente := range pacientes {
		if paciente.Activo && paciente.Seguro {
			asegurados = append(asegurados, paciente)
		}
	}

	p.cache.Set(cacheKeyAsegurados, asegurados, gocache.DefaultExpiration)
	return asegurados, nil
}

func (p *Patients) Create(ctx context.Context, payload model.PatientPayload) (*model.Patient, error) {
	var paciente model.Patient
	if err := p.c.do(ctx, "pacientes", http.MethodPost, "/pacientes", payload, &paciente); err != nil {
		return nil, fmt.Errorf("failed to create paciente: %w", err)
	}
	p.cache.Delete(cacheKeyAsegurados)
	return &paciente, nil
}

func (p *Patients) Update(ctx context.Context, id int64, payload model.PatientPayload) (*model.Patient, error) {
	var paciente model.Patient
	if err := p.c.do(ctx, "pacientes", http.MethodPut, fmt.Sprintf("/pacientes/%d", id), payload, &paciente); err != nil {
		return nil, fmt.Errorf("failed to update paciente %d: %w", id, err)
	}
	p.cache.Delete(cacheKeyAsegurados)
	return &paciente, nil
}

// Deactivate soft-deletes a paciente by clearing the active flag.
func (p *Patients) Deactivate(ctx context.Context, id int64) (*model.Patient, error) {
	var paciente model.Patient
	patch := model.PatientDeactivate{Activo: false}
	if err := p.c.do(ctx, "pacientes", http.MethodPut, fmt.Sprintf("/pacientes/%d", id), patch, &paciente); err != nil {
		return nil, fmt.Errorf("failed to deactivate paciente %d: %w", id, err)
	}
	p.cache.Delete(cacheKeyAsegurados)
	return &paciente, nil
}
