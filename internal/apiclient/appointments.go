package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jwalitptl/clinic-console/internal/model"
)

// Appointments is the service client for the citas collection.
type Appointments struct {
	c *Client
}

func NewAppointments(c *Client) *Appointments {
	return &Appointments{c: c}
}

func (a *Appointments) List(ctx context.Context) ([]model.Appointment, error) {
	var citas []model.Appointment
	if err := a.c.do(ctx, "citas", http.MethodGet, "/citas", nil, &citas); err != nil {
		return nil, fmt.Errorf("failed to list citas: %w", err)
	}
	return citas, nil
}

func (a *Appointments) Create(ctx context.Context, p model.AppointmentPayload) (*model.Appointment, error) {
	var cita model.Appointment
	if err := a.c.do(ctx, "citas", http.MethodPost, "/citas", p, &cita); err != nil {
		return nil, fmt.Errorf("failed to create cita: %w", err)
	}
	return &cita, nil
}

func (a *Appointments) Update(ctx context.Context, id int64, p model.AppointmentPayload) (*model.Appointment, error) {
	var cita model.Appointment
	if err := a.c.do(ctx, "citas", http.MethodPut, fmt.Sprintf("/citas/%d", id), p, &cita); err != nil {
		return nil, fmt.Errorf("failed to update cita %d: %w", id, err)
	}
	return &cita, nil
}

// Cancel soft-deletes: the record keeps existing remotely with
// ACTIVO=false and estado cancelado.
func (a *Appointments) Cancel(ctx context.Context, id int64) (*model.Appointment, error) {
	patch := model.AppointmentCancel{Activo: false, Estado: model.CitaCancelado}
	var cita model.Appointment
	if err := a.c.do(ctx, "citas", http.MethodPut, fmt.Sprintf("/citas/%d", id), patch, &cita); err != nil {
		return nil, fmt.Errorf("failed to cancel cita %d: %w", id, err)
	}
	return &cita, nil
}
