package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-console/internal/apiclient"
	"github.com/jwalitptl/clinic-console/internal/model"
	"github.com/jwalitptl/clinic-console/pkg/apierror"
	"github.com/jwalitptl/clinic-console/pkg/logger"
)

func newClient(t *testing.T, h http.Handler) (*apiclient.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return apiclient.New(apiclient.Options{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
		Logger:  logger.Nop(),
	}), srv
}

func TestAppointmentsList(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/citas", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"ID_CITA": 7, "FECHA_CITA": "2024-03-01", "HORA_CITA": "10:30", "CVE_TIPO_CITA": 5,
			 "CVE_ESTADO": 1, "ID_PACIENTE": 12, "MATRICULAMED": 1001, "ACTIVO": true,
			 "paciente": {"NOMBRE": "Laura"}, "personal": {"NOMBRE": "Dr. Soto"}}
		]`))
	}))

	citas, err := apiclient.NewAppointments(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, citas, 1)
	assert.Equal(t, int64(7), citas[0].ID)
	assert.Equal(t, "Laura", citas[0].PacienteNombre())
	assert.Equal(t, "Dr. Soto", citas[0].PersonalNombre())
	assert.Equal(t, int64(1001), citas[0].Matricula)
}

func TestAppointmentsCreate(t *testing.T) {
	var received map[string]any
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ID_CITA": 99}`))
	}))

	cita, err := apiclient.NewAppointments(client).Create(context.Background(), model.AppointmentPayload{
		FechaCita:  "2024-05-01",
		HoraCita:   "09:00",
		TipoCita:   model.TipoDentista,
		PacienteID: 12,
		Matricula:  1001,
		Estado:     model.CitaPendiente,
		Activo:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), cita.ID)
	assert.Equal(t, "2024-05-01", received["FECHA_CITA"])
	assert.Equal(t, float64(model.CitaPendiente), received["CVE_ESTADO"])
	assert.Equal(t, true, received["ACTIVO"])
}

func TestAppointmentsUpdateNoChangeSentinel(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "ERROR_CITA_SIN_CAMBIO"}`))
	}))

	_, err := apiclient.NewAppointments(client).Update(context.Background(), 7, model.AppointmentPayload{
		FechaCita: "2024-05-01", HoraCita: "09:00", TipoCita: 1, PacienteID: 12, Matricula: 1001,
	})
	require.Error(t, err)
	assert.True(t, apierror.IsNoChange(err))
}

func TestAppointmentsCancelSendsSoftDelete(t *testing.T) {
	var received map[string]any
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/citas/7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"ID_CITA": 7, "ACTIVO": false, "CVE_ESTADO": 6}`))
	}))

	cita, err := apiclient.NewAppointments(client).Cancel(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, cita.Activo)
	assert.Equal(t, false, received["ACTIVO"])
	assert.Equal(t, float64(model.CitaCancelado), received["CVE_ESTADO"])
	// The partial payload must not touch any other field.
	assert.Len(t, received, 2)
}

func TestRemoteErrorCarriesMessage(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "db exploded"}`))
	}))

	_, err := apiclient.NewAppointments(client).List(context.Background())
	require.Error(t, err)
	assert.Equal(t, apierror.KindRemote, apierror.KindOf(err))
	assert.Contains(t, err.Error(), "db exploded")
}
