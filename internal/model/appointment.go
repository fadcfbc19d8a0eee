package model

import "time"

// Appointment status codes as stored by the remote API (CVE_ESTADO).
const (
	CitaPendiente    = 1
	CitaEnAtencion   = 2
	CitaAtendido     = 3
	CitaAtrasado     = 4
	CitaPospuesto    = 5
	CitaCancelado    = 6
	CitaReprogramado = 7
)

// Appointment type codes (CVE_TIPO_CITA).
const (
	TipoPesoTalla       = 1
	TipoControlEmbarazo = 2
	TipoControlMensual  = 3
	TipoDiagnostico     = 4
	TipoDentista        = 5
	TipoOtro            = 6
)

// Appointment is a cita as returned by the remote collection API. The
// list endpoint embeds the referenced patient and staff records under
// lowercase keys.
type Appointment struct {
	ID         int64    `json:"ID_CITA"`
	FechaCita  string   `json:"FECHA_CITA"`
	HoraCita   string   `json:"HORA_CITA"`
	TipoCita   int      `json:"CVE_TIPO_CITA"`
	Estado     int      `json:"CVE_ESTADO"`
	PacienteID int64    `json:"ID_PACIENTE"`
	Matricula  int64    `json:"MATRICULAMED"`
	Activo     bool     `json:"ACTIVO"`
	Paciente   *NameRef `json:"paciente,omitempty"`
	Personal   *NameRef `json:"personal,omitempty"`
}

// NameRef is the embedded shape of a referenced record inside an
// appointment row; only the display name is ever read.
type NameRef struct {
	Nombre string `json:"NOMBRE"`
}

// PacienteNombre returns the embedded patient name, or empty when the
// API returned the row without its reference expanded.
func (a *Appointment) PacienteNombre() string {
	if a.Paciente == nil {
		return ""
	}
	return a.Paciente.Nombre
}

func (a *Appointment) PersonalNombre() string {
	if a.Personal == nil {
		return ""
	}
	return a.Personal.Nombre
}

// FechaTime parses the scheduled date for sorting. The API emits plain
// dates but older rows carry full timestamps, so both layouts are tried.
// Unparseable dates sort last.
func (a *Appointment) FechaTime() time.Time {
	return parseFecha(a.FechaCita)
}

func parseFecha(s string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// AppointmentPayload is the flat record sent on create and full update.
type AppointmentPayload struct {
	FechaCita  string `json:"FECHA_CITA" validate:"required"`
	HoraCita   string `json:"HORA_CITA" validate:"required"`
	TipoCita   int    `json:"CVE_TIPO_CITA" validate:"required"`
	PacienteID int64  `json:"ID_PACIENTE" validate:"required"`
	Matricula  int64  `json:"MATRICULAMED" validate:"required"`
	Estado     int    `json:"CVE_ESTADO"`
	Activo     bool   `json:"ACTIVO"`
}

// AppointmentCancel is the partial update that soft-deletes a cita: the
// row stays in the remote collection with ACTIVO=false, CVE_ESTADO=6.
type AppointmentCancel struct {
	Activo bool `json:"ACTIVO"`
	Estado int  `json:"CVE_ESTADO"`
}

var tiposCita = map[int]string{
	TipoPesoTalla:       "Peso y Talla",
	TipoControlEmbarazo: "Control Embarazos",
	TipoControlMensual:  "Control Mensual",
	TipoDiagnostico:     "Diagnóstico",
	TipoDentista:        "Dentista",
	TipoOtro:            "Otro",
}

var estadosCita = map[int]string{
	CitaPendiente:    "Pendiente",
	CitaEnAtencion:   "En Atención",
	CitaAtendido:     "Atendido",
	CitaAtrasado:     "Atrasado",
	CitaPospuesto:    "Pospuesto",
	CitaCancelado:    "Cancelado",
	CitaReprogramado: "Reprogramado",
}

// TipoCitaLabel returns the display label for an appointment type code.
func TipoCitaLabel(code int) string {
	if l, ok := tiposCita[code]; ok {
		return l
	}
	return "Desconocido"
}

// EstadoCitaLabel returns the display label for an appointment status code.
func EstadoCitaLabel(code int) string {
	if l, ok := estadosCita[code]; ok {
		return l
	}
	return "Estado Desconocido"
}
