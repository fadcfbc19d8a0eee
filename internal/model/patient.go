package model

import "time"

// Sex codes (CVE_SEXO).
const (
	SexoNoEspecificado = 0
	SexoMujer          = 1
	SexoHombre         = 2
)

// Patient is a paciente record as stored by the remote collection API.
type Patient struct {
	ID              int64  `json:"ID_PACIENTE"`
	Curp            string `json:"CVE_CURP"`
	Nombre          string `json:"NOMBRE"`
	ApellidoPaterno string `json:"APELLIDO_PATERNO"`
	ApellidoMaterno string `json:"APELLIDO_MATERNO"`
	Sexo            int    `json:"CVE_SEXO"`
	Telefono        string `json:"TELEFONO"`
	Seguro          bool   `json:"CVE_SEGURO"`
	Activo          bool   `json:"ACTIVO"`
	Fecha           string `json:"FECHA"`
}

// FechaTime parses the registration date for sorting.
func (p *Patient) FechaTime() time.Time {
	return parseFecha(p.Fecha)
}

// NombreCompleto joins the three name fields for display.
func (p *Patient) NombreCompleto() string {
	s := p.Nombre
	if p.ApellidoPaterno != "" {
		s += " " + p.ApellidoPaterno
	}
	if p.ApellidoMaterno != "" {
		s += " " + p.ApellidoMaterno
	}
	return s
}

// PatientPayload is the flat record sent on create and full update.
// ApellidoMaterno is the only optional name field.
type PatientPayload struct {
	Curp            string `json:"CVE_CURP" validate:"required"`
	Nombre          string `json:"NOMBRE" validate:"required"`
	ApellidoPaterno string `json:"APELLIDO_PATERNO" validate:"required"`
	ApellidoMaterno string `json:"APELLIDO_MATERNO"`
	Sexo            int    `json:"CVE_SEXO"`
	Telefono        string `json:"TELEFONO" validate:"required,len=10,numeric"`
	Seguro          bool   `json:"CVE_SEGURO"`
	Activo          bool   `json:"ACTIVO"`
}

// PatientDeactivate is the partial update that soft-deletes a paciente.
type PatientDeactivate struct {
	Activo bool `json:"ACTIVO"`
}
