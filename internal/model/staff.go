package model

// Staff status codes (CVE_ESTADO on personal records).
const (
	PersonalActivo   = 1
	PersonalInactivo = 2
)

// StaffMember is a personal record; the badge number (matrícula) is its
// identifier and the key appointments reference it by.
type StaffMember struct {
	Matricula int64  `json:"MATRICULA"`
	Nombre    string `json:"NOMBRE"`
	Estado    int    `json:"CVE_ESTADO"`
}
