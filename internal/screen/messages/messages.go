// Package messages holds the user-facing screen messages. The clinic
// runs in Spanish; the strings stay as the product shows them.
package messages

const (
	SinCambio = "No se realizaron cambios en el registro"

	ExitoRegistroCita      = "Cita registrada con éxito"
	ExitoActualizacionCita = "Cita actualizada con éxito"
	ErrorAltaCita          = "Ocurrió un error al registrar la cita, por favor intente de nuevo."

	ExitoRegistroPaciente      = "Paciente registrado con éxito"
	ExitoActualizacionPaciente = "Paciente actualizado con éxito"
	ErrorAltaPaciente          = "Ocurrió un error al dar de alta al paciente, por favor intente de nuevo."

	ErrorCargaLista = "Ocurrió un error al cargar la lista. Intenta nuevamente más tarde."
)
