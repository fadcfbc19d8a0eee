package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/clinic-console/internal/model"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, "Dentista", model.TipoCitaLabel(model.TipoDentista))
	assert.Equal(t, "Desconocido", model.TipoCitaLabel(42))
	assert.Equal(t, "Cancelado", model.EstadoCitaLabel(model.CitaCancelado))
	assert.Equal(t, "Estado Desconocido", model.EstadoCitaLabel(42))
}

func TestFechaTimeHandlesBothLayouts(t *testing.T) {
	a := model.Appointment{FechaCita: "2024-03-01"}
	assert.Equal(t, 2024, a.FechaTime().Year())

	b := model.Appointment{FechaCita: "2024-03-01T09:30:00Z"}
	assert.Equal(t, 3, int(b.FechaTime().Month()))

	c := model.Appointment{FechaCita: "garbage"}
	assert.True(t, c.FechaTime().IsZero())
}

func TestNombreCompleto(t *testing.T) {
	p := model.Patient{Nombre: "Laura", ApellidoPaterno: "Gómez"}
	assert.Equal(t, "Laura Gómez", p.NombreCompleto())

	p.ApellidoMaterno = "Cruz"
	assert.Equal(t, "Laura Gómez Cruz", p.NombreCompleto())
}

func TestPageOf(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := model.PageOf(items, model.Pagination{Page: 1, PageSize: 2})
	assert.Equal(t, []int{1, 2}, page)

	page = model.PageOf(items, model.Pagination{Page: 3, PageSize: 2})
	assert.Equal(t, []int{5}, page)

	assert.Nil(t, model.PageOf(items, model.Pagination{Page: 4, PageSize: 2}))
}

func TestPaginationNormalize(t *testing.T) {
	p := model.Pagination{}.Normalize(10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
}
