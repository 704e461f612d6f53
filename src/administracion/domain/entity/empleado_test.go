package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmpleadoValidar(t *testing.T) {
	base := Empleado{
		Nombre:          "María",
		Apellido:        "Fuentes",
		Edad:            29,
		FechaNacimiento: time.Date(1996, 5, 12, 0, 0, 0, 0, time.UTC),
		Telefono:        "+56912345678",
		Correo:          "maria.fuentes@correo.cl",
		Cargo:           CargoMesero,
	}
	assert.NoError(t, base.Validar())

	casos := []struct {
		nombre   string
		modifica func(*Empleado)
	}{
		{"sin nombre", func(e *Empleado) { e.Nombre = "" }},
		{"sin apellido", func(e *Empleado) { e.Apellido = "" }},
		{"sin edad", func(e *Empleado) { e.Edad = 0 }},
		{"sin fecha de nacimiento", func(e *Empleado) { e.FechaNacimiento = time.Time{} }},
		{"sin teléfono", func(e *Empleado) { e.Telefono = "" }},
		{"sin correo", func(e *Empleado) { e.Correo = "" }},
		{"sin cargo", func(e *Empleado) { e.Cargo = "" }},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			empleado := base
			caso.modifica(&empleado)
			assert.ErrorIs(t, empleado.Validar(), ErrCamposObligatorios)
		})
	}
}
