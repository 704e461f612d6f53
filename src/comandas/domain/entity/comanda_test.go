package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuevaComanda(t *testing.T) {
	t.Run("comanda válida", func(t *testing.T) {
		comanda, err := NuevaComanda(1, 2, EstadoPendiente, "sin sal")
		require.NoError(t, err)
		assert.Equal(t, 1, comanda.IDEmpleado)
		assert.Equal(t, 2, comanda.IDMesa)
		assert.Equal(t, EstadoPendiente, comanda.IDEstado)
		assert.Equal(t, "sin sal", comanda.Detalles)
		assert.Nil(t, comanda.FechaEntrega)
	})

	t.Run("sin empleado", func(t *testing.T) {
		_, err := NuevaComanda(0, 2, EstadoPendiente, "")
		assert.ErrorIs(t, err, ErrEmpleadoRequerido)
	})

	t.Run("sin mesa", func(t *testing.T) {
		_, err := NuevaComanda(1, 0, EstadoPendiente, "")
		assert.ErrorIs(t, err, ErrMesaRequerida)
	})

	t.Run("estado desconocido", func(t *testing.T) {
		_, err := NuevaComanda(1, 2, Estado(4), "")
		assert.ErrorIs(t, err, ErrEstadoInvalido)
	})
}

func TestComandaAdmiteDetalles(t *testing.T) {
	abiertas := []Estado{EstadoPendiente, EstadoPreparacion, EstadoEntregado}
	for _, e := range abiertas {
		comanda := Comanda{IDEstado: e}
		assert.True(t, comanda.AdmiteDetalles(), "comanda en estado %d debería admitir detalles", e)
	}

	cerradas := []Estado{EstadoPagado, EstadoCancelado}
	for _, e := range cerradas {
		comanda := Comanda{IDEstado: e}
		assert.False(t, comanda.AdmiteDetalles(), "comanda en estado %d no debería admitir detalles", e)
	}
}

func TestNuevoDetalle(t *testing.T) {
	t.Run("detalle válido", func(t *testing.T) {
		detalle, err := NuevoDetalle(10, 3, 2, EstadoPendiente)
		require.NoError(t, err)
		assert.Equal(t, 10, detalle.IDNumeroOrden)
		assert.Equal(t, 3, detalle.IDPlato)
		assert.Equal(t, 2, detalle.Cantidad)
		assert.Equal(t, EstadoPendiente, detalle.IDEstado)
	})

	t.Run("sin comanda", func(t *testing.T) {
		_, err := NuevoDetalle(0, 3, 2, EstadoPendiente)
		assert.ErrorIs(t, err, ErrComandaRequerida)
	})

	t.Run("sin plato", func(t *testing.T) {
		_, err := NuevoDetalle(10, 0, 2, EstadoPendiente)
		assert.ErrorIs(t, err, ErrPlatoRequerido)
	})

	t.Run("cantidad inválida", func(t *testing.T) {
		_, err := NuevoDetalle(10, 3, 0, EstadoPendiente)
		assert.ErrorIs(t, err, ErrCantidadInvalida)

		_, err = NuevoDetalle(10, 3, -1, EstadoPendiente)
		assert.ErrorIs(t, err, ErrCantidadInvalida)
	})
}
