package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstadoEsValido(t *testing.T) {
	validos := []Estado{EstadoPendiente, EstadoPreparacion, EstadoEntregado, EstadoPagado, EstadoCancelado}
	for _, e := range validos {
		assert.True(t, e.EsValido(), "estado %d debería ser válido", e)
	}

	// El 4 está reservado y nunca se usa.
	assert.False(t, Estado(4).EsValido())
	assert.False(t, Estado(0).EsValido())
	assert.False(t, Estado(7).EsValido())
}

func TestEstadoEsTerminal(t *testing.T) {
	assert.True(t, EstadoEntregado.EsTerminal())
	assert.True(t, EstadoCancelado.EsTerminal())

	assert.False(t, EstadoPendiente.EsTerminal())
	assert.False(t, EstadoPreparacion.EsTerminal())
	assert.False(t, EstadoPagado.EsTerminal())
}

func TestEstadoNombre(t *testing.T) {
	assert.Equal(t, "Pendiente", EstadoPendiente.Nombre())
	assert.Equal(t, "En Preparación", EstadoPreparacion.Nombre())
	assert.Equal(t, "Entregado", EstadoEntregado.Nombre())
	assert.Equal(t, "Pagado", EstadoPagado.Nombre())
	assert.Equal(t, "Cancelado", EstadoCancelado.Nombre())
	assert.Equal(t, "Desconocido", Estado(4).Nombre())
}

func TestComandaPagable(t *testing.T) {
	tests := []struct {
		name            string
		estadoComanda   Estado
		estadosDetalle  []Estado
		esperadoPagable bool
	}{
		{
			name:            "todos entregados",
			estadoComanda:   EstadoPreparacion,
			estadosDetalle:  []Estado{EstadoEntregado, EstadoEntregado},
			esperadoPagable: true,
		},
		{
			name:            "entregados y cancelados mezclados",
			estadoComanda:   EstadoPendiente,
			estadosDetalle:  []Estado{EstadoEntregado, EstadoCancelado},
			esperadoPagable: true,
		},
		{
			name:            "algún detalle pendiente",
			estadoComanda:   EstadoPreparacion,
			estadosDetalle:  []Estado{EstadoEntregado, EstadoPendiente},
			esperadoPagable: false,
		},
		{
			name:            "algún detalle en preparación",
			estadoComanda:   EstadoPreparacion,
			estadosDetalle:  []Estado{EstadoPreparacion},
			esperadoPagable: false,
		},
		{
			name:            "todos los detalles cancelados",
			estadoComanda:   EstadoPendiente,
			estadosDetalle:  []Estado{EstadoCancelado, EstadoCancelado},
			esperadoPagable: false,
		},
		{
			name:            "comanda ya pagada",
			estadoComanda:   EstadoPagado,
			estadosDetalle:  []Estado{EstadoEntregado},
			esperadoPagable: false,
		},
		{
			name:            "comanda cancelada",
			estadoComanda:   EstadoCancelado,
			estadosDetalle:  []Estado{EstadoEntregado},
			esperadoPagable: false,
		},
		{
			name:            "sin detalles",
			estadoComanda:   EstadoPendiente,
			estadosDetalle:  nil,
			esperadoPagable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.esperadoPagable, ComandaPagable(tt.estadoComanda, tt.estadosDetalle))
		})
	}
}
