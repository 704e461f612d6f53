package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuevaTransaccion(t *testing.T) {
	ahora := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("transacción válida", func(t *testing.T) {
		tx, err := NuevaTransaccion("token_1_abc", decimal.NewFromInt(15990), "COMANDA-7", "sesion-7", ahora)
		require.NoError(t, err)
		assert.Equal(t, EstadoPendiente, tx.Estado)
		assert.Equal(t, ahora, tx.FechaCreacion)
		assert.Nil(t, tx.Resultado)
	})

	t.Run("monto cero", func(t *testing.T) {
		_, err := NuevaTransaccion("tok", decimal.Zero, "COMANDA-7", "sesion", ahora)
		assert.ErrorIs(t, err, ErrMontoRequerido)
	})

	t.Run("sin orden de compra", func(t *testing.T) {
		_, err := NuevaTransaccion("tok", decimal.NewFromInt(100), "", "sesion", ahora)
		assert.ErrorIs(t, err, ErrOrdenCompraRequerida)
	})

	t.Run("sin session id", func(t *testing.T) {
		_, err := NuevaTransaccion("tok", decimal.NewFromInt(100), "COMANDA-7", "", ahora)
		assert.ErrorIs(t, err, ErrSessionIDRequerido)
	})
}

func TestTransaccionNumeroOrden(t *testing.T) {
	tx := Transaccion{OrdenCompra: "COMANDA-123"}
	assert.Equal(t, "123", tx.NumeroOrden())

	// Sin prefijo se devuelve tal cual.
	tx = Transaccion{OrdenCompra: "456"}
	assert.Equal(t, "456", tx.NumeroOrden())
}

func TestEstadoPorStatus(t *testing.T) {
	estado, codigo := EstadoPorStatus("success")
	assert.Equal(t, EstadoAutorizada, estado)
	assert.Equal(t, CodigoExito, codigo)

	estado, codigo = EstadoPorStatus("failed")
	assert.Equal(t, EstadoFallida, estado)
	assert.Equal(t, CodigoFallo, codigo)

	estado, codigo = EstadoPorStatus("cancelled")
	assert.Equal(t, EstadoCancelada, estado)
	assert.Equal(t, CodigoCancelado, codigo)

	// Cualquier status desconocido se trata como cancelación.
	estado, codigo = EstadoPorStatus("")
	assert.Equal(t, EstadoCancelada, estado)
	assert.Equal(t, CodigoCancelado, codigo)
}

func TestFinalizar(t *testing.T) {
	tx := Transaccion{Estado: EstadoPendiente}
	resultado := &Resultado{Status: EstadoAutorizada, ResponseCode: CodigoExito}

	tx.Finalizar(resultado)

	assert.Equal(t, EstadoAutorizada, tx.Estado)
	assert.True(t, tx.Exitosa())
	assert.Same(t, resultado, tx.Resultado)
}

func TestClonar(t *testing.T) {
	original := Transaccion{
		Token:       "tok",
		Monto:       decimal.NewFromInt(15990),
		OrdenCompra: "COMANDA-7",
		Estado:      EstadoAutorizada,
		Resultado:   &Resultado{Status: EstadoAutorizada, AuthorizationCode: "ABC123"},
	}

	clon := original.Clonar()
	require.Equal(t, &original, clon)
	assert.NotSame(t, &original, clon)
	assert.NotSame(t, original.Resultado, clon.Resultado)

	// Mutar el clon no toca el original.
	clon.Finalizar(&Resultado{Status: EstadoFallida})
	assert.Equal(t, EstadoAutorizada, original.Estado)
	assert.Equal(t, "ABC123", original.Resultado.AuthorizationCode)

	sinResultado := Transaccion{Token: "tok", Estado: EstadoPendiente}
	assert.Nil(t, sinResultado.Clonar().Resultado)
}

func TestIVA(t *testing.T) {
	tests := []struct {
		monto    int64
		esperado int64
	}{
		{10000, 1900},
		{15990, 3038}, // 3038.1 redondea hacia abajo
		{1, 0},        // 0.19 redondea a 0
		{3, 1},        // 0.57 redondea a 1
	}

	for _, tt := range tests {
		iva := IVA(decimal.NewFromInt(tt.monto))
		assert.True(t, iva.Equal(decimal.NewFromInt(tt.esperado)),
			"IVA de %d: esperado %d, obtenido %s", tt.monto, tt.esperado, iva)
	}
}

func TestFormatoPesos(t *testing.T) {
	assert.Equal(t, "0", FormatoMilesInt(0))
	assert.Equal(t, "999", FormatoMilesInt(999))
	assert.Equal(t, "1.000", FormatoMilesInt(1000))
	assert.Equal(t, "15.990", FormatoMilesInt(15990))
	assert.Equal(t, "1.234.567", FormatoMilesInt(1234567))
	assert.Equal(t, "-1.500", FormatoMilesInt(-1500))

	assert.Equal(t, "15.990", FormatoPesos(decimal.NewFromInt(15990)))
}
