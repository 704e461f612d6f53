package mail

import (
	"strings"
	"testing"
	"time"

	"enaccion/src/webpay/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantillaComprobante(t *testing.T) {
	momento := time.Date(2025, 3, 10, 14, 35, 9, 0, time.UTC)
	transaccion := &entity.Transaccion{
		Token:       "tok",
		Monto:       decimal.NewFromInt(1234567),
		OrdenCompra: "COMANDA-7",
		Resultado:   &entity.Resultado{AuthorizationCode: "ABC123"},
	}
	detalles := []entity.DetalleComprobante{
		{NombrePlato: "Lomo a lo pobre", Cantidad: 1, PrecioUnitario: 15990, TotalParcial: 15990},
		{NombrePlato: "Empanada", Cantidad: 3, PrecioUnitario: 2500, TotalParcial: 7500},
	}

	var html strings.Builder
	require.NoError(t, plantillaComprobante.Execute(&html, nuevosDatosComprobante(transaccion, detalles, momento)))
	cuerpo := html.String()

	assert.Contains(t, cuerpo, "COMANDA-7")
	assert.Contains(t, cuerpo, "10/03/2025")
	assert.Contains(t, cuerpo, "14:35:09")
	assert.Contains(t, cuerpo, "ABC123")
	assert.Contains(t, cuerpo, "Lomo a lo pobre")
	assert.Contains(t, cuerpo, "$15.990")
	assert.Contains(t, cuerpo, "$7.500")
	assert.Contains(t, cuerpo, "$1.234.567")
	// IVA = round(1234567 * 0.19)
	assert.Contains(t, cuerpo, "$234.568")
}

func TestPlantillaComprobanteSinAutorizacion(t *testing.T) {
	transaccion := &entity.Transaccion{
		Token:       "tok",
		Monto:       decimal.NewFromInt(10000),
		OrdenCompra: "COMANDA-9",
	}

	var html strings.Builder
	require.NoError(t, plantillaComprobante.Execute(&html, nuevosDatosComprobante(transaccion, nil, time.Now())))

	assert.Contains(t, html.String(), "N/A")
}

func TestPlantillaLinkPago(t *testing.T) {
	datos := datosLinkPago{
		NumeroOrden: "7",
		Fecha:       "10/03/2025",
		Detalles: []entity.DetalleComprobante{
			{NombrePlato: "Empanada", Cantidad: 3, PrecioUnitario: 2500, TotalParcial: 7500},
		},
		Monto: decimal.NewFromInt(7500),
		URL:   "http://localhost:5001/webpay-simulacion?token_ws=tok",
	}

	var html strings.Builder
	require.NoError(t, plantillaLinkPago.Execute(&html, datos))
	cuerpo := html.String()

	assert.Contains(t, cuerpo, "Orden #7")
	assert.Contains(t, cuerpo, "10/03/2025")
	assert.Contains(t, cuerpo, "3x Empanada - $7.500")
	assert.Contains(t, cuerpo, "Total a Pagar: $7.500")
	assert.Contains(t, cuerpo, "http://localhost:5001/webpay-simulacion?token_ws=tok")
}
