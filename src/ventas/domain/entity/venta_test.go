package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemVentaValidar(t *testing.T) {
	valido := ItemVenta{Producto: "Lomo a lo pobre", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(15990)}
	assert.NoError(t, valido.Validar())

	sinProducto := valido
	sinProducto.Producto = ""
	assert.ErrorIs(t, sinProducto.Validar(), ErrProductoRequerido)

	cantidadCero := valido
	cantidadCero.Cantidad = 0
	assert.ErrorIs(t, cantidadCero.Validar(), ErrCantidadInvalida)

	cantidadNegativa := valido
	cantidadNegativa.Cantidad = -1
	assert.ErrorIs(t, cantidadNegativa.Validar(), ErrCantidadInvalida)

	precioNegativo := valido
	precioNegativo.PrecioUnitario = decimal.NewFromInt(-100)
	assert.ErrorIs(t, precioNegativo.Validar(), ErrPrecioInvalido)
}

func TestItemVentaSubtotal(t *testing.T) {
	item := ItemVenta{Producto: "Empanada", Cantidad: 3, PrecioUnitario: decimal.NewFromInt(2500)}
	assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(7500)))
}

func TestTotalVenta(t *testing.T) {
	items := []ItemVenta{
		{Producto: "Empanada", Cantidad: 3, PrecioUnitario: decimal.NewFromInt(2500)},
		{Producto: "Lomo a lo pobre", Cantidad: 1, PrecioUnitario: decimal.NewFromInt(15990)},
	}
	assert.True(t, TotalVenta(items).Equal(decimal.NewFromInt(23490)))

	assert.True(t, TotalVenta(nil).Equal(decimal.Zero))
}
