package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemVenta es una línea de la venta tal como llega desde caja.
type ItemVenta struct {
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// Subtotal calcula cantidad x precio unitario de la línea.
func (i ItemVenta) Subtotal() decimal.Decimal {
	return i.PrecioUnitario.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// Validar revisa que la línea tenga producto y cantidad positiva.
func (i ItemVenta) Validar() error {
	if i.Producto == "" {
		return ErrProductoRequerido
	}
	if i.Cantidad <= 0 {
		return ErrCantidadInvalida
	}
	if i.PrecioUnitario.IsNegative() {
		return ErrPrecioInvalido
	}
	return nil
}

// Venta es el encabezado de la venta registrada.
type Venta struct {
	ID            int             `json:"id"`
	IDNumeroOrden int             `json:"id_numero_orden"`
	Total         decimal.Decimal `json:"total"`
	Fecha         time.Time       `json:"fecha"`
}

// TotalVenta suma los subtotales de todas las líneas.
func TotalVenta(items []ItemVenta) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
