package port

import (
	"context"

	"enaccion/src/ventas/domain/entity"
)

// VentaRepository define las operaciones de persistencia para ventas
type VentaRepository interface {
	// Registrar inserta el encabezado, sus líneas y el total calculado
	// en una sola transacción. Devuelve la venta persistida.
	Registrar(ctx context.Context, idNumeroOrden int, items []entity.ItemVenta) (*entity.Venta, error)
}
