package port

import (
	"context"

	"enaccion/src/comandas/domain/entity"
)

// ComandaRepository define la persistencia del ciclo de vida de comandas.
type ComandaRepository interface {
	Crear(ctx context.Context, comanda *entity.Comanda) (*entity.Comanda, error)
	BuscarPorID(ctx context.Context, idNumeroOrden int) (*entity.Comanda, error)
	ActualizarEstado(ctx context.Context, idNumeroOrden int, estado entity.Estado) error
	Eliminar(ctx context.Context, idNumeroOrden int) error

	// MarcarPagada fija el estado Pagado sin tocar los detalles. La usa el
	// retorno de WebPay, que cobra una comanda ya validada como pagable.
	MarcarPagada(ctx context.Context, idNumeroOrden int) error

	// Liquidar es la operación atómica de cobro: bloquea la fila de la
	// comanda, verifica pagabilidad, marca la comanda como Pagada y cierra
	// los detalles no cancelados, todo dentro de una sola transacción.
	Liquidar(ctx context.Context, idNumeroOrden int) error
}

// DetalleRepository define la persistencia de los detalles de comanda.
type DetalleRepository interface {
	Crear(ctx context.Context, detalle *entity.Detalle) (*entity.Detalle, error)

	// AvanzarEstado actualiza el estado de un detalle y, cuando el estado
	// destino es Entregado, fija fecha_entrega de la comanda padre en la
	// misma transacción. Devuelve la comanda actualizada.
	AvanzarEstado(ctx context.Context, idDetalle int, estado entity.Estado) (*entity.Comanda, error)

	// ActualizarEstado cambia solo el estado del detalle, sin tocar la
	// comanda padre (vista de cocina).
	ActualizarEstado(ctx context.Context, idDetalle int, estado entity.Estado) (*entity.Detalle, error)

	// CancelarPendientes cierra con estado Pagado todos los detalles de la
	// comanda que no estén Cancelados, y los devuelve.
	CancelarPendientes(ctx context.Context, idNumeroOrden int) ([]entity.Detalle, error)

	ListarPorComanda(ctx context.Context, idNumeroOrden int) ([]entity.Detalle, error)
}
