package usecase

import (
	"context"

	"enaccion/src/comandas/domain/entity"
	"enaccion/src/comandas/domain/port"
)

// AvanzarDetalleUseCase caso de uso para avanzar el estado de un detalle.
// Cuando el destino es Entregado también queda fijada la fecha de entrega
// de la comanda padre, en la misma transacción.
type AvanzarDetalleUseCase struct {
	detalleRepo port.DetalleRepository
}

// NewAvanzarDetalleUseCase crea una nueva instancia del caso de uso
func NewAvanzarDetalleUseCase(detalleRepo port.DetalleRepository) *AvanzarDetalleUseCase {
	return &AvanzarDetalleUseCase{detalleRepo: detalleRepo}
}

// Execute aplica la transición y devuelve la comanda padre actualizada.
func (uc *AvanzarDetalleUseCase) Execute(ctx context.Context, idDetalle int, estado entity.Estado) (*entity.Comanda, error) {
	if !estado.EsValido() {
		return nil, entity.ErrEstadoInvalido
	}

	return uc.detalleRepo.AvanzarEstado(ctx, idDetalle, estado)
}
