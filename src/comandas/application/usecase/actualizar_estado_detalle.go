package usecase

import (
	"context"

	"enaccion/src/comandas/domain/entity"
	"enaccion/src/comandas/domain/port"
)

// ActualizarEstadoDetalleUseCase caso de uso de la pantalla de cocina:
// cambia el estado de un detalle sin tocar la comanda padre
type ActualizarEstadoDetalleUseCase struct {
	detalleRepo port.DetalleRepository
}

// NewActualizarEstadoDetalleUseCase crea una nueva instancia del caso de uso
func NewActualizarEstadoDetalleUseCase(detalleRepo port.DetalleRepository) *ActualizarEstadoDetalleUseCase {
	return &ActualizarEstadoDetalleUseCase{detalleRepo: detalleRepo}
}

// Execute aplica la transición y devuelve el detalle actualizado.
func (uc *ActualizarEstadoDetalleUseCase) Execute(ctx context.Context, idDetalle int, estado entity.Estado) (*entity.Detalle, error) {
	if !estado.EsValido() {
		return nil, entity.ErrEstadoInvalido
	}

	return uc.detalleRepo.ActualizarEstado(ctx, idDetalle, estado)
}
