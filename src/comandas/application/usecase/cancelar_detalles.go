package usecase

import (
	"context"

	"enaccion/src/comandas/domain/entity"
	"enaccion/src/comandas/domain/port"
)

// CancelarDetallesUseCase caso de uso para el cierre masivo de detalles al
// finalizar un pago: todo detalle no cancelado pasa a Pagado
type CancelarDetallesUseCase struct {
	detalleRepo port.DetalleRepository
}

// NewCancelarDetallesUseCase crea una nueva instancia del caso de uso
func NewCancelarDetallesUseCase(detalleRepo port.DetalleRepository) *CancelarDetallesUseCase {
	return &CancelarDetallesUseCase{detalleRepo: detalleRepo}
}

// Execute cierra los detalles pendientes de la comanda y los devuelve.
func (uc *CancelarDetallesUseCase) Execute(ctx context.Context, idNumeroOrden int) ([]entity.Detalle, error) {
	if idNumeroOrden == 0 {
		return nil, entity.ErrComandaRequerida
	}

	return uc.detalleRepo.CancelarPendientes(ctx, idNumeroOrden)
}
