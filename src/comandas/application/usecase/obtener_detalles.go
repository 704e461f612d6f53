package usecase

import (
	"context"

	"enaccion/src/comandas/domain/entity"
	"enaccion/src/comandas/domain/port"
)

// ObtenerDetallesUseCase caso de uso para los detalles crudos de una comanda
type ObtenerDetallesUseCase struct {
	detalleRepo port.DetalleRepository
}

// NewObtenerDetallesUseCase crea una nueva instancia del caso de uso
func NewObtenerDetallesUseCase(detalleRepo port.DetalleRepository) *ObtenerDetallesUseCase {
	return &ObtenerDetallesUseCase{detalleRepo: detalleRepo}
}

// Execute devuelve los detalles de la comanda tal como están en la tabla.
func (uc *ObtenerDetallesUseCase) Execute(ctx context.Context, idNumeroOrden int) ([]entity.Detalle, error) {
	return uc.detalleRepo.ListarPorComanda(ctx, idNumeroOrden)
}
