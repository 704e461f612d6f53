package usecase

import (
	"context"

	"enaccion/src/ventas/application/request"
	"enaccion/src/ventas/domain/entity"
	"enaccion/src/ventas/domain/port"
)

// RegistrarVentaUseCase caso de uso para registrar una venta cerrada
type RegistrarVentaUseCase struct {
	ventaRepo port.VentaRepository
}

// NewRegistrarVentaUseCase crea una nueva instancia del caso de uso
func NewRegistrarVentaUseCase(ventaRepo port.VentaRepository) *RegistrarVentaUseCase {
	return &RegistrarVentaUseCase{ventaRepo: ventaRepo}
}

// Execute valida las líneas y delega la escritura transaccional.
func (uc *RegistrarVentaUseCase) Execute(ctx context.Context, req *request.RegistrarVentaRequest) (*entity.Venta, error) {
	if req.IDNumeroOrden <= 0 {
		return nil, entity.ErrComandaRequerida
	}
	if len(req.Comanda) == 0 {
		return nil, entity.ErrVentaSinItems
	}
	for _, item := range req.Comanda {
		if err := item.Validar(); err != nil {
			return nil, err
		}
	}

	return uc.ventaRepo.Registrar(ctx, req.IDNumeroOrden, req.Comanda)
}
