package usecase

import (
	"context"

	"enaccion/src/comandas/application/request"
	"enaccion/src/comandas/domain/entity"
	"enaccion/src/comandas/domain/port"
)

// CrearComandaUseCase caso de uso para registrar una comanda nueva
type CrearComandaUseCase struct {
	comandaRepo port.ComandaRepository
}

// NewCrearComandaUseCase crea una nueva instancia del caso de uso
func NewCrearComandaUseCase(comandaRepo port.ComandaRepository) *CrearComandaUseCase {
	return &CrearComandaUseCase{comandaRepo: comandaRepo}
}

// Execute valida los campos obligatorios y persiste la comanda. La fecha de
// pedido la pone el servidor al insertar; la fecha de entrega nace en NULL.
func (uc *CrearComandaUseCase) Execute(ctx context.Context, req *request.CrearComandaRequest) (*entity.Comanda, error) {
	comanda, err := entity.NuevaComanda(req.IDEmpleado, req.IDMesa, entity.Estado(req.IDEstado), req.Detalles)
	if err != nil {
		return nil, err
	}

	return uc.comandaRepo.Crear(ctx, comanda)
}
