package usecase

import (
	"context"

	"enaccion/src/comandas/domain/port"
)

// EliminarComandaUseCase caso de uso para borrar una comanda
type EliminarComandaUseCase struct {
	comandaRepo port.ComandaRepository
}

// NewEliminarComandaUseCase crea una nueva instancia del caso de uso
func NewEliminarComandaUseCase(comandaRepo port.ComandaRepository) *EliminarComandaUseCase {
	return &EliminarComandaUseCase{comandaRepo: comandaRepo}
}

// Execute elimina la comanda por su número de orden.
func (uc *EliminarComandaUseCase) Execute(ctx context.Context, idNumeroOrden int) error {
	return uc.comandaRepo.Eliminar(ctx, idNumeroOrden)
}
