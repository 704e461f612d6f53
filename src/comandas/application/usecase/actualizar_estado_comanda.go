package usecase

import (
	"context"

	"enaccion/src/comandas/domain/entity"
	"enaccion/src/comandas/domain/port"
)

// ActualizarEstadoComandaUseCase caso de uso para cambiar el estado global
// de una comanda
type ActualizarEstadoComandaUseCase struct {
	comandaRepo port.ComandaRepository
}

// NewActualizarEstadoComandaUseCase crea una nueva instancia del caso de uso
func NewActualizarEstadoComandaUseCase(comandaRepo port.ComandaRepository) *ActualizarEstadoComandaUseCase {
	return &ActualizarEstadoComandaUseCase{comandaRepo: comandaRepo}
}

// Execute valida el código y aplica la actualización.
func (uc *ActualizarEstadoComandaUseCase) Execute(ctx context.Context, idNumeroOrden int, estado entity.Estado) error {
	if !estado.EsValido() {
		return entity.ErrEstadoInvalido
	}

	return uc.comandaRepo.ActualizarEstado(ctx, idNumeroOrden, estado)
}
