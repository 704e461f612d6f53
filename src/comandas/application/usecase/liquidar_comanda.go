package usecase

import (
	"context"

	"enaccion/src/comandas/domain/port"
)

// LiquidarComandaUseCase caso de uso para cobrar una comanda completa.
// Sustituye al protocolo histórico de dos pasos (marcar pagada + cierre
// masivo de detalles) por una sola operación atómica.
type LiquidarComandaUseCase struct {
	comandaRepo port.ComandaRepository
}

// NewLiquidarComandaUseCase crea una nueva instancia del caso de uso
func NewLiquidarComandaUseCase(comandaRepo port.ComandaRepository) *LiquidarComandaUseCase {
	return &LiquidarComandaUseCase{comandaRepo: comandaRepo}
}

// Execute liquida la comanda. Tras un retorno exitoso la comanda queda en
// Pagado y todos sus detalles en {Pagado, Cancelado}, con los cancelados
// previos intactos.
func (uc *LiquidarComandaUseCase) Execute(ctx context.Context, idNumeroOrden int) error {
	return uc.comandaRepo.Liquidar(ctx, idNumeroOrden)
}
