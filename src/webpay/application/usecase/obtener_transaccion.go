package usecase

import (
	"context"

	"enaccion/src/webpay/domain/entity"
	"enaccion/src/webpay/domain/port"
)

// ObtenerTransaccionUseCase resuelve una transacción por token, primero
// contra el cache y después contra la base de datos
type ObtenerTransaccionUseCase struct {
	transaccionRepo port.TransaccionRepository
	cache           port.TransaccionCache
}

// NewObtenerTransaccionUseCase crea una nueva instancia del caso de uso
func NewObtenerTransaccionUseCase(
	transaccionRepo port.TransaccionRepository,
	cache port.TransaccionCache,
) *ObtenerTransaccionUseCase {
	return &ObtenerTransaccionUseCase{
		transaccionRepo: transaccionRepo,
		cache:           cache,
	}
}

// Execute busca la transacción. Un acierto de base de datos repuebla el
// cache para las siguientes consultas del mismo token.
func (uc *ObtenerTransaccionUseCase) Execute(ctx context.Context, token string) (*entity.Transaccion, error) {
	if token == "" {
		return nil, entity.ErrTokenRequerido
	}

	if transaccion, ok := uc.cache.Obtener(token); ok {
		return transaccion, nil
	}

	transaccion, err := uc.transaccionRepo.BuscarPorToken(ctx, token)
	if err != nil {
		return nil, err
	}

	uc.cache.Guardar(transaccion)
	return transaccion, nil
}
