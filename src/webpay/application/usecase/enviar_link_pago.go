package usecase

import (
	"context"
	"strconv"

	"enaccion/src/webpay/application/request"
	"enaccion/src/webpay/domain/entity"
	"enaccion/src/webpay/domain/port"
)

// EnviarLinkPagoUseCase caso de uso para mandar el enlace de pago por
// correo, sin tocar el almacén de transacciones
type EnviarLinkPagoUseCase struct {
	mailer port.Mailer
}

// NewEnviarLinkPagoUseCase crea una nueva instancia del caso de uso
func NewEnviarLinkPagoUseCase(mailer port.Mailer) *EnviarLinkPagoUseCase {
	return &EnviarLinkPagoUseCase{mailer: mailer}
}

// Execute valida los parámetros y despacha el correo con el enlace.
func (uc *EnviarLinkPagoUseCase) Execute(ctx context.Context, req *request.EnviarLinkPagoRequest) error {
	if req.Email == "" || req.LinkPago == "" || req.NumeroOrden <= 0 || !req.Monto.IsPositive() {
		return entity.ErrLinkPagoIncompleto
	}

	link := entity.LinkPago{
		NumeroOrden: strconv.Itoa(req.NumeroOrden),
		Monto:       req.Monto,
		URL:         req.LinkPago,
		Detalles:    req.Detalles,
	}

	return uc.mailer.EnviarLinkPago(ctx, req.Email, link)
}
