package request

import (
	"enaccion/src/webpay/domain/entity"

	"github.com/shopspring/decimal"
)

// IniciarTransaccionRequest es el body para abrir un pago WebPay.
type IniciarTransaccionRequest struct {
	Monto       decimal.Decimal `json:"monto"`
	OrdenCompra string          `json:"ordenCompra"`
	SessionID   string          `json:"sessionId"`
}

// EnviarComprobanteRequest es el body para reenviar el comprobante.
type EnviarComprobanteRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// EnviarLinkPagoRequest es el body para mandar el enlace de pago.
type EnviarLinkPagoRequest struct {
	Email       string                      `json:"email"`
	LinkPago    string                      `json:"linkPago"`
	NumeroOrden int                         `json:"numeroOrden"`
	Monto       decimal.Decimal             `json:"monto"`
	Detalles    []entity.DetalleComprobante `json:"detalles"`
}
