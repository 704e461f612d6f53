package entity

import "errors"

// Errores de dominio del gateway de pagos simulado
var (
	ErrMontoRequerido          = errors.New("monto es requerido")
	ErrOrdenCompraRequerida    = errors.New("ordenCompra es requerida")
	ErrSessionIDRequerido      = errors.New("sessionId es requerido")
	ErrEmailRequerido          = errors.New("email es requerido")
	ErrTokenRequerido          = errors.New("token es requerido")
	ErrLinkPagoIncompleto      = errors.New("faltan parámetros requeridos")
	ErrTransaccionNoEncontrada = errors.New("transacción no encontrada")

	// ErrEnvioCorreo marca fallas al entregar un correo. Se envuelve con
	// la causa concreta del servidor SMTP.
	ErrEnvioCorreo = errors.New("error al enviar el correo")
)
