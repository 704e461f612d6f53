package port

import (
	"context"

	"enaccion/src/webpay/domain/entity"
)

// TransaccionRepository define la persistencia durable de transacciones.
// El cache en memoria es un acelerador; la fila en base de datos es el
// registro que sobrevive reinicios.
type TransaccionRepository interface {
	Guardar(ctx context.Context, transaccion *entity.Transaccion) error
	BuscarPorToken(ctx context.Context, token string) (*entity.Transaccion, error)
	ActualizarResultado(ctx context.Context, transaccion *entity.Transaccion) error
}

// TransaccionCache define el almacén en memoria con vida acotada.
type TransaccionCache interface {
	Guardar(transaccion *entity.Transaccion)
	Obtener(token string) (*entity.Transaccion, bool)
	Eliminar(token string)
}

// Mailer define el envío de correos transaccionales.
type Mailer interface {
	EnviarComprobante(ctx context.Context, email string, transaccion *entity.Transaccion, detalles []entity.DetalleComprobante) error
	EnviarLinkPago(ctx context.Context, email string, link entity.LinkPago) error
}

// ComandaPagos es la vista mínima del módulo de comandas que necesita el
// retorno de pago: marcar una comanda como pagada.
type ComandaPagos interface {
	MarcarPagada(ctx context.Context, idNumeroOrden int) error
}
