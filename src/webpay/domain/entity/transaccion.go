package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una transacción WebPay simulada.
// Los nombres AUTHORIZED/FAILED/CANCELLED vienen del contrato de Transbank.
const (
	EstadoPendiente  = "PENDIENTE"
	EstadoAutorizada = "AUTHORIZED"
	EstadoFallida    = "FAILED"
	EstadoCancelada  = "CANCELLED"
)

// Códigos de respuesta del retorno de pago.
const (
	CodigoExito     = 0
	CodigoFallo     = -1
	CodigoCancelado = -2
)

// TarjetaSimulada son los últimos dígitos de la tarjeta de prueba que
// usa el formulario simulado.
const TarjetaSimulada = "6623"

// Resultado es la respuesta final del gateway para una transacción.
type Resultado struct {
	ResponseCode      int             `json:"response_code"`
	BuyOrder          string          `json:"buy_order"`
	Amount            decimal.Decimal `json:"amount"`
	AuthorizationCode string          `json:"authorization_code,omitempty"`
	TransactionDate   time.Time       `json:"transaction_date"`
	CardNumber        string          `json:"card_number"`
	Status            string          `json:"status"`
}

// Transaccion es un intento de pago WebPay con su estado y resultado.
type Transaccion struct {
	Token         string          `json:"token"`
	Monto         decimal.Decimal `json:"monto"`
	OrdenCompra   string          `json:"ordenCompra"`
	SessionID     string          `json:"sessionId"`
	Estado        string          `json:"estado"`
	Resultado     *Resultado      `json:"resultado,omitempty"`
	FechaCreacion time.Time       `json:"fechaCreacion"`
}

// NuevaTransaccion valida los parámetros de inicio y arma la transacción
// en estado PENDIENTE.
func NuevaTransaccion(token string, monto decimal.Decimal, ordenCompra, sessionID string, ahora time.Time) (*Transaccion, error) {
	if !monto.IsPositive() {
		return nil, ErrMontoRequerido
	}
	if ordenCompra == "" {
		return nil, ErrOrdenCompraRequerida
	}
	if sessionID == "" {
		return nil, ErrSessionIDRequerido
	}

	return &Transaccion{
		Token:         token,
		Monto:         monto,
		OrdenCompra:   ordenCompra,
		SessionID:     sessionID,
		Estado:        EstadoPendiente,
		FechaCreacion: ahora,
	}, nil
}

// NumeroOrden recupera el id de la comanda desde la orden de compra,
// que llega con el prefijo COMANDA-.
func (t *Transaccion) NumeroOrden() string {
	return strings.TrimPrefix(t.OrdenCompra, "COMANDA-")
}

// Finalizar aplica el resultado del gateway sobre la transacción.
func (t *Transaccion) Finalizar(resultado *Resultado) {
	t.Estado = resultado.Status
	t.Resultado = resultado
}

// Clonar devuelve una copia independiente de la transacción, con su
// propio Resultado.
func (t *Transaccion) Clonar() *Transaccion {
	clon := *t
	if t.Resultado != nil {
		resultado := *t.Resultado
		clon.Resultado = &resultado
	}
	return &clon
}

// Exitosa indica si la transacción terminó autorizada.
func (t *Transaccion) Exitosa() bool {
	return t.Estado == EstadoAutorizada
}

// EstadoPorStatus traduce el status del formulario simulado al estado
// y código de respuesta del gateway.
func EstadoPorStatus(status string) (string, int) {
	switch status {
	case "success":
		return EstadoAutorizada, CodigoExito
	case "failed":
		return EstadoFallida, CodigoFallo
	default:
		return EstadoCancelada, CodigoCancelado
	}
}
