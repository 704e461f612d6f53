package usecase

import (
	"context"
	"log"
	"math/rand"
	"strconv"
	"time"

	"enaccion/src/webpay/domain/entity"
	"enaccion/src/webpay/domain/port"
)

const alfabetoAutorizacion = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerarCodigoAutorizacion produce un código de 6 caracteres en
// mayúsculas, como los que devuelve Transbank.
func GenerarCodigoAutorizacion() string {
	codigo := make([]byte, 6)
	for i := range codigo {
		codigo[i] = alfabetoAutorizacion[rand.Intn(len(alfabetoAutorizacion))]
	}
	return string(codigo)
}

// ProcesarRetornoUseCase caso de uso para el retorno del gateway
type ProcesarRetornoUseCase struct {
	transaccionRepo port.TransaccionRepository
	cache           port.TransaccionCache
	comandas        port.ComandaPagos

	// Inyectables para pruebas deterministas.
	ahora              func() time.Time
	codigoAutorizacion func() string
}

// NewProcesarRetornoUseCase crea una nueva instancia del caso de uso
func NewProcesarRetornoUseCase(
	transaccionRepo port.TransaccionRepository,
	cache port.TransaccionCache,
	comandas port.ComandaPagos,
) *ProcesarRetornoUseCase {
	return &ProcesarRetornoUseCase{
		transaccionRepo:    transaccionRepo,
		cache:              cache,
		comandas:           comandas,
		ahora:              time.Now,
		codigoAutorizacion: GenerarCodigoAutorizacion,
	}
}

// Execute aplica el desenlace del pago sobre la transacción. Con pago
// exitoso la comanda asociada queda Pagada; un fallo al marcarla se
// registra pero no corta el flujo de retorno, igual que un fallo al
// persistir el resultado: el cliente siempre vuelve al frontend.
func (uc *ProcesarRetornoUseCase) Execute(ctx context.Context, token, status string) (*entity.Transaccion, error) {
	if token == "" {
		return nil, entity.ErrTokenRequerido
	}

	transaccion, ok := uc.cache.Obtener(token)
	if !ok {
		var err error
		transaccion, err = uc.transaccionRepo.BuscarPorToken(ctx, token)
		if err != nil {
			return nil, err
		}
	}

	estado, codigo := entity.EstadoPorStatus(status)
	resultado := &entity.Resultado{
		ResponseCode:    codigo,
		BuyOrder:        transaccion.OrdenCompra,
		Amount:          transaccion.Monto,
		TransactionDate: uc.ahora(),
		CardNumber:      entity.TarjetaSimulada,
		Status:          estado,
	}

	if codigo == entity.CodigoExito {
		resultado.AuthorizationCode = uc.codigoAutorizacion()

		numeroOrden, err := strconv.Atoi(transaccion.NumeroOrden())
		if err != nil {
			log.Printf("Orden de compra %s sin id de comanda válido: %v", transaccion.OrdenCompra, err)
		} else if err := uc.comandas.MarcarPagada(ctx, numeroOrden); err != nil {
			log.Printf("Error al actualizar estado de comanda %d: %v", numeroOrden, err)
		} else {
			log.Printf("Comanda marcada como pagada: %d", numeroOrden)
		}
	}

	transaccion.Finalizar(resultado)

	if err := uc.transaccionRepo.ActualizarResultado(ctx, transaccion); err != nil {
		// Sin resultado persistido el cache es la única copia finalizada.
		log.Printf("Error persistiendo resultado de transacción %s: %v", token, err)
		uc.cache.Guardar(transaccion)
		return transaccion, nil
	}

	// La transacción dejó de estar pendiente: sale del cache y las
	// consultas siguientes la releen desde la base.
	uc.cache.Eliminar(token)

	return transaccion, nil
}
