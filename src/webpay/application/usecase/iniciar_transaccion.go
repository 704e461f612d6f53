package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"enaccion/src/webpay/application/request"
	"enaccion/src/webpay/application/response"
	"enaccion/src/webpay/domain/entity"
	"enaccion/src/webpay/domain/port"

	"github.com/google/uuid"
)

// GenerarToken produce un token opaco para una transacción nueva.
func GenerarToken(ahora time.Time) string {
	fragmento := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("token_%d_%s", ahora.UnixNano(), fragmento)
}

// IniciarTransaccionUseCase caso de uso para abrir un pago WebPay
type IniciarTransaccionUseCase struct {
	transaccionRepo port.TransaccionRepository
	cache           port.TransaccionCache
	backendURL      string

	// Inyectables para pruebas deterministas.
	ahora        func() time.Time
	generarToken func(time.Time) string
}

// NewIniciarTransaccionUseCase crea una nueva instancia del caso de uso
func NewIniciarTransaccionUseCase(
	transaccionRepo port.TransaccionRepository,
	cache port.TransaccionCache,
	backendURL string,
) *IniciarTransaccionUseCase {
	return &IniciarTransaccionUseCase{
		transaccionRepo: transaccionRepo,
		cache:           cache,
		backendURL:      backendURL,
		ahora:           time.Now,
		generarToken:    GenerarToken,
	}
}

// Execute valida los parámetros, persiste la transacción PENDIENTE y
// devuelve el token junto a la URL del formulario simulado.
func (uc *IniciarTransaccionUseCase) Execute(ctx context.Context, req *request.IniciarTransaccionRequest) (*response.IniciarTransaccionResponse, error) {
	ahora := uc.ahora()
	token := uc.generarToken(ahora)

	transaccion, err := entity.NuevaTransaccion(token, req.Monto, req.OrdenCompra, req.SessionID, ahora)
	if err != nil {
		return nil, err
	}

	log.Printf("Iniciando transacción WebPay simulada: orden=%s monto=%s", req.OrdenCompra, req.Monto)

	if err := uc.transaccionRepo.Guardar(ctx, transaccion); err != nil {
		return nil, err
	}
	uc.cache.Guardar(transaccion)

	return &response.IniciarTransaccionResponse{
		Success: true,
		Token:   token,
		URL:     uc.backendURL + "/webpay-simulacion",
		Message: "Transacción iniciada correctamente",
	}, nil
}
