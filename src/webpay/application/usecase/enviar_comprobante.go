package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"enaccion/src/webpay/domain/entity"
	"enaccion/src/webpay/domain/port"
)

// EnviarComprobanteUseCase caso de uso para reenviar el comprobante de
// pago por correo
type EnviarComprobanteUseCase struct {
	db                 *sql.DB
	obtenerTransaccion *ObtenerTransaccionUseCase
	mailer             port.Mailer
	queryTimeout       time.Duration
}

// NewEnviarComprobanteUseCase crea una nueva instancia del caso de uso
func NewEnviarComprobanteUseCase(
	db *sql.DB,
	obtenerTransaccion *ObtenerTransaccionUseCase,
	mailer port.Mailer,
	queryTimeout time.Duration,
) *EnviarComprobanteUseCase {
	return &EnviarComprobanteUseCase{
		db:                 db,
		obtenerTransaccion: obtenerTransaccion,
		mailer:             mailer,
		queryTimeout:       queryTimeout,
	}
}

// Execute relee los detalles facturables de la comanda y despacha el
// comprobante. Las lecturas a la base corren acotadas por el timeout de
// consulta; el envío usa el contexto original porque el correo tiene su
// propio timeout. El estado de la transacción no cambia aunque el envío
// falle.
func (uc *EnviarComprobanteUseCase) Execute(ctx context.Context, email, token string) error {
	if email == "" {
		return entity.ErrEmailRequerido
	}
	if token == "" {
		return entity.ErrTokenRequerido
	}

	ctxConsulta, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	transaccion, err := uc.obtenerTransaccion.Execute(ctxConsulta, token)
	if err != nil {
		return err
	}

	detalles, err := uc.detallesComanda(ctxConsulta, transaccion.NumeroOrden())
	if err != nil {
		return err
	}

	return uc.mailer.EnviarComprobante(ctx, email, transaccion, detalles)
}

func (uc *EnviarComprobanteUseCase) detallesComanda(ctx context.Context, numeroOrden string) ([]entity.DetalleComprobante, error) {
	query := `
		SELECT
			d.cantidad,
			m.nombre_plato,
			m.precio_unitario,
			CAST((d.cantidad * m.precio_unitario) AS INT) AS total_parcial
		FROM detalle d
		JOIN menu m ON d.id_plato = m.id_plato
		WHERE d.id_numero_orden = $1 AND d.id_estado != 6
	`

	rows, err := uc.db.QueryContext(ctx, query, numeroOrden)
	if err != nil {
		return nil, fmt.Errorf("error querying detalles comprobante: %w", err)
	}
	defer rows.Close()

	detalles := []entity.DetalleComprobante{}
	for rows.Next() {
		var d entity.DetalleComprobante
		if err := rows.Scan(&d.Cantidad, &d.NombrePlato, &d.PrecioUnitario, &d.TotalParcial); err != nil {
			return nil, fmt.Errorf("error scanning detalle comprobante: %w", err)
		}
		detalles = append(detalles, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating detalles comprobante: %w", err)
	}

	return detalles, nil
}
