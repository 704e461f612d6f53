package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"enaccion/src/webpay/domain/entity"
	"enaccion/src/webpay/domain/port"
)

// TransaccionPostgresRepository implementa TransaccionRepository con PostgreSQL
type TransaccionPostgresRepository struct {
	db *sql.DB
}

// NewTransaccionPostgresRepository crea una nueva instancia del repositorio
func NewTransaccionPostgresRepository(db *sql.DB) port.TransaccionRepository {
	return &TransaccionPostgresRepository{db: db}
}

// Guardar inserta la transacción recién iniciada.
func (r *TransaccionPostgresRepository) Guardar(ctx context.Context, t *entity.Transaccion) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transaccion_webpay (token, monto, orden_compra, session_id, estado, fecha_creacion)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.Token, t.Monto, t.OrdenCompra, t.SessionID, t.Estado, t.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("error inserting transaccion: %w", err)
	}
	return nil
}

// BuscarPorToken recupera la transacción y, si ya tiene resultado, lo
// reconstruye desde las columnas persistidas.
func (r *TransaccionPostgresRepository) BuscarPorToken(ctx context.Context, token string) (*entity.Transaccion, error) {
	var t entity.Transaccion
	var codigoRespuesta sql.NullInt64
	var codigoAutorizacion sql.NullString
	var fechaResultado sql.NullTime

	err := r.db.QueryRowContext(ctx,
		`SELECT token, monto, orden_compra, session_id, estado,
		        codigo_respuesta, codigo_autorizacion, fecha_creacion, fecha_resultado
		 FROM transaccion_webpay WHERE token = $1`,
		token,
	).Scan(
		&t.Token,
		&t.Monto,
		&t.OrdenCompra,
		&t.SessionID,
		&t.Estado,
		&codigoRespuesta,
		&codigoAutorizacion,
		&t.FechaCreacion,
		&fechaResultado,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrTransaccionNoEncontrada
	}
	if err != nil {
		return nil, fmt.Errorf("error querying transaccion: %w", err)
	}

	if codigoRespuesta.Valid {
		resultado := &entity.Resultado{
			ResponseCode: int(codigoRespuesta.Int64),
			BuyOrder:     t.OrdenCompra,
			Amount:       t.Monto,
			CardNumber:   entity.TarjetaSimulada,
			Status:       t.Estado,
		}
		if codigoAutorizacion.Valid {
			resultado.AuthorizationCode = codigoAutorizacion.String
		}
		if fechaResultado.Valid {
			resultado.TransactionDate = fechaResultado.Time
		}
		t.Resultado = resultado
	}

	return &t, nil
}

// ActualizarResultado persiste el desenlace de la transacción.
func (r *TransaccionPostgresRepository) ActualizarResultado(ctx context.Context, t *entity.Transaccion) error {
	if t.Resultado == nil {
		return fmt.Errorf("transaccion %s sin resultado", t.Token)
	}

	var codigoAutorizacion sql.NullString
	if t.Resultado.AuthorizationCode != "" {
		codigoAutorizacion = sql.NullString{String: t.Resultado.AuthorizationCode, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE transaccion_webpay
		 SET estado = $1, codigo_respuesta = $2, codigo_autorizacion = $3, fecha_resultado = $4
		 WHERE token = $5`,
		t.Estado, t.Resultado.ResponseCode, codigoAutorizacion, t.Resultado.TransactionDate, t.Token,
	)
	if err != nil {
		return fmt.Errorf("error updating transaccion: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrTransaccionNoEncontrada
	}

	return nil
}
