package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/comandas/domain/entity"
)

// ComandaPostgresRepository implementa ComandaRepository usando PostgreSQL
type ComandaPostgresRepository struct {
	db *sql.DB
}

// NewComandaPostgresRepository crea una nueva instancia del repositorio
func NewComandaPostgresRepository(db *sql.DB) *ComandaPostgresRepository {
	return &ComandaPostgresRepository{db: db}
}

// Crear inserta la comanda con fecha_pedido = NOW() y fecha_entrega NULL.
func (r *ComandaPostgresRepository) Crear(ctx context.Context, comanda *entity.Comanda) (*entity.Comanda, error) {
	query := `
		INSERT INTO comanda (id_empleado, id_mesa, id_estado, fecha_pedido, fecha_entrega, detalles)
		VALUES ($1, $2, $3, NOW(), NULL, $4)
		RETURNING id_numero_orden, id_empleado, id_mesa, id_estado, fecha_pedido, fecha_entrega, detalles
	`

	creada := &entity.Comanda{}
	var detalles sql.NullString
	err := r.db.QueryRowContext(ctx, query,
		comanda.IDEmpleado,
		comanda.IDMesa,
		comanda.IDEstado,
		comanda.Detalles,
	).Scan(
		&creada.IDNumeroOrden,
		&creada.IDEmpleado,
		&creada.IDMesa,
		&creada.IDEstado,
		&creada.FechaPedido,
		&creada.FechaEntrega,
		&detalles,
	)
	if err != nil {
		return nil, fmt.Errorf("error saving comanda: %w", err)
	}
	creada.Detalles = detalles.String

	return creada, nil
}

// BuscarPorID carga una comanda por su número de orden.
func (r *ComandaPostgresRepository) BuscarPorID(ctx context.Context, idNumeroOrden int) (*entity.Comanda, error) {
	query := `
		SELECT id_numero_orden, id_empleado, id_mesa, id_estado, fecha_pedido, fecha_entrega, detalles
		FROM comanda
		WHERE id_numero_orden = $1
	`

	comanda := &entity.Comanda{}
	var detalles sql.NullString
	err := r.db.QueryRowContext(ctx, query, idNumeroOrden).Scan(
		&comanda.IDNumeroOrden,
		&comanda.IDEmpleado,
		&comanda.IDMesa,
		&comanda.IDEstado,
		&comanda.FechaPedido,
		&comanda.FechaEntrega,
		&detalles,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrComandaNoEncontrada
	}
	if err != nil {
		return nil, fmt.Errorf("error finding comanda: %w", err)
	}
	comanda.Detalles = detalles.String

	return comanda, nil
}

// ActualizarEstado cambia el estado global de la comanda.
func (r *ComandaPostgresRepository) ActualizarEstado(ctx context.Context, idNumeroOrden int, estado entity.Estado) error {
	query := `UPDATE comanda SET id_estado = $1 WHERE id_numero_orden = $2`

	result, err := r.db.ExecContext(ctx, query, estado, idNumeroOrden)
	if err != nil {
		return fmt.Errorf("error updating comanda estado: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrComandaNoEncontrada
	}

	return nil
}

// MarcarPagada fija el estado Pagado de la comanda.
func (r *ComandaPostgresRepository) MarcarPagada(ctx context.Context, idNumeroOrden int) error {
	return r.ActualizarEstado(ctx, idNumeroOrden, entity.EstadoPagado)
}

// Eliminar borra la comanda por su número de orden.
func (r *ComandaPostgresRepository) Eliminar(ctx context.Context, idNumeroOrden int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comanda WHERE id_numero_orden = $1`, idNumeroOrden)
	if err != nil {
		return fmt.Errorf("error deleting comanda: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrComandaNoEncontrada
	}

	return nil
}

// Liquidar cobra la comanda en una sola transacción: toma un lock de fila
// sobre la comanda para serializar liquidaciones concurrentes, reverifica
// la regla de pagabilidad sobre los detalles, marca la comanda como Pagada
// y cierra los detalles no cancelados.
func (r *ComandaPostgresRepository) Liquidar(ctx context.Context, idNumeroOrden int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Lock de la fila de la comanda
	var estadoComanda entity.Estado
	err = tx.QueryRowContext(ctx,
		`SELECT id_estado FROM comanda WHERE id_numero_orden = $1 FOR UPDATE`,
		idNumeroOrden,
	).Scan(&estadoComanda)
	if err == sql.ErrNoRows {
		return entity.ErrComandaNoEncontrada
	}
	if err != nil {
		return fmt.Errorf("error locking comanda: %w", err)
	}

	// 2. Estados de todos los detalles, bajo el mismo lock
	rows, err := tx.QueryContext(ctx,
		`SELECT id_estado FROM detalle WHERE id_numero_orden = $1`,
		idNumeroOrden,
	)
	if err != nil {
		return fmt.Errorf("error reading detalles: %w", err)
	}

	var estadosDetalle []entity.Estado
	for rows.Next() {
		var e entity.Estado
		if err := rows.Scan(&e); err != nil {
			rows.Close()
			return fmt.Errorf("error scanning detalle estado: %w", err)
		}
		estadosDetalle = append(estadosDetalle, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating detalles: %w", err)
	}

	// 3. Regla de pagabilidad
	if !entity.ComandaPagable(estadoComanda, estadosDetalle) {
		return entity.ErrComandaNoPagable
	}

	// 4. Comanda pagada + detalles cerrados, en la misma transacción
	_, err = tx.ExecContext(ctx,
		`UPDATE comanda SET id_estado = $1 WHERE id_numero_orden = $2`,
		entity.EstadoPagado, idNumeroOrden,
	)
	if err != nil {
		return fmt.Errorf("error marking comanda pagada: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE detalle SET id_estado = $1 WHERE id_numero_orden = $2 AND id_estado <> $3`,
		entity.EstadoPagado, idNumeroOrden, entity.EstadoCancelado,
	)
	if err != nil {
		return fmt.Errorf("error closing detalles: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
