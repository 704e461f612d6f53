package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/comandas/domain/entity"
)

// DetallePostgresRepository implementa DetalleRepository usando PostgreSQL
type DetallePostgresRepository struct {
	db *sql.DB
}

// NewDetallePostgresRepository crea una nueva instancia del repositorio
func NewDetallePostgresRepository(db *sql.DB) *DetallePostgresRepository {
	return &DetallePostgresRepository{db: db}
}

// Crear inserta un detalle de comanda.
func (r *DetallePostgresRepository) Crear(ctx context.Context, detalle *entity.Detalle) (*entity.Detalle, error) {
	query := `
		INSERT INTO detalle (id_plato, id_numero_orden, cantidad, id_estado)
		VALUES ($1, $2, $3, $4)
		RETURNING id_detalle, id_numero_orden, id_plato, cantidad, id_estado
	`

	creado := &entity.Detalle{}
	err := r.db.QueryRowContext(ctx, query,
		detalle.IDPlato,
		detalle.IDNumeroOrden,
		detalle.Cantidad,
		detalle.IDEstado,
	).Scan(
		&creado.IDDetalle,
		&creado.IDNumeroOrden,
		&creado.IDPlato,
		&creado.Cantidad,
		&creado.IDEstado,
	)
	if err != nil {
		return nil, fmt.Errorf("error saving detalle: %w", err)
	}

	return creado, nil
}

// AvanzarEstado actualiza el estado del detalle y, cuando pasa a Entregado,
// fija fecha_entrega de la comanda padre con NOW(). Ambas escrituras van en
// una sola transacción para que nunca quede un plato entregado con la
// comanda sin hora de entrega.
func (r *DetallePostgresRepository) AvanzarEstado(ctx context.Context, idDetalle int, estado entity.Estado) (*entity.Comanda, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	var idNumeroOrden int
	err = tx.QueryRowContext(ctx,
		`UPDATE detalle SET id_estado = $1 WHERE id_detalle = $2 RETURNING id_numero_orden`,
		estado, idDetalle,
	).Scan(&idNumeroOrden)
	if err == sql.ErrNoRows {
		return nil, entity.ErrDetalleNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error updating detalle: %w", err)
	}

	comanda := &entity.Comanda{}
	var detalles sql.NullString

	if estado == entity.EstadoEntregado {
		err = tx.QueryRowContext(ctx, `
			UPDATE comanda
			SET fecha_entrega = NOW()
			WHERE id_numero_orden = $1
			RETURNING id_numero_orden, id_empleado, id_mesa, id_estado, fecha_pedido, fecha_entrega, detalles`,
			idNumeroOrden,
		).Scan(
			&comanda.IDNumeroOrden,
			&comanda.IDEmpleado,
			&comanda.IDMesa,
			&comanda.IDEstado,
			&comanda.FechaPedido,
			&comanda.FechaEntrega,
			&detalles,
		)
	} else {
		err = tx.QueryRowContext(ctx, `
			SELECT id_numero_orden, id_empleado, id_mesa, id_estado, fecha_pedido, fecha_entrega, detalles
			FROM comanda
			WHERE id_numero_orden = $1`,
			idNumeroOrden,
		).Scan(
			&comanda.IDNumeroOrden,
			&comanda.IDEmpleado,
			&comanda.IDMesa,
			&comanda.IDEstado,
			&comanda.FechaPedido,
			&comanda.FechaEntrega,
			&detalles,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("error updating comanda entrega: %w", err)
	}
	comanda.Detalles = detalles.String

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return comanda, nil
}

// ActualizarEstado cambia solo el estado del detalle (vista de cocina).
func (r *DetallePostgresRepository) ActualizarEstado(ctx context.Context, idDetalle int, estado entity.Estado) (*entity.Detalle, error) {
	query := `
		UPDATE detalle
		SET id_estado = $1
		WHERE id_detalle = $2
		RETURNING id_detalle, id_numero_orden, id_plato, cantidad, id_estado
	`

	detalle := &entity.Detalle{}
	err := r.db.QueryRowContext(ctx, query, estado, idDetalle).Scan(
		&detalle.IDDetalle,
		&detalle.IDNumeroOrden,
		&detalle.IDPlato,
		&detalle.Cantidad,
		&detalle.IDEstado,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrDetalleNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error updating detalle: %w", err)
	}

	return detalle, nil
}

// CancelarPendientes cierra con estado Pagado todos los detalles de la
// comanda que no estén Cancelados, dejando los cancelados intactos.
func (r *DetallePostgresRepository) CancelarPendientes(ctx context.Context, idNumeroOrden int) ([]entity.Detalle, error) {
	query := `
		UPDATE detalle
		SET id_estado = $1
		WHERE id_numero_orden = $2
		AND id_estado <> $3
		RETURNING id_detalle, id_numero_orden, id_plato, cantidad, id_estado
	`

	rows, err := r.db.QueryContext(ctx, query, entity.EstadoPagado, idNumeroOrden, entity.EstadoCancelado)
	if err != nil {
		return nil, fmt.Errorf("error closing detalles: %w", err)
	}
	defer rows.Close()

	var cerrados []entity.Detalle
	for rows.Next() {
		var d entity.Detalle
		err := rows.Scan(&d.IDDetalle, &d.IDNumeroOrden, &d.IDPlato, &d.Cantidad, &d.IDEstado)
		if err != nil {
			return nil, fmt.Errorf("error scanning detalle: %w", err)
		}
		cerrados = append(cerrados, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating detalles: %w", err)
	}

	return cerrados, nil
}

// ListarPorComanda devuelve los detalles crudos de una comanda.
func (r *DetallePostgresRepository) ListarPorComanda(ctx context.Context, idNumeroOrden int) ([]entity.Detalle, error) {
	query := `
		SELECT id_detalle, id_numero_orden, id_plato, cantidad, id_estado
		FROM detalle
		WHERE id_numero_orden = $1
	`

	rows, err := r.db.QueryContext(ctx, query, idNumeroOrden)
	if err != nil {
		return nil, fmt.Errorf("error listing detalles: %w", err)
	}
	defer rows.Close()

	var detalles []entity.Detalle
	for rows.Next() {
		var d entity.Detalle
		err := rows.Scan(&d.IDDetalle, &d.IDNumeroOrden, &d.IDPlato, &d.Cantidad, &d.IDEstado)
		if err != nil {
			return nil, fmt.Errorf("error scanning detalle: %w", err)
		}
		detalles = append(detalles, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating detalles: %w", err)
	}

	return detalles, nil
}
