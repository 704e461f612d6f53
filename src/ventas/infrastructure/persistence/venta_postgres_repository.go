package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/ventas/domain/entity"
	"enaccion/src/ventas/domain/port"
)

// VentaPostgresRepository implementa VentaRepository con PostgreSQL
type VentaPostgresRepository struct {
	db *sql.DB
}

// NewVentaPostgresRepository crea una nueva instancia del repositorio
func NewVentaPostgresRepository(db *sql.DB) port.VentaRepository {
	return &VentaPostgresRepository{db: db}
}

// Registrar inserta encabezado, líneas y total en una sola transacción.
// Si cualquier inserción falla no queda ni la venta ni ninguna línea.
func (r *VentaPostgresRepository) Registrar(ctx context.Context, idNumeroOrden int, items []entity.ItemVenta) (*entity.Venta, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	total := entity.TotalVenta(items)

	var venta entity.Venta
	err = tx.QueryRowContext(ctx,
		`INSERT INTO venta (id_numero_orden, total) VALUES ($1, $2)
		 RETURNING id, id_numero_orden, total, fecha`,
		idNumeroOrden, total,
	).Scan(&venta.ID, &venta.IDNumeroOrden, &venta.Total, &venta.Fecha)
	if err != nil {
		return nil, fmt.Errorf("error inserting venta: %w", err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO detalle_venta (id_venta, producto, cantidad, precio, subtotal)
			 VALUES ($1, $2, $3, $4, $5)`,
			venta.ID, item.Producto, item.Cantidad, item.PrecioUnitario, item.Subtotal(),
		)
		if err != nil {
			return nil, fmt.Errorf("error inserting detalle_venta: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing venta: %w", err)
	}

	return &venta, nil
}
