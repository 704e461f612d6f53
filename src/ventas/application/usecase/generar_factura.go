package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/ventas/application/response"
	"enaccion/src/ventas/domain/entity"
)

// GenerarFacturaUseCase caso de uso para armar la factura de una comanda
type GenerarFacturaUseCase struct {
	db *sql.DB
}

// NewGenerarFacturaUseCase crea una nueva instancia del caso de uso
func NewGenerarFacturaUseCase(db *sql.DB) *GenerarFacturaUseCase {
	return &GenerarFacturaUseCase{db: db}
}

// Execute arma la factura sobre los detalles no cancelados de la comanda.
// Devuelve ErrFacturaVacia cuando no hay líneas facturables.
func (uc *GenerarFacturaUseCase) Execute(ctx context.Context, idNumeroOrden int) (*response.FacturaResponse, error) {
	query := `
		SELECT
			d.id_detalle,
			e.nombre || ' ' || e.apellido AS nombre_empleado,
			c.id_mesa AS numero_mesa,
			d.id_estado,
			d.cantidad,
			m.nombre_plato,
			m.precio_unitario,
			CAST((d.cantidad * m.precio_unitario) AS INT) AS total_parcial
		FROM detalle d
		JOIN menu m ON d.id_plato = m.id_plato
		JOIN comanda c ON d.id_numero_orden = c.id_numero_orden
		JOIN empleado e ON c.id_empleado = e.id_empleado
		WHERE d.id_numero_orden = $1 AND d.id_estado != 6
	`

	rows, err := uc.db.QueryContext(ctx, query, idNumeroOrden)
	if err != nil {
		return nil, fmt.Errorf("error querying factura: %w", err)
	}
	defer rows.Close()

	detalles := []response.FacturaDetalleVista{}
	totalFactura := 0
	for rows.Next() {
		var d response.FacturaDetalleVista
		err := rows.Scan(
			&d.IDDetalle,
			&d.NombreEmpleado,
			&d.NumeroMesa,
			&d.IDEstado,
			&d.Cantidad,
			&d.NombrePlato,
			&d.PrecioUnitario,
			&d.TotalParcial,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning factura: %w", err)
		}
		totalFactura += d.TotalParcial
		detalles = append(detalles, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating factura: %w", err)
	}

	if len(detalles) == 0 {
		return nil, entity.ErrFacturaVacia
	}

	return &response.FacturaResponse{
		IDNumeroOrden: idNumeroOrden,
		Detalles:      detalles,
		TotalFactura:  totalFactura,
	}, nil
}
