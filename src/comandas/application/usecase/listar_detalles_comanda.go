package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/comandas/application/response"
)

// ListarDetallesComandaUseCase caso de uso para la vista por detalle con el
// estado de la comanda (lista de pedidos)
type ListarDetallesComandaUseCase struct {
	db *sql.DB
}

// NewListarDetallesComandaUseCase crea una nueva instancia del caso de uso
func NewListarDetallesComandaUseCase(db *sql.DB) *ListarDetallesComandaUseCase {
	return &ListarDetallesComandaUseCase{db: db}
}

// Execute devuelve cada detalle con su comanda desnormalizada.
func (uc *ListarDetallesComandaUseCase) Execute(ctx context.Context) ([]response.DetalleComandaVista, error) {
	query := `
		SELECT
			d.id_detalle,
			d.id_numero_orden,
			c.id_estado,
			est.nombre_estado AS estado,
			e.nombre AS nombre_empleado,
			mn.nombre_plato,
			ms.numero AS numero_mesa,
			d.cantidad,
			c.fecha_pedido,
			c.fecha_entrega,
			COALESCE(c.detalles, 'Sin detalles') AS detalles
		FROM
			detalle d
		JOIN
			comanda c ON d.id_numero_orden = c.id_numero_orden
		JOIN
			empleado e ON c.id_empleado = e.id_empleado
		JOIN
			menu mn ON d.id_plato = mn.id_plato
		JOIN
			mesa ms ON c.id_mesa = ms.id_mesa
		JOIN
			estado est ON c.id_estado = est.id_estado
		ORDER BY c.fecha_pedido DESC
	`

	rows, err := uc.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing detalles: %w", err)
	}
	defer rows.Close()

	vistas := []response.DetalleComandaVista{}
	for rows.Next() {
		var v response.DetalleComandaVista
		err := rows.Scan(
			&v.IDDetalle,
			&v.IDNumeroOrden,
			&v.IDEstado,
			&v.Estado,
			&v.NombreEmpleado,
			&v.NombrePlato,
			&v.NumeroMesa,
			&v.Cantidad,
			&v.FechaPedido,
			&v.FechaEntrega,
			&v.Detalles,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning detalle: %w", err)
		}
		vistas = append(vistas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating detalles: %w", err)
	}

	return vistas, nil
}
