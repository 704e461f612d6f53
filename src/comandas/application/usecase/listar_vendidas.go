package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/comandas/application/response"
)

// ListarVendidasUseCase caso de uso para la lista de comandas vendidas,
// con precio unitario para mostrar totales
type ListarVendidasUseCase struct {
	db *sql.DB
}

// NewListarVendidasUseCase crea una nueva instancia del caso de uso
func NewListarVendidasUseCase(db *sql.DB) *ListarVendidasUseCase {
	return &ListarVendidasUseCase{db: db}
}

// Execute devuelve cada detalle con precio y nombre de estado.
func (uc *ListarVendidasUseCase) Execute(ctx context.Context) ([]response.VendidaVista, error) {
	query := `
		SELECT
			d.id_detalle,
			d.id_numero_orden,
			c.id_estado,
			est.nombre_estado AS estado,
			CONCAT(e.nombre, ' ', e.apellido) AS nombre_empleado,
			mn.nombre_plato,
			ms.numero AS numero_mesa,
			d.cantidad,
			c.fecha_pedido,
			mn.precio_unitario,
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
		return nil, fmt.Errorf("error listing vendidas: %w", err)
	}
	defer rows.Close()

	vistas := []response.VendidaVista{}
	for rows.Next() {
		var v response.VendidaVista
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
			&v.PrecioUnitario,
			&v.FechaEntrega,
			&v.Detalles,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning vendida: %w", err)
		}
		vistas = append(vistas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vendidas: %w", err)
	}

	return vistas, nil
}
