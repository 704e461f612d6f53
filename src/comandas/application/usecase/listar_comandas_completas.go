package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/comandas/application/response"
)

// ListarComandasCompletasUseCase caso de uso para la vista con plato,
// mesa y nombre de estado resueltos
type ListarComandasCompletasUseCase struct {
	db *sql.DB
}

// NewListarComandasCompletasUseCase crea una nueva instancia del caso de uso
func NewListarComandasCompletasUseCase(db *sql.DB) *ListarComandasCompletasUseCase {
	return &ListarComandasCompletasUseCase{db: db}
}

// Execute devuelve una fila por detalle con la comanda desnormalizada.
func (uc *ListarComandasCompletasUseCase) Execute(ctx context.Context) ([]response.ComandaCompletaVista, error) {
	query := `
		SELECT
			c.id_numero_orden,
			c.id_estado,
			e.nombre AS nombre_empleado,
			mn.nombre_plato,
			ms.numero AS numero_mesa,
			d.cantidad,
			c.fecha_pedido,
			c.fecha_entrega,
			est.nombre_estado AS estado
		FROM
			comanda c
		JOIN
			empleado e ON c.id_empleado = e.id_empleado
		JOIN
			detalle d ON c.id_numero_orden = d.id_numero_orden
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
		return nil, fmt.Errorf("error listing comandas: %w", err)
	}
	defer rows.Close()

	vistas := []response.ComandaCompletaVista{}
	for rows.Next() {
		var v response.ComandaCompletaVista
		err := rows.Scan(
			&v.IDNumeroOrden,
			&v.IDEstado,
			&v.NombreEmpleado,
			&v.NombrePlato,
			&v.NumeroMesa,
			&v.Cantidad,
			&v.FechaPedido,
			&v.FechaEntrega,
			&v.Estado,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comanda: %w", err)
		}
		vistas = append(vistas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comandas: %w", err)
	}

	return vistas, nil
}
