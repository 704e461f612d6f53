package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/comandas/application/response"
)

// ListarComandasUseCase caso de uso para la vista general de comandas
type ListarComandasUseCase struct {
	db *sql.DB
}

// NewListarComandasUseCase crea una nueva instancia del caso de uso
func NewListarComandasUseCase(db *sql.DB) *ListarComandasUseCase {
	return &ListarComandasUseCase{db: db}
}

// Execute devuelve todas las comandas con empleado y mesa resueltos.
func (uc *ListarComandasUseCase) Execute(ctx context.Context) ([]response.ComandaVista, error) {
	query := `
		SELECT
			c.id_numero_orden,
			e.nombre AS nombre_empleado,
			ms.numero AS numero_mesa,
			c.id_estado AS estado_comanda,
			c.fecha_pedido,
			c.fecha_entrega,
			c.detalles
		FROM
			comanda c
		JOIN
			empleado e ON c.id_empleado = e.id_empleado
		JOIN
			mesa ms ON c.id_mesa = ms.id_mesa
	`

	rows, err := uc.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing comandas: %w", err)
	}
	defer rows.Close()

	vistas := []response.ComandaVista{}
	for rows.Next() {
		var v response.ComandaVista
		var detalles sql.NullString
		err := rows.Scan(
			&v.IDNumeroOrden,
			&v.NombreEmpleado,
			&v.NumeroMesa,
			&v.EstadoComanda,
			&v.FechaPedido,
			&v.FechaEntrega,
			&detalles,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comanda: %w", err)
		}
		v.Detalles = detalles.String
		vistas = append(vistas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comandas: %w", err)
	}

	return vistas, nil
}
