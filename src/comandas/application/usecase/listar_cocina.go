package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/comandas/application/response"
)

// ListarCocinaUseCase caso de uso para la pantalla de cocina: cada detalle
// con su propio estado, independiente del estado de la comanda
type ListarCocinaUseCase struct {
	db *sql.DB
}

// NewListarCocinaUseCase crea una nueva instancia del caso de uso
func NewListarCocinaUseCase(db *sql.DB) *ListarCocinaUseCase {
	return &ListarCocinaUseCase{db: db}
}

// Execute devuelve los detalles ordenados por fecha de pedido. Con
// nombreCompleto el empleado se muestra como "nombre apellido".
func (uc *ListarCocinaUseCase) Execute(ctx context.Context, nombreCompleto bool) ([]response.CocinaVista, error) {
	empleado := "e.nombre"
	if nombreCompleto {
		empleado = "e.nombre || ' ' || e.apellido"
	}

	query := `
		SELECT
			d.id_detalle,
			d.id_numero_orden,
			` + empleado + ` AS nombre_empleado,
			mn.nombre_plato,
			ms.numero AS numero_mesa,
			d.cantidad,
			d.id_estado AS estado_detalle,
			c.fecha_pedido,
			c.fecha_entrega,
			c.detalles
		FROM detalle d
		JOIN
			comanda c ON d.id_numero_orden = c.id_numero_orden
		JOIN
			empleado e ON c.id_empleado = e.id_empleado
		JOIN
			menu mn ON d.id_plato = mn.id_plato
		JOIN
			mesa ms ON c.id_mesa = ms.id_mesa
		ORDER BY c.fecha_pedido DESC, d.id_detalle ASC
	`

	rows, err := uc.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing cocina: %w", err)
	}
	defer rows.Close()

	vistas := []response.CocinaVista{}
	for rows.Next() {
		var v response.CocinaVista
		var detalles sql.NullString
		err := rows.Scan(
			&v.IDDetalle,
			&v.IDNumeroOrden,
			&v.NombreEmpleado,
			&v.NombrePlato,
			&v.NumeroMesa,
			&v.Cantidad,
			&v.EstadoDetalle,
			&v.FechaPedido,
			&v.FechaEntrega,
			&detalles,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning cocina: %w", err)
		}
		v.Detalles = detalles.String
		vistas = append(vistas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cocina: %w", err)
	}

	return vistas, nil
}
