package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/reportes/application/response"
)

// PlatosMasPedidosUseCase caso de uso para el top de platos más pedidos
type PlatosMasPedidosUseCase struct {
	db *sql.DB
}

// NewPlatosMasPedidosUseCase crea una nueva instancia del caso de uso
func NewPlatosMasPedidosUseCase(db *sql.DB) *PlatosMasPedidosUseCase {
	return &PlatosMasPedidosUseCase{db: db}
}

// Execute devuelve hasta 10 platos ordenados por cantidad de pedidos.
// Se cuenta sobre detalle, donde vive la relación comanda-plato.
func (uc *PlatosMasPedidosUseCase) Execute(ctx context.Context) ([]response.PlatoPedidoVista, error) {
	query := `
		SELECT m.nombre_plato, COUNT(d.id_plato) AS total_pedidos
		FROM detalle d
		JOIN menu m ON d.id_plato = m.id_plato
		GROUP BY m.nombre_plato
		ORDER BY total_pedidos DESC
		LIMIT 10
	`

	rows, err := uc.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying platos mas pedidos: %w", err)
	}
	defer rows.Close()

	vistas := []response.PlatoPedidoVista{}
	for rows.Next() {
		var v response.PlatoPedidoVista
		if err := rows.Scan(&v.NombrePlato, &v.TotalPedidos); err != nil {
			return nil, fmt.Errorf("error scanning plato pedido: %w", err)
		}
		vistas = append(vistas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating platos mas pedidos: %w", err)
	}

	return vistas, nil
}
