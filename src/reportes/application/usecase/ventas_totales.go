package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"enaccion/src/reportes/application/response"
)

// VentasTotalesUseCase caso de uso para el total vendido por día
type VentasTotalesUseCase struct {
	db *sql.DB
}

// NewVentasTotalesUseCase crea una nueva instancia del caso de uso
func NewVentasTotalesUseCase(db *sql.DB) *VentasTotalesUseCase {
	return &VentasTotalesUseCase{db: db}
}

// Execute suma cantidad x precio_unitario agrupado por fecha del pedido,
// con la fecha más reciente primero.
func (uc *VentasTotalesUseCase) Execute(ctx context.Context) ([]response.VentasDiaVista, error) {
	query := `
		SELECT CAST(c.fecha_pedido AS DATE) AS fecha,
		       SUM(m.precio_unitario * d.cantidad) AS total_ventas
		FROM detalle d
		JOIN comanda c ON d.id_numero_orden = c.id_numero_orden
		JOIN menu m ON d.id_plato = m.id_plato
		GROUP BY fecha
		ORDER BY fecha DESC
	`

	rows, err := uc.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying ventas totales: %w", err)
	}
	defer rows.Close()

	vistas := []response.VentasDiaVista{}
	for rows.Next() {
		var v response.VentasDiaVista
		var fecha time.Time
		if err := rows.Scan(&fecha, &v.TotalVentas); err != nil {
			return nil, fmt.Errorf("error scanning ventas totales: %w", err)
		}
		v.Fecha = fecha.Format("2006-01-02")
		vistas = append(vistas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ventas totales: %w", err)
	}

	return vistas, nil
}
