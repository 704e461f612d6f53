package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/reportes/application/response"
)

// VentasPorMeseroUseCase caso de uso para el reporte de comandas por mesero
type VentasPorMeseroUseCase struct {
	db *sql.DB
}

// NewVentasPorMeseroUseCase crea una nueva instancia del caso de uso
func NewVentasPorMeseroUseCase(db *sql.DB) *VentasPorMeseroUseCase {
	return &VentasPorMeseroUseCase{db: db}
}

// Execute cuenta las comandas tomadas por cada empleado, de mayor a menor.
func (uc *VentasPorMeseroUseCase) Execute(ctx context.Context) ([]response.VentasMeseroVista, error) {
	query := `
		SELECT e.nombre, COUNT(c.id_numero_orden) AS total_ventas
		FROM comanda c
		JOIN empleado e ON c.id_empleado = e.id_empleado
		GROUP BY e.nombre
		ORDER BY total_ventas DESC
	`

	rows, err := uc.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying ventas por mesero: %w", err)
	}
	defer rows.Close()

	vistas := []response.VentasMeseroVista{}
	for rows.Next() {
		var v response.VentasMeseroVista
		if err := rows.Scan(&v.Nombre, &v.TotalVentas); err != nil {
			return nil, fmt.Errorf("error scanning ventas por mesero: %w", err)
		}
		vistas = append(vistas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ventas por mesero: %w", err)
	}

	return vistas, nil
}
