package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/comandas/application/response"
)

// VariantePorPagar selecciona cuál de los dos predicados históricos de
// elegibilidad se ejecuta. Difieren de forma sutil: el estricto exige que
// todos los detalles estén Entregados o Cancelados; el laxo solo descarta
// comandas totalmente canceladas. Se mantienen ambos a propósito hasta que
// el negocio confirme cuál es el autoritativo.
type VariantePorPagar int

const (
	PorPagarEstricta VariantePorPagar = iota
	PorPagarLaxa
)

// ComandasPorPagarUseCase caso de uso para las comandas elegibles de cobro
type ComandasPorPagarUseCase struct {
	db *sql.DB
}

// NewComandasPorPagarUseCase crea una nueva instancia del caso de uso
func NewComandasPorPagarUseCase(db *sql.DB) *ComandasPorPagarUseCase {
	return &ComandasPorPagarUseCase{db: db}
}

// Execute devuelve las comandas cobrables según la variante, siempre en
// orden ascendente de número de orden para que la paginación del frontend
// sea reproducible.
func (uc *ComandasPorPagarUseCase) Execute(ctx context.Context, variante VariantePorPagar) ([]response.PorPagarVista, error) {
	var query string

	switch variante {
	case PorPagarEstricta:
		query = `
			SELECT
				c.id_numero_orden,
				e.nombre || ' ' || e.apellido AS nombre_empleado,
				c.id_mesa,
				c.id_estado
			FROM comanda c
			JOIN empleado e ON c.id_empleado = e.id_empleado
			WHERE NOT EXISTS (
				SELECT 1
				FROM detalle d
				WHERE d.id_numero_orden = c.id_numero_orden
				AND d.id_estado NOT IN (3, 6)
			)
			AND c.id_estado NOT IN (5, 6)
			AND NOT EXISTS (
				SELECT 1
				FROM detalle d
				WHERE d.id_numero_orden = c.id_numero_orden
				GROUP BY d.id_numero_orden
				HAVING COUNT(DISTINCT d.id_estado) = 1 AND MAX(d.id_estado) = 6
			)
			ORDER BY c.id_numero_orden ASC
		`
	case PorPagarLaxa:
		query = `
			SELECT
				c.id_numero_orden,
				e.nombre || ' ' || e.apellido AS nombre_empleado,
				c.id_mesa,
				c.id_estado
			FROM comanda c
			JOIN empleado e ON c.id_empleado = e.id_empleado
			WHERE c.id_estado NOT IN (5, 6)
			AND NOT EXISTS (
				SELECT 1
				FROM detalle d
				WHERE d.id_numero_orden = c.id_numero_orden
				GROUP BY d.id_numero_orden
				HAVING COUNT(DISTINCT d.id_estado) = 1 AND MAX(d.id_estado) = 6
			)
			ORDER BY c.id_numero_orden ASC
		`
	default:
		return nil, fmt.Errorf("variante por pagar desconocida: %d", variante)
	}

	rows, err := uc.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing comandas por pagar: %w", err)
	}
	defer rows.Close()

	vistas := []response.PorPagarVista{}
	for rows.Next() {
		var v response.PorPagarVista
		err := rows.Scan(&v.IDNumeroOrden, &v.NombreEmpleado, &v.IDMesa, &v.IDEstado)
		if err != nil {
			return nil, fmt.Errorf("error scanning comanda por pagar: %w", err)
		}
		vistas = append(vistas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comandas por pagar: %w", err)
	}

	return vistas, nil
}
