package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/administracion/domain/entity"
)

// CatalogoPostgresRepository implementa CatalogoRepository usando PostgreSQL
type CatalogoPostgresRepository struct {
	db *sql.DB
}

// NewCatalogoPostgresRepository crea una nueva instancia del repositorio
func NewCatalogoPostgresRepository(db *sql.DB) *CatalogoPostgresRepository {
	return &CatalogoPostgresRepository{db: db}
}

// ListarMesas devuelve las mesas ordenadas por id.
func (r *CatalogoPostgresRepository) ListarMesas(ctx context.Context) ([]entity.Mesa, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id_mesa, numero, capacidad FROM mesa ORDER BY id_mesa ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing mesas: %w", err)
	}
	defer rows.Close()

	mesas := []entity.Mesa{}
	for rows.Next() {
		var m entity.Mesa
		if err := rows.Scan(&m.IDMesa, &m.Numero, &m.Capacidad); err != nil {
			return nil, fmt.Errorf("error scanning mesa: %w", err)
		}
		mesas = append(mesas, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mesas: %w", err)
	}

	return mesas, nil
}

// CrearMesa inserta una mesa nueva.
func (r *CatalogoPostgresRepository) CrearMesa(ctx context.Context, mesa *entity.Mesa) (*entity.Mesa, error) {
	query := `INSERT INTO mesa (numero, capacidad) VALUES ($1, $2) RETURNING id_mesa, numero, capacidad`

	creada := &entity.Mesa{}
	err := r.db.QueryRowContext(ctx, query, mesa.Numero, mesa.Capacidad).Scan(
		&creada.IDMesa,
		&creada.Numero,
		&creada.Capacidad,
	)
	if err != nil {
		return nil, fmt.Errorf("error saving mesa: %w", err)
	}

	return creada, nil
}

// ListarMenu devuelve todos los platos del menú.
func (r *CatalogoPostgresRepository) ListarMenu(ctx context.Context) ([]entity.Plato, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id_plato, nombre_plato, precio_unitario FROM menu`)
	if err != nil {
		return nil, fmt.Errorf("error listing menu: %w", err)
	}
	defer rows.Close()

	platos := []entity.Plato{}
	for rows.Next() {
		var p entity.Plato
		if err := rows.Scan(&p.IDPlato, &p.NombrePlato, &p.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("error scanning plato: %w", err)
		}
		platos = append(platos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu: %w", err)
	}

	return platos, nil
}

// ListarEstados devuelve el catálogo de estados ordenado por código.
func (r *CatalogoPostgresRepository) ListarEstados(ctx context.Context) ([]entity.EstadoCatalogo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id_estado, nombre_estado FROM estado ORDER BY id_estado ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing estados: %w", err)
	}
	defer rows.Close()

	estados := []entity.EstadoCatalogo{}
	for rows.Next() {
		var e entity.EstadoCatalogo
		if err := rows.Scan(&e.IDEstado, &e.NombreEstado); err != nil {
			return nil, fmt.Errorf("error scanning estado: %w", err)
		}
		estados = append(estados, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating estados: %w", err)
	}

	return estados, nil
}
