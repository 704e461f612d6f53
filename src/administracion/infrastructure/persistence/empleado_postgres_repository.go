package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"enaccion/src/administracion/domain/entity"
)

// EmpleadoPostgresRepository implementa EmpleadoRepository usando PostgreSQL
type EmpleadoPostgresRepository struct {
	db *sql.DB
}

// NewEmpleadoPostgresRepository crea una nueva instancia del repositorio
func NewEmpleadoPostgresRepository(db *sql.DB) *EmpleadoPostgresRepository {
	return &EmpleadoPostgresRepository{db: db}
}

const columnasEmpleado = `id_empleado, nombre, apellido, edad, fecha_nacimiento, telefono, correo, cargo, fecha_contratacion`

func scanEmpleado(row interface{ Scan(...any) error }) (*entity.Empleado, error) {
	e := &entity.Empleado{}
	err := row.Scan(
		&e.IDEmpleado,
		&e.Nombre,
		&e.Apellido,
		&e.Edad,
		&e.FechaNacimiento,
		&e.Telefono,
		&e.Correo,
		&e.Cargo,
		&e.FechaContratacion,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Listar devuelve todos los empleados ordenados por id.
func (r *EmpleadoPostgresRepository) Listar(ctx context.Context) ([]entity.Empleado, error) {
	query := `SELECT ` + columnasEmpleado + ` FROM empleado ORDER BY id_empleado ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing empleados: %w", err)
	}
	defer rows.Close()

	empleados := []entity.Empleado{}
	for rows.Next() {
		e, err := scanEmpleado(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning empleado: %w", err)
		}
		empleados = append(empleados, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating empleados: %w", err)
	}

	return empleados, nil
}

// ListarPorCargo devuelve los empleados con un cargo dado (ej. "Mesero").
func (r *EmpleadoPostgresRepository) ListarPorCargo(ctx context.Context, cargo string) ([]entity.Empleado, error) {
	query := `SELECT ` + columnasEmpleado + ` FROM empleado WHERE cargo = $1`

	rows, err := r.db.QueryContext(ctx, query, cargo)
	if err != nil {
		return nil, fmt.Errorf("error listing empleados: %w", err)
	}
	defer rows.Close()

	empleados := []entity.Empleado{}
	for rows.Next() {
		e, err := scanEmpleado(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning empleado: %w", err)
		}
		empleados = append(empleados, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating empleados: %w", err)
	}

	return empleados, nil
}

// Crear inserta un empleado con fecha de contratación NOW().
func (r *EmpleadoPostgresRepository) Crear(ctx context.Context, empleado *entity.Empleado) (*entity.Empleado, error) {
	query := `
		INSERT INTO empleado (nombre, apellido, edad, fecha_nacimiento, telefono, correo, cargo, fecha_contratacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + columnasEmpleado

	creado, err := scanEmpleado(r.db.QueryRowContext(ctx, query,
		empleado.Nombre,
		empleado.Apellido,
		empleado.Edad,
		empleado.FechaNacimiento,
		empleado.Telefono,
		empleado.Correo,
		empleado.Cargo,
	))
	if err != nil {
		return nil, fmt.Errorf("error saving empleado: %w", err)
	}

	return creado, nil
}

// ActualizarContacto aplica la actualización parcial del panel.
func (r *EmpleadoPostgresRepository) ActualizarContacto(ctx context.Context, idEmpleado int, telefono, correo, cargo string) (*entity.Empleado, error) {
	query := `
		UPDATE empleado
		SET telefono = $1,
		    correo = $2,
		    cargo = $3
		WHERE id_empleado = $4
		RETURNING ` + columnasEmpleado

	actualizado, err := scanEmpleado(r.db.QueryRowContext(ctx, query, telefono, correo, cargo, idEmpleado))
	if err == sql.ErrNoRows {
		return nil, entity.ErrEmpleadoNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error updating empleado: %w", err)
	}

	return actualizado, nil
}

// Actualizar reemplaza todos los campos editables del empleado.
func (r *EmpleadoPostgresRepository) Actualizar(ctx context.Context, empleado *entity.Empleado) (*entity.Empleado, error) {
	query := `
		UPDATE empleado
		SET nombre = $1,
		    apellido = $2,
		    edad = $3,
		    fecha_nacimiento = $4,
		    telefono = $5,
		    correo = $6,
		    cargo = $7
		WHERE id_empleado = $8
		RETURNING ` + columnasEmpleado

	actualizado, err := scanEmpleado(r.db.QueryRowContext(ctx, query,
		empleado.Nombre,
		empleado.Apellido,
		empleado.Edad,
		empleado.FechaNacimiento,
		empleado.Telefono,
		empleado.Correo,
		empleado.Cargo,
		empleado.IDEmpleado,
	))
	if err == sql.ErrNoRows {
		return nil, entity.ErrEmpleadoNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error updating empleado: %w", err)
	}

	return actualizado, nil
}
