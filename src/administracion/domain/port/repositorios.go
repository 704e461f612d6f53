package port

import (
	"context"

	"enaccion/src/administracion/domain/entity"
)

// EmpleadoRepository define la persistencia de empleados.
type EmpleadoRepository interface {
	Listar(ctx context.Context) ([]entity.Empleado, error)
	ListarPorCargo(ctx context.Context, cargo string) ([]entity.Empleado, error)
	Crear(ctx context.Context, empleado *entity.Empleado) (*entity.Empleado, error)

	// ActualizarContacto es la actualización parcial del panel: teléfono,
	// correo y cargo.
	ActualizarContacto(ctx context.Context, idEmpleado int, telefono, correo, cargo string) (*entity.Empleado, error)

	// Actualizar reemplaza todos los campos editables del empleado.
	Actualizar(ctx context.Context, empleado *entity.Empleado) (*entity.Empleado, error)
}

// CatalogoRepository define la lectura de los datos de referencia.
type CatalogoRepository interface {
	ListarMesas(ctx context.Context) ([]entity.Mesa, error)
	CrearMesa(ctx context.Context, mesa *entity.Mesa) (*entity.Mesa, error)
	ListarMenu(ctx context.Context) ([]entity.Plato, error)
	ListarEstados(ctx context.Context) ([]entity.EstadoCatalogo, error)
}
