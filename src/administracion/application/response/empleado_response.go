package response

import (
	"time"

	"enaccion/src/administracion/domain/entity"
)

// EmpleadoVista es la fila de empleado con la fecha de contratación
// formateada YYYY-MM-DD, como la espera el panel de administración.
type EmpleadoVista struct {
	IDEmpleado        int       `json:"id_empleado"`
	Nombre            string    `json:"nombre"`
	Apellido          string    `json:"apellido"`
	Edad              int       `json:"edad"`
	FechaNacimiento   time.Time `json:"fecha_nacimiento"`
	Telefono          string    `json:"telefono"`
	Correo            string    `json:"correo"`
	Cargo             string    `json:"cargo"`
	FechaContratacion string    `json:"fecha_contratacion"`
}

// NuevaEmpleadoVista convierte la entidad al formato del panel.
func NuevaEmpleadoVista(e entity.Empleado) EmpleadoVista {
	return EmpleadoVista{
		IDEmpleado:        e.IDEmpleado,
		Nombre:            e.Nombre,
		Apellido:          e.Apellido,
		Edad:              e.Edad,
		FechaNacimiento:   e.FechaNacimiento,
		Telefono:          e.Telefono,
		Correo:            e.Correo,
		Cargo:             e.Cargo,
		FechaContratacion: e.FechaContratacion.Format("2006-01-02"),
	}
}
