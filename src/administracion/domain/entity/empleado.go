package entity

import "time"

// Empleado representa a un trabajador del restaurante. Nunca se borra:
// las altas vienen del panel de administración y los cambios son parciales.
type Empleado struct {
	IDEmpleado        int       `json:"id_empleado"`
	Nombre            string    `json:"nombre"`
	Apellido          string    `json:"apellido"`
	Edad              int       `json:"edad"`
	FechaNacimiento   time.Time `json:"fecha_nacimiento"`
	Telefono          string    `json:"telefono"`
	Correo            string    `json:"correo"`
	Cargo             string    `json:"cargo"`
	FechaContratacion time.Time `json:"fecha_contratacion"`
}

// CargoMesero es el cargo que filtra la vista de meseros.
const CargoMesero = "Mesero"

// Validar verifica que todos los campos obligatorios estén presentes.
func (e *Empleado) Validar() error {
	if e.Nombre == "" || e.Apellido == "" || e.Edad == 0 ||
		e.FechaNacimiento.IsZero() || e.Telefono == "" || e.Correo == "" || e.Cargo == "" {
		return ErrCamposObligatorios
	}
	return nil
}
