package request

// CrearEmpleadoRequest cuerpo de POST /empleados
type CrearEmpleadoRequest struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Edad            int    `json:"edad"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	Telefono        string `json:"telefono"`
	Correo          string `json:"correo"`
	Cargo           string `json:"cargo"`
}

// ActualizarContactoRequest cuerpo de PATCH /empleados/:id_empleado
type ActualizarContactoRequest struct {
	Telefono string `json:"telefono"`
	Correo   string `json:"correo"`
	Cargo    string `json:"cargo"`
}

// ActualizarEmpleadoRequest cuerpo de PATCH /empleados1/:id_empleado
type ActualizarEmpleadoRequest struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Edad            int    `json:"edad"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	Telefono        string `json:"telefono"`
	Correo          string `json:"correo"`
	Cargo           string `json:"cargo"`
}

// CrearMesaRequest cuerpo de POST /mesa
type CrearMesaRequest struct {
	Numero    int `json:"numero"`
	Capacidad int `json:"capacidad"`
}
