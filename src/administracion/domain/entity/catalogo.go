package entity

// Mesa representa una mesa del salón. Datos de referencia estáticos.
type Mesa struct {
	IDMesa    int `json:"id_mesa"`
	Numero    int `json:"numero"`
	Capacidad int `json:"capacidad"`
}

// Plato representa un plato del menú con su precio unitario en pesos.
type Plato struct {
	IDPlato        int    `json:"id_plato"`
	NombrePlato    string `json:"nombre_plato"`
	PrecioUnitario int    `json:"precio_unitario"`
}

// EstadoCatalogo es la fila de la tabla estado (código + nombre legible).
type EstadoCatalogo struct {
	IDEstado     int    `json:"id_estado"`
	NombreEstado string `json:"nombre_estado"`
}
