package request

// CrearComandaRequest cuerpo de POST /comandas
type CrearComandaRequest struct {
	IDEmpleado int    `json:"id_empleado"`
	IDMesa     int    `json:"id_mesa"`
	IDEstado   int    `json:"id_estado"`
	Detalles   string `json:"detalles"`
}

// ActualizarEstadoComandaRequest cuerpo de PUT /comandas/:id_numero_orden.
// El puntero distingue "campo ausente" de un cero explícito.
type ActualizarEstadoComandaRequest struct {
	IDEstado *int `json:"id_estado"`
}

// CrearDetalleRequest cuerpo de POST /detalle
type CrearDetalleRequest struct {
	IDNumeroOrden int `json:"id_numero_orden"`
	IDPlato       int `json:"id_plato"`
	Cantidad      int `json:"cantidad"`
	IDEstado      int `json:"id_estado"`
}

// AvanzarDetalleRequest cuerpo de PUT /detalle/:id_detalle
type AvanzarDetalleRequest struct {
	IDEstado *int `json:"id_estado"`
}

// EstadoDetalleRequest cuerpo de PUT /comandas3/:id (vista de cocina)
type EstadoDetalleRequest struct {
	EstadoDetalle *int `json:"estado_detalle"`
}

// CancelarDetallesRequest cuerpo de PUT /detalle (cierre masivo)
type CancelarDetallesRequest struct {
	IDNumeroOrden int `json:"id_numero_orden"`
}
