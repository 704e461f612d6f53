package entity

// Detalle representa un plato pedido dentro de una comanda. Su estado se
// lleva por separado del estado de la comanda: la cocina avanza detalles,
// la caja avanza comandas.
type Detalle struct {
	IDDetalle     int    `json:"id_detalle"`
	IDNumeroOrden int    `json:"id_numero_orden"`
	IDPlato       int    `json:"id_plato"`
	Cantidad      int    `json:"cantidad"`
	IDEstado      Estado `json:"id_estado"`
}

// NuevoDetalle valida los campos de un detalle nuevo.
func NuevoDetalle(idNumeroOrden, idPlato, cantidad int, idEstado Estado) (*Detalle, error) {
	if idNumeroOrden == 0 {
		return nil, ErrComandaRequerida
	}
	if idPlato == 0 {
		return nil, ErrPlatoRequerido
	}
	if cantidad <= 0 {
		return nil, ErrCantidadInvalida
	}
	if !idEstado.EsValido() {
		return nil, ErrEstadoInvalido
	}

	return &Detalle{
		IDNumeroOrden: idNumeroOrden,
		IDPlato:       idPlato,
		Cantidad:      cantidad,
		IDEstado:      idEstado,
	}, nil
}
