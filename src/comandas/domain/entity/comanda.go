package entity

import "time"

// Comanda representa una orden tomada en una mesa (Aggregate Root).
// FechaEntrega queda en NULL hasta que algún detalle pasa a Entregado.
type Comanda struct {
	IDNumeroOrden int        `json:"id_numero_orden"`
	IDEmpleado    int        `json:"id_empleado"`
	IDMesa        int        `json:"id_mesa"`
	IDEstado      Estado     `json:"id_estado"`
	FechaPedido   time.Time  `json:"fecha_pedido"`
	FechaEntrega  *time.Time `json:"fecha_entrega"`
	Detalles      string     `json:"detalles"`
}

// NuevaComanda valida los campos obligatorios de una comanda nueva.
func NuevaComanda(idEmpleado, idMesa int, idEstado Estado, detalles string) (*Comanda, error) {
	if idEmpleado == 0 {
		return nil, ErrEmpleadoRequerido
	}
	if idMesa == 0 {
		return nil, ErrMesaRequerida
	}
	if !idEstado.EsValido() {
		return nil, ErrEstadoInvalido
	}

	return &Comanda{
		IDEmpleado: idEmpleado,
		IDMesa:     idMesa,
		IDEstado:   idEstado,
		Detalles:   detalles,
	}, nil
}

// AdmiteDetalles indica si la comanda sigue abierta para agregar platos.
func (c *Comanda) AdmiteDetalles() bool {
	return c.IDEstado != EstadoPagado && c.IDEstado != EstadoCancelado
}
