package response

import (
	"time"

	"enaccion/src/comandas/domain/entity"
)

// ComandaVista es la vista general de comandas (empleado + mesa).
type ComandaVista struct {
	IDNumeroOrden  int           `json:"id_numero_orden"`
	NombreEmpleado string        `json:"nombre_empleado"`
	NumeroMesa     int           `json:"numero_mesa"`
	EstadoComanda  entity.Estado `json:"estado_comanda"`
	FechaPedido    time.Time     `json:"fecha_pedido"`
	FechaEntrega   *time.Time    `json:"fecha_entrega"`
	Detalles       string        `json:"detalles"`
}

// ComandaCompletaVista agrega plato y nombre de estado (vista comandas1).
type ComandaCompletaVista struct {
	IDNumeroOrden  int           `json:"id_numero_orden"`
	IDEstado       entity.Estado `json:"id_estado"`
	NombreEmpleado string        `json:"nombre_empleado"`
	NombrePlato    string        `json:"nombre_plato"`
	NumeroMesa     int           `json:"numero_mesa"`
	Cantidad       int           `json:"cantidad"`
	FechaPedido    time.Time     `json:"fecha_pedido"`
	FechaEntrega   *time.Time    `json:"fecha_entrega"`
	Estado         string        `json:"estado"`
}

// DetalleComandaVista es la vista por detalle con estado de la comanda
// (vista comandas2).
type DetalleComandaVista struct {
	IDDetalle      int           `json:"id_detalle"`
	IDNumeroOrden  int           `json:"id_numero_orden"`
	IDEstado       entity.Estado `json:"id_estado"`
	Estado         string        `json:"estado"`
	NombreEmpleado string        `json:"nombre_empleado"`
	NombrePlato    string        `json:"nombre_plato"`
	NumeroMesa     int           `json:"numero_mesa"`
	Cantidad       int           `json:"cantidad"`
	FechaPedido    time.Time     `json:"fecha_pedido"`
	FechaEntrega   *time.Time    `json:"fecha_entrega"`
	Detalles       string        `json:"detalles"`
}

// CocinaVista es la vista que consume la pantalla de cocina: cada detalle
// con su propio estado (vistas comandas3 y /detalle).
type CocinaVista struct {
	IDDetalle      int           `json:"id_detalle"`
	IDNumeroOrden  int           `json:"id_numero_orden"`
	NombreEmpleado string        `json:"nombre_empleado"`
	NombrePlato    string        `json:"nombre_plato"`
	NumeroMesa     int           `json:"numero_mesa"`
	Cantidad       int           `json:"cantidad"`
	EstadoDetalle  entity.Estado `json:"estado_detalle"`
	FechaPedido    time.Time     `json:"fecha_pedido"`
	FechaEntrega   *time.Time    `json:"fecha_entrega"`
	Detalles       string        `json:"detalles"`
}

// VendidaVista agrega el precio unitario para la lista de comandas
// vendidas (vista comandas4).
type VendidaVista struct {
	IDDetalle      int           `json:"id_detalle"`
	IDNumeroOrden  int           `json:"id_numero_orden"`
	IDEstado       entity.Estado `json:"id_estado"`
	Estado         string        `json:"estado"`
	NombreEmpleado string        `json:"nombre_empleado"`
	NombrePlato    string        `json:"nombre_plato"`
	NumeroMesa     int           `json:"numero_mesa"`
	Cantidad       int           `json:"cantidad"`
	FechaPedido    time.Time     `json:"fecha_pedido"`
	PrecioUnitario int           `json:"precio_unitario"`
	FechaEntrega   *time.Time    `json:"fecha_entrega"`
	Detalles       string        `json:"detalles"`
}

// PorPagarVista es la fila que devuelven las consultas de comandas
// elegibles para pago.
type PorPagarVista struct {
	IDNumeroOrden  int           `json:"id_numero_orden"`
	NombreEmpleado string        `json:"nombre_empleado"`
	IDMesa         int           `json:"id_mesa"`
	IDEstado       entity.Estado `json:"id_estado"`
}
