package response

// FacturaDetalleVista es una línea de la factura de una comanda.
type FacturaDetalleVista struct {
	IDDetalle      int    `json:"id_detalle"`
	NombreEmpleado string `json:"nombre_empleado"`
	NumeroMesa     int    `json:"numero_mesa"`
	IDEstado       int    `json:"id_estado"`
	Cantidad       int    `json:"cantidad"`
	NombrePlato    string `json:"nombre_plato"`
	PrecioUnitario int    `json:"precio_unitario"`
	TotalParcial   int    `json:"total_parcial"`
}

// FacturaResponse agrupa las líneas y el total a cobrar.
type FacturaResponse struct {
	IDNumeroOrden int                   `json:"id_numero_orden"`
	Detalles      []FacturaDetalleVista `json:"detalles"`
	TotalFactura  int                   `json:"totalFactura"`
}

// RegistrarVentaResponse confirma la venta persistida.
type RegistrarVentaResponse struct {
	Message string `json:"message"`
	VentaID int    `json:"ventaId"`
}
