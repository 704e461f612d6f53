package request

import "enaccion/src/ventas/domain/entity"

// RegistrarVentaRequest es el body para registrar una venta cerrada.
// El campo comanda trae las líneas tal como las muestra la caja.
type RegistrarVentaRequest struct {
	IDNumeroOrden int                `json:"id_numero_orden"`
	Comanda       []entity.ItemVenta `json:"comanda"`
}
