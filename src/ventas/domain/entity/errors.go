package entity

import "errors"

// Errores de dominio para el registro de ventas y facturación
var (
	ErrComandaRequerida  = errors.New("id_numero_orden es requerido")
	ErrVentaSinItems     = errors.New("la venta no tiene líneas")
	ErrProductoRequerido = errors.New("producto es requerido")
	ErrCantidadInvalida  = errors.New("cantidad debe ser mayor a cero")
	ErrPrecioInvalido    = errors.New("precio_unitario no puede ser negativo")
	ErrFacturaVacia      = errors.New("no se encontraron detalles para esta comanda")
)
