package response

import "github.com/shopspring/decimal"

// VentasMeseroVista agrupa comandas atendidas por cada mesero.
type VentasMeseroVista struct {
	Nombre      string `json:"nombre"`
	TotalVentas int    `json:"total_ventas"`
}

// PlatoPedidoVista cuenta cuántas veces se pidió cada plato.
type PlatoPedidoVista struct {
	NombrePlato  string `json:"nombre_plato"`
	TotalPedidos int    `json:"total_pedidos"`
}

// VentasDiaVista acumula el total vendido por fecha calendario.
type VentasDiaVista struct {
	Fecha       string          `json:"fecha"`
	TotalVentas decimal.Decimal `json:"total_ventas"`
}
