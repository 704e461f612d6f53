package controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"enaccion/src/reportes/application/usecase"

	"github.com/gin-gonic/gin"
)

// ReporteController maneja las peticiones HTTP para reportes de ventas
type ReporteController struct {
	ventasMeseroUC  *usecase.VentasPorMeseroUseCase
	platosPedidosUC *usecase.PlatosMasPedidosUseCase
	ventasTotalesUC *usecase.VentasTotalesUseCase

	queryTimeout time.Duration
}

// NewReporteController crea una nueva instancia del controlador
func NewReporteController(
	ventasMeseroUC *usecase.VentasPorMeseroUseCase,
	platosPedidosUC *usecase.PlatosMasPedidosUseCase,
	ventasTotalesUC *usecase.VentasTotalesUseCase,
	queryTimeout time.Duration,
) *ReporteController {
	return &ReporteController{
		ventasMeseroUC:  ventasMeseroUC,
		platosPedidosUC: platosPedidosUC,
		ventasTotalesUC: ventasTotalesUC,
		queryTimeout:    queryTimeout,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReporteController) RegisterRoutes(router *gin.Engine) {
	reportes := router.Group("/reporte")
	{
		reportes.GET("/ventas-meseros", c.VentasPorMesero)
		reportes.GET("/platos-mas-pedidos", c.PlatosMasPedidos)
		reportes.GET("/ventas-totales", c.VentasTotales)
	}

	log.Println("Rutas Reporte disponibles:")
	log.Println("  GET    /reporte/ventas-meseros")
	log.Println("  GET    /reporte/platos-mas-pedidos")
	log.Println("  GET    /reporte/ventas-totales")
}

func (c *ReporteController) timeoutCtx(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), c.queryTimeout)
}

// VentasPorMesero maneja el reporte de comandas por mesero
func (c *ReporteController) VentasPorMesero(ctx *gin.Context) {
	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	vistas, err := c.ventasMeseroUC.Execute(reqCtx)
	if err != nil {
		log.Printf("Error obteniendo ventas por mesero: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las ventas por mesero"})
		return
	}

	ctx.JSON(http.StatusOK, vistas)
}

// PlatosMasPedidos maneja el reporte de platos más pedidos
func (c *ReporteController) PlatosMasPedidos(ctx *gin.Context) {
	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	vistas, err := c.platosPedidosUC.Execute(reqCtx)
	if err != nil {
		log.Printf("Error obteniendo platos más pedidos: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los platos más pedidos"})
		return
	}

	ctx.JSON(http.StatusOK, vistas)
}

// VentasTotales maneja el reporte de ventas totales por día
func (c *ReporteController) VentasTotales(ctx *gin.Context) {
	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	vistas, err := c.ventasTotalesUC.Execute(reqCtx)
	if err != nil {
		log.Printf("Error obteniendo ventas totales: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las ventas totales"})
		return
	}

	ctx.JSON(http.StatusOK, vistas)
}
