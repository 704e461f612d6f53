package controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"enaccion/src/ventas/application/request"
	"enaccion/src/ventas/application/response"
	"enaccion/src/ventas/application/usecase"
	"enaccion/src/ventas/domain/entity"

	"github.com/gin-gonic/gin"
)

// VentaController maneja las peticiones HTTP para facturación y ventas
type VentaController struct {
	generarFacturaUC *usecase.GenerarFacturaUseCase
	registrarVentaUC *usecase.RegistrarVentaUseCase

	queryTimeout time.Duration
}

// NewVentaController crea una nueva instancia del controlador
func NewVentaController(
	generarFacturaUC *usecase.GenerarFacturaUseCase,
	registrarVentaUC *usecase.RegistrarVentaUseCase,
	queryTimeout time.Duration,
) *VentaController {
	return &VentaController{
		generarFacturaUC: generarFacturaUC,
		registrarVentaUC: registrarVentaUC,
		queryTimeout:     queryTimeout,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *VentaController) RegisterRoutes(router *gin.Engine) {
	router.GET("/ventas/:id_numero_orden", c.GenerarFactura)
	router.POST("/ventas", c.RegistrarVenta)

	log.Println("Rutas Venta disponibles:")
	log.Println("  GET    /ventas/:id_numero_orden")
	log.Println("  POST   /ventas  (transacción única)")
}

func (c *VentaController) timeoutCtx(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), c.queryTimeout)
}

// GenerarFactura maneja la factura itemizada de una comanda
func (c *VentaController) GenerarFactura(ctx *gin.Context) {
	idNumeroOrden, err := strconv.Atoi(ctx.Param("id_numero_orden"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_numero_orden inválido"})
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	factura, err := c.generarFacturaUC.Execute(reqCtx, idNumeroOrden)
	if err != nil {
		if errors.Is(err, entity.ErrFacturaVacia) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "No se encontraron detalles para esta comanda."})
			return
		}

		log.Printf("Error al generar la factura: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	ctx.JSON(http.StatusOK, factura)
}

// RegistrarVenta maneja el alta transaccional de la venta con sus líneas
func (c *VentaController) RegistrarVenta(ctx *gin.Context) {
	var req request.RegistrarVentaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	venta, err := c.registrarVentaUC.Execute(reqCtx, &req)
	if err != nil {
		if errors.Is(err, entity.ErrComandaRequerida) ||
			errors.Is(err, entity.ErrVentaSinItems) ||
			errors.Is(err, entity.ErrProductoRequerido) ||
			errors.Is(err, entity.ErrCantidadInvalida) ||
			errors.Is(err, entity.ErrPrecioInvalido) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Printf("Error registrando venta: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al registrar la venta"})
		return
	}

	ctx.JSON(http.StatusOK, response.RegistrarVentaResponse{
		Message: "Factura creada",
		VentaID: venta.ID,
	})
}
