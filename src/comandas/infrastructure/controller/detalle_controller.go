package controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"enaccion/src/comandas/application/request"
	"enaccion/src/comandas/application/usecase"
	"enaccion/src/comandas/domain/entity"

	"github.com/gin-gonic/gin"
)

// DetalleController maneja las peticiones HTTP para detalles de comanda
type DetalleController struct {
	agregarDetalleUC   *usecase.AgregarDetalleUseCase
	avanzarDetalleUC   *usecase.AvanzarDetalleUseCase
	cancelarDetallesUC *usecase.CancelarDetallesUseCase
	listarCocinaUC     *usecase.ListarCocinaUseCase
	obtenerDetallesUC  *usecase.ObtenerDetallesUseCase

	queryTimeout time.Duration
}

// NewDetalleController crea una nueva instancia del controlador
func NewDetalleController(
	agregarDetalleUC *usecase.AgregarDetalleUseCase,
	avanzarDetalleUC *usecase.AvanzarDetalleUseCase,
	cancelarDetallesUC *usecase.CancelarDetallesUseCase,
	listarCocinaUC *usecase.ListarCocinaUseCase,
	obtenerDetallesUC *usecase.ObtenerDetallesUseCase,
	queryTimeout time.Duration,
) *DetalleController {
	return &DetalleController{
		agregarDetalleUC:   agregarDetalleUC,
		avanzarDetalleUC:   avanzarDetalleUC,
		cancelarDetallesUC: cancelarDetallesUC,
		listarCocinaUC:     listarCocinaUC,
		obtenerDetallesUC:  obtenerDetallesUC,
		queryTimeout:       queryTimeout,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *DetalleController) RegisterRoutes(router *gin.Engine) {
	router.GET("/detalle", c.ListarDetalles)
	router.POST("/detalle", c.AgregarDetalle)
	router.PUT("/detalle", c.CancelarDetalles)
	router.PUT("/detalle/:id_detalle", c.AvanzarDetalle)
	router.GET("/detalle/:id_numero_orden", c.ObtenerDetalles)

	log.Println("Rutas Detalle disponibles:")
	log.Println("  GET    /detalle")
	log.Println("  POST   /detalle")
	log.Println("  PUT    /detalle  (cierre masivo por comanda)")
	log.Println("  PUT    /detalle/:id_detalle  (avance de estado + entrega)")
	log.Println("  GET    /detalle/:id_numero_orden")
}

func (c *DetalleController) timeoutCtx(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), c.queryTimeout)
}

// AgregarDetalle maneja la creación de un detalle de comanda
func (c *DetalleController) AgregarDetalle(ctx *gin.Context) {
	// 1. Validar body
	var req request.CrearDetalleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	// 2. Ejecutar use case
	detalle, err := c.agregarDetalleUC.Execute(reqCtx, &req)
	if err != nil {
		if errors.Is(err, entity.ErrComandaRequerida) ||
			errors.Is(err, entity.ErrPlatoRequerido) ||
			errors.Is(err, entity.ErrCantidadInvalida) ||
			errors.Is(err, entity.ErrEstadoInvalido) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, entity.ErrComandaNoEncontrada) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Comanda no encontrada"})
			return
		}
		if errors.Is(err, entity.ErrComandaCerrada) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "La comanda ya está cerrada"})
			return
		}

		log.Printf("Error adding detalle: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al agregar el detalle"})
		return
	}

	// 3. Responder con 201 Created
	ctx.JSON(http.StatusCreated, detalle)
}

// AvanzarDetalle maneja el avance de estado de un detalle. Si pasa a
// Entregado, la fecha de entrega de la comanda queda fijada en la misma
// transacción y se devuelve la comanda actualizada.
func (c *DetalleController) AvanzarDetalle(ctx *gin.Context) {
	idDetalle, err := strconv.Atoi(ctx.Param("id_detalle"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_detalle inválido"})
		return
	}

	var req request.AvanzarDetalleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.IDEstado == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_estado inválido"})
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	comanda, err := c.avanzarDetalleUC.Execute(reqCtx, idDetalle, entity.Estado(*req.IDEstado))
	if err != nil {
		if errors.Is(err, entity.ErrDetalleNoEncontrado) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Detalle no encontrado"})
			return
		}
		if errors.Is(err, entity.ErrEstadoInvalido) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_estado inválido"})
			return
		}

		log.Printf("Error advancing detalle: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el detalle"})
		return
	}

	ctx.JSON(http.StatusOK, comanda)
}

// CancelarDetalles maneja el cierre masivo: todo detalle no cancelado de la
// comanda pasa a Pagado
func (c *DetalleController) CancelarDetalles(ctx *gin.Context) {
	var req request.CancelarDetallesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	cerrados, err := c.cancelarDetallesUC.Execute(reqCtx, req.IDNumeroOrden)
	if err != nil {
		if errors.Is(err, entity.ErrComandaRequerida) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Printf("Error closing detalles: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el detalle"})
		return
	}

	ctx.JSON(http.StatusOK, cerrados)
}

// ListarDetalles maneja la vista completa de detalles (empleado con nombre
// y apellido)
func (c *DetalleController) ListarDetalles(ctx *gin.Context) {
	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	vistas, err := c.listarCocinaUC.Execute(reqCtx, true)
	if err != nil {
		log.Printf("Error listing detalles: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener detalles"})
		return
	}

	ctx.JSON(http.StatusOK, vistas)
}

// ObtenerDetalles maneja la consulta de detalles crudos por comanda
func (c *DetalleController) ObtenerDetalles(ctx *gin.Context) {
	idNumeroOrden, err := strconv.Atoi(ctx.Param("id_numero_orden"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_numero_orden inválido"})
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	detalles, err := c.obtenerDetallesUC.Execute(reqCtx, idNumeroOrden)
	if err != nil {
		log.Printf("Error listing detalles: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener detalles"})
		return
	}

	ctx.JSON(http.StatusOK, detalles)
}
