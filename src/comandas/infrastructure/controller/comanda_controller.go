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

// ComandaController maneja las peticiones HTTP para comandas
type ComandaController struct {
	crearComandaUC      *usecase.CrearComandaUseCase
	actualizarEstadoUC  *usecase.ActualizarEstadoComandaUseCase
	eliminarComandaUC   *usecase.EliminarComandaUseCase
	liquidarComandaUC   *usecase.LiquidarComandaUseCase
	listarComandasUC    *usecase.ListarComandasUseCase
	listarCompletasUC   *usecase.ListarComandasCompletasUseCase
	listarDetallesUC    *usecase.ListarDetallesComandaUseCase
	listarCocinaUC      *usecase.ListarCocinaUseCase
	listarVendidasUC    *usecase.ListarVendidasUseCase
	porPagarUC          *usecase.ComandasPorPagarUseCase
	actualizarDetalleUC *usecase.ActualizarEstadoDetalleUseCase

	queryTimeout time.Duration
}

// NewComandaController crea una nueva instancia del controlador
func NewComandaController(
	crearComandaUC *usecase.CrearComandaUseCase,
	actualizarEstadoUC *usecase.ActualizarEstadoComandaUseCase,
	eliminarComandaUC *usecase.EliminarComandaUseCase,
	liquidarComandaUC *usecase.LiquidarComandaUseCase,
	listarComandasUC *usecase.ListarComandasUseCase,
	listarCompletasUC *usecase.ListarComandasCompletasUseCase,
	listarDetallesUC *usecase.ListarDetallesComandaUseCase,
	listarCocinaUC *usecase.ListarCocinaUseCase,
	listarVendidasUC *usecase.ListarVendidasUseCase,
	porPagarUC *usecase.ComandasPorPagarUseCase,
	actualizarDetalleUC *usecase.ActualizarEstadoDetalleUseCase,
	queryTimeout time.Duration,
) *ComandaController {
	return &ComandaController{
		crearComandaUC:      crearComandaUC,
		actualizarEstadoUC:  actualizarEstadoUC,
		eliminarComandaUC:   eliminarComandaUC,
		liquidarComandaUC:   liquidarComandaUC,
		listarComandasUC:    listarComandasUC,
		listarCompletasUC:   listarCompletasUC,
		listarDetallesUC:    listarDetallesUC,
		listarCocinaUC:      listarCocinaUC,
		listarVendidasUC:    listarVendidasUC,
		porPagarUC:          porPagarUC,
		actualizarDetalleUC: actualizarDetalleUC,
		queryTimeout:        queryTimeout,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ComandaController) RegisterRoutes(router *gin.Engine) {
	router.GET("/comandas", c.ListarComandas)
	router.POST("/comandas", c.CrearComanda)
	router.PUT("/comandas/:id_numero_orden", c.ActualizarEstado)
	router.DELETE("/comandas/:id", c.EliminarComanda)
	router.POST("/comandas/:id_numero_orden/pagar", c.LiquidarComanda)

	router.GET("/comandas1", c.ListarCompletas)
	router.GET("/comandas2", c.ListarDetalles)
	router.GET("/comandas3", c.ListarCocina)
	router.PUT("/comandas3/:id", c.ActualizarEstadoDetalle)
	router.GET("/comandas4", c.ListarVendidas)

	router.GET("/comandas/pagar", c.PorPagar)
	router.GET("/comandas/pagar1", c.PorPagar1)

	log.Println("Rutas Comanda disponibles:")
	log.Println("  GET    /comandas, /comandas1, /comandas2, /comandas3, /comandas4")
	log.Println("  POST   /comandas")
	log.Println("  PUT    /comandas/:id_numero_orden")
	log.Println("  DELETE /comandas/:id")
	log.Println("  POST   /comandas/:id_numero_orden/pagar  (liquidación atómica)")
	log.Println("  PUT    /comandas3/:id")
	log.Println("  GET    /comandas/pagar, /comandas/pagar1")
}

func (c *ComandaController) timeoutCtx(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), c.queryTimeout)
}

// CrearComanda maneja la creación de una comanda
func (c *ComandaController) CrearComanda(ctx *gin.Context) {
	// 1. Validar body
	var req request.CrearComandaRequest
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
	comanda, err := c.crearComandaUC.Execute(reqCtx, &req)
	if err != nil {
		if errors.Is(err, entity.ErrEmpleadoRequerido) ||
			errors.Is(err, entity.ErrMesaRequerida) ||
			errors.Is(err, entity.ErrEstadoInvalido) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Printf("Error creating comanda: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al agregar la comanda"})
		return
	}

	// 3. Responder con 201 Created
	ctx.JSON(http.StatusCreated, comanda)
}

// ActualizarEstado maneja el cambio de estado global de una comanda
func (c *ComandaController) ActualizarEstado(ctx *gin.Context) {
	idNumeroOrden, err := strconv.Atoi(ctx.Param("id_numero_orden"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_numero_orden inválido"})
		return
	}

	var req request.ActualizarEstadoComandaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.IDEstado == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Estado inválido"})
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	err = c.actualizarEstadoUC.Execute(reqCtx, idNumeroOrden, entity.Estado(*req.IDEstado))
	if err != nil {
		if errors.Is(err, entity.ErrComandaNoEncontrada) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Comanda no encontrada"})
			return
		}
		if errors.Is(err, entity.ErrEstadoInvalido) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Estado inválido"})
			return
		}

		log.Printf("Error al actualizar el estado: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el estado"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Estado de la comanda actualizado a " + strconv.Itoa(*req.IDEstado)})
}

// EliminarComanda maneja el borrado de una comanda
func (c *ComandaController) EliminarComanda(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	err = c.eliminarComandaUC.Execute(reqCtx, id)
	if err != nil {
		if errors.Is(err, entity.ErrComandaNoEncontrada) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Comanda con id " + strconv.Itoa(id) + " no encontrada"})
			return
		}

		log.Printf("Error deleting comanda: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la comanda"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Comanda con id " + strconv.Itoa(id) + " eliminada"})
}

// LiquidarComanda maneja el cobro atómico: comanda Pagada + detalles
// cerrados en una sola transacción
func (c *ComandaController) LiquidarComanda(ctx *gin.Context) {
	idNumeroOrden, err := strconv.Atoi(ctx.Param("id_numero_orden"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_numero_orden inválido"})
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	err = c.liquidarComandaUC.Execute(reqCtx, idNumeroOrden)
	if err != nil {
		if errors.Is(err, entity.ErrComandaNoEncontrada) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Comanda no encontrada"})
			return
		}
		if errors.Is(err, entity.ErrComandaNoPagable) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "La comanda no está lista para pagar"})
			return
		}

		log.Printf("Error liquidando comanda: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al liquidar la comanda"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":         "Comanda liquidada",
		"id_numero_orden": idNumeroOrden,
		"id_estado":       int(entity.EstadoPagado),
	})
}

// ActualizarEstadoDetalle maneja el cambio de estado de un detalle desde la
// pantalla de cocina, sin tocar la comanda padre
func (c *ComandaController) ActualizarEstadoDetalle(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	var req request.EstadoDetalleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.EstadoDetalle == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "estado_detalle inválido"})
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	detalle, err := c.actualizarDetalleUC.Execute(reqCtx, id, entity.Estado(*req.EstadoDetalle))
	if err != nil {
		if errors.Is(err, entity.ErrDetalleNoEncontrado) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Comanda no encontrada"})
			return
		}
		if errors.Is(err, entity.ErrEstadoInvalido) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "estado_detalle inválido"})
			return
		}

		log.Printf("Error al actualizar la comanda: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno del servidor"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Estado actualizado correctamente", "comanda": detalle})
}

// ListarComandas maneja la vista general de comandas
func (c *ComandaController) ListarComandas(ctx *gin.Context) {
	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	vistas, err := c.listarComandasUC.Execute(reqCtx)
	if err != nil {
		log.Printf("Error listing comandas: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las comandas"})
		return
	}

	ctx.JSON(http.StatusOK, vistas)
}

// ListarCompletas maneja la vista desnormalizada con plato y estado
func (c *ComandaController) ListarCompletas(ctx *gin.Context) {
	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	vistas, err := c.listarCompletasUC.Execute(reqCtx)
	if err != nil {
		log.Printf("Error listing comandas: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las comandas"})
		return
	}

	ctx.JSON(http.StatusOK, vistas)
}

// ListarDetalles maneja la vista por detalle con estado de comanda
func (c *ComandaController) ListarDetalles(ctx *gin.Context) {
	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	vistas, err := c.listarDetallesUC.Execute(reqCtx)
	if err != nil {
		log.Printf("Error listing detalles: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las comandas con detalles"})
		return
	}

	ctx.JSON(http.StatusOK, vistas)
}

// ListarCocina maneja la vista de la pantalla de cocina
func (c *ComandaController) ListarCocina(ctx *gin.Context) {
	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	vistas, err := c.listarCocinaUC.Execute(reqCtx, false)
	if err != nil {
		log.Printf("Error listing cocina: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener detalles"})
		return
	}

	ctx.JSON(http.StatusOK, vistas)
}

// ListarVendidas maneja la lista de comandas vendidas con precios
func (c *ComandaController) ListarVendidas(ctx *gin.Context) {
	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	vistas, err := c.listarVendidasUC.Execute(reqCtx)
	if err != nil {
		log.Printf("Error listing vendidas: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las comandas con detalles"})
		return
	}

	ctx.JSON(http.StatusOK, vistas)
}

// PorPagar maneja la consulta estricta de comandas cobrables
func (c *ComandaController) PorPagar(ctx *gin.Context) {
	c.porPagar(ctx, usecase.PorPagarEstricta)
}

// PorPagar1 maneja la variante laxa de la consulta de comandas cobrables
func (c *ComandaController) PorPagar1(ctx *gin.Context) {
	c.porPagar(ctx, usecase.PorPagarLaxa)
}

func (c *ComandaController) porPagar(ctx *gin.Context, variante usecase.VariantePorPagar) {
	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	vistas, err := c.porPagarUC.Execute(reqCtx, variante)
	if err != nil {
		log.Printf("Error listing comandas por pagar: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las comandas"})
		return
	}

	ctx.JSON(http.StatusOK, vistas)
}
