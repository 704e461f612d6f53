package controller

import (
	"log"
	"net/http"
	"time"

	"enaccion/src/administracion/application/request"
	"enaccion/src/administracion/domain/entity"
	"enaccion/src/administracion/domain/port"

	"github.com/gin-gonic/gin"
)

// CatalogoController maneja las peticiones HTTP de los datos de referencia:
// mesas, menú y catálogo de estados
type CatalogoController struct {
	catalogoRepo port.CatalogoRepository
	queryTimeout time.Duration
}

// NewCatalogoController crea una nueva instancia del controlador
func NewCatalogoController(catalogoRepo port.CatalogoRepository, queryTimeout time.Duration) *CatalogoController {
	return &CatalogoController{
		catalogoRepo: catalogoRepo,
		queryTimeout: queryTimeout,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CatalogoController) RegisterRoutes(router *gin.Engine) {
	router.GET("/mesa", c.ListarMesas)
	router.POST("/mesa", c.CrearMesa)
	router.GET("/menu", c.ListarMenu)
	router.GET("/estado", c.ListarEstados)

	log.Println("Rutas Catálogo disponibles:")
	log.Println("  GET    /mesa, /menu, /estado")
	log.Println("  POST   /mesa")
}

// ListarMesas maneja el listado de mesas
func (c *CatalogoController) ListarMesas(ctx *gin.Context) {
	reqCtx, cancel := timeoutCtx(ctx, c.queryTimeout)
	defer cancel()

	mesas, err := c.catalogoRepo.ListarMesas(reqCtx)
	if err != nil {
		log.Printf("Error listing mesas: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener mesas"})
		return
	}

	ctx.JSON(http.StatusOK, mesas)
}

// CrearMesa maneja el alta de una mesa
func (c *CatalogoController) CrearMesa(ctx *gin.Context) {
	var req request.CrearMesaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reqCtx, cancel := timeoutCtx(ctx, c.queryTimeout)
	defer cancel()

	mesa, err := c.catalogoRepo.CrearMesa(reqCtx, &entity.Mesa{Numero: req.Numero, Capacidad: req.Capacidad})
	if err != nil {
		log.Printf("Error saving mesa: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al agregar la mesa"})
		return
	}

	ctx.JSON(http.StatusCreated, mesa)
}

// ListarMenu maneja el listado de platos del menú
func (c *CatalogoController) ListarMenu(ctx *gin.Context) {
	reqCtx, cancel := timeoutCtx(ctx, c.queryTimeout)
	defer cancel()

	platos, err := c.catalogoRepo.ListarMenu(reqCtx)
	if err != nil {
		log.Printf("Error listing menu: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el menú"})
		return
	}

	ctx.JSON(http.StatusOK, platos)
}

// ListarEstados maneja el listado del catálogo de estados
func (c *CatalogoController) ListarEstados(ctx *gin.Context) {
	reqCtx, cancel := timeoutCtx(ctx, c.queryTimeout)
	defer cancel()

	estados, err := c.catalogoRepo.ListarEstados(reqCtx)
	if err != nil {
		log.Printf("Error listing estados: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener estados"})
		return
	}

	ctx.JSON(http.StatusOK, estados)
}
