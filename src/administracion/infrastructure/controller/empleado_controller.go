package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"enaccion/src/administracion/application/request"
	"enaccion/src/administracion/application/response"
	"enaccion/src/administracion/domain/entity"
	"enaccion/src/administracion/domain/port"

	"github.com/gin-gonic/gin"
)

// EmpleadoController maneja las peticiones HTTP para empleados
type EmpleadoController struct {
	empleadoRepo port.EmpleadoRepository
	queryTimeout time.Duration
}

// NewEmpleadoController crea una nueva instancia del controlador
func NewEmpleadoController(empleadoRepo port.EmpleadoRepository, queryTimeout time.Duration) *EmpleadoController {
	return &EmpleadoController{
		empleadoRepo: empleadoRepo,
		queryTimeout: queryTimeout,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *EmpleadoController) RegisterRoutes(router *gin.Engine) {
	router.GET("/empleados", c.Listar)
	router.POST("/empleados", c.Crear)
	router.PATCH("/empleados/:id_empleado", c.ActualizarContacto)
	router.GET("/empleados1", c.ListarPanel)
	router.PATCH("/empleados1/:id_empleado", c.Actualizar)
	router.GET("/meseros", c.ListarMeseros)

	log.Println("Rutas Empleado disponibles:")
	log.Println("  GET    /empleados, /empleados1, /meseros")
	log.Println("  POST   /empleados")
	log.Println("  PATCH  /empleados/:id_empleado, /empleados1/:id_empleado")
}

// Listar maneja el listado de todos los empleados
func (c *EmpleadoController) Listar(ctx *gin.Context) {
	reqCtx, cancel := timeoutCtx(ctx, c.queryTimeout)
	defer cancel()

	empleados, err := c.empleadoRepo.Listar(reqCtx)
	if err != nil {
		log.Printf("Error listing empleados: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener empleados"})
		return
	}

	ctx.JSON(http.StatusOK, empleados)
}

// ListarPanel maneja el listado con fecha de contratación formateada
func (c *EmpleadoController) ListarPanel(ctx *gin.Context) {
	reqCtx, cancel := timeoutCtx(ctx, c.queryTimeout)
	defer cancel()

	empleados, err := c.empleadoRepo.Listar(reqCtx)
	if err != nil {
		log.Printf("Error listing empleados: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener empleados"})
		return
	}

	vistas := make([]response.EmpleadoVista, 0, len(empleados))
	for _, e := range empleados {
		vistas = append(vistas, response.NuevaEmpleadoVista(e))
	}

	ctx.JSON(http.StatusOK, vistas)
}

// ListarMeseros maneja el listado de empleados con cargo Mesero
func (c *EmpleadoController) ListarMeseros(ctx *gin.Context) {
	reqCtx, cancel := timeoutCtx(ctx, c.queryTimeout)
	defer cancel()

	meseros, err := c.empleadoRepo.ListarPorCargo(reqCtx, entity.CargoMesero)
	if err != nil {
		log.Printf("Error listing meseros: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener empleados"})
		return
	}

	ctx.JSON(http.StatusOK, meseros)
}

// Crear maneja el alta de un empleado
func (c *EmpleadoController) Crear(ctx *gin.Context) {
	// 1. Validar body
	var req request.CrearEmpleadoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	fechaNacimiento, err := time.Parse("2006-01-02", req.FechaNacimiento)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
		return
	}

	empleado := &entity.Empleado{
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		Edad:            req.Edad,
		FechaNacimiento: fechaNacimiento,
		Telefono:        req.Telefono,
		Correo:          req.Correo,
		Cargo:           req.Cargo,
	}
	if err := empleado.Validar(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
		return
	}

	reqCtx, cancel := timeoutCtx(ctx, c.queryTimeout)
	defer cancel()

	// 2. Ejecutar alta
	creado, err := c.empleadoRepo.Crear(reqCtx, empleado)
	if err != nil {
		log.Printf("Error en el servidor: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor al agregar empleado"})
		return
	}

	// 3. Responder con 201 Created
	ctx.JSON(http.StatusCreated, creado)
}

// ActualizarContacto maneja la actualización parcial (teléfono, correo, cargo)
func (c *EmpleadoController) ActualizarContacto(ctx *gin.Context) {
	idEmpleado, err := strconv.Atoi(ctx.Param("id_empleado"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_empleado inválido"})
		return
	}

	var req request.ActualizarContactoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reqCtx, cancel := timeoutCtx(ctx, c.queryTimeout)
	defer cancel()

	actualizado, err := c.empleadoRepo.ActualizarContacto(reqCtx, idEmpleado, req.Telefono, req.Correo, req.Cargo)
	if err != nil {
		if errors.Is(err, entity.ErrEmpleadoNoEncontrado) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Empleado no encontrado"})
			return
		}

		log.Printf("Error updating empleado: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el empleado"})
		return
	}

	ctx.JSON(http.StatusOK, actualizado)
}

// Actualizar maneja la actualización completa desde el panel
func (c *EmpleadoController) Actualizar(ctx *gin.Context) {
	idEmpleado, err := strconv.Atoi(ctx.Param("id_empleado"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_empleado inválido"})
		return
	}

	var req request.ActualizarEmpleadoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	fechaNacimiento, err := time.Parse("2006-01-02", req.FechaNacimiento)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "fecha_nacimiento inválida"})
		return
	}

	empleado := &entity.Empleado{
		IDEmpleado:      idEmpleado,
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		Edad:            req.Edad,
		FechaNacimiento: fechaNacimiento,
		Telefono:        req.Telefono,
		Correo:          req.Correo,
		Cargo:           req.Cargo,
	}

	reqCtx, cancel := timeoutCtx(ctx, c.queryTimeout)
	defer cancel()

	actualizado, err := c.empleadoRepo.Actualizar(reqCtx, empleado)
	if err != nil {
		if errors.Is(err, entity.ErrEmpleadoNoEncontrado) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Empleado no encontrado"})
			return
		}

		log.Printf("Error updating empleado: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el empleado"})
		return
	}

	ctx.JSON(http.StatusOK, actualizado)
}
