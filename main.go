package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	adminController "enaccion/src/administracion/infrastructure/controller"
	adminPersistence "enaccion/src/administracion/infrastructure/persistence"
	comandasUseCase "enaccion/src/comandas/application/usecase"
	comandasController "enaccion/src/comandas/infrastructure/controller"
	comandasPersistence "enaccion/src/comandas/infrastructure/persistence"
	reportesUseCase "enaccion/src/reportes/application/usecase"
	reportesController "enaccion/src/reportes/infrastructure/controller"
	"enaccion/src/shared/infrastructure/config"
	"enaccion/src/shared/infrastructure/middleware"
	ventasUseCase "enaccion/src/ventas/application/usecase"
	ventasController "enaccion/src/ventas/infrastructure/controller"
	ventasPersistence "enaccion/src/ventas/infrastructure/persistence"
	webpayUseCase "enaccion/src/webpay/application/usecase"
	webpayCache "enaccion/src/webpay/infrastructure/cache"
	webpayController "enaccion/src/webpay/infrastructure/controller"
	webpayMail "enaccion/src/webpay/infrastructure/mail"
	webpayPersistence "enaccion/src/webpay/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("ENACCION RESTAURANT - Servicio de comandas - Iniciando...")

	cfg := config.Load()

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	// Configurar Prometheus metrics si está habilitado
	if cfg.PrometheusEnabled {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Conectar a la base de datos
	connStr := cfg.ConnString()
	log.Printf("Intentando conectar a %s: %s", cfg.DBName, connStr)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("Continuando sin DB (solo health check)")
		db = nil
	} else {
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Printf("Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("Continuando sin DB (solo health check)")
			db = nil
		} else {
			log.Printf("Conexión a %s establecida con éxito", cfg.DBName)
		}
	}

	// Health check con estado de la base de datos
	router.GET("/health", func(ctx *gin.Context) {
		dbStatus := "down"
		if db != nil && db.Ping() == nil {
			dbStatus = "up"
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbStatus})
	})

	if db != nil {
		setupModulos(router, db, cfg)
	} else {
		log.Println("Advertencia: módulos deshabilitados sin conexión a la base de datos")
	}

	// Iniciar el servidor
	log.Printf("Servidor iniciado en http://localhost:%s", cfg.Port)
	log.Printf("Health endpoint: GET http://localhost:%s/health", cfg.Port)
	router.Run(":" + cfg.Port)
}

// setupModulos arma los repositorios, casos de uso y controladores de
// cada contexto y registra sus rutas.
func setupModulos(router *gin.Engine, db *sql.DB, cfg config.Config) {
	// Módulo administración
	empleadoRepo := adminPersistence.NewEmpleadoPostgresRepository(db)
	catalogoRepo := adminPersistence.NewCatalogoPostgresRepository(db)
	empleadoCtrl := adminController.NewEmpleadoController(empleadoRepo, cfg.QueryTimeout)
	catalogoCtrl := adminController.NewCatalogoController(catalogoRepo, cfg.QueryTimeout)
	empleadoCtrl.RegisterRoutes(router)
	catalogoCtrl.RegisterRoutes(router)

	// Módulo comandas
	comandaRepo := comandasPersistence.NewComandaPostgresRepository(db)
	detalleRepo := comandasPersistence.NewDetallePostgresRepository(db)

	comandaCtrl := comandasController.NewComandaController(
		comandasUseCase.NewCrearComandaUseCase(comandaRepo),
		comandasUseCase.NewActualizarEstadoComandaUseCase(comandaRepo),
		comandasUseCase.NewEliminarComandaUseCase(comandaRepo),
		comandasUseCase.NewLiquidarComandaUseCase(comandaRepo),
		comandasUseCase.NewListarComandasUseCase(db),
		comandasUseCase.NewListarComandasCompletasUseCase(db),
		comandasUseCase.NewListarDetallesComandaUseCase(db),
		comandasUseCase.NewListarCocinaUseCase(db),
		comandasUseCase.NewListarVendidasUseCase(db),
		comandasUseCase.NewComandasPorPagarUseCase(db),
		comandasUseCase.NewActualizarEstadoDetalleUseCase(detalleRepo),
		cfg.QueryTimeout,
	)
	detalleCtrl := comandasController.NewDetalleController(
		comandasUseCase.NewAgregarDetalleUseCase(comandaRepo, detalleRepo),
		comandasUseCase.NewAvanzarDetalleUseCase(detalleRepo),
		comandasUseCase.NewCancelarDetallesUseCase(detalleRepo),
		comandasUseCase.NewListarCocinaUseCase(db),
		comandasUseCase.NewObtenerDetallesUseCase(detalleRepo),
		cfg.QueryTimeout,
	)
	comandaCtrl.RegisterRoutes(router)
	detalleCtrl.RegisterRoutes(router)

	// Módulo reportes
	reporteCtrl := reportesController.NewReporteController(
		reportesUseCase.NewVentasPorMeseroUseCase(db),
		reportesUseCase.NewPlatosMasPedidosUseCase(db),
		reportesUseCase.NewVentasTotalesUseCase(db),
		cfg.QueryTimeout,
	)
	reporteCtrl.RegisterRoutes(router)

	// Módulo ventas
	ventaRepo := ventasPersistence.NewVentaPostgresRepository(db)
	ventaCtrl := ventasController.NewVentaController(
		ventasUseCase.NewGenerarFacturaUseCase(db),
		ventasUseCase.NewRegistrarVentaUseCase(ventaRepo),
		cfg.QueryTimeout,
	)
	ventaCtrl.RegisterRoutes(router)

	// Módulo webpay
	transaccionRepo := webpayPersistence.NewTransaccionPostgresRepository(db)
	transaccionCache := webpayCache.NewTransaccionCache(cfg.TransaccionTTL)
	go transaccionCache.IniciarLimpieza(context.Background(), time.Minute)

	mailer := webpayMail.NewGomailMailer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass, cfg.MailTimeout)

	obtenerUC := webpayUseCase.NewObtenerTransaccionUseCase(transaccionRepo, transaccionCache)
	webpayCtrl := webpayController.NewWebpayController(
		webpayUseCase.NewIniciarTransaccionUseCase(transaccionRepo, transaccionCache, cfg.BackendURL),
		obtenerUC,
		webpayUseCase.NewProcesarRetornoUseCase(transaccionRepo, transaccionCache, comandaRepo),
		webpayUseCase.NewEnviarComprobanteUseCase(db, obtenerUC, mailer, cfg.QueryTimeout),
		webpayUseCase.NewEnviarLinkPagoUseCase(mailer),
		cfg.FrontendURL,
		cfg.QueryTimeout,
	)
	webpayCtrl.RegisterRoutes(router)

	log.Println("Módulos configurados exitosamente")
	log.Println("WebPay configurado en modo SIMULACIÓN para pruebas")
	log.Printf("URL de simulación: %s/webpay-simulacion", cfg.BackendURL)
}
