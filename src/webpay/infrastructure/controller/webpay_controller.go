package controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"enaccion/src/webpay/application/request"
	"enaccion/src/webpay/application/response"
	"enaccion/src/webpay/application/usecase"
	"enaccion/src/webpay/domain/entity"
	"enaccion/src/webpay/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// WebpayController maneja las peticiones HTTP del gateway simulado
type WebpayController struct {
	iniciarUC     *usecase.IniciarTransaccionUseCase
	obtenerUC     *usecase.ObtenerTransaccionUseCase
	retornoUC     *usecase.ProcesarRetornoUseCase
	comprobanteUC *usecase.EnviarComprobanteUseCase
	linkPagoUC    *usecase.EnviarLinkPagoUseCase

	frontendURL  string
	queryTimeout time.Duration
}

// NewWebpayController crea una nueva instancia del controlador
func NewWebpayController(
	iniciarUC *usecase.IniciarTransaccionUseCase,
	obtenerUC *usecase.ObtenerTransaccionUseCase,
	retornoUC *usecase.ProcesarRetornoUseCase,
	comprobanteUC *usecase.EnviarComprobanteUseCase,
	linkPagoUC *usecase.EnviarLinkPagoUseCase,
	frontendURL string,
	queryTimeout time.Duration,
) *WebpayController {
	return &WebpayController{
		iniciarUC:     iniciarUC,
		obtenerUC:     obtenerUC,
		retornoUC:     retornoUC,
		comprobanteUC: comprobanteUC,
		linkPagoUC:    linkPagoUC,
		frontendURL:   frontendURL,
		queryTimeout:  queryTimeout,
	}
}

// RegisterRoutes registra las rutas del controlador y la plantilla del
// formulario de pago
func (c *WebpayController) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(plantillaSimulacion)

	api := router.Group("/api")
	{
		api.POST("/webpay/iniciar", c.Iniciar)
		api.GET("/webpay/retorno", c.Retorno)
		api.POST("/enviar-comprobante", c.EnviarComprobante)
		api.POST("/enviar-link-pago", c.EnviarLinkPago)
	}
	router.GET("/webpay-simulacion", c.PaginaSimulacion)

	log.Println("Rutas WebPay disponibles:")
	log.Println("  POST   /api/webpay/iniciar")
	log.Println("  GET    /webpay-simulacion?token_ws=")
	log.Println("  GET    /api/webpay/retorno?token_ws=&status=")
	log.Println("  POST   /api/enviar-comprobante")
	log.Println("  POST   /api/enviar-link-pago")
}

func (c *WebpayController) timeoutCtx(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), c.queryTimeout)
}

// Iniciar maneja la apertura de una transacción de pago
func (c *WebpayController) Iniciar(ctx *gin.Context) {
	var req request.IniciarTransaccionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Faltan parámetros requeridos",
		})
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	resp, err := c.iniciarUC.Execute(reqCtx, &req)
	if err != nil {
		if errors.Is(err, entity.ErrMontoRequerido) ||
			errors.Is(err, entity.ErrOrdenCompraRequerida) ||
			errors.Is(err, entity.ErrSessionIDRequerido) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Faltan parámetros requeridos",
			})
			return
		}

		log.Printf("Error al iniciar transacción WebPay: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error interno del servidor",
		})
		return
	}

	metrics.TransaccionesTotal.WithLabelValues(entity.EstadoPendiente).Inc()
	ctx.JSON(http.StatusOK, resp)
}

// PaginaSimulacion sirve el formulario de pago simulado
func (c *WebpayController) PaginaSimulacion(ctx *gin.Context) {
	tokenWS := ctx.Query("token_ws")
	if tokenWS == "" {
		ctx.String(http.StatusBadRequest, "Token requerido")
		return
	}

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	transaccion, err := c.obtenerUC.Execute(reqCtx, tokenWS)
	if err != nil {
		if errors.Is(err, entity.ErrTransaccionNoEncontrada) {
			ctx.String(http.StatusNotFound, "Transacción no encontrada")
			return
		}

		log.Printf("Error buscando transacción %s: %v", tokenWS, err)
		ctx.String(http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	ctx.HTML(http.StatusOK, "webpay_simulacion", datosSimulacion{
		OrdenCompra: transaccion.OrdenCompra,
		Monto:       entity.FormatoPesos(transaccion.Monto),
		Token:       transaccion.Token,
	})
}

// Retorno maneja la vuelta desde el formulario de pago. Siempre termina
// en un redirect al frontend, con resultado o con error.
func (c *WebpayController) Retorno(ctx *gin.Context) {
	tokenWS := ctx.Query("token_ws")
	status := ctx.Query("status")

	if tokenWS == "" {
		ctx.Redirect(http.StatusFound, c.frontendURL+"/pago-exitoso?error=token_requerido")
		return
	}

	log.Printf("Procesando retorno de WebPay simulado: token=%s status=%s", tokenWS, status)

	reqCtx, cancel := c.timeoutCtx(ctx)
	defer cancel()

	transaccion, err := c.retornoUC.Execute(reqCtx, tokenWS, status)
	if err != nil {
		if errors.Is(err, entity.ErrTransaccionNoEncontrada) {
			ctx.Redirect(http.StatusFound, c.frontendURL+"/pago-exitoso?error=transaccion_no_encontrada")
			return
		}

		log.Printf("Error al procesar retorno de WebPay: %v", err)
		ctx.Redirect(http.StatusFound, c.frontendURL+"/pago-exitoso?error="+url.QueryEscape(err.Error()))
		return
	}

	metrics.TransaccionesTotal.WithLabelValues(transaccion.Estado).Inc()

	auth := "N/A"
	if transaccion.Resultado.AuthorizationCode != "" {
		auth = transaccion.Resultado.AuthorizationCode
	}

	destino := c.frontendURL + "/pago-exitoso" +
		"?status=" + url.QueryEscape(status) +
		"&order=" + url.QueryEscape(transaccion.OrdenCompra) +
		"&amount=" + transaccion.Monto.String() +
		"&auth=" + auth +
		"&token=" + url.QueryEscape(tokenWS)

	ctx.Redirect(http.StatusFound, destino)
}

// EnviarComprobante maneja el reenvío del comprobante por correo
func (c *WebpayController) EnviarComprobante(ctx *gin.Context) {
	var req request.EnviarComprobanteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email y token son requeridos",
		})
		return
	}

	err := c.comprobanteUC.Execute(ctx.Request.Context(), req.Email, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmailRequerido), errors.Is(err, entity.ErrTokenRequerido):
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Email y token son requeridos",
			})
		case errors.Is(err, entity.ErrTransaccionNoEncontrada):
			ctx.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Transacción no encontrada",
			})
		case errors.Is(err, entity.ErrEnvioCorreo):
			log.Printf("Error enviando comprobante: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error al enviar el comprobante",
				"error":   err.Error(),
			})
		default:
			log.Printf("Error al enviar comprobante: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error interno del servidor",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, response.EnvioResponse{
		Success: true,
		Message: "Comprobante enviado exitosamente",
	})
}

// EnviarLinkPago maneja el envío del enlace de pago por correo
func (c *WebpayController) EnviarLinkPago(ctx *gin.Context) {
	var req request.EnviarLinkPagoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Faltan parámetros requeridos",
		})
		return
	}

	err := c.linkPagoUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrLinkPagoIncompleto) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Faltan parámetros requeridos",
			})
			return
		}

		log.Printf("Error enviando link de pago: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error al enviar el link de pago",
			"error":   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, response.EnvioResponse{
		Success: true,
		Message: "Link de pago enviado exitosamente",
	})
}
