package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSOptions contiene la configuración del middleware CORS.
type CORSOptions struct {
	AllowOrigin string
}

// DefaultCORSOptions devuelve una configuración permisiva, igual que el
// frontend React espera en desarrollo.
func DefaultCORSOptions() CORSOptions {
	return CORSOptions{AllowOrigin: "*"}
}

// CORS habilita las cabeceras necesarias para que la SPA consuma la API
// desde otro origen.
func CORS(opts CORSOptions) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", opts.AllowOrigin)
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
