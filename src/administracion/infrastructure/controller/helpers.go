package controller

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// timeoutCtx deriva un contexto acotado de la petición HTTP.
func timeoutCtx(ctx *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), d)
}
