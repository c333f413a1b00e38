package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-user-service/internal/core/server"
)

// NewOpsEngine serves the operational surface (metrics, health) on its own
// listener so the public port never exposes it.
func NewOpsEngine(l *zap.Logger) *gin.Engine {
	r := server.NewRouter(l)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
