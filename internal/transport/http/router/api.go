package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-user-service/internal/core/auth"
	"go-user-service/internal/domain"
	"go-user-service/internal/transport/http/handler"
	mdw "go-user-service/internal/transport/http/middleware"
)

// NewAPIEngine wires the public surface. Create and login are open; read,
// update and delete sit behind the auth gate.
func NewAPIEngine(l *zap.Logger, svc handler.AccountService, store domain.UserRepository, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	users := handler.NewUserHandler(svc, l)
	login := handler.NewLoginHandler(svc, jwter, l)

	api := r.Group("/api/v1")

	api.POST("/user", users.Create)
	api.POST("/login/token", login.Token)

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, store))
	authed.GET("/user", users.Get)
	authed.PATCH("/user", users.Update)
	authed.DELETE("/user", users.Delete)

	return r
}
