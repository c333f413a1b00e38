package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-user-service/internal/core/auth"
	resp "go-user-service/internal/transport/http/response"
)

type LoginHandler struct {
	svc   AccountService
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewLoginHandler(svc AccountService, jwter *auth.JWTer, log *zap.Logger) *LoginHandler {
	return &LoginHandler{svc: svc, jwter: jwter, log: log}
}

// Token handles POST /login/token. Bad email and bad password answer the
// same way, and so does the auth gate later: nothing here lets a caller
// probe which accounts exist.
func (l *LoginHandler) Token(c *gin.Context) {
	var in LoginForm
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, resp.Error(resp.CodeUnprocessable, err.Error()))
		return
	}

	u, err := l.svc.Authenticate(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		l.log.Error("authenticate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, "internal error"))
		return
	}
	if u == nil {
		c.JSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "incorrect email or password"))
		return
	}

	tok, err := l.jwter.Issue(u.Email)
	if err != nil {
		l.log.Error("issue token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, "issue token failed"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(TokenResponse{AccessToken: tok, TokenType: "bearer"}))
}
