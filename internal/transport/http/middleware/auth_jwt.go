package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-user-service/internal/core/auth"
	"go-user-service/internal/domain"
	resp "go-user-service/internal/transport/http/response"
)

// KeyCurrentUser is the context key the gate stores the resolved identity
// under.
const KeyCurrentUser = "currentUser"

// authFailedMsg is deliberately uniform: missing header, malformed token,
// bad signature, expired token and unresolvable subject all read the same
// from outside.
const authFailedMsg = "incorrect email or password"

// AuthJWT is the gate on protected routes. It verifies the bearer token and
// resolves its subject against the credential store; a valid token whose
// user is gone fails exactly like a bad token.
func AuthJWT(j *auth.JWTer, store domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			abortUnauthorized(c)
			return
		}
		u, err := store.FindByEmail(c.Request.Context(), claims.Subject)
		if err != nil || u == nil {
			abortUnauthorized(c)
			return
		}
		c.Set(KeyCurrentUser, u)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, authFailedMsg))
}

// CurrentUser returns the identity the gate resolved for this request.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(KeyCurrentUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}
