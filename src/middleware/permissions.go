package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CanAccessSettings reports whether a user may manage system settings and
// users: any authenticated superuser, or an authenticated user outside the
// restricted group.
func CanAccessSettings(id *Identity) bool {
	if id == nil || id.UserID == 0 {
		return false
	}
	return id.IsSuperuser || !id.Restricted
}

// RequireSettingsAccess must run after AuthMiddleware.
func RequireSettingsAccess() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := CurrentIdentity(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Autenticação necessária"})
			return
		}
		if !CanAccessSettings(&id) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Você não tem permissão para acessar as configurações."})
			return
		}
		ctx.Next()
	}
}
