package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claim names carried by access tokens.
const (
	ClaimUserID     = "id"
	ClaimUsername   = "username"
	ClaimSuperuser  = "superuser"
	ClaimRestricted = "restricted"

	identityKey = "identity"
)

// Identity is the authenticated user behind a request.
type Identity struct {
	UserID      int
	Username    string
	IsSuperuser bool
	Restricted  bool
}

// NewClaims builds the token claims for a user.
func NewClaims(id Identity, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		ClaimUserID:     id.UserID,
		ClaimUsername:   id.Username,
		ClaimSuperuser:  id.IsSuperuser,
		ClaimRestricted: id.Restricted,
		"exp":           time.Now().Add(ttl).Unix(),
	}
}

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Gets the authorization header
		authHeader := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Cabeçalho Authorization é obrigatório"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Formato de autorização inválido"})
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			return
		}

		identity := identityFromClaims(claims)
		if identity.UserID == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			return
		}

		ctx.Set(identityKey, identity)
		ctx.Set("userId", identity.UserID)
		ctx.Next()
	}
}

func identityFromClaims(claims jwt.MapClaims) Identity {
	var id Identity
	// Numbers decode as float64.
	if v, ok := claims[ClaimUserID].(float64); ok {
		id.UserID = int(v)
	}
	id.Username, _ = claims[ClaimUsername].(string)
	id.IsSuperuser, _ = claims[ClaimSuperuser].(bool)
	id.Restricted, _ = claims[ClaimRestricted].(bool)
	return id
}

// CurrentIdentity returns the identity stored by AuthMiddleware.
func CurrentIdentity(ctx *gin.Context) (Identity, bool) {
	v, ok := ctx.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
