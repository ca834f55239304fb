package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/incluiaqui/incluiaqui-api/internal/auth"
	"github.com/incluiaqui/incluiaqui-api/internal/config"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

const ContextPrincipal = "principal"

// AuthMiddleware resolves the bearer token to a Principal. The account is
// re-read on every request so bans and status changes take effect
// immediately, matching token-holder state with store state.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, "Token de autorização não fornecido.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, "Cabeçalho de autorização inválido.")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abort(c, "Token inválido ou expirado.")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, "Token inválido ou expirado.")
			return
		}

		userID, _ := claims["sub"].(string)
		if userID == "" {
			abort(c, "Token inválido ou expirado.")
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).First(&user, "id = ?", userID).Error; err != nil {
			abort(c, "Token inválido ou expirado.")
			return
		}

		if !user.IsActive() {
			abort(c, "Usuário inativo.")
			return
		}

		c.Set(ContextPrincipal, auth.FromUser(&user))
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. It must run after
// AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := Principal(c)
		for _, role := range roles {
			if p.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, httperr.HTTPError{
			Error:   string(httperr.KindForbidden),
			Message: "Acesso negado para o seu perfil de usuário.",
		})
	}
}

// Principal returns the authenticated caller set by AuthMiddleware.
func Principal(c *gin.Context) auth.Principal {
	p, _ := c.MustGet(ContextPrincipal).(auth.Principal)
	return p
}

func abort(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{
		Error:   string(httperr.KindUnauthorized),
		Message: message,
	})
}
