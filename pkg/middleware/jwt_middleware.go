package middleware

import (
	"net/http"
	"strings"

	mem "ezyvoyage/pkg/memcache"
	"ezyvoyage/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	UserIDKey = "user_id"
	ClaimsKey = "claims"
)

// JWTAuthMiddleware accepts "Authorization: Bearer <token>" and rejects
// tokens that were revoked by a logout.
func JWTAuthMiddleware(tokens *utils.TokenManager, store mem.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "No token, authorization denied")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}

		userID, err := claims.UserUUID()
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}

		if claims.ID != "" {
			revoked, err := mem.IsRevoked(c.Request.Context(), store, claims.ID)
			if err != nil {
				utils.Logger(c).Warn("revocation check failed", zap.Error(err))
			}
			if revoked {
				utils.RespondError(c, http.StatusUnauthorized, "Token is not valid")
				c.Abort()
				return
			}
		}

		c.Set(UserIDKey, userID)
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// CurrentUserID returns the id set by JWTAuthMiddleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func CurrentClaims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
