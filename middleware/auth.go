package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"slotify/utils"
)

// JWTAuthOwnerMiddleware authenticates calendar owners for the management
// surface. The token subject is stored in the context as "ownerID". Buyer
// routes are deliberately not behind this: public calendars must stay
// reachable without any credential.
func JWTAuthOwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		ownerID, err := utils.ExtractOwnerIDFromToken(tokenString)
		if err != nil || ownerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("ownerID", ownerID)
		c.Next()
	}
}
