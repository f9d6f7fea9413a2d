// file: middleware/admin_required.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-clan-admin/logger"
	"go-clan-admin/models"
	"go-clan-admin/services"
)

// identityKey holds the resolved admin in the gin context.
const identityKey = "adminIdentity"

// AdminRequired lets the request through only when the gate resolves an
// admin identity; otherwise it answers 401 and stops the chain.
func AdminRequired(gate *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := gate.Identify(c)
		if identity == nil || !identity.IsAdmin {
			logger.Warn.Printf("AdminRequired Middleware - Unauthorized attempt blocked [%s]: %s %s", GetRequestID(c), c.Request.Method, c.Request.URL.Path)
			services.Count(gate.metrics, services.MetricUnauthorized)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		logger.Debug.Println("AdminRequired Middleware - Passed, continuing request")
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by AdminRequired, if any.
func CurrentIdentity(c *gin.Context) *models.AdminIdentity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(*models.AdminIdentity); ok {
			return identity
		}
	}
	return nil
}
