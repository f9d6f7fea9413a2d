// File: controllers/players_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-clan-admin/models"
	"go-clan-admin/services"
	"go-clan-admin/store"
)

// PlayersController serves the public, read-only roster.
type PlayersController struct {
	Members store.Store[models.Member]
	Metrics services.MetricsPublisher
}

// List returns {players}.
func (pc *PlayersController) List(c *gin.Context) {
	members, err := pc.Members.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, pc.Metrics, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": members})
}
