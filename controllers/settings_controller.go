// File: controllers/settings_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-clan-admin/logger"
	"go-clan-admin/services"
	"go-clan-admin/store"
)

// SettingsController reads and patches the site settings.
type SettingsController struct {
	Store   store.SettingsStore
	Metrics services.MetricsPublisher
}

func NewSettingsController(st store.SettingsStore, metrics services.MetricsPublisher) *SettingsController {
	if metrics == nil {
		metrics = services.NoopPublisher{}
	}
	return &SettingsController{Store: st, Metrics: metrics}
}

// Get returns {settings}.
func (sc *SettingsController) Get(c *gin.Context) {
	settings, err := sc.Store.Get(c.Request.Context())
	if err != nil {
		respondStoreError(c, sc.Metrics, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// Update merges the body into the settings.
func (sc *SettingsController) Update(c *gin.Context) {
	var patch store.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, msgInvalidBody, err)
		return
	}
	if _, err := sc.Store.Update(c.Request.Context(), patch); err != nil {
		respondStoreError(c, sc.Metrics, err, "")
		return
	}
	logger.Info.Printf("Settings updated (%d fields)", len(patch))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
