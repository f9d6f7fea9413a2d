// Package controllers provides the HTTP handlers of the admin API.
// File: controllers/resource_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-clan-admin/logger"
	"go-clan-admin/services"
	"go-clan-admin/store"
)

// ---------------- Resource Controller ----------------

// ResourceController exposes list, create, update and delete for one
// collection. ListKey and ItemKey name the response envelopes; NotFound is
// the 404 message. Defaults, when set, fills request-independent fields on a
// new record before it is stored.
type ResourceController[T any] struct {
	Store    store.Store[T]
	ListKey  string
	ItemKey  string
	NotFound string
	Metrics  services.MetricsPublisher
	Defaults func(rec *T)
}

// NewResourceController builds a controller over st.
func NewResourceController[T any](st store.Store[T], listKey, itemKey, notFound string, metrics services.MetricsPublisher) *ResourceController[T] {
	if metrics == nil {
		metrics = services.NoopPublisher{}
	}
	return &ResourceController[T]{
		Store:    st,
		ListKey:  listKey,
		ItemKey:  itemKey,
		NotFound: notFound,
		Metrics:  metrics,
	}
}

// Register mounts the four verbs on path.
func (rc *ResourceController[T]) Register(routes gin.IRoutes, path string) {
	routes.GET(path, rc.List)
	routes.POST(path, rc.Create)
	routes.PUT(path, rc.Update)
	routes.DELETE(path, rc.Delete)
}

// List returns every record under ListKey.
func (rc *ResourceController[T]) List(c *gin.Context) {
	records, err := rc.Store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, rc.Metrics, err, rc.NotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{rc.ListKey: records})
}

// Create stores the body as a new record; missing fields get defaults.
func (rc *ResourceController[T]) Create(c *gin.Context) {
	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		badRequest(c, msgInvalidBody, err)
		return
	}
	if rc.Defaults != nil {
		rc.Defaults(&rec)
	}
	created, err := rc.Store.Create(c.Request.Context(), rec)
	if err != nil {
		respondStoreError(c, rc.Metrics, err, rc.NotFound)
		return
	}
	logger.Info.Printf("Created %s via %s", rc.ItemKey, c.Request.URL.Path)
	c.JSON(http.StatusOK, gin.H{rc.ItemKey: created})
}

// Update merges the body onto the record named by its id.
func (rc *ResourceController[T]) Update(c *gin.Context) {
	id, patch, ok := bindPatch(c)
	if !ok {
		return
	}
	found, err := rc.Store.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondStoreError(c, rc.Metrics, err, rc.NotFound)
		return
	}
	if !found {
		logger.Warn.Printf("Update %s %d - not found", rc.ItemKey, id)
		c.JSON(http.StatusNotFound, gin.H{"error": rc.NotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes the record named by ?id=.
func (rc *ResourceController[T]) Delete(c *gin.Context) {
	id, err := parseID(c.Query("id"))
	if err != nil {
		badRequest(c, msgInvalidID, err)
		return
	}
	found, err := rc.Store.Delete(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, rc.Metrics, err, rc.NotFound)
		return
	}
	if !found {
		logger.Warn.Printf("Delete %s %d - not found", rc.ItemKey, id)
		c.JSON(http.StatusNotFound, gin.H{"error": rc.NotFound})
		return
	}
	logger.Info.Printf("Deleted %s %d", rc.ItemKey, id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
