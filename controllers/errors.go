// File: controllers/errors.go
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-clan-admin/logger"
	"go-clan-admin/middleware"
	"go-clan-admin/services"
	"go-clan-admin/store"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgInvalidID     = "Missing or invalid id"
	msgInternalError = "Internal server error"
)

// respondStoreError maps a store or service error to a status code.
func respondStoreError(c *gin.Context, metrics services.MetricsPublisher, err error, notFound string) {
	switch {
	case errors.Is(err, store.ErrInvalidPatch):
		logger.Warn.Printf("%s %s - rejected patch: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
	case errors.Is(err, services.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	default:
		logger.Error.Printf("[%s] %s %s - store failure: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		services.Count(metrics, services.MetricStoreErrors)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
	}
}

func badRequest(c *gin.Context, msg string, err error) {
	logger.Warn.Printf("%s %s - %s: %v", c.Request.Method, c.Request.URL.Path, msg, err)
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// bindPatch reads a JSON object body as a patch. The record id comes from
// the body's "id" field, or from ?id= when the body has none.
func bindPatch(c *gin.Context) (int64, store.Patch, bool) {
	var patch store.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, msgInvalidBody, err)
		return 0, nil, false
	}

	var id int64
	var err error
	if raw, ok := patch["id"]; ok {
		id, err = parseRawID(raw)
	} else {
		id, err = parseID(c.Query("id"))
	}
	if err != nil {
		badRequest(c, msgInvalidID, err)
		return 0, nil, false
	}
	return id, patch.Without("id"), true
}

// parseRawID accepts a JSON number or a numeric string.
func parseRawID(raw []byte) (int64, error) {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return parseID(s)
}

func parseID(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("id is empty")
	}
	return strconv.ParseInt(s, 10, 64)
}
