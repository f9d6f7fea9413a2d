// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-clan-admin/logger"
	"go-clan-admin/services"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

// Health answers load balancer probes.
func Health(c *gin.Context) {
	logger.Debug.Println("Health: Health check requested")
	c.String(http.StatusOK, "OK")
}

// PageController serves the join page QR code.
type PageController struct {
	PublicBaseURL string
	Encode        services.QREncoder
}

// JoinQRCode renders a PNG QR code pointing at the public join page.
// ?size= sets the edge length in pixels.
func (pc *PageController) JoinQRCode(c *gin.Context) {
	size := defaultQRSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxQRSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be between 1 and 1024"})
			return
		}
		size = n
	}

	target := services.JoinPageURL(pc.PublicBaseURL)
	logger.Info.Printf("JoinQRCode: Generating %dpx QR code for %s", size, target)

	png, err := services.GenerateQRCode(target, size, pc.Encode)
	if err != nil {
		logger.Error.Printf("JoinQRCode: Error generating QR code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "QR generation failed"})
		return
	}

	c.Header("Content-Disposition", "inline; filename=\"join-qrcode.png\"")
	c.Data(http.StatusOK, "image/png", png)
}
