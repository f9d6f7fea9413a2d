// Package controllers controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-clan-admin/logger"
	"go-clan-admin/middleware"
	"go-clan-admin/services"
)

// AuthController handles login, logout and "who am I".
type AuthController struct {
	Authority *services.SessionAuthority
	Gate      *middleware.Gate
	Metrics   services.MetricsPublisher
}

func NewAuthController(authority *services.SessionAuthority, gate *middleware.Gate, metrics services.MetricsPublisher) *AuthController {
	if metrics == nil {
		metrics = services.NoopPublisher{}
	}
	return &AuthController{Authority: authority, Gate: gate, Metrics: metrics}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Status returns the current identity or 401.
func (ac *AuthController) Status(c *gin.Context) {
	identity := ac.Gate.Identify(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": identity})
}

// Login checks the credentials and starts a session.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidBody, err)
		return
	}

	user, err := ac.Authority.Authenticate(req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		logger.Warn.Printf("Login: invalid credentials for %q from %s", req.Email, c.ClientIP())
		services.Count(ac.Metrics, services.MetricLoginFailed)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		logger.Error.Printf("Login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	if err := ac.Authority.IssueSession(sessions.Default(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	services.Count(ac.Metrics, services.MetricLoginSucceeded)
	logger.Info.Printf("Login: %s signed in", user.Email)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout clears the session. It succeeds even without one.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Authority.InvalidateSession(sessions.Default(c)); err != nil {
		logger.Error.Printf("Logout: Error saving session during logout: %v", err)
	} else {
		logger.Info.Println("Logout: Session cleared successfully")
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
