// Package middleware provides request filters and security checks for the application.
// File: middleware/identity.go
package middleware

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-clan-admin/logger"
	"go-clan-admin/models"
	"go-clan-admin/services"
)

// -------------- identity resolution --------------

// IdentityResolver reads one identity channel of a request. present is false
// when the channel is absent, letting the next resolver decide.
type IdentityResolver interface {
	Resolve(c *gin.Context) (identity *models.AdminIdentity, present bool)
}

// Gate turns a request into at most one identity. The first resolver whose
// channel is present decides; a negative decision does not fall through.
type Gate struct {
	resolvers []IdentityResolver
	metrics   services.MetricsPublisher
}

// NewGate builds a gate over resolvers, tried in order.
func NewGate(metrics services.MetricsPublisher, resolvers ...IdentityResolver) *Gate {
	if metrics == nil {
		metrics = services.NoopPublisher{}
	}
	return &Gate{resolvers: resolvers, metrics: metrics}
}

// Identify returns the caller's identity, or nil.
func (g *Gate) Identify(c *gin.Context) *models.AdminIdentity {
	for _, r := range g.resolvers {
		if identity, present := r.Resolve(c); present {
			return identity
		}
	}
	return nil
}

// SessionResolver trusts the admin session cookie. Its channel is always
// present, so it belongs last in the chain.
type SessionResolver struct {
	Authority *services.SessionAuthority
}

func (r SessionResolver) Resolve(c *gin.Context) (*models.AdminIdentity, bool) {
	if !r.Authority.IsValidSession(sessions.Default(c)) {
		return nil, true
	}
	return r.Authority.Admin(), true
}

// TrustedHeaderResolver reads an identity asserted by a fronting proxy in
// <Prefix>Id, <Prefix>Name and <Prefix>Roles. Only enable it behind a proxy
// that strips these headers from client requests.
type TrustedHeaderResolver struct {
	Prefix     string
	AdminNames []string
}

func (r TrustedHeaderResolver) Resolve(c *gin.Context) (*models.AdminIdentity, bool) {
	id := strings.TrimSpace(c.GetHeader(r.Prefix + "Id"))
	if id == "" {
		return nil, false
	}
	name := strings.TrimSpace(c.GetHeader(r.Prefix + "Name"))

	var roles []string
	for _, role := range strings.Split(c.GetHeader(r.Prefix+"Roles"), ",") {
		if role = strings.TrimSpace(role); role != "" {
			roles = append(roles, role)
		}
	}
	identity := &models.AdminIdentity{ID: id, Username: name, Roles: roles}
	identity.IsAdmin = identity.HasRole(models.RoleAdmin) || r.allowListed(name)

	logger.Debug.Printf("TrustedHeaderResolver - id=%s name=%q admin=%v", id, name, identity.IsAdmin)
	return identity, true
}

func (r TrustedHeaderResolver) allowListed(name string) bool {
	if name == "" {
		return false
	}
	for _, n := range r.AdminNames {
		if n == name {
			return true
		}
	}
	return false
}
