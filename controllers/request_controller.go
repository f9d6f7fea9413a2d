// File: controllers/request_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-clan-admin/models"
	"go-clan-admin/services"
)

const requestNotFound = "Join request not found"

// RequestController serves join requests. Submitting is public; everything
// else goes through the admin gate. Accepting a request adds a member.
type RequestController struct {
	*ResourceController[models.JoinRequest]
	Recruitment *services.RecruitmentService
}

// NewRequestController wires list and delete to the store and create and
// update to the recruitment service.
func NewRequestController(base *ResourceController[models.JoinRequest], recruitment *services.RecruitmentService) *RequestController {
	return &RequestController{ResourceController: base, Recruitment: recruitment}
}

// Submit stores a join request from the public form as pending.
func (rc *RequestController) Submit(c *gin.Context) {
	var req models.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidBody, err)
		return
	}
	created, err := rc.Recruitment.Submit(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, rc.Metrics, err, requestNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{rc.ItemKey: created})
}

// Update changes a request; accepting it also creates the member.
func (rc *RequestController) Update(c *gin.Context) {
	id, patch, ok := bindPatch(c)
	if !ok {
		return
	}
	member, err := rc.Recruitment.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondStoreError(c, rc.Metrics, err, requestNotFound)
		return
	}
	resp := gin.H{"success": true}
	if member != nil {
		resp["member"] = member
	}
	c.JSON(http.StatusOK, resp)
}
