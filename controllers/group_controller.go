package controllers

import (
	"net/http"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/services"

	"github.com/gin-gonic/gin"
)

type createGroupReq struct {
	Name string `json:"name" binding:"required"`
	Plan string `json:"plan"`
}

// POST /api/groups
func CreateGroup(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req createGroupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	group, err := services.CreateGroup(userID, req.Name, req.Plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, group)
}

// GET /api/groups
func ListGroups(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	groups, err := services.ListGroupsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GET /api/groups/:groupID/members
func ListMembers(c *gin.Context) {
	members, err := services.ListMembers(groupIDFromCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

type inviteReq struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// POST /api/groups/:groupID/invites
func InviteCaregiver(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	var req inviteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	invite, err := services.InviteCaregiver(groupIDFromCtx(c), userID, req.Email, req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"email":      invite.Email,
		"code":       invite.Code,
		"expires_at": invite.ExpiresAt.Format(time.RFC3339),
	})
}

type acceptInviteReq struct {
	Code string `json:"code" binding:"required"`
}

// POST /api/invites/accept
func AcceptInvite(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req acceptInviteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := services.AcceptInvite(userID, req.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}
