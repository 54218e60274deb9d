package controllers

import (
	"net/http"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/services"

	"github.com/gin-gonic/gin"
)

type elderReq struct {
	Name      string     `json:"name" binding:"required"`
	Sex       string     `json:"sex"`
	Notes     string     `json:"notes"`
	BirthDate *time.Time `json:"birth_date"`
}

// POST /api/groups/:groupID/elders
func CreateElder(c *gin.Context) {
	var req elderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	elder, err := services.CreateElder(groupIDFromCtx(c), req.Name, req.Sex, req.Notes, req.BirthDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, elder)
}

// GET /api/groups/:groupID/elders
func ListElders(c *gin.Context) {
	elders, err := services.ListElders(groupIDFromCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, elders)
}

// GET /api/groups/:groupID/elders/:elderID
func GetElder(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	elder, err := services.GetElder(groupIDFromCtx(c), elderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "elder not found"})
		return
	}
	c.JSON(http.StatusOK, elder)
}

// PUT /api/groups/:groupID/elders/:elderID
func UpdateElder(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	var req elderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	elder, err := services.UpdateElder(groupIDFromCtx(c), elderID, req.Name, req.Sex, req.Notes, req.BirthDate)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "elder not found"})
		return
	}
	c.JSON(http.StatusOK, elder)
}

// DELETE /api/groups/:groupID/elders/:elderID
func DeleteElder(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	if err := services.DeleteElder(groupIDFromCtx(c), elderID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "elder removed"})
}
