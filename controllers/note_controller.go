package controllers

import (
	"net/http"

	"github.com/qashsolutions/myhealthguide-sub011/services"

	"github.com/gin-gonic/gin"
)

type noteReq struct {
	Category string `json:"category"`
	Body     string `json:"body" binding:"required"`
}

// POST /api/groups/:groupID/elders/:elderID/notes
func AddCareNote(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	var req noteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	note, err := services.AddCareNote(groupIDFromCtx(c), elderID, userID, req.Category, req.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, note)
}

// GET /api/groups/:groupID/elders/:elderID/notes
func ListCareNotes(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	notes, err := services.ListCareNotes(groupIDFromCtx(c), elderID, c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notes)
}

// DELETE /api/groups/:groupID/elders/:elderID/notes/:noteID
func DeleteCareNote(c *gin.Context) {
	elderID, ok1 := uintParam(c, "elderID")
	noteID, ok2 := uintParam(c, "noteID")
	if !ok1 || !ok2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := services.DeleteCareNote(groupIDFromCtx(c), elderID, noteID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "note removed"})
}
