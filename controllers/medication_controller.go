package controllers

import (
	"net/http"

	"github.com/qashsolutions/myhealthguide-sub011/services"

	"github.com/gin-gonic/gin"
)

type MedicationController struct {
	Conflicts *services.ConflictService
}

func NewMedicationController(conflicts *services.ConflictService) *MedicationController {
	return &MedicationController{Conflicts: conflicts}
}

// POST /api/groups/:groupID/elders/:elderID/medications
func (h *MedicationController) Add(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	var req services.MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	med, err := services.AddMedication(groupIDFromCtx(c), elderID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, med)
}

// GET /api/groups/:groupID/elders/:elderID/medications
func (h *MedicationController) List(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	activeOnly := c.DefaultQuery("active", "false") == "true"
	meds, err := services.ListMedications(groupIDFromCtx(c), elderID, activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meds)
}

// PUT /api/groups/:groupID/elders/:elderID/medications/:medID
func (h *MedicationController) Update(c *gin.Context) {
	elderID, ok1 := uintParam(c, "elderID")
	medID, ok2 := uintParam(c, "medID")
	if !ok1 || !ok2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req services.MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	med, err := services.UpdateMedication(groupIDFromCtx(c), elderID, medID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, med)
}

// DELETE /api/groups/:groupID/elders/:elderID/medications/:medID
func (h *MedicationController) Discontinue(c *gin.Context) {
	elderID, ok1 := uintParam(c, "elderID")
	medID, ok2 := uintParam(c, "medID")
	if !ok1 || !ok2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := services.DiscontinueMedication(groupIDFromCtx(c), elderID, medID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "medication discontinued"})
}

// POST /api/groups/:groupID/elders/:elderID/medications/check
//
// Runs the schedule conflict check. Always returns 200 with a tally;
// detection is best-effort by contract.
func (h *MedicationController) Check(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	result := h.Conflicts.RunCheck(groupIDFromCtx(c), elderID)
	c.JSON(http.StatusOK, result)
}

// GET /api/groups/:groupID/elders/:elderID/conflicts
func (h *MedicationController) ListConflicts(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	conflicts, err := h.Conflicts.ListConflicts(groupIDFromCtx(c), elderID, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conflicts)
}

// PATCH /api/groups/:groupID/conflicts/:conflictID/review
func (h *MedicationController) ReviewConflict(c *gin.Context) {
	conflictID, ok := uintParam(c, "conflictID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conflict id"})
		return
	}
	if err := h.Conflicts.MarkReviewed(groupIDFromCtx(c), conflictID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conflict not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conflict marked reviewed"})
}
