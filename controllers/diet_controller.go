package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/services"

	"github.com/gin-gonic/gin"
)

type DietController struct {
	Nutrition *services.NutritionService
	AI        *services.AIService // nil when Gemini is not configured
}

func NewDietController(nutrition *services.NutritionService, ai *services.AIService) *DietController {
	return &DietController{Nutrition: nutrition, AI: ai}
}

// POST /api/groups/:groupID/elders/:elderID/diet
func (h *DietController) Add(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	var req services.DietEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := services.AddDietEntry(groupIDFromCtx(c), elderID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /api/groups/:groupID/elders/:elderID/diet?from=2026-08-01&to=2026-08-30
func (h *DietController) List(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	var from, to time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	entries, err := services.ListDietEntries(groupIDFromCtx(c), elderID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// PUT /api/groups/:groupID/elders/:elderID/diet/:entryID
func (h *DietController) Update(c *gin.Context) {
	elderID, ok1 := uintParam(c, "elderID")
	entryID, ok2 := uintParam(c, "entryID")
	if !ok1 || !ok2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req services.DietEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := services.UpdateDietEntry(groupIDFromCtx(c), elderID, entryID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /api/groups/:groupID/elders/:elderID/diet/:entryID
func (h *DietController) Delete(c *gin.Context) {
	elderID, ok1 := uintParam(c, "elderID")
	entryID, ok2 := uintParam(c, "entryID")
	if !ok1 || !ok2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := services.DeleteDietEntry(groupIDFromCtx(c), elderID, entryID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry removed"})
}

// POST /api/groups/:groupID/elders/:elderID/nutrition/analyze?windowDays=7
//
// Runs an analysis now. A null body means "not enough diet history",
// never an internal failure.
func (h *DietController) Analyze(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	windowDays, _ := strconv.Atoi(c.DefaultQuery("windowDays", "7"))

	elder, err := services.GetElder(groupIDFromCtx(c), elderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "elder not found"})
		return
	}
	report := h.Nutrition.Analyze(c.Request.Context(), groupIDFromCtx(c), elderID, elder.Name, windowDays)
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GET /api/groups/:groupID/elders/:elderID/nutrition/analysis
func (h *DietController) LatestAnalysis(c *gin.Context) {
	elderID, ok := uintParam(c, "elderID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid elder id"})
		return
	}
	report, err := h.Nutrition.LatestReport(c.Request.Context(), groupIDFromCtx(c), elderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// POST /api/groups/:groupID/elders/:elderID/diet/:entryID/analyze
//
// Asks Gemini for caregiver-facing commentary on one logged meal.
func (h *DietController) AnalyzeEntry(c *gin.Context) {
	if h.AI == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI features are not configured"})
		return
	}
	elderID, ok1 := uintParam(c, "elderID")
	entryID, ok2 := uintParam(c, "entryID")
	if !ok1 || !ok2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	entry, err := services.GetDietEntry(groupIDFromCtx(c), elderID, entryID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	elder, err := services.GetElder(groupIDFromCtx(c), elderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "elder not found"})
		return
	}
	commentary, err := h.AI.AnalyzeDietEntry(c.Request.Context(), elder.Name, *entry)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commentary": commentary})
}
