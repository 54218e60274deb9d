package controllers

import (
	"io"
	"net/http"

	"github.com/qashsolutions/myhealthguide-sub011/services"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	Billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{Billing: billing}
}

type checkoutReq struct {
	PriceID    string `json:"price_id" binding:"required"`
	SuccessURL string `json:"success_url" binding:"required"`
	CancelURL  string `json:"cancel_url" binding:"required"`
}

// POST /api/groups/:groupID/billing/checkout
func (h *BillingController) CreateCheckout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	url, err := h.Billing.CreateCheckoutSession(groupIDFromCtx(c), req.PriceID, req.SuccessURL, req.CancelURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout_url": url})
}

// GET /api/groups/:groupID/billing/subscription
func (h *BillingController) GetSubscription(c *gin.Context) {
	sub, err := h.Billing.GetSubscription(groupIDFromCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// POST /api/billing/webhook  (unauthenticated; verified by signature)
func (h *BillingController) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}
	if err := h.Billing.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
