// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/payment"
)

// CheckoutHandler handles checkout flow endpoints. Each endpoint maps
// to one state-machine transition; a blocked transition comes back as
// 422 with the reason, leaving the session unchanged.
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		config:          cfg,
	}
}

// DeliveryInfoRequest is the delivery form payload
type DeliveryInfoRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	WhatsApp     string `json:"whatsapp"`
	Complement   string `json:"complement"`
}

// SelectPaymentRequest is the payment selection payload
type SelectPaymentRequest struct {
	Method     payment.Method `json:"method" binding:"required"`
	CashAmount string         `json:"cash_amount"`
}

// GetStatus handles GET /checkout
func (h *CheckoutHandler) GetStatus(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	status, err := h.checkoutService.Status(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve checkout status",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": status})
}

// Finalize handles POST /checkout/finalize
func (h *CheckoutHandler) Finalize(c *gin.Context) {
	h.transition(c, h.checkoutService.Finalize)
}

// SetDeliveryInfo handles PUT /checkout/delivery
func (h *CheckoutHandler) SetDeliveryInfo(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	var req DeliveryInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	info := order.DeliveryInfo{
		Street:       req.Street,
		Number:       req.Number,
		Neighborhood: req.Neighborhood,
		WhatsApp:     req.WhatsApp,
		Complement:   req.Complement,
	}

	status, err := h.checkoutService.SetDeliveryInfo(c.Request.Context(), sessionID, info)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": status})
}

// ConfirmDelivery handles POST /checkout/delivery/confirm
func (h *CheckoutHandler) ConfirmDelivery(c *gin.Context) {
	h.transition(c, h.checkoutService.ConfirmDelivery)
}

// CancelDelivery handles POST /checkout/delivery/cancel
func (h *CheckoutHandler) CancelDelivery(c *gin.Context) {
	h.transition(c, h.checkoutService.CancelDelivery)
}

// Back handles POST /checkout/back
func (h *CheckoutHandler) Back(c *gin.Context) {
	h.transition(c, h.checkoutService.Back)
}

// SelectPayment handles PUT /checkout/payment
func (h *CheckoutHandler) SelectPayment(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	var req SelectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	status, err := h.checkoutService.SelectPayment(c.Request.Context(), sessionID, req.Method, req.CashAmount)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": status})
}

// Confirm handles POST /checkout/confirm
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	h.transition(c, h.checkoutService.Confirm)
}

// CloseSummary handles POST /checkout/close
func (h *CheckoutHandler) CloseSummary(c *gin.Context) {
	h.transition(c, h.checkoutService.CloseSummary)
}

// AcknowledgePix handles POST /checkout/pix/acknowledge
func (h *CheckoutHandler) AcknowledgePix(c *gin.Context) {
	h.transition(c, h.checkoutService.AcknowledgePix)
}

// CancelPix handles POST /checkout/pix/cancel
func (h *CheckoutHandler) CancelPix(c *gin.Context) {
	h.transition(c, h.checkoutService.CancelPix)
}

// transition runs a body-less state transition endpoint
func (h *CheckoutHandler) transition(c *gin.Context, fn func(ctx context.Context, sessionID string) (*checkout.Status, error)) {
	sessionID := getOrCreateSessionID(c, h.config)

	status, err := fn(c.Request.Context(), sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": status})
}

// renderError maps blocked-transition errors to client statuses
func (h *CheckoutHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrInvalidDeliveryInfo),
		errors.Is(err, checkout.ErrNoPaymentMethod),
		errors.Is(err, checkout.ErrInsufficientCash):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, checkout.ErrPixAlreadySent):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout operation failed"})
	}
}
