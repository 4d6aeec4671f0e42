package handlers

import (
	"net/http"
	"strconv"

	"table-checkout-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutHandler handles HTTP requests for checkouts
type CheckoutHandler struct {
	service service.CheckoutServiceInterface
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(service service.CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// CreateCheckout handles POST /api/v1/checkouts
// @Summary Check out a table
// @Description Create a checkout for an organization, resolved by id or by free-text name
// @Tags checkouts
// @Accept json
// @Produce json
// @Param checkout body service.CreateCheckoutRequest true "Checkout data"
// @Success 201 {object} service.CheckoutResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Table or organization not found"
// @Failure 409 {object} map[string]interface{} "Table busy, organization banned, or duplicate active checkout"
// @Router /checkouts [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req service.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	checkout, err := h.service.Create(&req)
	if err != nil {
		respondWithError(c, err, "Failed to create checkout")
		return
	}
	c.JSON(http.StatusCreated, checkout)
}

// ReturnCheckout handles POST /api/v1/checkouts/:id/return
// @Summary Return a checkout
// @Description Mark an active checkout as returned and free its table
// @Tags checkouts
// @Accept json
// @Produce json
// @Param id path string true "Checkout ID (UUID)"
// @Param request body service.ReturnCheckoutRequest true "Return details"
// @Success 200 {object} service.CheckoutResponse
// @Failure 404 {object} map[string]interface{} "Checkout not found"
// @Failure 409 {object} map[string]interface{} "Checkout already returned"
// @Router /checkouts/{id}/return [post]
func (h *CheckoutHandler) ReturnCheckout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkout ID: invalid UUID format"})
		return
	}

	var req service.ReturnCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	checkout, err := h.service.Return(id, &req)
	if err != nil {
		respondWithError(c, err, "Failed to return checkout")
		return
	}
	c.JSON(http.StatusOK, checkout)
}

// GetCheckout handles GET /api/v1/checkouts/:id
// @Summary Get checkout by ID
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID (UUID)"
// @Success 200 {object} service.CheckoutResponse
// @Failure 404 {object} map[string]interface{} "Checkout not found"
// @Router /checkouts/{id} [get]
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkout ID: invalid UUID format"})
		return
	}

	checkout, err := h.service.GetByID(id)
	if err != nil {
		respondWithError(c, err, "Failed to get checkout")
		return
	}
	c.JSON(http.StatusOK, checkout)
}

// ListCheckouts handles GET /api/v1/checkouts
// @Summary List checkouts
// @Description Get checkouts with optional status and overdue filters
// @Tags checkouts
// @Produce json
// @Param status query string false "Filter by status (active|returned)"
// @Param overdue query bool false "Only active checkouts past their expected return time"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} service.CheckoutListResponse
// @Router /checkouts [get]
func (h *CheckoutHandler) ListCheckouts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	overdue := c.Query("overdue") == "true"

	checkouts, err := h.service.GetAll(c.Query("status"), overdue, page, pageSize)
	if err != nil {
		respondWithError(c, err, "Failed to list checkouts")
		return
	}
	c.JSON(http.StatusOK, checkouts)
}

// GetActiveCheckouts handles GET /api/v1/checkouts/active
// @Summary List active checkouts
// @Tags checkouts
// @Produce json
// @Success 200 {array} service.CheckoutResponse
// @Router /checkouts/active [get]
func (h *CheckoutHandler) GetActiveCheckouts(c *gin.Context) {
	checkouts, err := h.service.GetActive()
	if err != nil {
		respondWithError(c, err, "Failed to get active checkouts")
		return
	}
	c.JSON(http.StatusOK, checkouts)
}

// GetOverdueCheckouts handles GET /api/v1/checkouts/overdue
// @Summary List overdue checkouts
// @Description Active checkouts past their expected return time, most overdue first
// @Tags checkouts
// @Produce json
// @Success 200 {array} service.CheckoutResponse
// @Router /checkouts/overdue [get]
func (h *CheckoutHandler) GetOverdueCheckouts(c *gin.Context) {
	checkouts, err := h.service.GetOverdue()
	if err != nil {
		respondWithError(c, err, "Failed to get overdue checkouts")
		return
	}
	c.JSON(http.StatusOK, checkouts)
}

// GetCheckoutStats handles GET /api/v1/checkouts/stats
// @Summary Checkout statistics
// @Tags checkouts
// @Produce json
// @Success 200 {object} service.CheckoutStatsResponse
// @Router /checkouts/stats [get]
func (h *CheckoutHandler) GetCheckoutStats(c *gin.Context) {
	stats, err := h.service.Stats()
	if err != nil {
		respondWithError(c, err, "Failed to get checkout statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
