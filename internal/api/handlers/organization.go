package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "table-checkout-backend/internal/errors"
	"table-checkout-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Description Create a new organization with the provided details
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Organization already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Create(&req)
	if err != nil {
		respondWithError(c, err, "Failed to create organization")
		return
	}
	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Description Get a specific organization with its checkout history
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationDetailResponse "Successfully retrieved organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	org, err := h.service.GetWithCheckouts(id)
	if err != nil {
		respondWithError(c, err, "Failed to get organization")
		return
	}
	c.JSON(http.StatusOK, org)
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List organizations
// @Description Get organizations with optional status filter, search term and pagination
// @Tags organizations
// @Produce json
// @Param status query string false "Filter by status (active|banned)"
// @Param search query string false "Search by official name or alias"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} service.OrganizationListResponse
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	orgs, err := h.service.GetAll(c.Query("status"), c.Query("search"), page, pageSize)
	if err != nil {
		respondWithError(c, err, "Failed to list organizations")
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// UpdateOrganization handles PUT /api/v1/organizations/:id
// @Summary Update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} service.OrganizationResponse
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Update(id, &req)
	if err != nil {
		respondWithError(c, err, "Failed to update organization")
		return
	}
	c.JSON(http.StatusOK, org)
}

// SearchMatches handles POST /api/v1/organizations/search-matches
// @Summary Search similar organizations
// @Description Return ranked fuzzy matches for a free-text organization name
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body handlers.NameRequest true "Name to match"
// @Success 200 {object} map[string]interface{} "Ranked matches"
// @Failure 400 {object} map[string]interface{} "Name is required"
// @Router /organizations/search-matches [post]
func (h *OrganizationHandler) SearchMatches(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization name is required"})
		return
	}

	matches, err := h.service.SearchMatches(req.Name)
	if err != nil {
		respondWithError(c, err, "Failed to search for matches")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// ValidateCheckout handles POST /api/v1/organizations/validate-checkout
// @Summary Validate a checkout attempt by organization name
// @Description Pre-flight verdict: allowed, needs confirmation, or blocked
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body handlers.NameRequest true "Name to validate"
// @Success 200 {object} service.ValidateCheckoutResponse
// @Failure 400 {object} map[string]interface{} "Name is required"
// @Router /organizations/validate-checkout [post]
func (h *OrganizationHandler) ValidateCheckout(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization name is required"})
		return
	}

	validation, err := h.service.ValidateCheckout(req.Name)
	if err != nil {
		respondWithError(c, err, "Failed to validate checkout")
		return
	}
	c.JSON(http.StatusOK, validation)
}

// BanOrganization handles POST /api/v1/organizations/:id/ban
// @Summary Ban an organization
// @Description Ban an organization, optionally cascading the return of its active checkouts
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param request body service.BanOrganizationRequest true "Ban details"
// @Success 200 {object} service.BanOrganizationResponse
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Already banned or blocked by active checkouts"
// @Router /organizations/{id}/ban [post]
func (h *OrganizationHandler) BanOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	var req service.BanOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Ban(id, &req)
	if err != nil {
		respondWithError(c, err, "Failed to ban organization")
		return
	}
	c.JSON(http.StatusOK, result)
}

// UnbanOrganization handles POST /api/v1/organizations/:id/unban
// @Summary Unban an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param request body service.UnbanOrganizationRequest true "Unban notes"
// @Success 200 {object} service.OrganizationResponse
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Organization is not banned"
// @Router /organizations/{id}/unban [post]
func (h *OrganizationHandler) UnbanOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	var req service.UnbanOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Unban(id, &req)
	if err != nil {
		respondWithError(c, err, "Failed to unban organization")
		return
	}
	c.JSON(http.StatusOK, org)
}

// NameRequest carries a free-text organization name
type NameRequest struct {
	Name string `json:"name"`
}

// respondWithError maps the error taxonomy onto HTTP status codes:
// validation 400, not found 404, conflict 409.
func respondWithError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidPaginationParams) ||
		strings.Contains(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
