package handlers

import (
	"net/http"
	"strconv"

	"table-checkout-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TableHandler handles HTTP requests for tables
type TableHandler struct {
	service service.TableServiceInterface
}

// NewTableHandler creates a new table handler
func NewTableHandler(service service.TableServiceInterface) *TableHandler {
	return &TableHandler{service: service}
}

// CreateTable handles POST /api/v1/tables
// @Summary Create a table
// @Tags tables
// @Accept json
// @Produce json
// @Param table body service.CreateTableRequest true "Table data"
// @Success 201 {object} service.TableResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Table number already exists"
// @Router /tables [post]
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req service.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	table, err := h.service.Create(&req)
	if err != nil {
		respondWithError(c, err, "Failed to create table")
		return
	}
	c.JSON(http.StatusCreated, table)
}

// GetTable handles GET /api/v1/tables/:id
// @Summary Get table by ID
// @Tags tables
// @Produce json
// @Param id path string true "Table ID (UUID)"
// @Success 200 {object} service.TableResponse
// @Failure 404 {object} map[string]interface{} "Table not found"
// @Router /tables/{id} [get]
func (h *TableHandler) GetTable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table ID: invalid UUID format"})
		return
	}

	table, err := h.service.GetByID(id)
	if err != nil {
		respondWithError(c, err, "Failed to get table")
		return
	}
	c.JSON(http.StatusOK, table)
}

// ListTables handles GET /api/v1/tables
// @Summary List tables
// @Tags tables
// @Produce json
// @Param status query string false "Filter by status (available|checked_out|maintenance)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} service.TableListResponse
// @Router /tables [get]
func (h *TableHandler) ListTables(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	tables, err := h.service.GetAll(c.Query("status"), page, pageSize)
	if err != nil {
		respondWithError(c, err, "Failed to list tables")
		return
	}
	c.JSON(http.StatusOK, tables)
}

// UpdateTable handles PUT /api/v1/tables/:id
// @Summary Update a table
// @Tags tables
// @Accept json
// @Produce json
// @Param id path string true "Table ID (UUID)"
// @Param table body service.UpdateTableRequest true "Fields to update"
// @Success 200 {object} service.TableResponse
// @Failure 404 {object} map[string]interface{} "Table not found"
// @Router /tables/{id} [put]
func (h *TableHandler) UpdateTable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table ID: invalid UUID format"})
		return
	}

	var req service.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	table, err := h.service.Update(id, &req)
	if err != nil {
		respondWithError(c, err, "Failed to update table")
		return
	}
	c.JSON(http.StatusOK, table)
}

// DeleteTable handles DELETE /api/v1/tables/:id
// @Summary Delete a table
// @Description Refused while an active checkout references the table
// @Tags tables
// @Produce json
// @Param id path string true "Table ID (UUID)"
// @Success 204 "Table deleted"
// @Failure 404 {object} map[string]interface{} "Table not found"
// @Failure 409 {object} map[string]interface{} "Table has an active checkout"
// @Router /tables/{id} [delete]
func (h *TableHandler) DeleteTable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondWithError(c, err, "Failed to delete table")
		return
	}
	c.Status(http.StatusNoContent)
}

// SetTableStatus handles PUT /api/v1/tables/:id/status
// @Summary Set table status
// @Description Manually flip a table to available or maintenance
// @Tags tables
// @Accept json
// @Produce json
// @Param id path string true "Table ID (UUID)"
// @Param request body service.SetTableStatusRequest true "Target status"
// @Success 200 {object} service.TableResponse
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 409 {object} map[string]interface{} "Table has an active checkout"
// @Router /tables/{id}/status [put]
func (h *TableHandler) SetTableStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table ID: invalid UUID format"})
		return
	}

	var req service.SetTableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	table, err := h.service.SetStatus(id, &req)
	if err != nil {
		respondWithError(c, err, "Failed to update table status")
		return
	}
	c.JSON(http.StatusOK, table)
}
