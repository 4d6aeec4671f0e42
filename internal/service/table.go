package service

import (
	"errors"
	"fmt"
	"time"

	"table-checkout-backend/internal/database/models"
	apperrors "table-checkout-backend/internal/errors"
	"table-checkout-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TableService handles business logic for table management. Checkout
// state transitions never go through here; only the ledger flips a table
// to checked_out.
type TableService struct {
	repo         repository.TableRepositoryInterface
	checkoutRepo repository.CheckoutRepositoryInterface
	validator    *validator.Validate
}

// NewTableService creates a new table service
func NewTableService(repo repository.TableRepositoryInterface, checkoutRepo repository.CheckoutRepositoryInterface, validator *validator.Validate) *TableService {
	return &TableService{
		repo:         repo,
		checkoutRepo: checkoutRepo,
		validator:    validator,
	}
}

// CreateTableRequest represents the request to create a table
type CreateTableRequest struct {
	TableNumber string `json:"table_number" validate:"required,min=1,max=50"`
	Location    string `json:"location,omitempty" validate:"max=255"`
	Capacity    int    `json:"capacity,omitempty" validate:"min=0"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateTableRequest represents the request to update a table
type UpdateTableRequest struct {
	TableNumber string  `json:"table_number,omitempty" validate:"omitempty,min=1,max=50"`
	Location    string  `json:"location,omitempty" validate:"max=255"`
	Capacity    *int    `json:"capacity,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// SetTableStatusRequest represents a manual status transition
type SetTableStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// TableResponse represents the response for table operations
type TableResponse struct {
	ID          uuid.UUID `json:"id"`
	TableNumber string    `json:"table_number"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Notes       string    `json:"notes"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// TableListResponse represents a paginated list of tables
type TableListResponse struct {
	Tables   []TableResponse `json:"tables"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new table
func (s *TableService) Create(req *CreateTableRequest) (*TableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByTableNumber(req.TableNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing table: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTableExists
	}

	table := &models.Table{
		TableNumber: req.TableNumber,
		Status:      models.TableStatusAvailable,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Notes:       req.Notes,
	}
	if err := s.repo.Create(table); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return s.toResponse(table), nil
}

// GetByID retrieves a table by ID
func (s *TableService) GetByID(id uuid.UUID) (*TableResponse, error) {
	table, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return s.toResponse(table), nil
}

// GetAll retrieves tables with optional status filter and pagination
func (s *TableService) GetAll(status string, page, pageSize int) (*TableListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	tableStatus := models.TableStatus(status)
	if status != "" && !tableStatus.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be available, checked_out or maintenance")
	}

	tables, total, err := s.repo.GetAll(tableStatus, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get tables: %w", err)
	}

	responses := make([]TableResponse, len(tables))
	for i := range tables {
		responses[i] = *s.toResponse(&tables[i])
	}
	return &TableListResponse{
		Tables:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a table's descriptive fields
func (s *TableService) Update(id uuid.UUID, req *UpdateTableRequest) (*TableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	table, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	if req.TableNumber != "" {
		table.TableNumber = req.TableNumber
	}
	if req.Location != "" {
		table.Location = req.Location
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.Notes != nil {
		table.Notes = *req.Notes
	}

	if err := s.repo.Update(table); err != nil {
		return nil, fmt.Errorf("failed to update table: %w", err)
	}
	return s.toResponse(table), nil
}

// Delete deletes a table; refused while an active checkout references it.
// The check here is advisory; the repository re-checks under the row lock.
func (s *TableService) Delete(id uuid.UUID) error {
	active, err := s.checkoutRepo.HasActiveForTable(id)
	if err != nil {
		return fmt.Errorf("failed to check active checkout: %w", err)
	}
	if active {
		return apperrors.ErrTableHasActiveCheckout
	}
	return s.repo.Delete(id)
}

// SetStatus manually flips a table to available or maintenance.
// checked_out is owned by the checkout ledger and rejected here.
func (s *TableService) SetStatus(id uuid.UUID, req *SetTableStatusRequest) (*TableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	status := models.TableStatus(req.Status)
	if status != models.TableStatusAvailable && status != models.TableStatusMaintenance {
		return nil, apperrors.NewValidationError("status", "must be available or maintenance")
	}

	active, err := s.checkoutRepo.HasActiveForTable(id)
	if err != nil {
		return nil, fmt.Errorf("failed to check active checkout: %w", err)
	}
	if active {
		return nil, apperrors.ErrTableHasActiveCheckout
	}

	table, err := s.repo.SetStatus(id, status)
	if err != nil {
		return nil, err
	}
	return s.toResponse(table), nil
}

func (s *TableService) toResponse(table *models.Table) *TableResponse {
	return &TableResponse{
		ID:          table.ID,
		TableNumber: table.TableNumber,
		Status:      string(table.Status),
		Location:    table.Location,
		Capacity:    table.Capacity,
		Notes:       table.Notes,
		CreatedAt:   table.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   table.UpdatedAt.Format(time.RFC3339),
	}
}
