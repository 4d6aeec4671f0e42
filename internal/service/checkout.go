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

// CheckoutService orchestrates the checkout workflow: resolve the
// organization, run the advisory precondition checks, then hand off to
// the transactional ledger in the repository. The advisory checks give
// callers early, friendly failures; the authoritative checks run again
// inside the transaction.
type CheckoutService struct {
	repo      repository.CheckoutRepositoryInterface
	tableRepo repository.TableRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	resolver  OrganizationServiceInterface
	validator *validator.Validate
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	repo repository.CheckoutRepositoryInterface,
	tableRepo repository.TableRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	resolver OrganizationServiceInterface,
	validator *validator.Validate,
) *CheckoutService {
	return &CheckoutService{
		repo:      repo,
		tableRepo: tableRepo,
		orgRepo:   orgRepo,
		resolver:  resolver,
		validator: validator,
	}
}

// CreateCheckoutRequest represents the request to create a checkout.
// Either an organization id or a free-text organization name must be
// supplied; a name is resolved through the matcher and may create a new
// organization.
type CreateCheckoutRequest struct {
	OrganizationID     *uuid.UUID `json:"organization_id,omitempty"`
	OrganizationName   string     `json:"organization_name,omitempty"`
	TableID            uuid.UUID  `json:"table_id" validate:"required"`
	ExpectedReturnTime time.Time  `json:"expected_return_time" validate:"required"`
	Notes              string     `json:"notes,omitempty"`
	CheckedOutBy       string     `json:"checked_out_by,omitempty" validate:"max=255"`
}

// ReturnCheckoutRequest represents the request to return a checkout
type ReturnCheckoutRequest struct {
	ReturnedBy string `json:"returned_by,omitempty" validate:"max=255"`
	Notes      string `json:"notes,omitempty"`
}

// CheckoutResponse represents the response for checkout operations.
// Overdue is derived at read time, never persisted.
type CheckoutResponse struct {
	ID                 uuid.UUID            `json:"id"`
	OrganizationID     uuid.UUID            `json:"organization_id"`
	TableID            uuid.UUID            `json:"table_id"`
	CheckoutTime       time.Time            `json:"checkout_time"`
	ExpectedReturnTime time.Time            `json:"expected_return_time"`
	ActualReturnTime   *time.Time           `json:"actual_return_time,omitempty"`
	Status             string               `json:"status"`
	Overdue            bool                 `json:"overdue"`
	Notes              string               `json:"notes,omitempty"`
	CheckedOutBy       string               `json:"checked_out_by,omitempty"`
	ReturnedBy         string               `json:"returned_by,omitempty"`
	Organization       *models.Organization `json:"organization,omitempty"`
	Table              *models.Table        `json:"table,omitempty"`
}

// CheckoutListResponse represents a paginated list of checkouts
type CheckoutListResponse struct {
	Checkouts []CheckoutResponse `json:"checkouts"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// CheckoutStatsResponse aggregates the dashboard counters
type CheckoutStatsResponse struct {
	repository.CheckoutStats
}

// Create validates the request, resolves the organization and runs the
// checkout transaction
func (s *CheckoutService) Create(req *CreateCheckoutRequest) (*CheckoutResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ExpectedReturnTime.After(time.Now()) {
		return nil, apperrors.ErrReturnTimeInPast
	}
	if req.OrganizationID == nil && req.OrganizationName == "" {
		return nil, apperrors.NewValidationError("organization", "organization id or name is required")
	}

	var org *models.Organization
	var err error
	if req.OrganizationID != nil {
		org, err = s.orgRepo.GetByID(*req.OrganizationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOrganizationNotFound
			}
			return nil, fmt.Errorf("failed to get organization: %w", err)
		}
	} else {
		org, err = s.resolver.ResolveOrCreate(req.OrganizationName)
		if err != nil {
			return nil, err
		}
	}

	// Advisory checks; each is re-verified inside the transaction.
	if org.IsBanned() {
		return nil, apperrors.ErrOrganizationBanned
	}
	if _, err := s.repo.GetActiveByOrganization(org.ID); err == nil {
		return nil, apperrors.ErrActiveCheckoutExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check active checkout: %w", err)
	}
	table, err := s.tableRepo.GetByID(req.TableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	if table.Status != models.TableStatusAvailable {
		return nil, apperrors.ErrTableUnavailable
	}

	checkout, err := s.repo.CheckoutTable(repository.CheckoutParams{
		TableID:            req.TableID,
		OrganizationID:     org.ID,
		ExpectedReturnTime: req.ExpectedReturnTime,
		Notes:              req.Notes,
		CheckedOutBy:       req.CheckedOutBy,
	})
	if err != nil {
		return nil, err
	}
	return toCheckoutResponse(checkout), nil
}

// Return marks a checkout returned and frees its table
func (s *CheckoutService) Return(id uuid.UUID, req *ReturnCheckoutRequest) (*CheckoutResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	checkout, err := s.repo.ReturnCheckout(id, req.ReturnedBy, req.Notes)
	if err != nil {
		return nil, err
	}
	return toCheckoutResponse(checkout), nil
}

// GetByID retrieves a checkout by ID
func (s *CheckoutService) GetByID(id uuid.UUID) (*CheckoutResponse, error) {
	checkout, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCheckoutNotFound
		}
		return nil, fmt.Errorf("failed to get checkout: %w", err)
	}
	return toCheckoutResponse(checkout), nil
}

// GetAll retrieves checkouts with optional status and overdue filters
func (s *CheckoutService) GetAll(status string, overdueOnly bool, page, pageSize int) (*CheckoutListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	checkoutStatus := models.CheckoutStatus(status)
	if status != "" && !checkoutStatus.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be active or returned")
	}

	checkouts, total, err := s.repo.GetAll(repository.CheckoutFilter{
		Status:      checkoutStatus,
		OverdueOnly: overdueOnly,
		Now:         time.Now(),
		Limit:       pageSize,
		Offset:      (page - 1) * pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get checkouts: %w", err)
	}

	responses := make([]CheckoutResponse, len(checkouts))
	for i := range checkouts {
		responses[i] = *toCheckoutResponse(&checkouts[i])
	}
	return &CheckoutListResponse{
		Checkouts: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// GetActive retrieves all active checkouts
func (s *CheckoutService) GetActive() ([]CheckoutResponse, error) {
	checkouts, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active checkouts: %w", err)
	}
	responses := make([]CheckoutResponse, len(checkouts))
	for i := range checkouts {
		responses[i] = *toCheckoutResponse(&checkouts[i])
	}
	return responses, nil
}

// GetOverdue retrieves active checkouts past their expected return time
func (s *CheckoutService) GetOverdue() ([]CheckoutResponse, error) {
	checkouts, err := s.repo.GetOverdue(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get overdue checkouts: %w", err)
	}
	responses := make([]CheckoutResponse, len(checkouts))
	for i := range checkouts {
		responses[i] = *toCheckoutResponse(&checkouts[i])
	}
	return responses, nil
}

// Stats aggregates the dashboard counters: checkout counters from the
// ledger, table counters from the table repository.
func (s *CheckoutService) Stats() (*CheckoutStatsResponse, error) {
	stats, err := s.repo.Stats(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout stats: %w", err)
	}

	if stats.TotalTables, err = s.tableRepo.CountAll(); err != nil {
		return nil, fmt.Errorf("failed to count tables: %w", err)
	}
	if stats.AvailableTables, err = s.tableRepo.CountByStatus(models.TableStatusAvailable); err != nil {
		return nil, fmt.Errorf("failed to count tables: %w", err)
	}
	if stats.CheckedOutTables, err = s.tableRepo.CountByStatus(models.TableStatusCheckedOut); err != nil {
		return nil, fmt.Errorf("failed to count tables: %w", err)
	}

	return &CheckoutStatsResponse{CheckoutStats: *stats}, nil
}

func toCheckoutResponse(checkout *models.Checkout) *CheckoutResponse {
	return &CheckoutResponse{
		ID:                 checkout.ID,
		OrganizationID:     checkout.OrganizationID,
		TableID:            checkout.TableID,
		CheckoutTime:       checkout.CheckoutTime,
		ExpectedReturnTime: checkout.ExpectedReturnTime,
		ActualReturnTime:   checkout.ActualReturnTime,
		Status:             string(checkout.Status),
		Overdue:            checkout.IsOverdue(time.Now()),
		Notes:              checkout.Notes,
		CheckedOutBy:       checkout.CheckedOutBy,
		ReturnedBy:         checkout.ReturnedBy,
		Organization:       checkout.Organization,
		Table:              checkout.Table,
	}
}
