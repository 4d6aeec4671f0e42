package service

import (
	"errors"
	"fmt"
	"time"

	"table-checkout-backend/internal/database/models"
	apperrors "table-checkout-backend/internal/errors"
	"table-checkout-backend/internal/matcher"
	"table-checkout-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations: identity
// resolution through the name matcher, ban/unban transitions and plain CRUD.
type OrganizationService struct {
	repo         repository.OrganizationRepositoryInterface
	checkoutRepo repository.CheckoutRepositoryInterface
	matcher      *matcher.Matcher
	validator    *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	repo repository.OrganizationRepositoryInterface,
	checkoutRepo repository.CheckoutRepositoryInterface,
	m *matcher.Matcher,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		repo:         repo,
		checkoutRepo: checkoutRepo,
		matcher:      m,
		validator:    validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	OfficialName string   `json:"official_name" validate:"required,min=1,max=255"`
	Aliases      []string `json:"aliases,omitempty"`
	Category     string   `json:"category,omitempty" validate:"max=100"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	OfficialName string   `json:"official_name,omitempty" validate:"omitempty,min=1,max=255"`
	Aliases      []string `json:"aliases,omitempty"`
	Category     string   `json:"category,omitempty" validate:"max=100"`
}

// BanOrganizationRequest represents the request to ban an organization
type BanOrganizationRequest struct {
	Reason        string `json:"reason" validate:"required,min=1"`
	CascadeReturn bool   `json:"cascade_return"`
}

// UnbanOrganizationRequest represents the request to unban an organization
type UnbanOrganizationRequest struct {
	Notes string `json:"notes,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID           uuid.UUID  `json:"id"`
	OfficialName string     `json:"official_name"`
	Aliases      []string   `json:"aliases"`
	Category     string     `json:"category"`
	Status       string     `json:"status"`
	BanReason    string     `json:"ban_reason,omitempty"`
	BanDate      *time.Time `json:"ban_date,omitempty"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// OrganizationDetailResponse includes the checkout history
type OrganizationDetailResponse struct {
	OrganizationResponse
	Checkouts []CheckoutResponse `json:"checkouts"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// BanOrganizationResponse reports the result of a ban, including how many
// checkouts the cascade returned
type BanOrganizationResponse struct {
	Organization          OrganizationResponse `json:"organization"`
	ReturnedCheckoutCount int64                `json:"returned_checkout_count"`
}

// ValidateCheckoutResponse is the pre-flight verdict for a checkout attempt
// by free-text organization name
type ValidateCheckoutResponse struct {
	Allowed               bool                  `json:"allowed"`
	RequireConfirmation   bool                  `json:"require_confirmation,omitempty"`
	Matches               []matcher.Match       `json:"matches"`
	ConfirmedOrganization *OrganizationResponse `json:"confirmed_organization,omitempty"`
	ActiveCheckout        *CheckoutResponse     `json:"active_checkout,omitempty"`
	Message               string                `json:"message"`
}

// Create creates a new organization
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByOfficialName(req.OfficialName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		OfficialName: req.OfficialName,
		Aliases:      pq.StringArray(req.Aliases),
		Category:     req.Category,
		Status:       models.OrganizationStatusActive,
	}
	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// GetWithCheckouts retrieves an organization with its checkout history
func (s *OrganizationService) GetWithCheckouts(id uuid.UUID) (*OrganizationDetailResponse, error) {
	org, err := s.repo.GetWithCheckouts(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	detail := &OrganizationDetailResponse{
		OrganizationResponse: *s.toResponse(org),
		Checkouts:            make([]CheckoutResponse, len(org.Checkouts)),
	}
	for i := range org.Checkouts {
		detail.Checkouts[i] = *toCheckoutResponse(&org.Checkouts[i])
	}
	return detail, nil
}

// GetAll retrieves organizations with optional status filter, search term
// and pagination
func (s *OrganizationService) GetAll(status, search string, page, pageSize int) (*OrganizationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	orgStatus := models.OrganizationStatus(status)
	if status != "" && !orgStatus.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be active or banned")
	}

	offset := (page - 1) * pageSize
	orgs, total, err := s.repo.GetAll(orgStatus, search, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *s.toResponse(&orgs[i])
	}
	return &OrganizationListResponse{
		Organizations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update updates an organization's name, aliases or category
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if req.OfficialName != "" {
		org.OfficialName = req.OfficialName
	}
	if req.Aliases != nil {
		org.Aliases = pq.StringArray(req.Aliases)
	}
	if req.Category != "" {
		org.Category = req.Category
	}

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return s.toResponse(org), nil
}

// ResolveOrCreate resolves a free-text name against the active
// organizations and returns the exact match when one exists; otherwise a
// new organization is created whose aliases are pre-seeded with the
// generated name variations, so future near-miss lookups land on it.
func (s *OrganizationService) ResolveOrCreate(name string) (*models.Organization, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("organization_name", "is required")
	}

	pool, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load organizations: %w", err)
	}

	matches := s.matcher.Match(name, pool)
	if best := s.matcher.BestExactMatch(matches); best != nil {
		return &best.Organization, nil
	}

	canonical := matcher.Normalize(name)
	var aliases []string
	for _, v := range matcher.GenerateVariations(name) {
		if v != canonical {
			aliases = append(aliases, v)
		}
	}

	org := &models.Organization{
		OfficialName: name,
		Aliases:      pq.StringArray(aliases),
		Category:     "Student Organization",
		Status:       models.OrganizationStatusActive,
	}
	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, nil
}

// SearchMatches returns the ranked matcher output for a name, used to
// build "did you mean" confirmation flows
func (s *OrganizationService) SearchMatches(name string) ([]matcher.Match, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}
	pool, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load organizations: %w", err)
	}
	return s.matcher.Match(name, pool), nil
}

// ValidateCheckout runs the pre-flight verdict for a checkout attempt:
// whether the name resolves to an existing organization, whether that
// organization is free to check out, and whether the caller needs to
// confirm a similar-name candidate first.
func (s *OrganizationService) ValidateCheckout(name string) (*ValidateCheckoutResponse, error) {
	matches, err := s.SearchMatches(name)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return &ValidateCheckoutResponse{
			Allowed: true,
			Matches: []matcher.Match{},
			Message: "No existing organizations found. A new organization will be created.",
		}, nil
	}

	if best := s.matcher.BestExactMatch(matches); best != nil {
		active, err := s.checkoutRepo.GetActiveByOrganization(best.Organization.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check active checkout: %w", err)
		}
		if active != nil {
			return &ValidateCheckoutResponse{
				Allowed:        false,
				Matches:        []matcher.Match{*best},
				ActiveCheckout: toCheckoutResponse(active),
				Message:        fmt.Sprintf("Organization %q already has an active checkout.", best.Organization.OfficialName),
			}, nil
		}
		return &ValidateCheckoutResponse{
			Allowed:               true,
			Matches:               []matcher.Match{*best},
			ConfirmedOrganization: s.toResponse(&best.Organization),
			Message:               fmt.Sprintf("Exact match found: %q.", best.Organization.OfficialName),
		}, nil
	}

	for i := range matches {
		active, err := s.checkoutRepo.GetActiveByOrganization(matches[i].Organization.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check active checkout: %w", err)
		}
		if active != nil {
			return &ValidateCheckoutResponse{
				Allowed:        false,
				Matches:        matches,
				ActiveCheckout: toCheckoutResponse(active),
				Message:        "Similar organizations with active checkouts found.",
			}, nil
		}
	}

	return &ValidateCheckoutResponse{
		Allowed:             false,
		RequireConfirmation: true,
		Matches:             matches,
		Message:             "Similar organizations found. Confirm whether this is a new organization or select an existing one.",
	}, nil
}

// Ban bans an organization, optionally cascading the return of its
// active checkouts
func (s *OrganizationService) Ban(id uuid.UUID, req *BanOrganizationRequest) (*BanOrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, returned, err := s.repo.Ban(id, req.Reason, req.CascadeReturn)
	if err != nil {
		return nil, err
	}
	return &BanOrganizationResponse{
		Organization:          *s.toResponse(org),
		ReturnedCheckoutCount: returned,
	}, nil
}

// Unban lifts a ban, keeping the prior reason as audit text when notes
// are supplied
func (s *OrganizationService) Unban(id uuid.UUID, req *UnbanOrganizationRequest) (*OrganizationResponse, error) {
	org, err := s.repo.Unban(id, req.Notes)
	if err != nil {
		return nil, err
	}
	return s.toResponse(org), nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	aliases := []string(org.Aliases)
	if aliases == nil {
		aliases = []string{}
	}
	return &OrganizationResponse{
		ID:           org.ID,
		OfficialName: org.OfficialName,
		Aliases:      aliases,
		Category:     org.Category,
		Status:       string(org.Status),
		BanReason:    org.BanReason,
		BanDate:      org.BanDate,
		CreatedAt:    org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    org.UpdatedAt.Format(time.RFC3339),
	}
}
