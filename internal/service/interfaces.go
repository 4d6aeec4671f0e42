package service

import (
	"table-checkout-backend/internal/database/models"
	"table-checkout-backend/internal/matcher"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetWithCheckouts(id uuid.UUID) (*OrganizationDetailResponse, error)
	GetAll(status, search string, page, pageSize int) (*OrganizationListResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	ResolveOrCreate(name string) (*models.Organization, error)
	SearchMatches(name string) ([]matcher.Match, error)
	ValidateCheckout(name string) (*ValidateCheckoutResponse, error)
	Ban(id uuid.UUID, req *BanOrganizationRequest) (*BanOrganizationResponse, error)
	Unban(id uuid.UUID, req *UnbanOrganizationRequest) (*OrganizationResponse, error)
}

// TableServiceInterface defines the interface for table service
type TableServiceInterface interface {
	Create(req *CreateTableRequest) (*TableResponse, error)
	GetByID(id uuid.UUID) (*TableResponse, error)
	GetAll(status string, page, pageSize int) (*TableListResponse, error)
	Update(id uuid.UUID, req *UpdateTableRequest) (*TableResponse, error)
	Delete(id uuid.UUID) error
	SetStatus(id uuid.UUID, req *SetTableStatusRequest) (*TableResponse, error)
}

// CheckoutServiceInterface defines the interface for checkout service
type CheckoutServiceInterface interface {
	Create(req *CreateCheckoutRequest) (*CheckoutResponse, error)
	Return(id uuid.UUID, req *ReturnCheckoutRequest) (*CheckoutResponse, error)
	GetByID(id uuid.UUID) (*CheckoutResponse, error)
	GetAll(status string, overdueOnly bool, page, pageSize int) (*CheckoutListResponse, error)
	GetActive() ([]CheckoutResponse, error)
	GetOverdue() ([]CheckoutResponse, error)
	Stats() (*CheckoutStatsResponse, error)
}
