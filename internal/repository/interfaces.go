package repository

import (
	"time"

	"table-checkout-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByOfficialName(name string) (*models.Organization, error)
	GetAll(status models.OrganizationStatus, search string, limit, offset int) ([]models.Organization, int64, error)
	GetActive() ([]models.Organization, error)
	GetWithCheckouts(id uuid.UUID) (*models.Organization, error)
	Update(org *models.Organization) error
	Ban(id uuid.UUID, reason string, cascadeReturn bool) (*models.Organization, int64, error)
	Unban(id uuid.UUID, notes string) (*models.Organization, error)
}

// TableRepositoryInterface defines the interface for table repository operations
type TableRepositoryInterface interface {
	Create(table *models.Table) error
	GetByID(id uuid.UUID) (*models.Table, error)
	GetByTableNumber(number string) (*models.Table, error)
	GetAll(status models.TableStatus, limit, offset int) ([]models.Table, int64, error)
	Update(table *models.Table) error
	Delete(id uuid.UUID) error
	SetStatus(id uuid.UUID, status models.TableStatus) (*models.Table, error)
	CountAll() (int64, error)
	CountByStatus(status models.TableStatus) (int64, error)
}

// CheckoutRepositoryInterface defines the interface for checkout repository
// operations, including the transactional ledger operations that keep the
// table/checkout invariants.
type CheckoutRepositoryInterface interface {
	CheckoutTable(params CheckoutParams) (*models.Checkout, error)
	ReturnCheckout(id uuid.UUID, returnedBy, notes string) (*models.Checkout, error)
	GetByID(id uuid.UUID) (*models.Checkout, error)
	GetAll(filter CheckoutFilter) ([]models.Checkout, int64, error)
	GetActive() ([]models.Checkout, error)
	GetOverdue(now time.Time) ([]models.Checkout, error)
	GetActiveByOrganization(orgID uuid.UUID) (*models.Checkout, error)
	HasActiveForTable(tableID uuid.UUID) (bool, error)
	Stats(now time.Time) (*CheckoutStats, error)
}
