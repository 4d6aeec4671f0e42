package testutils

import (
	"time"

	"table-checkout-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OfficialName: "Test Organization",
		Aliases:      pq.StringArray{"test org", "test organization"},
		Category:     "Student Organization",
		Status:       models.OrganizationStatusActive,
	}
}

// WithName sets a custom official name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.OfficialName = name
	return org
}

// WithAliases sets custom aliases for the organization
func (f *OrganizationFactory) WithAliases(aliases ...string) *models.Organization {
	org := f.Create()
	org.Aliases = aliases
	return org
}

// Banned creates a banned organization with ban fields populated
func (f *OrganizationFactory) Banned(reason string) *models.Organization {
	org := f.Create()
	now := time.Now()
	org.Status = models.OrganizationStatusBanned
	org.BanReason = reason
	org.BanDate = &now
	return org
}

// TableFactory provides methods to create test Table data
type TableFactory struct{}

// NewTableFactory creates a new TableFactory
func NewTableFactory() *TableFactory {
	return &TableFactory{}
}

// Create creates a test Table with default values
func (f *TableFactory) Create() *models.Table {
	id := uuid.New()
	return &models.Table{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Table numbers must be unique; derive one from the UUID
		TableNumber: "T-" + id.String()[:8],
		Status:      models.TableStatusAvailable,
		Location:    "West Mall",
		Capacity:    4,
	}
}

// WithNumber sets a custom table number
func (f *TableFactory) WithNumber(number string) *models.Table {
	table := f.Create()
	table.TableNumber = number
	return table
}

// WithStatus sets a custom status
func (f *TableFactory) WithStatus(status models.TableStatus) *models.Table {
	table := f.Create()
	table.Status = status
	return table
}

// CheckoutFactory provides methods to create test Checkout data
type CheckoutFactory struct{}

// NewCheckoutFactory creates a new CheckoutFactory
func NewCheckoutFactory() *CheckoutFactory {
	return &CheckoutFactory{}
}

// Create creates a test active Checkout with default values
func (f *CheckoutFactory) Create() *models.Checkout {
	now := time.Now()
	return &models.Checkout{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrganizationID:     uuid.New(),
		TableID:            uuid.New(),
		CheckoutTime:       now,
		ExpectedReturnTime: now.Add(2 * time.Hour),
		Status:             models.CheckoutStatusActive,
		CheckedOutBy:       "front desk",
	}
}

// For sets the organization and table IDs for the checkout
func (f *CheckoutFactory) For(orgID, tableID uuid.UUID) *models.Checkout {
	checkout := f.Create()
	checkout.OrganizationID = orgID
	checkout.TableID = tableID
	return checkout
}

// Returned creates a returned checkout with return fields populated
func (f *CheckoutFactory) Returned(orgID, tableID uuid.UUID) *models.Checkout {
	checkout := f.For(orgID, tableID)
	returnedAt := checkout.CheckoutTime.Add(time.Hour)
	checkout.Status = models.CheckoutStatusReturned
	checkout.ActualReturnTime = &returnedAt
	checkout.ReturnedBy = "front desk"
	return checkout
}

// Overdue creates an active checkout whose expected return time has passed
func (f *CheckoutFactory) Overdue(orgID, tableID uuid.UUID) *models.Checkout {
	checkout := f.For(orgID, tableID)
	checkout.CheckoutTime = time.Now().Add(-3 * time.Hour)
	checkout.ExpectedReturnTime = time.Now().Add(-time.Hour)
	return checkout
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Table        *TableFactory
	Checkout     *CheckoutFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Table:        NewTableFactory(),
		Checkout:     NewCheckoutFactory(),
	}
}

// CreateCheckoutScenario creates an organization, a checked-out table and
// the active checkout linking them
func (fs *FactorySet) CreateCheckoutScenario() (*models.Organization, *models.Table, *models.Checkout) {
	org := fs.Organization.Create()
	table := fs.Table.WithStatus(models.TableStatusCheckedOut)
	checkout := fs.Checkout.For(org.ID, table.ID)
	return org, table, checkout
}
