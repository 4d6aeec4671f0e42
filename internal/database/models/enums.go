package models

// OrganizationStatus defines the lifecycle states of an organization
type OrganizationStatus string

const (
	OrganizationStatusActive OrganizationStatus = "active"
	OrganizationStatusBanned OrganizationStatus = "banned"
)

// TableStatus defines the lifecycle states of a table
type TableStatus string

const (
	TableStatusAvailable   TableStatus = "available"
	TableStatusCheckedOut  TableStatus = "checked_out"
	TableStatusMaintenance TableStatus = "maintenance"
)

// CheckoutStatus defines the lifecycle states of a checkout
type CheckoutStatus string

const (
	CheckoutStatusActive   CheckoutStatus = "active"
	CheckoutStatusReturned CheckoutStatus = "returned"
)

// IsValid checks if the OrganizationStatus is valid
func (s OrganizationStatus) IsValid() bool {
	switch s {
	case OrganizationStatusActive, OrganizationStatusBanned:
		return true
	}
	return false
}

// IsValid checks if the TableStatus is valid
func (s TableStatus) IsValid() bool {
	switch s {
	case TableStatusAvailable, TableStatusCheckedOut, TableStatusMaintenance:
		return true
	}
	return false
}

// IsValid checks if the CheckoutStatus is valid
func (s CheckoutStatus) IsValid() bool {
	switch s {
	case CheckoutStatusActive, CheckoutStatusReturned:
		return true
	}
	return false
}
