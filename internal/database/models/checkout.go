package models

import (
	"time"

	"github.com/google/uuid"
)

// Checkout records a table being loaned to an organization. At most one
// checkout per table and one per organization may be active at a time;
// both constraints are enforced by partial unique indexes.
type Checkout struct {
	BaseModel
	OrganizationID     uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index"`
	TableID            uuid.UUID      `json:"table_id" gorm:"type:uuid;not null;index"`
	CheckoutTime       time.Time      `json:"checkout_time" gorm:"not null"`
	ExpectedReturnTime time.Time      `json:"expected_return_time" gorm:"not null"`
	ActualReturnTime   *time.Time     `json:"actual_return_time,omitempty"`
	Status             CheckoutStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Notes              string         `json:"notes" gorm:"type:text"`
	CheckedOutBy       string         `json:"checked_out_by" gorm:"size:255"`
	ReturnedBy         string         `json:"returned_by" gorm:"size:255"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Table        *Table        `json:"table,omitempty" gorm:"foreignKey:TableID"`
}

// TableName returns the table name for Checkout
func (Checkout) TableName() string {
	return "checkouts"
}

// IsOverdue reports the derived overdue classification at time now.
// Active checkouts are overdue once now passes the expected return time;
// returned checkouts are overdue when they came back late.
func (c *Checkout) IsOverdue(now time.Time) bool {
	switch c.Status {
	case CheckoutStatusActive:
		return now.After(c.ExpectedReturnTime)
	case CheckoutStatusReturned:
		return c.ActualReturnTime != nil && c.ActualReturnTime.After(c.ExpectedReturnTime)
	}
	return false
}
