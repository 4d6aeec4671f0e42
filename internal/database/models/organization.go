package models

import (
	"time"

	"github.com/lib/pq"
)

// Organization represents a student organization that can check out tables.
// Aliases hold alternate spellings used by the name matcher; they carry no
// uniqueness constraint across organizations.
type Organization struct {
	BaseModel
	OfficialName string             `json:"official_name" gorm:"uniqueIndex;not null;size:255" validate:"required,min=1,max=255"`
	Aliases      pq.StringArray     `json:"aliases" gorm:"type:text[]"`
	Category     string             `json:"category" gorm:"size:100"`
	Status       OrganizationStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	BanReason    string             `json:"ban_reason,omitempty" gorm:"type:text"`
	BanDate      *time.Time         `json:"ban_date,omitempty"`

	Checkouts []Checkout `json:"checkouts,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// IsBanned reports whether the organization is currently banned.
func (o *Organization) IsBanned() bool {
	return o.Status == OrganizationStatusBanned
}
