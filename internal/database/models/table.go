package models

// Table represents a physical table available for checkout
type Table struct {
	BaseModel
	TableNumber string      `json:"table_number" gorm:"uniqueIndex;not null;size:50" validate:"required,min=1,max=50"`
	Status      TableStatus `json:"status" gorm:"type:varchar(20);not null;default:'available';index"`
	Location    string      `json:"location" gorm:"size:255"`
	Capacity    int         `json:"capacity"`
	Notes       string      `json:"notes" gorm:"type:text"`

	Checkouts []Checkout `json:"checkouts,omitempty" gorm:"foreignKey:TableID"`
}

// TableName returns the table name for Table
func (Table) TableName() string {
	return "tables"
}
