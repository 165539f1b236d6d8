package order

import (
	"github.com/jadefire/storefront/internal/domain/shared"
)

// Address is an immutable snapshot of a shipping destination, created per
// checkout and owned by its order. Addresses are not deduplicated or reused
// across orders.
type Address struct {
	shared.BaseEntity
	FirstName  string `gorm:"type:varchar(100);not null"`
	LastName   string `gorm:"type:varchar(100);not null"`
	Street     string `gorm:"type:varchar(300);not null"`
	City       string `gorm:"type:varchar(100);not null"`
	State      string `gorm:"type:varchar(100);not null"`
	PostalCode string `gorm:"type:varchar(20)"`
	Phone      string `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "addresses"
}

// NewAddress creates a new shipping address snapshot
func NewAddress(firstName, lastName, street, city, state, postalCode, phone string) (*Address, error) {
	if firstName == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "First name cannot be empty")
	}
	if lastName == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Last name cannot be empty")
	}
	if street == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Street cannot be empty")
	}
	if city == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "City cannot be empty")
	}
	if state == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "State cannot be empty")
	}

	return &Address{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  firstName,
		LastName:   lastName,
		Street:     street,
		City:       city,
		State:      state,
		PostalCode: postalCode,
		Phone:      phone,
	}, nil
}
