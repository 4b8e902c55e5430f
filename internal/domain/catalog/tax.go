package catalog

import (
	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// Tax is a percentage tax rate attachable to catalog items
type Tax struct {
	shared.BaseEntity
	Name            string `gorm:"type:varchar(200);not null" json:"name"`
	Description     string `gorm:"type:text" json:"description"`
	Percentage      int    `gorm:"not null" json:"percentage"`
	StripeTaxRateID string `gorm:"type:varchar(100)" json:"stripe_tax_rate_id,omitempty"`
}

// TableName returns the table name for GORM
func (Tax) TableName() string {
	return "taxes"
}

// NewTax creates a validated tax rate
func NewTax(name, description string, percentage int) (*Tax, error) {
	tax := &Tax{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Percentage:  percentage,
	}
	if err := tax.Validate(); err != nil {
		return nil, err
	}
	return tax, nil
}

// Validate checks the tax invariants
func (t *Tax) Validate() error {
	if t.Name == "" || len(t.Name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Tax name must be 1-200 characters")
	}
	if err := validatePercentage(t.Percentage); err != nil {
		return err
	}
	return nil
}

// validatePercentage enforces the 0-99 inclusive range shared by
// taxes and discounts.
func validatePercentage(p int) error {
	if p < 0 || p > 99 {
		return shared.NewDomainError("INVALID_PERCENTAGE", "Percentage must be between 0 and 99")
	}
	return nil
}
