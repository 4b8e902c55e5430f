package catalog

import (
	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// Discount is a percent-off reduction applicable to items and orders
type Discount struct {
	shared.BaseEntity
	Name           string `gorm:"type:varchar(200);not null" json:"name"`
	Percentage     int    `gorm:"not null" json:"percentage"`
	StripeCouponID string `gorm:"type:varchar(100)" json:"stripe_coupon_id,omitempty"`
}

// TableName returns the table name for GORM
func (Discount) TableName() string {
	return "discounts"
}

// NewDiscount creates a validated discount
func NewDiscount(name string, percentage int) (*Discount, error) {
	d := &Discount{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Percentage: percentage,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the discount invariants
func (d *Discount) Validate() error {
	if d.Name == "" || len(d.Name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Discount name must be 1-200 characters")
	}
	return validatePercentage(d.Percentage)
}
