package order

import (
	"github.com/shopspring/decimal"
)

// PricingPolicy holds the checkout pricing rules. The same policy instance
// drives the cart summary, the checkout page, and order materialization so
// the three never disagree on totals.
type PricingPolicy struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal
}

// NewPricingPolicy builds a policy from minor-unit amounts and a fractional
// tax rate
func NewPricingPolicy(freeShippingThreshold, shippingFee int64, taxRate float64) PricingPolicy {
	return PricingPolicy{
		FreeShippingThreshold: decimal.NewFromInt(freeShippingThreshold),
		ShippingFee:           decimal.NewFromInt(shippingFee),
		TaxRate:               decimal.NewFromFloat(taxRate),
	}
}

// Charges is the server-computed breakdown for a given subtotal
type Charges struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Quote computes shipping, tax, and total for a subtotal. Shipping is the
// flat fee below the free-shipping threshold and zero at or above it; an
// empty (zero) subtotal carries no shipping. Tax is rounded to whole minor
// units.
func (p PricingPolicy) Quote(subtotal decimal.Decimal) Charges {
	shipping := decimal.Zero
	if subtotal.IsPositive() && subtotal.LessThan(p.FreeShippingThreshold) {
		shipping = p.ShippingFee
	}

	tax := subtotal.Mul(p.TaxRate).Round(0)

	return Charges{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// AmountToFreeShipping returns how much more spend waives the shipping fee,
// or zero when the subtotal already qualifies.
func (p PricingPolicy) AmountToFreeShipping(subtotal decimal.Decimal) decimal.Decimal {
	remaining := p.FreeShippingThreshold.Sub(subtotal)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
