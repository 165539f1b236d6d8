package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuote_ShippingBelowThreshold(t *testing.T) {
	policy := NewPricingPolicy(50000, 3500, 0)

	charges := policy.Quote(decimal.NewFromInt(25000))
	assert.True(t, charges.Shipping.Equal(decimal.NewFromInt(3500)))
	assert.True(t, charges.Total.Equal(decimal.NewFromInt(28500)))
}

func TestQuote_FreeShippingAtThreshold(t *testing.T) {
	policy := NewPricingPolicy(50000, 3500, 0)

	charges := policy.Quote(decimal.NewFromInt(50000))
	assert.True(t, charges.Shipping.Equal(decimal.Zero))
	assert.True(t, charges.Total.Equal(decimal.NewFromInt(50000)))
}

func TestQuote_ShippingOneBelowThreshold(t *testing.T) {
	policy := NewPricingPolicy(50000, 3500, 0)

	charges := policy.Quote(decimal.NewFromInt(49999))
	assert.True(t, charges.Shipping.Equal(decimal.NewFromInt(3500)))
	assert.True(t, charges.Total.Equal(decimal.NewFromInt(53499)))
}

func TestQuote_EmptySubtotalHasNoShipping(t *testing.T) {
	policy := NewPricingPolicy(50000, 3500, 0)

	charges := policy.Quote(decimal.Zero)
	assert.True(t, charges.Shipping.Equal(decimal.Zero))
	assert.True(t, charges.Total.Equal(decimal.Zero))
}

func TestQuote_TaxRoundedToMinorUnits(t *testing.T) {
	policy := NewPricingPolicy(50000, 3500, 0.0825)

	charges := policy.Quote(decimal.NewFromInt(10000))
	assert.True(t, charges.Tax.Equal(decimal.NewFromInt(825)))
	assert.True(t, charges.Total.Equal(decimal.NewFromInt(14325)))

	charges = policy.Quote(decimal.NewFromInt(10001))
	// 825.0825 rounds to 825
	assert.True(t, charges.Tax.Equal(decimal.NewFromInt(825)))
}

func TestAmountToFreeShipping(t *testing.T) {
	policy := NewPricingPolicy(50000, 3500, 0)

	assert.True(t, policy.AmountToFreeShipping(decimal.NewFromInt(48000)).Equal(decimal.NewFromInt(2000)))
	assert.True(t, policy.AmountToFreeShipping(decimal.NewFromInt(50000)).Equal(decimal.Zero))
	assert.True(t, policy.AmountToFreeShipping(decimal.NewFromInt(60000)).Equal(decimal.Zero))
}
