package increment

import (
	"auction-engine/internal/models"
	"auction-engine/internal/money"
)

// Policy computes the minimum legal next bid for an item. It is a pure value
// type: no side effects, deterministic for a given configuration.
//
// Sapphire, Gold and Emerald items always step by the large increment. Silver
// items step by the small increment until the last amount reaches the
// threshold, then by the large increment.
type Policy struct {
	Large     money.Money
	Small     money.Money
	Threshold money.Money
}

// Default increment schedule (whole currency units).
const (
	defaultLarge     = 2_000_000
	defaultSmall     = 500_000
	defaultThreshold = 10_000_000
)

// DefaultPolicy returns the canonical increment schedule.
func DefaultPolicy() Policy {
	return Policy{
		Large:     money.FromInt64(defaultLarge),
		Small:     money.FromInt64(defaultSmall),
		Threshold: money.FromInt64(defaultThreshold),
	}
}

// NextMinimumBid returns the lowest acceptable bid given the item's tier, its
// base price and the current high bid. A nil lastAmount means no bid has been
// placed yet, in which case the base price itself is the minimum.
func (p Policy) NextMinimumBid(tier models.Tier, basePrice money.Money, lastAmount *money.Money) money.Money {
	if lastAmount == nil {
		return basePrice
	}
	return lastAmount.Add(p.incrementFor(tier, *lastAmount))
}

func (p Policy) incrementFor(tier models.Tier, lastAmount money.Money) money.Money {
	if tier == models.TierSilver && lastAmount.LessThan(p.Threshold) {
		return p.Small
	}
	return p.Large
}
