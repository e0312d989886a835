package order

import (
	"fmt"

	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultBonusThreshold is the order total from which the complimentary item
// is offered when no threshold is configured.
var DefaultBonusThreshold = decimal.NewFromInt(200)

// BonusPolicy decides whether an order total qualifies for the complimentary
// item promotion. The threshold is a business rule and comes from
// configuration, not from code.
type BonusPolicy struct {
	threshold decimal.Decimal
}

// NewBonusPolicy creates a BonusPolicy with the given threshold.
// Negative thresholds are rejected.
func NewBonusPolicy(threshold decimal.Decimal) (BonusPolicy, error) {
	if threshold.IsNegative() {
		return BonusPolicy{}, errs.NewValueIsInvalidErrorWithCause("bonus threshold",
			fmt.Errorf("%s is negative", threshold))
	}

	return BonusPolicy{threshold: threshold}, nil
}

// DefaultBonusPolicy returns a policy with DefaultBonusThreshold.
func DefaultBonusPolicy() BonusPolicy {
	policy, err := NewBonusPolicy(DefaultBonusThreshold)
	if err != nil {
		panic(err)
	}
	return policy
}

// Threshold returns the qualifying total.
func (p BonusPolicy) Threshold() decimal.Decimal {
	return p.threshold
}

// EligibleForBonus reports whether the total qualifies for the complimentary
// item. Totals equal to the threshold qualify.
func (p BonusPolicy) EligibleForBonus(total decimal.Decimal) bool {
	return total.GreaterThanOrEqual(p.threshold)
}
