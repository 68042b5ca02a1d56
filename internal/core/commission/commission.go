// Package commission splits a settled order total between merchant and platform.
//
// The percentage is the platform's cut. The platform share is rounded to the
// nearest minor unit (half up) and the merchant keeps the exact remainder, so
// the two shares always add back up to the total.
package commission

import (
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/pkg/money"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Split is the result of dividing one order total.
type Split struct {
	Total           money.Amount `json:"total"`
	MerchantEarning money.Amount `json:"merchant_earning"`
	PlatformEarning money.Amount `json:"platform_earning"`
}

// ValidatePercentage rejects percentages outside [0, 100].
func ValidatePercentage(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return domain.ErrInvalidCommissionRate
	}
	return nil
}

// PlatformEarning returns round(total * pct / 100).
func PlatformEarning(total money.Amount, pct decimal.Decimal) (money.Amount, error) {
	if total < 0 {
		return 0, domain.ErrNegativeAmount
	}
	if err := ValidatePercentage(pct); err != nil {
		return 0, err
	}
	share := decimal.NewFromInt(total.Int64()).Mul(pct).Div(hundred).Round(0)
	return money.Amount(share.IntPart()), nil
}

// MerchantEarning returns total minus the platform share.
func MerchantEarning(total money.Amount, pct decimal.Decimal) (money.Amount, error) {
	platform, err := PlatformEarning(total, pct)
	if err != nil {
		return 0, err
	}
	return total - platform, nil
}

// Compute returns both shares of total.
func Compute(total money.Amount, pct decimal.Decimal) (Split, error) {
	platform, err := PlatformEarning(total, pct)
	if err != nil {
		return Split{}, err
	}
	return Split{
		Total:           total,
		MerchantEarning: total - platform,
		PlatformEarning: platform,
	}, nil
}
