// Package loanscore maps a merchant's aggregate trading history to a loan offer.
// It does no I/O.
package loanscore

import (
	"merchant-settlement/pkg/money"

	"github.com/shopspring/decimal"
)

// Tier is the eligibility band derived from the score.
type Tier string

const (
	TierPremium     Tier = "Premium"
	TierStandard    Tier = "Standard"
	TierBasic       Tier = "Basic"
	TierNotEligible Tier = "Not Eligible"
)

// Input is the aggregate history the score is computed from.
type Input struct {
	TotalVolume      money.Amount
	TotalEarnings    money.Amount
	TotalCommissions money.Amount
	TransactionCount int64
}

// Result is the loan offer for one Input.
type Result struct {
	Score         decimal.Decimal `json:"score"`
	Tier          Tier            `json:"tier"`
	MaxLoanAmount money.Amount    `json:"max_loan_amount"`
}

// Component is one weighted term of the score. A metric at or above Cap
// earns the full Weight.
type Component struct {
	Weight decimal.Decimal
	Cap    decimal.Decimal
}

// TierRule grants Multiplier x earnings to scores at or above MinScore.
type TierRule struct {
	MinScore   decimal.Decimal
	Tier       Tier
	Multiplier decimal.Decimal
}

// Policy holds the weights, caps and tier table.
type Policy struct {
	Volume     Component
	Earnings   Component
	Commission Component
	Count      Component
	Tiers      []TierRule // highest MinScore first
}

// DefaultPolicy: weights 40/30/20/10 against caps of 1,000,000, 500,000 and
// 50,000 currency units and 100 transactions.
func DefaultPolicy() Policy {
	return Policy{
		Volume:     Component{Weight: decimal.NewFromInt(40), Cap: minor(money.FromMajor(1_000_000))},
		Earnings:   Component{Weight: decimal.NewFromInt(30), Cap: minor(money.FromMajor(500_000))},
		Commission: Component{Weight: decimal.NewFromInt(20), Cap: minor(money.FromMajor(50_000))},
		Count:      Component{Weight: decimal.NewFromInt(10), Cap: decimal.NewFromInt(100)},
		Tiers: []TierRule{
			{MinScore: decimal.NewFromInt(80), Tier: TierPremium, Multiplier: decimal.RequireFromString("1.5")},
			{MinScore: decimal.NewFromInt(60), Tier: TierStandard, Multiplier: decimal.NewFromInt(1)},
			{MinScore: decimal.NewFromInt(40), Tier: TierBasic, Multiplier: decimal.RequireFromString("0.5")},
		},
	}
}

var maxScore = decimal.NewFromInt(100)

func minor(a money.Amount) decimal.Decimal {
	return decimal.NewFromInt(a.Int64())
}

// Evaluate scores in against the default policy.
func Evaluate(in Input) Result {
	return DefaultPolicy().Evaluate(in)
}

// Evaluate computes the score, tier and maximum loan for in.
func (p Policy) Evaluate(in Input) Result {
	score := p.Volume.score(minor(in.TotalVolume)).
		Add(p.Earnings.score(minor(in.TotalEarnings))).
		Add(p.Commission.score(minor(in.TotalCommissions))).
		Add(p.Count.score(decimal.NewFromInt(in.TransactionCount)))

	score = clamp(score, decimal.Zero, maxScore).Truncate(2)

	for _, rule := range p.Tiers {
		if score.GreaterThanOrEqual(rule.MinScore) {
			earnings := decimal.NewFromInt(max(in.TotalEarnings.Int64(), 0))
			return Result{
				Score:         score,
				Tier:          rule.Tier,
				MaxLoanAmount: money.Amount(earnings.Mul(rule.Multiplier).Floor().IntPart()),
			}
		}
	}
	return Result{Score: score, Tier: TierNotEligible, MaxLoanAmount: 0}
}

// score returns min(metric / cap * weight, weight). A non-positive cap
// contributes nothing.
func (c Component) score(metric decimal.Decimal) decimal.Decimal {
	if !c.Cap.IsPositive() || !metric.IsPositive() {
		return decimal.Zero
	}
	s := metric.Div(c.Cap).Mul(c.Weight)
	if s.GreaterThan(c.Weight) {
		return c.Weight
	}
	return s
}

func clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}
