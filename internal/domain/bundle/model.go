// Package bundle resolves volume tiers for a cart and turns the best tier into
// discount instructions. Everything in it is a pure function of its inputs.
package bundle

import (
	"github.com/shopspring/decimal"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/types"
)

// Variant is the purchasable merchandise a cart line points at
type Variant struct {
	ID              string
	ProductID       string
	InAnyCollection bool
}

// CartLine is one line of the cart snapshot. Lines are never mutated, only copied.
type CartLine struct {
	ID          string
	Quantity    int
	Cost        decimal.Decimal // per unit
	Merchandise Variant
	SellingPlan *string // set when the line belongs to a subscription
}

// Subtotal returns cost * quantity
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Cost.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// BuyerIdentity identifies who is purchasing. A non-empty CompanyID marks a
// business-account purchaser.
type BuyerIdentity struct {
	CompanyID string
}

// IsBusiness reports whether the buyer purchases on behalf of a company
func (b *BuyerIdentity) IsBusiness() bool {
	return b != nil && b.CompanyID != ""
}

type Cart struct {
	Buyer *BuyerIdentity
	Lines []CartLine
}

type Tier struct {
	Quantity int
	Amount   decimal.Decimal
	Title    string
}

// Configuration is the merchant's bundle definition
type Configuration struct {
	Title        string
	DiscountType types.BundleDiscountType
	Products     []string
	Collections  []string
	Tiers        []Tier
}

// Target is a variant and the quantity a discount applies to
type Target struct {
	VariantID string
	Quantity  int
}

// DiscountValue is either a PercentageValue or a FixedAmountValue
type DiscountValue interface {
	isDiscountValue()
}

// PercentageValue deducts Value percent, e.g. 10 means 10% off
type PercentageValue struct {
	Value decimal.Decimal
}

// FixedAmountValue deducts Amount once across all targets
type FixedAmountValue struct {
	Amount decimal.Decimal
}

func (PercentageValue) isDiscountValue()  {}
func (FixedAmountValue) isDiscountValue() {}

type Discount struct {
	Message string
	Value   DiscountValue
	Targets []Target
}

// Entry is a computed discount before consolidation. Lines keep their cost so that
// several entries can be priced into a single fixed amount.
type Entry struct {
	Message string
	Value   DiscountValue
	Lines   []CartLine
}

type Result struct {
	Strategy  types.DiscountApplicationStrategy
	Discounts []Discount
}

// EmptyResult is the canonical no-discount result
func EmptyResult() Result {
	return Result{
		Strategy:  types.DiscountApplicationStrategyFirst,
		Discounts: []Discount{},
	}
}

// IsEmpty reports whether r applies no discount
func (r Result) IsEmpty() bool {
	return len(r.Discounts) == 0
}
