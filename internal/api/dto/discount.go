package dto

import (
	"github.com/samber/lo"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/domain/bundle"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/types"
)

// FunctionResult is the discount instruction set returned to the platform
type FunctionResult struct {
	DiscountApplicationStrategy types.DiscountApplicationStrategy `json:"discountApplicationStrategy"`
	Discounts                   []DiscountResponse                `json:"discounts"`
}

type DiscountResponse struct {
	Message string                `json:"message,omitempty"`
	Value   DiscountValueResponse `json:"value"`
	Targets []TargetResponse      `json:"targets"`
}

// DiscountValueResponse has exactly one of its fields set
type DiscountValueResponse struct {
	Percentage  *PercentageResponse  `json:"percentage,omitempty"`
	FixedAmount *FixedAmountResponse `json:"fixedAmount,omitempty"`
}

type PercentageResponse struct {
	Value string `json:"value"`
}

type FixedAmountResponse struct {
	Amount string `json:"amount"`
}

type TargetResponse struct {
	ProductVariant ProductVariantTarget `json:"productVariant"`
}

type ProductVariantTarget struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// EmptyFunctionResult is the wire form of bundle.EmptyResult
func EmptyFunctionResult() *FunctionResult {
	return NewFunctionResult(bundle.EmptyResult())
}

func NewFunctionResult(result bundle.Result) *FunctionResult {
	return &FunctionResult{
		DiscountApplicationStrategy: result.Strategy,
		Discounts: lo.Map(result.Discounts, func(d bundle.Discount, _ int) DiscountResponse {
			return DiscountResponse{
				Message: d.Message,
				Value:   newDiscountValueResponse(d.Value),
				Targets: lo.Map(d.Targets, func(t bundle.Target, _ int) TargetResponse {
					return TargetResponse{
						ProductVariant: ProductVariantTarget{
							ID:       t.VariantID,
							Quantity: t.Quantity,
						},
					}
				}),
			}
		}),
	}
}

func newDiscountValueResponse(value bundle.DiscountValue) DiscountValueResponse {
	switch v := value.(type) {
	case bundle.PercentageValue:
		return DiscountValueResponse{
			Percentage: &PercentageResponse{Value: v.Value.String()},
		}
	case bundle.FixedAmountValue:
		return DiscountValueResponse{
			FixedAmount: &FixedAmountResponse{Amount: v.Amount.StringFixed(bundle.MoneyPrecision)},
		}
	default:
		return DiscountValueResponse{}
	}
}
