package dto

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/domain/bundle"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/types"
)

// FunctionInput is the payload the discount platform sends for one cart evaluation
type FunctionInput struct {
	Cart         CartInput     `json:"cart"`
	DiscountNode *DiscountNode `json:"discountNode,omitempty"`
}

type CartInput struct {
	BuyerIdentity *BuyerIdentityInput `json:"buyerIdentity,omitempty"`
	Lines         []CartLineInput     `json:"lines" validate:"dive"`
}

type BuyerIdentityInput struct {
	PurchasingCompany *PurchasingCompanyInput `json:"purchasingCompany,omitempty"`
}

type PurchasingCompanyInput struct {
	Company *CompanyInput `json:"company,omitempty"`
}

type CompanyInput struct {
	ID string `json:"id"`
}

type CartLineInput struct {
	ID                    string                      `json:"id" validate:"required"`
	Quantity              int                         `json:"quantity" validate:"gt=0"`
	SellingPlanAllocation *SellingPlanAllocationInput `json:"sellingPlanAllocation,omitempty"`
	Cost                  CartLineCostInput           `json:"cost"`
	Merchandise           MerchandiseInput            `json:"merchandise"`
}

type SellingPlanAllocationInput struct {
	SellingPlan *SellingPlanInput `json:"sellingPlan,omitempty"`
}

type SellingPlanInput struct {
	ID string `json:"id"`
}

type CartLineCostInput struct {
	AmountPerQuantity MoneyInput `json:"amountPerQuantity"`
}

type MoneyInput struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
}

type MerchandiseInput struct {
	Typename string        `json:"__typename,omitempty"`
	ID       string        `json:"id"`
	Product  *ProductInput `json:"product,omitempty"`
}

type ProductInput struct {
	ID              string `json:"id"`
	InAnyCollection bool   `json:"inAnyCollection"`
}

// DiscountNode carries the merchant configuration as a JSON string
type DiscountNode struct {
	Metafield *MetafieldInput `json:"metafield,omitempty"`
}

type MetafieldInput struct {
	Value string `json:"value"`
}

// ConfigurationPayload returns the raw configuration JSON, empty when absent
func (i *FunctionInput) ConfigurationPayload() string {
	if i.DiscountNode == nil || i.DiscountNode.Metafield == nil {
		return ""
	}
	return i.DiscountNode.Metafield.Value
}

// ToCart converts the input cart to the domain cart. Lines whose merchandise is not a
// product variant cannot be bundled and are left out.
func (i *FunctionInput) ToCart() bundle.Cart {
	cart := bundle.Cart{
		Lines: lo.FilterMap(i.Cart.Lines, func(line CartLineInput, _ int) (bundle.CartLine, bool) {
			if !line.Merchandise.isProductVariant() {
				return bundle.CartLine{}, false
			}
			return line.toCartLine(), true
		}),
	}

	if company := i.companyID(); company != "" {
		cart.Buyer = &bundle.BuyerIdentity{CompanyID: company}
	}
	return cart
}

func (i *FunctionInput) companyID() string {
	buyer := i.Cart.BuyerIdentity
	if buyer == nil || buyer.PurchasingCompany == nil || buyer.PurchasingCompany.Company == nil {
		return ""
	}
	return buyer.PurchasingCompany.Company.ID
}

// older inputs omit __typename, a product reference is enough to tell a variant
func (m MerchandiseInput) isProductVariant() bool {
	if m.Typename == "" {
		return m.Product != nil
	}
	return m.Typename == types.MerchandiseTypeProductVariant
}

func (l CartLineInput) toCartLine() bundle.CartLine {
	line := bundle.CartLine{
		ID:       l.ID,
		Quantity: l.Quantity,
		Cost:     l.Cost.AmountPerQuantity.Amount,
		Merchandise: bundle.Variant{
			ID: l.Merchandise.ID,
		},
	}
	if product := l.Merchandise.Product; product != nil {
		line.Merchandise.ProductID = product.ID
		line.Merchandise.InAnyCollection = product.InAnyCollection
	}
	if allocation := l.SellingPlanAllocation; allocation != nil {
		plan := ""
		if allocation.SellingPlan != nil {
			plan = allocation.SellingPlan.ID
		}
		line.SellingPlan = &plan
	}
	return line
}
