package testutil

import (
	"github.com/shopspring/decimal"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/api/dto"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/types"
)

// CartLine builds a product variant cart line priced in EUR
func CartLine(id, variantID, productID string, quantity int, amount string) dto.CartLineInput {
	return dto.CartLineInput{
		ID:       id,
		Quantity: quantity,
		Cost: dto.CartLineCostInput{
			AmountPerQuantity: dto.MoneyInput{
				Amount:       decimal.RequireFromString(amount),
				CurrencyCode: "EUR",
			},
		},
		Merchandise: dto.MerchandiseInput{
			Typename: types.MerchandiseTypeProductVariant,
			ID:       variantID,
			Product:  &dto.ProductInput{ID: productID},
		},
	}
}

// FunctionInput wraps lines and a raw configuration payload into a function input
func FunctionInput(configuration string, lines ...dto.CartLineInput) *dto.FunctionInput {
	return &dto.FunctionInput{
		Cart: dto.CartInput{Lines: lines},
		DiscountNode: &dto.DiscountNode{
			Metafield: &dto.MetafieldInput{Value: configuration},
		},
	}
}

// WithCompany marks the buyer of input as purchasing for a company
func WithCompany(input *dto.FunctionInput, companyID string) *dto.FunctionInput {
	input.Cart.BuyerIdentity = &dto.BuyerIdentityInput{
		PurchasingCompany: &dto.PurchasingCompanyInput{
			Company: &dto.CompanyInput{ID: companyID},
		},
	}
	return input
}
