package service

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/api/dto"
	ierr "github.com/thetrinh16698/coding-test-The-Trinh/internal/errors"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/testutil"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/types"
)

const (
	fruitConfiguration = `{
		"id": "148",
		"tiers": [
			{"title": "3 FRUITS - 10% OFF", "amount": 10, "quantity": 3},
			{"title": "6 FRUITS - 17% OFF", "amount": 17, "quantity": 6},
			{"title": "9 FRUITS - 20% OFF", "amount": 20, "quantity": 9}
		],
		"collections": [],
		"products": ["gid://shopify/Product/Apple", "gid://shopify/Product/Banana", "gid://shopify/Product/Cherry"],
		"discountType": "PERCENTAGE",
		"title": "Chroma Bundle Builder",
		"allowStackingWithSubscription": false
	}`

	bundlePriceConfiguration = `{
		"tiers": [
			{"title": "3 Items Bundle for $50", "amount": 50, "quantity": 3},
			{"title": "6 Items Bundle for $90", "amount": 90, "quantity": 6},
			{"title": "9 Items Bundle for $120", "amount": 120, "quantity": 9}
		],
		"products": ["gid://shopify/Product/Apple", "gid://shopify/Product/Banana"],
		"collections": [],
		"discountType": "FIXED_BUNDLE_PRICE",
		"title": "Fixed Bundle Price Test"
	}`
)

type BundleDiscountServiceSuite struct {
	testutil.BaseServiceTestSuite
	service BundleDiscountService
}

func TestBundleDiscountService(t *testing.T) {
	suite.Run(t, new(BundleDiscountServiceSuite))
}

func (s *BundleDiscountServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.GetConfig().Discount.NegativeBundlePolicy = types.NegativeDiscountPolicySkip
	s.service = NewBundleDiscountService(NewServiceParams(s.GetLogger(), s.GetConfig(), s.GetValidator(), s.GetCache(), s.GetSentry()))
}

func (s *BundleDiscountServiceSuite) run(input *dto.FunctionInput) *dto.FunctionResult {
	result, err := s.service.Run(s.GetContext(), input)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	return result
}

func (s *BundleDiscountServiceSuite) assertEmpty(result *dto.FunctionResult) {
	s.Equal(types.DiscountApplicationStrategyFirst, result.DiscountApplicationStrategy)
	s.Empty(result.Discounts)
	s.NotNil(result.Discounts)
}

func (s *BundleDiscountServiceSuite) TestRun_MultipleFruitLines() {
	result := s.run(testutil.FunctionInput(fruitConfiguration,
		testutil.CartLine("gid://shopify/CartLine/0", "gid://shopify/ProductVariant/39370591273049", "gid://shopify/Product/Apple", 3, "10.95"),
		testutil.CartLine("gid://shopify/CartLine/1", "gid://shopify/ProductVariant/32385157005401", "gid://shopify/Product/Banana", 3, "10.95"),
	))

	s.Equal(types.DiscountApplicationStrategyMaximum, result.DiscountApplicationStrategy)
	s.Require().Len(result.Discounts, 1)

	discount := result.Discounts[0]
	s.Equal("6 FRUITS - 17% OFF", discount.Message)
	s.Require().NotNil(discount.Value.Percentage)
	s.Nil(discount.Value.FixedAmount)
	s.Equal("17", discount.Value.Percentage.Value)
	s.Equal([]dto.TargetResponse{
		{ProductVariant: dto.ProductVariantTarget{ID: "gid://shopify/ProductVariant/39370591273049", Quantity: 3}},
		{ProductVariant: dto.ProductVariantTarget{ID: "gid://shopify/ProductVariant/32385157005401", Quantity: 3}},
	}, discount.Targets)
}

func (s *BundleDiscountServiceSuite) TestRun_FixedBundlePrice() {
	tests := []struct {
		name            string
		lines           []dto.CartLineInput
		expectedAmount  string
		expectedMessage string
	}{
		{
			name: "three_items",
			lines: []dto.CartLineInput{
				testutil.CartLine("gid://shopify/CartLine/0", "gid://shopify/ProductVariant/1", "gid://shopify/Product/Apple", 2, "20.00"),
				testutil.CartLine("gid://shopify/CartLine/1", "gid://shopify/ProductVariant/2", "gid://shopify/Product/Banana", 1, "30.00"),
			},
			expectedAmount:  "20.00",
			expectedMessage: "3 Items Bundle for $50",
		},
		{
			name: "six_items",
			lines: []dto.CartLineInput{
				testutil.CartLine("gid://shopify/CartLine/0", "gid://shopify/ProductVariant/1", "gid://shopify/Product/Apple", 6, "20.00"),
			},
			expectedAmount:  "30.00",
			expectedMessage: "6 Items Bundle for $90",
		},
		{
			name: "nine_items",
			lines: []dto.CartLineInput{
				testutil.CartLine("gid://shopify/CartLine/0", "gid://shopify/ProductVariant/1", "gid://shopify/Product/Apple", 9, "20.00"),
			},
			expectedAmount:  "60.00",
			expectedMessage: "9 Items Bundle for $120",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result := s.run(testutil.FunctionInput(bundlePriceConfiguration, tt.lines...))
			s.Require().Len(result.Discounts, 1)
			s.Require().NotNil(result.Discounts[0].Value.FixedAmount)
			s.Equal(tt.expectedAmount, result.Discounts[0].Value.FixedAmount.Amount)
			s.Equal(tt.expectedMessage, result.Discounts[0].Message)
		})
	}
}

func (s *BundleDiscountServiceSuite) TestRun_BelowThreshold() {
	result := s.run(testutil.FunctionInput(bundlePriceConfiguration,
		testutil.CartLine("gid://shopify/CartLine/0", "gid://shopify/ProductVariant/1", "gid://shopify/Product/Apple", 1, "20.00"),
	))
	s.assertEmpty(result)
}

func (s *BundleDiscountServiceSuite) TestRun_BusinessBuyer() {
	input := testutil.WithCompany(testutil.FunctionInput(fruitConfiguration,
		testutil.CartLine("gid://shopify/CartLine/0", "gid://shopify/ProductVariant/1", "gid://shopify/Product/Apple", 9, "10.95"),
	), "gid://shopify/Company/1")

	s.assertEmpty(s.run(input))
}

func (s *BundleDiscountServiceSuite) TestRun_UnusableConfiguration() {
	line := testutil.CartLine("gid://shopify/CartLine/0", "gid://shopify/ProductVariant/1", "gid://shopify/Product/Apple", 9, "10.95")

	for name, payload := range map[string]string{
		"missing":      "",
		"malformed":    `{"tiers": [`,
		"unknown_type": `{"discountType": "BOGO", "tiers": [{"amount": 10, "quantity": 3}]}`,
	} {
		s.Run(name, func() {
			s.assertEmpty(s.run(testutil.FunctionInput(payload, line)))
		})
	}

	s.assertEmpty(s.run(&dto.FunctionInput{Cart: dto.CartInput{Lines: []dto.CartLineInput{line}}}))
}

func (s *BundleDiscountServiceSuite) TestRun_NegativeBundlePolicy() {
	input := testutil.FunctionInput(bundlePriceConfiguration,
		testutil.CartLine("gid://shopify/CartLine/0", "gid://shopify/ProductVariant/1", "gid://shopify/Product/Apple", 3, "10.00"),
	)

	s.assertEmpty(s.run(input))

	s.GetConfig().Discount.NegativeBundlePolicy = types.NegativeDiscountPolicyPassthrough
	s.service = NewBundleDiscountService(NewServiceParams(s.GetLogger(), s.GetConfig(), s.GetValidator(), s.GetCache(), s.GetSentry()))

	result := s.run(input)
	s.Require().Len(result.Discounts, 1)
	s.Equal("-20.00", result.Discounts[0].Value.FixedAmount.Amount)
}

func (s *BundleDiscountServiceSuite) TestRun_InvalidInput() {
	_, err := s.service.Run(s.GetContext(), nil)
	s.True(ierr.IsValidation(err))

	_, err = s.service.Run(s.GetContext(), testutil.FunctionInput(fruitConfiguration,
		testutil.CartLine("gid://shopify/CartLine/0", "gid://shopify/ProductVariant/1", "gid://shopify/Product/Apple", 0, "10.95"),
	))
	s.True(ierr.IsValidation(err))
}

func (s *BundleDiscountServiceSuite) TestValidateConfiguration() {
	cfg, err := s.service.ValidateConfiguration(s.GetContext(), fruitConfiguration)
	s.Require().NoError(err)
	s.Len(cfg.Tiers, 3)

	_, err = s.service.ValidateConfiguration(s.GetContext(), `{"discountType": "PERCENTAGE", "tiers": [{"amount": 10, "quantity": -1}]}`)
	s.True(ierr.IsValidation(err))
	s.NotEmpty(ierr.ReportableDetails(err))
}

func (s *BundleDiscountServiceSuite) TestRun_CachesParsedConfiguration() {
	input := testutil.FunctionInput(fruitConfiguration,
		testutil.CartLine("gid://shopify/CartLine/0", "gid://shopify/ProductVariant/1", "gid://shopify/Product/Apple", 3, "10.95"),
	)

	first := s.run(input)
	s.Equal(1, s.GetCache().ItemCount())

	second := s.run(input)
	s.Equal(first, second)
	s.Equal(1, s.GetCache().ItemCount())

	s.run(testutil.FunctionInput(`{"tiers": [`, input.Cart.Lines...))
	s.Equal(1, s.GetCache().ItemCount())
}

func (s *BundleDiscountServiceSuite) TestRun_InvalidTierLeavesOtherTiersApplicable() {
	line := testutil.CartLine("gid://shopify/CartLine/0", "gid://shopify/ProductVariant/1", "gid://shopify/Product/Apple", 3, "10.00")

	tests := []struct {
		name          string
		configuration string
		expected      string
	}{
		{
			name:          "zero_threshold_tier",
			configuration: `{"discountType": "PERCENTAGE", "products": ["gid://shopify/Product/Apple"], "tiers": [{"title": "3 - 10%", "amount": 10, "quantity": 3}, {"title": "any - 1%", "amount": 1, "quantity": 0}]}`,
			expected:      "10",
		},
		{
			name:          "percentage_above_100",
			configuration: `{"discountType": "PERCENTAGE", "products": ["gid://shopify/Product/Apple"], "tiers": [{"title": "3 - 10%", "amount": 10, "quantity": 3}, {"title": "2 - 150%", "amount": 150, "quantity": 2}]}`,
			expected:      "10",
		},
		{
			name:          "only_zero_threshold_reached",
			configuration: `{"discountType": "PERCENTAGE", "products": ["gid://shopify/Product/Apple"], "tiers": [{"title": "6 - 10%", "amount": 10, "quantity": 6}, {"title": "any - 1%", "amount": 1, "quantity": 0}]}`,
			expected:      "1",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result := s.run(testutil.FunctionInput(tt.configuration, line))
			s.Require().Len(result.Discounts, 1)
			s.Require().NotNil(result.Discounts[0].Value.Percentage)
			s.Equal(tt.expected, result.Discounts[0].Value.Percentage.Value)
		})
	}
}
