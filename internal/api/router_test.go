package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/api/dto"
	v1 "github.com/thetrinh16698/coding-test-The-Trinh/internal/api/v1"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/cache"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/config"
	ierr "github.com/thetrinh16698/coding-test-The-Trinh/internal/errors"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/logger"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/sentry"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/service"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/types"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/validator"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const runPayload = `{
	"cart": {
		"lines": [
			{
				"id": "gid://shopify/CartLine/0",
				"quantity": 3,
				"cost": {"amountPerQuantity": {"amount": "10.95", "currencyCode": "EUR"}},
				"merchandise": {
					"__typename": "ProductVariant",
					"id": "gid://shopify/ProductVariant/1",
					"product": {"id": "gid://shopify/Product/Apple", "inAnyCollection": false}
				}
			}
		]
	},
	"discountNode": {
		"metafield": {
			"value": "{\"title\":\"Bundle\",\"discountType\":\"PERCENTAGE\",\"products\":[\"gid://shopify/Product/Apple\"],\"tiers\":[{\"title\":\"3 FRUITS - 10% OFF\",\"amount\":10,\"quantity\":3}]}"
		}
	}
}`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.GetDefaultConfig()
	log := logger.NewNopLogger()
	configCache := cache.NewInMemoryCache(cfg, log)
	params := service.NewServiceParams(log, cfg, validator.NewValidator(), configCache, sentry.NewSentryService(cfg, log))
	svc := service.NewBundleDiscountService(params)

	return NewRouter(Handlers{
		Health:         v1.NewHealthHandler(cfg, configCache, log),
		BundleDiscount: v1.NewBundleDiscountHandler(svc, log),
	}, cfg, log)
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"cached_configurations":0`)
	assert.NotEmpty(t, w.Header().Get(types.HeaderRequestID))
}

func TestRouter_RunBundleDiscount(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodPost, "/v1/bundle-discounts/run", runPayload)
	require.Equal(t, http.StatusOK, w.Code)

	var result dto.FunctionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, types.DiscountApplicationStrategyMaximum, result.DiscountApplicationStrategy)
	require.Len(t, result.Discounts, 1)
	assert.Equal(t, "3 FRUITS - 10% OFF", result.Discounts[0].Message)
	require.NotNil(t, result.Discounts[0].Value.Percentage)
	assert.Equal(t, "10", result.Discounts[0].Value.Percentage.Value)
}

func TestRouter_RunBundleDiscount_InvalidBody(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodPost, "/v1/bundle-discounts/run", `{"cart":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ierr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid request format", resp.Error.Display)
}

func TestRouter_ValidateConfiguration(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid",
			body:       `{"discountType":"FIXED_BUNDLE_PRICE","tiers":[{"amount":50,"quantity":3}]}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown_discount_type",
			body:       `{"discountType":"BOGO","tiers":[{"amount":50,"quantity":3}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "percentage_above_100",
			body:       `{"discountType":"PERCENTAGE","tiers":[{"amount":10,"quantity":3},{"amount":150,"quantity":6}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero_quantity_tier",
			body:       `{"discountType":"PERCENTAGE","tiers":[{"amount":1,"quantity":0}]}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty",
			body:       "",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodPost, "/v1/bundle-discounts/validate", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
