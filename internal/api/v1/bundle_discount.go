package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/api/dto"
	ierr "github.com/thetrinh16698/coding-test-The-Trinh/internal/errors"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/logger"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/service"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/types"
)

type BundleDiscountHandler struct {
	bundleDiscountService service.BundleDiscountService
	logger                *logger.Logger
}

func NewBundleDiscountHandler(bundleDiscountService service.BundleDiscountService, logger *logger.Logger) *BundleDiscountHandler {
	return &BundleDiscountHandler{
		bundleDiscountService: bundleDiscountService,
		logger:                logger,
	}
}

// @Summary Run the bundle discount function
// @Description Evaluates a cart against the bundle configuration of its discount node
// @Tags BundleDiscounts
// @Accept json
// @Produce json
// @Param input body dto.FunctionInput true "Function input"
// @Success 200 {object} dto.FunctionResult
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /bundle-discounts/run [post]
func (h *BundleDiscountHandler) Run(c *gin.Context) {
	var req dto.FunctionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.bundleDiscountService.Run(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.logger.Debugw("bundle discount evaluated",
		"request_id", types.GetRequestID(c.Request.Context()),
		"strategy", resp.DiscountApplicationStrategy,
		"discounts", len(resp.Discounts),
	)

	c.JSON(http.StatusOK, resp)
}

// @Summary Validate a bundle configuration
// @Description Checks a raw bundle configuration as it would be stored in the discount metafield
// @Tags BundleDiscounts
// @Accept json
// @Produce json
// @Param configuration body dto.BundleConfiguration true "Bundle configuration"
// @Success 200 {object} dto.BundleConfiguration
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /bundle-discounts/validate [post]
func (h *BundleDiscountHandler) ValidateConfiguration(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Could not read request body").
			Mark(ierr.ErrValidation))
		return
	}

	cfg, err := h.bundleDiscountService.ValidateConfiguration(c.Request.Context(), string(raw))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}
