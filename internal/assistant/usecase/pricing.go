package usecase

import (
	"context"
	"fmt"
	"strings"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/model"
)

// Tier discounts. GOLD and SILVER are the only discounted tiers; every
// other tier pays the base price.
const (
	goldDiscount   = 0.15
	silverDiscount = 0.10

	// bulkQuantityMin is the quantity at which the bulk price list is
	// consulted instead of the catalog unit price.
	bulkQuantityMin = 10
)

// calculatePrice is the pure pricing rule: final = base * qty * (1 - discount).
func calculatePrice(tier string, basePrice float64, quantity int) (discount, finalPrice float64) {
	switch tier {
	case "GOLD":
		discount = goldDiscount
	case "SILVER":
		discount = silverDiscount
	}
	finalPrice = basePrice * float64(quantity) * (1 - discount)
	return discount, finalPrice
}

// PricingQuote computes a tier-discounted quote. The base unit price is
// taken from the input when given, from the bulk price list for bulk
// quantities, and from the catalog otherwise.
func (uc *implUseCase) PricingQuote(ctx context.Context, input assistant.PricingInput) (model.Result, error) {
	if input.SKU == "" {
		return model.Result{}, fmt.Errorf("%w: SKU is required", assistant.ErrValidation)
	}
	if input.Quantity < 0 {
		return model.Result{}, fmt.Errorf("%w: quantity must not be negative", assistant.ErrValidation)
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = DefaultQuantity
	}
	tier := strings.ToUpper(input.Tier)

	uc.l.Infof(ctx, "%s: sku=%s tier=%s qty=%d", LogPrefixPricing, input.SKU, tier, quantity)

	basePrice := input.BasePrice
	if basePrice <= 0 {
		basePrice, _ = uc.resolveBasePrice(ctx, input.SKU, quantity)
		if basePrice <= 0 {
			product, err := uc.repo.GetProduct(ctx, input.SKU)
			if err != nil {
				return model.Result{}, fmt.Errorf("failed to fetch product %s: %w", input.SKU, err)
			}
			basePrice = product.Price
		}
	}

	discount, finalPrice := calculatePrice(tier, basePrice, quantity)

	prompt := fmt.Sprintf(PromptPricing,
		input.SKU, tier, quantity, basePrice, discount*100, finalPrice)
	message, err := uc.generate(ctx, prompt, PricingTemperature)
	if err != nil {
		return model.Result{}, err
	}

	return model.Result{
		Message: message,
		Pricing: &model.PricingResult{
			SKU:        input.SKU,
			Tier:       tier,
			Discount:   discount,
			Quantity:   quantity,
			FinalPrice: finalPrice,
		},
	}, nil
}

// resolveBasePrice consults the bulk price list for bulk quantities.
// Failures are soft; the caller falls back to the catalog price.
func (uc *implUseCase) resolveBasePrice(ctx context.Context, sku string, quantity int) (float64, bool) {
	if quantity < bulkQuantityMin {
		return 0, false
	}
	price, err := uc.repo.GetBulkPrice(ctx, sku, quantity)
	if err != nil {
		uc.l.Warnf(ctx, "%s: bulk price lookup failed for %s: %v", LogPrefixPricing, sku, err)
		return 0, false
	}
	return price, price > 0
}
