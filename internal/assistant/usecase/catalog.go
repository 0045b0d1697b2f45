package usecase

import (
	"context"
	"fmt"
	"strings"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/model"
)

// CatalogSearch searches the catalog and enriches every hit with detail
// and inventory data. B2B customers with a known ID additionally get
// contract pricing per hit.
func (uc *implUseCase) CatalogSearch(ctx context.Context, input assistant.CatalogInput) (model.Result, error) {
	if input.Query == "" {
		return model.Result{}, assistant.ErrEmptyQuery
	}

	uc.l.Infof(ctx, "%s: query=%q type=%s", LogPrefixCatalog, input.Query, input.CustomerType)

	hits, err := uc.repo.SearchCatalog(ctx, input.Query)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to search catalog: %w", err)
	}

	b2b := input.CustomerType == "B2B" && input.CustomerID != ""

	summaries := make([]model.ProductSummary, 0, len(hits))
	for _, hit := range hits {
		detail, err := uc.repo.GetProduct(ctx, hit.SKU)
		if err != nil {
			return model.Result{}, fmt.Errorf("failed to fetch product %s: %w", hit.SKU, err)
		}
		inventory, err := uc.repo.GetInventory(ctx, hit.SKU)
		if err != nil {
			return model.Result{}, fmt.Errorf("failed to fetch inventory %s: %w", hit.SKU, err)
		}

		summary := model.ProductSummary{
			SKU:          hit.SKU,
			Name:         hit.Name,
			Price:        hit.Price,
			Category:     hit.Category,
			Features:     hit.Features,
			Description:  detail.Description,
			Availability: detail.Availability,
			Rating:       detail.Rating,
			Inventory:    inventory,
		}

		if b2b {
			contract, err := uc.repo.GetContractPrice(ctx, input.CustomerID, hit.SKU)
			if err != nil {
				return model.Result{}, fmt.Errorf("failed to fetch contract price %s: %w", hit.SKU, err)
			}
			summary.ContractPrice = &contract
		}

		summaries = append(summaries, summary)
	}

	prompt := fmt.Sprintf(PromptCatalog,
		input.CustomerType, input.Query, formatProducts(summaries), formatPricing(summaries))
	message, err := uc.generate(ctx, prompt, CatalogTemperature)
	if err != nil {
		return model.Result{}, err
	}

	return model.Result{
		Message: message,
		Catalog: &model.CatalogResult{Products: summaries},
	}, nil
}

func formatProducts(products []model.ProductSummary) string {
	if len(products) == 0 {
		return "No matching products found."
	}
	var b strings.Builder
	for i, p := range products {
		fmt.Fprintf(&b, "%d. %s (%s) - %.2f\n   Category: %s | Features: %s\n   %s\n   Availability: %s | Rating: %.1f | Inventory: %s\n",
			i+1, p.Name, p.SKU, p.Price,
			p.Category, strings.Join(p.Features, ", "),
			p.Description, p.Availability, p.Rating, p.Inventory)
	}
	return b.String()
}

func formatPricing(products []model.ProductSummary) string {
	var b strings.Builder
	for _, p := range products {
		if p.ContractPrice == nil {
			continue
		}
		fmt.Fprintf(&b, "%s: contract price %.2f, min order qty %d, discount %.0f%%\n",
			p.SKU, p.ContractPrice.ContractPrice, p.ContractPrice.MinOrderQty, p.ContractPrice.DiscountPercent)
	}
	if b.Len() == 0 {
		return "Standard pricing applies"
	}
	return b.String()
}
