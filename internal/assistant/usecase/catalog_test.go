package usecase_test

import (
	"context"
	"errors"
	"testing"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/assistant/usecase"
	"commerce-assistant/internal/model"
)

func TestCatalogSearch(t *testing.T) {
	newUC := func(repo *mockCommerceRepo) assistant.UseCase {
		return usecase.New(&mockLogger{}, &mockGenerator{}, &mockRouter{}, repo, &mockPolicyRepo{}, &mockDocsRepo{}, false)
	}

	t.Run("Empty Query", func(t *testing.T) {
		uc := newUC(&mockCommerceRepo{})
		_, err := uc.CatalogSearch(context.Background(), assistant.CatalogInput{})
		if !errors.Is(err, assistant.ErrEmptyQuery) {
			t.Errorf("expected ErrEmptyQuery, got %v", err)
		}
	})

	t.Run("B2C Hit Is Enriched Without Contract Pricing", func(t *testing.T) {
		uc := newUC(&mockCommerceRepo{})
		res, err := uc.CatalogSearch(context.Background(), assistant.CatalogInput{
			Query:        "noise cancelling headphones",
			CustomerType: "B2C",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Catalog == nil || len(res.Catalog.Products) != 1 {
			t.Fatalf("expected 1 product, got %+v", res.Catalog)
		}
		p := res.Catalog.Products[0]
		if p.Inventory != "Available for immediate dispatch" {
			t.Errorf("inventory = %q", p.Inventory)
		}
		if p.Availability != "IN_STOCK" {
			t.Errorf("availability = %q, want IN_STOCK", p.Availability)
		}
		if p.ContractPrice != nil {
			t.Error("B2C hit must not carry contract pricing")
		}
	})

	t.Run("B2B Hit Carries Contract Pricing", func(t *testing.T) {
		uc := newUC(&mockCommerceRepo{})
		res, err := uc.CatalogSearch(context.Background(), assistant.CatalogInput{
			Query:        "headphones",
			CustomerID:   "CUST-77",
			CustomerType: "B2B",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := res.Catalog.Products[0]
		if p.ContractPrice == nil {
			t.Fatal("expected contract pricing for B2B customer")
		}
		if p.ContractPrice.ContractPrice != 2499 {
			t.Errorf("contract price = %v, want 2499", p.ContractPrice.ContractPrice)
		}
	})

	t.Run("B2B Without Customer ID Skips Contract Pricing", func(t *testing.T) {
		repo := &mockCommerceRepo{
			getContractPriceFunc: func(customerID, sku string) (model.ContractPrice, error) {
				t.Error("contract price must not be fetched without a customer ID")
				return model.ContractPrice{}, nil
			},
		}
		uc := newUC(repo)
		if _, err := uc.CatalogSearch(context.Background(), assistant.CatalogInput{
			Query:        "headphones",
			CustomerType: "B2B",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Enrichment Failure Propagates", func(t *testing.T) {
		repo := &mockCommerceRepo{
			getInventoryFunc: func(sku string) (string, error) {
				return "", errors.New("inventory down")
			},
		}
		uc := newUC(repo)
		if _, err := uc.CatalogSearch(context.Background(), assistant.CatalogInput{Query: "headphones"}); err == nil {
			t.Error("expected error when inventory lookup fails")
		}
	})
}

func TestPricingQuote(t *testing.T) {
	newUC := func(repo *mockCommerceRepo) assistant.UseCase {
		return usecase.New(&mockLogger{}, &mockGenerator{}, &mockRouter{}, repo, &mockPolicyRepo{}, &mockDocsRepo{}, false)
	}

	t.Run("Gold Tier Quote", func(t *testing.T) {
		uc := newUC(&mockCommerceRepo{})
		res, err := uc.PricingQuote(context.Background(), assistant.PricingInput{
			SKU: "SKU123", Quantity: 3, Tier: "GOLD", BasePrice: 100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Pricing == nil {
			t.Fatal("expected pricing payload")
		}
		if res.Pricing.FinalPrice != 255 {
			t.Errorf("final = %v, want 255", res.Pricing.FinalPrice)
		}
		if res.Pricing.Discount != 0.15 {
			t.Errorf("discount = %v, want 0.15", res.Pricing.Discount)
		}
	})

	t.Run("Base Price From Catalog", func(t *testing.T) {
		uc := newUC(&mockCommerceRepo{})
		res, err := uc.PricingQuote(context.Background(), assistant.PricingInput{
			SKU: "SKU123", Quantity: 3, Tier: "BRONZE",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Pricing.FinalPrice != 300 {
			t.Errorf("final = %v, want 300 (catalog base 100, no discount)", res.Pricing.FinalPrice)
		}
	})

	t.Run("Bulk Quantity Uses Bulk Price List", func(t *testing.T) {
		uc := newUC(&mockCommerceRepo{})
		res, err := uc.PricingQuote(context.Background(), assistant.PricingInput{
			SKU: "SKU123", Quantity: 10, Tier: "SILVER",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// bulk unit price 95, 10 units, 10% silver discount
		if res.Pricing.FinalPrice != 855 {
			t.Errorf("final = %v, want 855", res.Pricing.FinalPrice)
		}
	})

	t.Run("Bulk Price Failure Falls Back To Catalog", func(t *testing.T) {
		repo := &mockCommerceRepo{
			getBulkPriceFunc: func(sku string, quantity int) (float64, error) {
				return 0, errors.New("pricing service down")
			},
		}
		uc := newUC(repo)
		res, err := uc.PricingQuote(context.Background(), assistant.PricingInput{
			SKU: "SKU123", Quantity: 10, Tier: "",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Pricing.FinalPrice != 1000 {
			t.Errorf("final = %v, want 1000 (catalog base 100)", res.Pricing.FinalPrice)
		}
	})

	t.Run("Missing SKU", func(t *testing.T) {
		uc := newUC(&mockCommerceRepo{})
		_, err := uc.PricingQuote(context.Background(), assistant.PricingInput{Quantity: 1})
		if !errors.Is(err, assistant.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}
