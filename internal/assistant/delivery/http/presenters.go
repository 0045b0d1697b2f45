package http

import (
	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/model"
)

// --- Request DTOs ---

type queryReq struct {
	Query        string `json:"query"         binding:"required,min=1,max=2000"`
	CustomerID   string `json:"customer_id"   binding:"max=64"`
	CustomerType string `json:"customer_type" binding:"omitempty,oneof=B2C B2B"`
	CustomerTier string `json:"customer_tier" binding:"max=32"`
}

func (r queryReq) toInput() assistant.QueryInput {
	return assistant.QueryInput{
		Query:        r.Query,
		CustomerID:   r.CustomerID,
		CustomerType: r.CustomerType,
		CustomerTier: r.CustomerTier,
	}
}

type catalogReq struct {
	Query        string `json:"query"         binding:"required,min=1,max=2000"`
	CustomerID   string `json:"customer_id"   binding:"max=64"`
	CustomerType string `json:"customer_type" binding:"omitempty,oneof=B2C B2B"`
}

func (r catalogReq) toInput() assistant.CatalogInput {
	customerType := r.CustomerType
	if customerType == "" {
		customerType = "B2C"
	}
	return assistant.CatalogInput{
		Query:        r.Query,
		CustomerID:   r.CustomerID,
		CustomerType: customerType,
	}
}

type returnReq struct {
	OrderID string `json:"order_id" binding:"required"`
	SKU     string `json:"sku"      binding:"required"`
}

func (r returnReq) toInput() assistant.ReturnInput {
	return assistant.ReturnInput{
		OrderID: r.OrderID,
		SKU:     r.SKU,
	}
}

type cancelReq struct {
	OrderID string `json:"order_id" binding:"required"`
}

type pricingReq struct {
	SKU       string  `form:"sku"        binding:"required"`
	Quantity  int     `form:"quantity"   binding:"omitempty,min=1"`
	Tier      string  `form:"tier"       binding:"max=32"`
	BasePrice float64 `form:"base_price" binding:"omitempty,min=0"`
}

func (r pricingReq) toInput() assistant.PricingInput {
	return assistant.PricingInput{
		SKU:       r.SKU,
		Quantity:  r.Quantity,
		Tier:      r.Tier,
		BasePrice: r.BasePrice,
	}
}

type askReq struct {
	Query string `form:"q" binding:"required,min=1,max=2000"`
}

type tokenReq struct {
	UserID string `json:"user_id" binding:"required,max=64"`
	Role   string `json:"role"    binding:"required,max=32"`
}

// --- Response DTOs ---

type queryResp struct {
	Intent string        `json:"intent"`
	Result *model.Result `json:"result"`
}

func newQueryResp(state model.ConversationState) queryResp {
	return queryResp{
		Intent: string(state.Intent),
		Result: state.Result,
	}
}

type tokenResp struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
}
