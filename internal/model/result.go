package model

// Result is the outcome of exactly one handler. Message is always set;
// exactly one payload pointer is populated, keyed by the handler that
// produced it. Immutable once constructed.
type Result struct {
	Message string         `json:"message"`
	Err     string         `json:"error,omitempty"`
	ErrURL  string         `json:"url,omitempty"`
	Order   *OrderResult   `json:"order,omitempty"`
	Cancel  *CancelResult  `json:"cancel,omitempty"`
	Return  *ReturnResult  `json:"return,omitempty"`
	Catalog *CatalogResult `json:"catalog,omitempty"`
	Pricing *PricingResult `json:"pricing,omitempty"`
}

// OrderResult is produced by the order status handler.
type OrderResult struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	ETA     string `json:"eta"`
}

// CancelResult is produced by the cancellation handler.
type CancelResult struct {
	OrderID         string  `json:"order_id"`
	Eligible        bool    `json:"eligible"`
	RefundAmount    float64 `json:"refund_amount"`
	CancelRequestID string  `json:"cancel_request_id"`
}

// ReturnResult is produced by the return handler.
type ReturnResult struct {
	OrderID      string  `json:"order_id"`
	SKU          string  `json:"sku"`
	Eligible     bool    `json:"eligible"`
	RefundAmount float64 `json:"refund_amount"`
	ReturnID     string  `json:"return_id"`
}

// CatalogResult is produced by the catalog handler.
type CatalogResult struct {
	Products []ProductSummary `json:"products"`
}

// ProductSummary is one enriched catalog hit.
type ProductSummary struct {
	SKU           string         `json:"sku"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	Category      string         `json:"category"`
	Features      []string       `json:"features"`
	Description   string         `json:"description"`
	Availability  string         `json:"availability"`
	Rating        float64        `json:"rating"`
	Inventory     string         `json:"inventory"`
	ContractPrice *ContractPrice `json:"contract_price,omitempty"` // B2B only
}

// PricingResult is produced by the pricing handler.
type PricingResult struct {
	SKU        string  `json:"sku"`
	Tier       string  `json:"tier"`
	Discount   float64 `json:"discount"`
	Quantity   int     `json:"quantity"`
	FinalPrice float64 `json:"final_price"`
}
