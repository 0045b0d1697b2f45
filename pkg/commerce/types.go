package commerce

// Order is the OMS order record.
type Order struct {
	OrderID        string      `json:"order_id"`
	Status         string      `json:"status"` // ORDER_PLACED | PROCESSING | SHIPPED | DELIVERED
	OrderDate      string      `json:"order_date"`
	DeliveryDate   string      `json:"delivery_date,omitempty"`
	PaymentStatus  string      `json:"payment_status"`
	TrackingNumber string      `json:"tracking_number,omitempty"`
	Items          []OrderItem `json:"items"`
}

// OrderItem is a single line item of an order.
type OrderItem struct {
	SKU        string  `json:"sku"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Returnable bool    `json:"returnable"`
}

// CancelResponse is the OMS response to a cancel request.
type CancelResponse struct {
	CancelRequestID string `json:"cancel_request_id"`
}

// SearchHit is one catalog search result.
type SearchHit struct {
	SKU      string   `json:"sku"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category string   `json:"category"`
	Features []string `json:"features"`
}

// SearchResponse wraps catalog search results.
type SearchResponse struct {
	Results []SearchHit `json:"results"`
}

// Product is the detailed catalog record for one SKU.
type Product struct {
	SKU                 string  `json:"sku"`
	Description         string  `json:"description"`
	Price               float64 `json:"price"`
	Availability        string  `json:"availability"`
	Rating              float64 `json:"rating"`
	B2BPricingAvailable bool    `json:"b2b_pricing_available"`
}

// Inventory is the stock status for one SKU.
type Inventory struct {
	SKU    string `json:"sku"`
	Status string `json:"status"`
}

// ContractPrice is the B2B contract pricing record.
type ContractPrice struct {
	ContractPrice   float64 `json:"contract_price"`
	MinOrderQty     int     `json:"min_order_qty"`
	DiscountPercent float64 `json:"discount_percent"`
}

// BulkPrice is the tiered/bulk discount pricing record.
type BulkPrice struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// ShippingETA is the delivery estimate for a tracking number.
type ShippingETA struct {
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
	ETA            string `json:"eta"`
}
