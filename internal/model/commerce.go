package model

// Order is an OMS order as seen by the handlers.
type Order struct {
	OrderID        string
	Status         string // ORDER_PLACED | PROCESSING | SHIPPED | DELIVERED
	OrderDate      string
	DeliveryDate   string
	PaymentStatus  string // PAID | PENDING | REFUNDED
	TrackingNumber string
	Items          []OrderItem
}

// OrderItem is a single line item of an order.
type OrderItem struct {
	SKU        string
	Price      float64
	Quantity   int
	Returnable bool
}

// Item returns the line item for sku and whether it exists.
func (o Order) Item(sku string) (OrderItem, bool) {
	for _, item := range o.Items {
		if item.SKU == sku {
			return item, true
		}
	}
	return OrderItem{}, false
}

// Product is an enriched catalog record.
type Product struct {
	SKU                 string
	Name                string
	Price               float64
	Category            string
	Features            []string
	Description         string
	Availability        string
	Rating              float64
	B2BPricingAvailable bool
}

// ContractPrice is a B2B contract pricing record.
type ContractPrice struct {
	ContractPrice   float64 `json:"contract_price"`
	MinOrderQty     int     `json:"min_order_qty"`
	DiscountPercent float64 `json:"discount_percent"`
}

// ShippingETA is the delivery estimate for an order in transit.
type ShippingETA struct {
	Carrier string
	ETA     string
}
