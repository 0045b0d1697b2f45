package assistant

// QueryInput is the input for the full dispatch pipeline.
type QueryInput struct {
	Query        string
	CustomerID   string
	CustomerType string // "B2C" (default) or "B2B"
	CustomerTier string
}

// CatalogInput is the input for catalog search.
type CatalogInput struct {
	Query        string
	CustomerID   string
	CustomerType string
}

// ReturnInput is the input for a return request.
type ReturnInput struct {
	OrderID string
	SKU     string
}

// PricingInput is the input for a pricing quote.
type PricingInput struct {
	SKU       string
	Quantity  int
	Tier      string
	BasePrice float64 // optional override; resolved from catalog when zero
}

// AskInput is the input for the RAG question endpoint.
type AskInput struct {
	Query string
}

// AskOutput is the RAG answer with the number of source documents used.
type AskOutput struct {
	Answer      string `json:"answer"`
	SourceCount int    `json:"source_count"`
}
