package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Classifier prompt. The model must answer with exactly one label.
const (
	PromptClassifySystem = `You are an intent classifier for an e-commerce customer-service assistant.
Classify the following customer message into exactly one intent label.

Message: "%s"

Allowed labels:
1. CATALOG_SEARCH: product discovery, recommendations, browsing the catalog
2. ORDER_STATUS: order tracking, delivery status, "where is my order"
3. RETURN_REQUEST: returning a purchased item, refund for a delivered item
4. ORDER_CANCELLATION: cancelling an order that has not been delivered
5. PRICING_QUERY: price quotes, discounts, bulk or contract pricing
6. UNKNOWN: anything else

Reply with the label only, no punctuation, no explanation.`
)

// Classifier configuration
const (
	ClassifyTemperature = 0.1
)

// Keyword tables for the deterministic strategy. Evaluation order
// matters: cancellation is checked before order status so that
// "cancel my order" routes to ORDER_CANCELLATION.
var (
	cancelKeywords  = []string{"cancel"}
	returnKeywords  = []string{"return", "refund"}
	pricingKeywords = []string{"price", "quote", "discount", "how much"}
	orderKeywords   = []string{"order", "track", "where is", "delivery", "shipped"}
	catalogKeywords = []string{"find", "show", "search", "recommend", "buy", "product", "browse", "compare", "looking for"}
)
