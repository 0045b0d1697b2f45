package model

// Intent is the classified purpose of a user's message.
type Intent string

const (
	IntentCatalogSearch     Intent = "CATALOG_SEARCH"
	IntentOrderStatus       Intent = "ORDER_STATUS"
	IntentReturnRequest     Intent = "RETURN_REQUEST"
	IntentOrderCancellation Intent = "ORDER_CANCELLATION"
	IntentPricingQuery      Intent = "PRICING_QUERY"
	IntentUnknown           Intent = "UNKNOWN"
)

// AllIntents lists every label the classifier may produce.
var AllIntents = []Intent{
	IntentCatalogSearch,
	IntentOrderStatus,
	IntentReturnRequest,
	IntentOrderCancellation,
	IntentPricingQuery,
	IntentUnknown,
}

// ParseIntent maps a raw label to an Intent, falling back to UNKNOWN.
func ParseIntent(label string) Intent {
	for _, intent := range AllIntents {
		if string(intent) == label {
			return intent
		}
	}
	return IntentUnknown
}
