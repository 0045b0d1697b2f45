package model

// ConversationState carries one request through the dispatch pipeline.
// It is created per request, owned exclusively by that request's
// execution, and discarded once the response is returned.
type ConversationState struct {
	Query    string
	Customer Customer
	Intent   Intent
	Result   *Result
}

// Customer identifies the requesting customer for B2B-aware handlers.
type Customer struct {
	ID   string
	Type string // "B2C" | "B2B"
	Tier string // "GOLD" | "SILVER" | ...
}
