package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Defaults used when the query carries no explicit identifier.
const (
	DefaultOrderID  = "ORD1001"
	DefaultSKU      = "SKU1001"
	DefaultQuantity = 1
)

var (
	orderIDPattern  = regexp.MustCompile(`(?i)\bORD\d+\b`)
	skuPattern      = regexp.MustCompile(`(?i)\bSKU\d+\b`)
	quantityPattern = regexp.MustCompile(`(?i)\b(\d+)\s*(?:units?|pieces?|pcs|qty)\b`)
)

// extractOrderID pulls the first order ID out of a free-form query,
// case-insensitively, and normalizes it to upper case.
func extractOrderID(query string) string {
	if match := orderIDPattern.FindString(query); match != "" {
		return strings.ToUpper(match)
	}
	return DefaultOrderID
}

// extractSKU pulls the first SKU out of a free-form query.
func extractSKU(query string) string {
	if match := skuPattern.FindString(query); match != "" {
		return strings.ToUpper(match)
	}
	return DefaultSKU
}

// extractQuantity pulls an explicit quantity ("3 units", "50 pcs") out of
// a free-form query.
func extractQuantity(query string) int {
	match := quantityPattern.FindStringSubmatch(query)
	if len(match) < 2 {
		return DefaultQuantity
	}
	qty, err := strconv.Atoi(match[1])
	if err != nil || qty < 1 {
		return DefaultQuantity
	}
	return qty
}
