// Seeds the Qdrant policy collection: embeds the policy documents with
// Voyage AI and upserts them with deterministic IDs, so reruns update in
// place instead of duplicating.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"commerce-assistant/config"
	"commerce-assistant/pkg/log"
	pkgQdrant "commerce-assistant/pkg/qdrant"
	"commerce-assistant/pkg/voyage"
)

type policyDoc struct {
	DocID   string
	Content string
	Payload map[string]interface{}
}

// The canonical policy set. Payload fields mirror what the policy
// repository parses at query time.
var policyDocs = []policyDoc{
	{
		DocID: "policy-cancellation",
		Content: "Order cancellation policy: orders can be cancelled while they are in " +
			"ORDER_PLACED or PROCESSING status. Once an order is SHIPPED or DELIVERED it " +
			"can no longer be cancelled; a return may be requested instead. Refunds for " +
			"cancelled paid orders are processed within 5 business days.",
		Payload: map[string]interface{}{
			"kind":                   "cancellation",
			"cancellable_statuses":   []string{"ORDER_PLACED", "PROCESSING"},
			"refund_processing_days": 5,
		},
	},
	{
		DocID: "policy-return",
		Content: "Product return policy: items may be returned within 10 days of delivery. " +
			"A restocking fee of 5% is deducted from the refund. Returns are refunded to " +
			"the original payment method.",
		Payload: map[string]interface{}{
			"kind":                   "return",
			"return_window_days":     10,
			"restocking_fee_percent": 5,
			"return_type":            "REFUND",
		},
	},
	{
		DocID: "policy-shipping",
		Content: "Shipping policy: standard delivery takes 3 to 7 business days. A tracking " +
			"number is issued when the order ships and delivery estimates are available " +
			"from the carrier.",
		Payload: map[string]interface{}{
			"kind": "shipping",
		},
	},
	{
		DocID: "policy-pricing",
		Content: "Pricing policy: GOLD tier customers receive a 15% discount and SILVER tier " +
			"customers receive 10%. B2B customers with a contract get contract pricing with " +
			"minimum order quantities. Bulk orders of 10 or more units are priced from the " +
			"bulk price list.",
		Payload: map[string]interface{}{
			"kind": "pricing",
		},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}

	logger.Infof(ctx, "Ensuring collection %q (vector size %d)", cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize)
	if err := qdrantClient.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: cfg.Qdrant.CollectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     cfg.Qdrant.VectorSize,
			Distance: "Cosine",
		},
	}); err != nil {
		// Collection may already exist; upsert below still works.
		logger.Warnf(ctx, "CreateCollection: %v", err)
	}

	texts := make([]string, len(policyDocs))
	for i, doc := range policyDocs {
		texts[i] = doc.Content
	}

	logger.Infof(ctx, "Embedding %d policy documents", len(texts))
	vectors, err := embedder.Embed(ctx, texts)
	if err != nil {
		logger.Fatalf(ctx, "Failed to embed documents: %v", err)
	}
	if len(vectors) != len(policyDocs) {
		logger.Fatalf(ctx, "Embedding count mismatch: got %d, want %d", len(vectors), len(policyDocs))
	}

	points := make([]pkgQdrant.Point, len(policyDocs))
	for i, doc := range policyDocs {
		payload := doc.Payload
		payload["doc_id"] = doc.DocID
		payload["content"] = doc.Content

		points[i] = pkgQdrant.Point{
			// Deterministic UUID from the doc ID keeps reruns idempotent.
			ID:      uuid.NewSHA1(uuid.NameSpaceOID, []byte(doc.DocID)).String(),
			Vector:  vectors[i],
			Payload: payload,
		}
	}

	if err := qdrantClient.UpsertPoints(ctx, cfg.Qdrant.CollectionName, pkgQdrant.UpsertPointsRequest{
		Points: points,
	}); err != nil {
		logger.Fatalf(ctx, "Failed to upsert points: %v", err)
	}

	logger.Infof(ctx, "Seeded %d policy documents into %q", len(points), cfg.Qdrant.CollectionName)
}
