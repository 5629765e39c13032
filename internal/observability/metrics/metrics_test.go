package metrics

import (
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestFilterAttributesDropsForbiddenLabels(t *testing.T) {
	attrs := FilterAttributes(
		attribute.String("operation", "create"),
		attribute.String("outcome", "ok"),
		attribute.String("customer_id", "c1"),
		attribute.String("path", "/dashboard/invoices"),
	)

	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	for _, attr := range attrs {
		if attr.Key == "customer_id" || attr.Key == "path" {
			t.Fatalf("high-cardinality label %q should have been dropped", attr.Key)
		}
	}
}
