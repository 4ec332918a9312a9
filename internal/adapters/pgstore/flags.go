package pgstore

import (
	"encoding/json"
	"fmt"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// Feature flag documents are stored as free-form JSONB so the admin tooling
// can evolve the shape without schema migrations. The portal only consumes a
// fixed set of paths; anything else in the document is ignored.
const (
	flagTimeTrackingExpr = "features.time_tracking.enabled || time_tracking"
	flagDonationsExpr    = "features.donations.enabled || donations"
	flagInventoryExpr    = "features.inventory.enabled || inventory"
)

// extractFlag evaluates a JMESPath expression against the decoded flag
// document. A missing path or a non-boolean value reads as false.
func extractFlag(doc any, expr string) (bool, error) {
	if doc == nil {
		return false, nil
	}
	res, err := jmespath.Search(expr, doc)
	if err != nil {
		return false, fmt.Errorf("evaluate flag expression %q: %w", expr, err)
	}
	b, ok := res.(bool)
	return ok && b, nil
}

// decodeFlagDocument parses the raw JSONB bytes. A NULL or empty column reads
// as an empty document.
func decodeFlagDocument(raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode feature flag document: %w", err)
	}
	return doc, nil
}
