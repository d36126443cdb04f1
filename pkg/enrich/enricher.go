// Package enrich fetches best-effort text about a saved link from external sources.
//
// Every Enricher degrades to an empty or fixed fallback string instead of returning an
// error, so a caller assembling many items never has to abort on one bad source.
package enrich

import (
	"context"
)

// Enricher produces a text fragment for ref using an optional credential (API key).
type Enricher interface {
	Fetch(ctx context.Context, ref, credential string) string
}

// EnricherFunc adapts a plain function to Enricher.
type EnricherFunc func(ctx context.Context, ref, credential string) string

func (f EnricherFunc) Fetch(ctx context.Context, ref, credential string) string {
	return f(ctx, ref, credential)
}
