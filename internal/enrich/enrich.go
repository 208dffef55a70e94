// Package enrich implements application-level lookup joins: a primary row set
// is enriched with related rows fetched in one batched request and merged
// through an in-memory key map. Rows referencing a missing related row get a
// caller-supplied fallback instead of failing the primary result.
package enrich

import (
	"context"
	"log/slog"

	"inkwell/internal/middleware"
	"inkwell/internal/observability"
)

// LoadFunc fetches every lookup row whose key is in keys, in a single request.
type LoadFunc[K comparable, L any] func(ctx context.Context, keys []K) ([]L, error)

// Attach gathers the distinct non-zero foreign keys of rows, issues one
// batched lookup, and merges each matching lookup row back onto its primary
// row via assign. assign receives found=false (and the zero lookup value) for
// rows without a match, so callers decide the placeholder.
//
// An empty primary set short-circuits without any lookup request. A lookup
// failure degrades the whole batch to found=false with a logged warning; it
// is never surfaced to the caller.
func Attach[R any, K comparable, L any](
	ctx context.Context,
	name string,
	rows []R,
	key func(R) K,
	load LoadFunc[K, L],
	lookupKey func(L) K,
	assign func(R, L, bool),
) {
	if len(rows) == 0 {
		return
	}

	var zeroKey K
	keys := make([]K, 0, len(rows))
	seen := make(map[K]struct{}, len(rows))
	for _, row := range rows {
		k := key(row)
		if k == zeroKey {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	var byKey map[K]L
	if len(keys) > 0 {
		found, err := load(ctx, keys)
		if err != nil {
			observability.EnrichmentDegradations.WithLabelValues(name).Inc()
			middleware.Logger.WarnContext(ctx, "enrichment lookup failed, degrading to placeholders",
				slog.String("enrichment", name),
				slog.Int("keys", len(keys)),
				slog.String("error", err.Error()),
			)
		} else {
			// First-wins; duplicate lookup keys should not occur.
			byKey = make(map[K]L, len(found))
			for _, l := range found {
				lk := lookupKey(l)
				if _, exists := byKey[lk]; exists {
					continue
				}
				byKey[lk] = l
			}
		}
	}

	var zeroLookup L
	for _, row := range rows {
		l, ok := byKey[key(row)]
		if !ok {
			assign(row, zeroLookup, false)
			continue
		}
		assign(row, l, true)
	}
}

// Group attaches a slice of related rows to each primary row, for
// one-to-many lookups fetched as a key-grouped map in a single request.
// Rows without a group entry get a nil slice. Failures degrade to nil
// groups with a logged warning.
func Group[R any, K comparable, L any](
	ctx context.Context,
	name string,
	rows []R,
	key func(R) K,
	load func(ctx context.Context, keys []K) (map[K][]L, error),
	assign func(R, []L),
) {
	if len(rows) == 0 {
		return
	}

	var zeroKey K
	keys := make([]K, 0, len(rows))
	seen := make(map[K]struct{}, len(rows))
	for _, row := range rows {
		k := key(row)
		if k == zeroKey {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	var byKey map[K][]L
	if len(keys) > 0 {
		groups, err := load(ctx, keys)
		if err != nil {
			observability.EnrichmentDegradations.WithLabelValues(name).Inc()
			middleware.Logger.WarnContext(ctx, "group enrichment failed, degrading to empty groups",
				slog.String("enrichment", name),
				slog.Int("keys", len(keys)),
				slog.String("error", err.Error()),
			)
		} else {
			byKey = groups
		}
	}

	for _, row := range rows {
		assign(row, byKey[key(row)])
	}
}

// Counts attaches a per-key integer (typically a grouped COUNT) to each row.
// The counting query uses the same distinct-key batching as Attach; rows
// without a count entry get zero. Failures degrade to all-zero counts.
func Counts[R any, K comparable](
	ctx context.Context,
	name string,
	rows []R,
	key func(R) K,
	count func(ctx context.Context, keys []K) (map[K]int, error),
	assign func(R, int),
) {
	if len(rows) == 0 {
		return
	}

	var zeroKey K
	keys := make([]K, 0, len(rows))
	seen := make(map[K]struct{}, len(rows))
	for _, row := range rows {
		k := key(row)
		if k == zeroKey {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	var byKey map[K]int
	if len(keys) > 0 {
		counts, err := count(ctx, keys)
		if err != nil {
			observability.EnrichmentDegradations.WithLabelValues(name).Inc()
			middleware.Logger.WarnContext(ctx, "count enrichment failed, degrading to zero",
				slog.String("enrichment", name),
				slog.Int("keys", len(keys)),
				slog.String("error", err.Error()),
			)
		} else {
			byKey = counts
		}
	}

	for _, row := range rows {
		assign(row, byKey[key(row)])
	}
}
