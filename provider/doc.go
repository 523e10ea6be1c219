// Package provider implements synthetic-children and summary providers
// for Rust values.
//
// A Provider wraps one inspected value and answers child-count,
// child-lookup and display-type-name queries against a cached derived
// view of the value's layout. The view is recomputed wholesale by Refresh
// whenever the host invalidates the value (after the debuggee steps);
// there is no incremental update path.
//
// Use Registry to classify a value's raw type name against the recognized
// layout conventions and obtain the matching provider or one-line
// summary. The table is ordered and first-match-wins; unmatched types
// fall through to DefaultProvider, which mirrors the host's own
// structure.
package provider
