// Package diag defines the diagnostic model shared by the front-end phases.
//
// Diagnostic is the central record: Severity, Code, Message, a primary
// source.Span, and optional Notes. Producers emit through a Reporter so they
// stay decoupled from storage; BagReporter aggregates into a Bag, which
// supports sorting and deduplication for deterministic output.
//
// The package performs no formatting or IO. Rendering lives in
// internal/diagfmt; mapping of external linter findings into this model
// lives in internal/lint.
package diag
