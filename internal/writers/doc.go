// Package writers dispatches comparison reports to format renderers.
//
// Renderers live in internal/output and register by name; callers only
// know the format string chosen on the command line.
package writers
