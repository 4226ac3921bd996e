// Package export serializes extraction summaries: a timestamped JSON
// file for downstream consumers and a human-readable report for the
// terminal. Cent prices become dollar strings here and nowhere else.
package export
