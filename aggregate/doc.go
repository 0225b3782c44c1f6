// Package aggregate merges per-artifact extraction and analysis results
// into one deduplicated result set.
//
// The same struct typedef is compiled into every artifact that includes its
// header, so a widely-included header would otherwise be reported once per
// artifact. The Set keys entries by the struct's dedup identity (name plus
// ordered member name/offset pairs); the first observation wins and keeps
// the source-location attribution. Entries iterate in dedup-key sort order,
// independent of the order artifacts were processed, so output is
// reproducible across runs.
package aggregate
