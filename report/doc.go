// Package report renders an aggregated result set as diagnostic text and
// selects the matching exit status.
package report
