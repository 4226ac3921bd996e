// Package extract drives a full extraction run: paginate the markets
// endpoint until exhaustion or the configured page cap, classify every
// record, rank each category by volume, and assemble the summary.
//
// A run owns all data it touches and holds it only for its duration.
// Any page failure aborts the whole run: partial rankings could silently
// omit higher-volume markets sitting on unfetched pages.
package extract
