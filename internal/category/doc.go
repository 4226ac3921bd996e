// Package category classifies markets into the fixed reporting taxonomy.
//
// Classification walks an ordered rule table: each rule pairs a category
// with series-ticker prefixes and title keywords. The first rule that
// matches wins, so precedence is the table order, not control flow.
package category
