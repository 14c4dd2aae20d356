// Package classifier derives a prioritized summary of SEO issues from raw
// analysis results.
//
// The classifier evaluates a fixed, ordered rule table. Each rule inspects
// one nested field; a failing rule records exactly one issue in the Summary.
// The rule order only affects the display order of improvements, never the
// counters.
package classifier
