// Package board contains the core domain types for the Seoul Metro board monitor.
package board

// Post represents a single announcement row extracted from the board page.
type Post struct {
	Title string // Post title text
	Date  string // Date text as shown on the board, or the run date when no cell looked like one
	Link  string // Absolute URL of the post, empty when the title cell has no anchor
}
