// Package render composes flight cards onto an abstract pixel surface:
// column-budgeted text truncation, telemetry unit formatting, transparency-
// aware logo compositing, the five-line card layout, and the timed rotation
// across multiple flights.
package render

// TextFormatter truncates text to a column budget with a trailing ellipsis.
type TextFormatter struct {
	// ContentWidth is the fallback pixel width used to derive a budget
	// when the caller passes no explicit column count.
	ContentWidth int
}

// Truncate limits text to maxColumns glyphs of charWidth pixels each. When
// maxColumns <= 0 the budget is derived from ContentWidth. Text within
// budget is returned unchanged; budgets of three or fewer columns hard-cut
// with no ellipsis, everything else keeps budget-3 characters plus "...".
func (f TextFormatter) Truncate(text string, maxColumns, charWidth int) string {
	budget := maxColumns
	if budget <= 0 {
		budget = f.ContentWidth / charWidth
	}
	if len(text) <= budget {
		return text
	}
	if budget <= 3 {
		if budget < 0 {
			budget = 0
		}
		return text[:budget]
	}
	return text[:budget-3] + "..."
}
