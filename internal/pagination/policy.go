package pagination

// MaxGridWidgets is the largest category grid shown without a scroll
// wrapper. Every pair occupies two widgets (label and value).
const MaxGridWidgets = 42

const WidgetsPerPair = 2

func WidgetCount(pairs int) int {
	return pairs * WidgetsPerPair
}

// NeedsScroll reports whether a category with the given number of pairs must
// be wrapped in a scrollable container before it becomes a page.
func NeedsScroll(pairs int) bool {
	return WidgetCount(pairs) > MaxGridWidgets
}
