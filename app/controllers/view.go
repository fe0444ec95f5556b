package controllers

// Regions and selectors of the rendering surface. The engine only ever
// addresses the page through these names.
const (
	RegionPosts           = "#post-list"
	RegionModal           = "#modal-root"
	RegionError           = "#error-banner"
	RegionCategoryOptions = "#category-filter"

	SelectorCategory   = "#category-filter"
	SelectorSearch     = "#search-input"
	SelectorSort       = "#sort-order"
	SelectorReadMore   = ".read-more"
	SelectorModalClose = ".modal-close"
	SelectorBackdrop   = ".modal-backdrop"
)

// Event kinds the controller listens for.
const (
	EventChange = "change"
	EventInput  = "input"
	EventClick  = "click"
)

// Event carries what a view implementation reports when a bound event
// fires. Target holds the matched element's data-post-id attribute for
// delegated read-more clicks; it is empty otherwise.
type Event struct {
	Kind   string
	Target string
}

// View abstracts the rendering surface. Implementations replace a
// region's entire content on SetContent rather than patching it, so
// re-renders are re-entrant safe: the last completed render wins.
type View interface {
	// SetContent replaces the content of a region.
	SetContent(region, html string)
	// OnEvent registers a handler for an event kind on a selector.
	// Handlers for selectors inside re-rendered regions must be
	// delegated by the implementation.
	OnEvent(selector, kind string, handler func(Event))
	// ControlValue returns the current value of an input control.
	ControlValue(selector string) string
}
