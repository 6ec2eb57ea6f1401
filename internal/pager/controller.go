package pager

// Controller defaults.
const (
	// DefaultPageSize is the number of items added to the window per page.
	DefaultPageSize = 20
	// DefaultThreshold is the distance from the bottom, in scroll units, at which
	// a scroll position counts as a trigger.
	DefaultThreshold = 10
)

// State is the growth state of the window.
type State int

const (
	// StateGrowing means the window is shorter than the dataset.
	StateGrowing State = iota
	// StateExhausted means the window covers the whole dataset. It is terminal
	// for the lifetime of the dataset.
	StateExhausted
)

// String returns the human-readable label for a State.
func (s State) String() string {
	switch s {
	case StateGrowing:
		return "growing"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Change is a bit set describing which observable signals an operation emitted.
type Change uint8

const (
	// WindowChanged is set when the window prefix grew or was reset.
	WindowChanged Change = 1 << iota
	// SelectionChanged is set when the selected item changed.
	SelectionChanged
	// ExhaustionReached is set when the window reached the end of the dataset.
	ExhaustionReached
)

// Has reports whether every bit of flag is set in c.
func (c Change) Has(flag Change) bool {
	return c&flag == flag
}

// None reports whether no signal fired.
func (c Change) None() bool {
	return c == 0
}

// KeyFunc extracts the unique identifier of an item.
type KeyFunc[T any] func(item T) string

// Option configures a Controller.
type Option func(*options)

type options struct {
	pageSize  int
	threshold int
}

// WithPageSize sets the number of items per page. Values < 1 keep the default.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.pageSize = n
		}
	}
}

// WithThreshold sets the near-bottom distance that counts as a trigger.
// Negative values keep the default.
func WithThreshold(units int) Option {
	return func(o *options) {
		if units >= 0 {
			o.threshold = units
		}
	}
}

// Controller is the paginated list controller. It is not safe for concurrent use;
// the presentation layer drives it from a single event loop.
type Controller[T any] struct {
	items      []T
	key        KeyFunc[T]
	pageSize   int
	threshold  int
	page       int
	selectedID string
	hasSelect  bool
}

// New creates a controller over items and initializes the window to the first page.
func New[T any](items []T, key KeyFunc[T], opts ...Option) *Controller[T] {
	o := options{pageSize: DefaultPageSize, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller[T]{
		key:       key,
		pageSize:  o.pageSize,
		threshold: o.threshold,
	}
	c.reset(items)
	return c
}

// Initialize binds the controller to a dataset. Passing the dataset the controller
// already holds is a no-op; any other dataset resets the window to the first page
// and clears the selection.
func (c *Controller[T]) Initialize(items []T) Change {
	if sameDataset(c.items, items) {
		return 0
	}

	change := WindowChanged
	if c.hasSelect {
		change |= SelectionChanged
	}
	c.reset(items)
	if c.Exhausted() {
		change |= ExhaustionReached
	}
	return change
}

func (c *Controller[T]) reset(items []T) {
	c.items = items
	c.page = 1
	c.selectedID = ""
	c.hasSelect = false
}

// sameDataset reports whether a and b are the same dataset reference: same backing
// array start and same length.
func sameDataset[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}

// OnScroll evaluates a scroll position reported by the presentation layer and
// advances the window by one page when the position is within the threshold.
func (c *Controller[T]) OnScroll(pos ScrollPosition) Change {
	if !pos.NearBottom(c.threshold) {
		return 0
	}
	return c.Advance()
}

// Advance grows the window by one page. It is a no-op once the window is exhausted.
func (c *Controller[T]) Advance() Change {
	if c.Exhausted() {
		return 0
	}
	c.page++

	change := WindowChanged
	if c.Exhausted() {
		change |= ExhaustionReached
	}
	return change
}

// Select replaces the current selection with the item identified by id.
// Selecting the already-selected id reports no change.
func (c *Controller[T]) Select(id string) Change {
	if c.hasSelect && c.selectedID == id {
		return 0
	}
	c.selectedID = id
	c.hasSelect = true
	return SelectionChanged
}

// Selected returns the selected item, if any. An identifier that is not present
// in the dataset yields no item.
func (c *Controller[T]) Selected() (T, bool) {
	var zero T
	if !c.hasSelect {
		return zero, false
	}
	for _, item := range c.items {
		if c.key(item) == c.selectedID {
			return item, true
		}
	}
	return zero, false
}

// SelectedID returns the selected identifier and whether one is set.
func (c *Controller[T]) SelectedID() (string, bool) {
	return c.selectedID, c.hasSelect
}

// Window returns the currently displayed prefix. The slice shares the dataset's
// backing array but has its capacity capped, so appending to it cannot overwrite
// items beyond the window.
func (c *Controller[T]) Window() []T {
	n := c.WindowLen()
	return c.items[:n:n]
}

// WindowLen returns min(page*pageSize, len(dataset)).
func (c *Controller[T]) WindowLen() int {
	end := c.page * c.pageSize
	if end > len(c.items) || end < 0 {
		return len(c.items)
	}
	return end
}

// Exhausted reports whether the window covers the whole dataset.
func (c *Controller[T]) Exhausted() bool {
	return c.WindowLen() == len(c.items)
}

// State returns the growth state of the window.
func (c *Controller[T]) State() State {
	if c.Exhausted() {
		return StateExhausted
	}
	return StateGrowing
}

// Page returns the number of pages applied to the window (starting at 1).
func (c *Controller[T]) Page() int {
	return c.page
}

// PageSize returns the configured page size.
func (c *Controller[T]) PageSize() int {
	return c.pageSize
}

// Threshold returns the configured near-bottom threshold.
func (c *Controller[T]) Threshold() int {
	return c.threshold
}

// Len returns the dataset length.
func (c *Controller[T]) Len() int {
	return len(c.items)
}

// Dataset returns the full dataset the controller is bound to.
func (c *Controller[T]) Dataset() []T {
	return c.items
}
