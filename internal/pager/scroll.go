package pager

// ScrollPosition is a viewport measurement reported by the presentation layer.
// All values are non-negative and ClientHeight <= ScrollHeight.
type ScrollPosition struct {
	// Top is the offset of the first visible unit.
	Top int
	// Height is the total scrollable content height.
	Height int
	// ClientHeight is the visible viewport height.
	ClientHeight int
}

// NearBottom reports whether Top + ClientHeight >= Height - threshold.
func (p ScrollPosition) NearBottom(threshold int) bool {
	return p.Top+p.ClientHeight >= p.Height-threshold
}

// MaxTop returns the largest Top value the content allows.
func (p ScrollPosition) MaxTop() int {
	if p.Height <= p.ClientHeight {
		return 0
	}
	return p.Height - p.ClientHeight
}
