package pager_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/findash/internal/pager"
)

type row struct {
	id string
}

func rowKey(r row) string { return r.id }

func makeRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{id: fmt.Sprintf("R-%04d", i+1)}
	}
	return rows
}

// bottom is a scroll position that always satisfies the threshold.
var bottom = pager.ScrollPosition{Top: 500, Height: 1000, ClientHeight: 500} //nolint:gochecknoglobals // Test fixture.

// assertPrefix checks that window is an order-preserving prefix of data without gaps or duplicates.
func assertPrefix(t *testing.T, data, window []row) {
	t.Helper()
	require.LessOrEqual(t, len(window), len(data))
	seen := make(map[string]bool, len(window))
	for i, r := range window {
		assert.Equal(t, data[i], r, "window[%d] diverges from dataset", i)
		assert.False(t, seen[r.id], "duplicate %s in window", r.id)
		seen[r.id] = true
	}
}

// TestController_WindowGrowth verifies window length after k triggers is min((k+1)*P, L).
func TestController_WindowGrowth(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		pageSize int
	}{
		{name: "reference dataset", length: 100, pageSize: 20},
		{name: "partial final page", length: 95, pageSize: 20},
		{name: "single page", length: 20, pageSize: 20},
		{name: "shorter than page", length: 7, pageSize: 20},
		{name: "page size one", length: 5, pageSize: 1},
		{name: "empty dataset", length: 0, pageSize: 20},
		{name: "odd page size", length: 101, pageSize: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := makeRows(tt.length)
			c := pager.New(data, rowKey, pager.WithPageSize(tt.pageSize))

			prev := c.WindowLen()
			for k := 0; k <= tt.length/tt.pageSize+3; k++ {
				want := min((k+1)*tt.pageSize, tt.length)
				assert.Equal(t, want, c.WindowLen(), "after %d triggers", k)
				assert.GreaterOrEqual(t, c.WindowLen(), prev, "window shrank")
				assertPrefix(t, data, c.Window())
				prev = c.WindowLen()
				c.OnScroll(bottom)
			}
			assert.True(t, c.Exhausted())
			assert.Equal(t, pager.StateExhausted, c.State())
		})
	}
}

// TestController_ReferenceScenario walks 100 items at page size 20.
func TestController_ReferenceScenario(t *testing.T) {
	c := pager.New(makeRows(100), rowKey)

	assert.Equal(t, 20, c.WindowLen())
	assert.Equal(t, pager.StateGrowing, c.State())
	assert.False(t, c.Exhausted())

	change := c.OnScroll(bottom)
	assert.True(t, change.Has(pager.WindowChanged))
	assert.False(t, change.Has(pager.ExhaustionReached))
	assert.Equal(t, 40, c.WindowLen())

	for range 2 {
		c.OnScroll(bottom)
	}
	require.Equal(t, 80, c.WindowLen())

	change = c.OnScroll(bottom)
	assert.True(t, change.Has(pager.WindowChanged|pager.ExhaustionReached))
	assert.Equal(t, 100, c.WindowLen())
	assert.True(t, c.Exhausted())
	assert.Equal(t, 5, c.Page())

	change = c.OnScroll(bottom)
	assert.True(t, change.None())
	assert.Equal(t, 100, c.WindowLen())
	assert.True(t, c.Exhausted())
}

// TestController_TerminalState verifies extra triggers past exhaustion change nothing.
func TestController_TerminalState(t *testing.T) {
	c := pager.New(makeRows(45), rowKey)
	for range 2 {
		c.Advance()
	}
	require.True(t, c.Exhausted())
	page := c.Page()

	for range 5 {
		assert.True(t, c.OnScroll(bottom).None())
		assert.True(t, c.Advance().None())
	}
	assert.Equal(t, 45, c.WindowLen())
	assert.Equal(t, page, c.Page())
}

// TestController_ShortDataset verifies a dataset shorter than a page starts exhausted.
func TestController_ShortDataset(t *testing.T) {
	c := pager.New(makeRows(15), rowKey)

	assert.Equal(t, 15, c.WindowLen())
	assert.True(t, c.Exhausted())
	assert.Equal(t, pager.StateExhausted, c.State())
	assert.True(t, c.OnScroll(bottom).None())
}

// TestController_Threshold verifies the near-bottom boundary.
func TestController_Threshold(t *testing.T) {
	tests := []struct {
		name    string
		top     int
		advance bool
	}{
		{name: "at top", top: 0, advance: false},
		{name: "one short of threshold", top: 489, advance: false},
		{name: "exactly at threshold", top: 490, advance: true},
		{name: "inside threshold", top: 495, advance: true},
		{name: "at bottom", top: 500, advance: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := pager.New(makeRows(100), rowKey)
			change := c.OnScroll(pager.ScrollPosition{Top: tt.top, Height: 1000, ClientHeight: 500})

			assert.Equal(t, tt.advance, change.Has(pager.WindowChanged))
			if tt.advance {
				assert.Equal(t, 40, c.WindowLen())
			} else {
				assert.Equal(t, 20, c.WindowLen())
			}
		})
	}
}

// TestController_CustomThreshold verifies WithThreshold changes the boundary.
func TestController_CustomThreshold(t *testing.T) {
	c := pager.New(makeRows(100), rowKey, pager.WithThreshold(0))
	assert.True(t, c.OnScroll(pager.ScrollPosition{Top: 499, Height: 1000, ClientHeight: 500}).None())
	assert.False(t, c.OnScroll(pager.ScrollPosition{Top: 500, Height: 1000, ClientHeight: 500}).None())
	assert.Equal(t, 0, c.Threshold())
}

// TestController_InvalidOptions verifies out-of-range options keep defaults.
func TestController_InvalidOptions(t *testing.T) {
	c := pager.New(makeRows(100), rowKey, pager.WithPageSize(0), pager.WithThreshold(-1))
	assert.Equal(t, pager.DefaultPageSize, c.PageSize())
	assert.Equal(t, pager.DefaultThreshold, c.Threshold())
}

// TestController_BurstOfTriggers verifies one page per trigger event with no skips.
func TestController_BurstOfTriggers(t *testing.T) {
	c := pager.New(makeRows(100), rowKey)
	for i := 1; i <= 3; i++ {
		c.OnScroll(bottom)
		assert.Equal(t, (i+1)*20, c.WindowLen())
	}
}

// TestController_Selection verifies selection replaces rather than accumulates.
func TestController_Selection(t *testing.T) {
	data := makeRows(100)
	c := pager.New(data, rowKey)

	_, ok := c.Selected()
	assert.False(t, ok)

	change := c.Select("R-0003")
	assert.True(t, change.Has(pager.SelectionChanged))
	first, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, data[2], first)

	assert.True(t, c.Select("R-0003").None(), "reselecting is a no-op")
	again, _ := c.Selected()
	assert.Equal(t, first, again)

	assert.True(t, c.Select("R-0010").Has(pager.SelectionChanged))
	id, ok := c.SelectedID()
	require.True(t, ok)
	assert.Equal(t, "R-0010", id)
	second, _ := c.Selected()
	assert.Equal(t, data[9], second)
}

// TestController_SelectionOutsideWindow verifies selection is independent of the window.
func TestController_SelectionOutsideWindow(t *testing.T) {
	data := makeRows(100)
	c := pager.New(data, rowKey)

	c.Select("R-0090")
	item, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, data[89], item)
	assert.Equal(t, 20, c.WindowLen())
}

// TestController_SelectionUnknownID verifies an identifier absent from the dataset resolves to nothing.
func TestController_SelectionUnknownID(t *testing.T) {
	c := pager.New(makeRows(10), rowKey)
	c.Select("missing")
	_, ok := c.Selected()
	assert.False(t, ok)
}

// TestController_InitializeSameDataset verifies re-initializing with the same reference is a no-op.
func TestController_InitializeSameDataset(t *testing.T) {
	data := makeRows(100)
	c := pager.New(data, rowKey)
	c.Advance()
	c.Select("R-0001")

	change := c.Initialize(data)
	assert.True(t, change.None())
	assert.Equal(t, 2, c.Page())
	assert.Equal(t, 40, c.WindowLen())
	_, ok := c.SelectedID()
	assert.True(t, ok)
}

// TestController_InitializeNewDataset verifies a new dataset reference resets the window.
func TestController_InitializeNewDataset(t *testing.T) {
	c := pager.New(makeRows(100), rowKey)
	c.Advance()
	c.Advance()
	c.Select("R-0001")

	fresh := makeRows(30)
	change := c.Initialize(fresh)
	assert.True(t, change.Has(pager.WindowChanged))
	assert.True(t, change.Has(pager.SelectionChanged))
	assert.False(t, change.Has(pager.ExhaustionReached))
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 20, c.WindowLen())
	assert.Equal(t, 30, c.Len())
	_, ok := c.SelectedID()
	assert.False(t, ok)

	// Same length but different backing array is still a different dataset.
	other := makeRows(30)
	c.Advance()
	assert.True(t, c.Initialize(other).Has(pager.WindowChanged))
	assert.Equal(t, 20, c.WindowLen())

	// A shorter dataset resets straight into the exhausted state.
	assert.True(t, c.Initialize(makeRows(5)).Has(pager.ExhaustionReached))
}

// TestController_WindowCapacityCapped verifies appending to the window cannot clobber the dataset.
func TestController_WindowCapacityCapped(t *testing.T) {
	data := makeRows(40)
	c := pager.New(data, rowKey)

	window := c.Window()
	assert.Equal(t, len(window), cap(window))
	_ = append(window, row{id: "intruder"})
	assert.Equal(t, "R-0021", data[20].id)
}

// TestState_String verifies state labels.
func TestState_String(t *testing.T) {
	assert.Equal(t, "growing", pager.StateGrowing.String())
	assert.Equal(t, "exhausted", pager.StateExhausted.String())
	assert.Equal(t, "unknown", pager.State(9).String())
}

// TestScrollPosition_MaxTop verifies the scroll extent helper.
func TestScrollPosition_MaxTop(t *testing.T) {
	assert.Equal(t, 500, pager.ScrollPosition{Height: 1000, ClientHeight: 500}.MaxTop())
	assert.Equal(t, 0, pager.ScrollPosition{Height: 10, ClientHeight: 20}.MaxTop())
}
