package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/findash/internal/invoice"
)

func TestPaginationParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  PaginationParams
		wantErr error
	}{
		{name: "valid empty", params: PaginationParams{}},
		{name: "valid offset mode", params: PaginationParams{Limit: 10, Offset: 20}},
		{name: "valid page mode", params: PaginationParams{Page: 2, PageSize: 10}},
		{name: "valid page mode with limit", params: PaginationParams{Page: 2, PageSize: 10, Limit: 5}},
		{name: "negative limit", params: PaginationParams{Limit: -1}, wantErr: ErrNegativeValue},
		{name: "negative offset", params: PaginationParams{Offset: -1}, wantErr: ErrNegativeValue},
		{name: "negative page", params: PaginationParams{Page: -1}, wantErr: ErrNegativeValue},
		{name: "negative page-size", params: PaginationParams{PageSize: -1}, wantErr: ErrNegativeValue},
		{name: "mixed modes", params: PaginationParams{Page: 1, PageSize: 5, Offset: 10}, wantErr: ErrMixedPaginationModes},
		{name: "page-size without page", params: PaginationParams{PageSize: 10}, wantErr: ErrSizeWithoutPage},
		{name: "page without page-size", params: PaginationParams{Page: 1}, wantErr: ErrPageWithoutSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaginationParams_ValidateNamesField(t *testing.T) {
	err := PaginationParams{PageSize: -3}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page-size=-3")
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		sortStr   string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{name: "empty", sortStr: "", wantField: DefaultSortField, wantOrder: DefaultSortOrder},
		{name: "field only", sortStr: "amount", wantField: "amount", wantOrder: "asc"},
		{name: "field and order asc", sortStr: "amount:asc", wantField: "amount", wantOrder: "asc"},
		{name: "field and order desc", sortStr: "dueDate:DESC", wantField: "dueDate", wantOrder: "desc"},
		{name: "invalid format", sortStr: "field:order:extra", wantErr: ErrInvalidSortFormat},
		{name: "empty field", sortStr: ":asc", wantErr: ErrEmptySortField},
		{name: "invalid order", sortStr: "amount:invalid", wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.sortStr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestPaginationParams_Calculations(t *testing.T) {
	t.Run("OffsetBased", func(t *testing.T) {
		p := PaginationParams{Limit: 10, Offset: 20}
		assert.False(t, p.IsPageBased())
		offset, limit := p.CalculateOffsetLimit()
		assert.Equal(t, 20, offset)
		assert.Equal(t, 10, limit)
		assert.Equal(t, 0, p.CalculateTotalPages(100))
	})

	t.Run("PageBased", func(t *testing.T) {
		p := PaginationParams{Page: 3, PageSize: 10}
		assert.True(t, p.IsPageBased())
		offset, limit := p.CalculateOffsetLimit()
		assert.Equal(t, 20, offset) // (3-1) * 10
		assert.Equal(t, 10, limit)
		assert.Equal(t, 10, p.CalculateTotalPages(100))
		assert.Equal(t, 11, p.CalculateTotalPages(101))
		assert.Equal(t, 0, p.CalculateTotalPages(0))
	})

	t.Run("PageBasedNarrowedByLimit", func(t *testing.T) {
		_, limit := PaginationParams{Page: 1, PageSize: 10, Limit: 4}.CalculateOffsetLimit()
		assert.Equal(t, 4, limit)
		_, limit = PaginationParams{Page: 1, PageSize: 10, Limit: 40}.CalculateOffsetLimit()
		assert.Equal(t, 10, limit)
	})

	t.Run("IsEnabled", func(t *testing.T) {
		assert.False(t, PaginationParams{}.IsEnabled())
		assert.True(t, PaginationParams{Limit: 10}.IsEnabled())
		assert.True(t, PaginationParams{Page: 1}.IsEnabled())
		assert.True(t, PaginationParams{Offset: 1}.IsEnabled())
		assert.True(t, PaginationParams{PageSize: 1}.IsEnabled())
	})
}

func TestApplyToSlice(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name   string
		params PaginationParams
		input  []int
		want   []int
	}{
		{name: "no pagination", params: PaginationParams{}, input: items, want: items},
		{name: "limit only", params: PaginationParams{Limit: 3}, input: items, want: []int{0, 1, 2}},
		{name: "offset only", params: PaginationParams{Offset: 7}, input: items, want: []int{7, 8, 9}},
		{name: "offset and limit", params: PaginationParams{Offset: 2, Limit: 3}, input: items, want: []int{2, 3, 4}},
		{name: "page 1", params: PaginationParams{Page: 1, PageSize: 3}, input: items, want: []int{0, 1, 2}},
		{name: "page 2", params: PaginationParams{Page: 2, PageSize: 3}, input: items, want: []int{3, 4, 5}},
		{name: "partial last page", params: PaginationParams{Page: 4, PageSize: 3}, input: items, want: []int{9}},
		{name: "out of bounds offset", params: PaginationParams{Offset: 20}, input: items, want: []int{}},
		{name: "out of bounds page caps to last", params: PaginationParams{Page: 10, PageSize: 3}, input: items, want: []int{9}},
		{name: "empty items", params: PaginationParams{Limit: 5}, input: []int{}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyToSlice(tt.params, tt.input))
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name       string
		params     PaginationParams
		totalCount int
		returned   int
		want       PaginationMeta
	}{
		{
			name:       "first page",
			params:     PaginationParams{Page: 1, PageSize: 10},
			totalCount: 25,
			returned:   10,
			want: PaginationMeta{
				CurrentPage: 1, PageSize: 10, TotalPages: 3, TotalItems: 25, Returned: 10,
				HasPrevious: false, HasNext: true,
			},
		},
		{
			name:       "last page",
			params:     PaginationParams{Page: 3, PageSize: 10},
			totalCount: 25,
			returned:   5,
			want: PaginationMeta{
				CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 25, Returned: 5,
				HasPrevious: true, HasNext: false,
			},
		},
		{
			name:       "page beyond end is capped",
			params:     PaginationParams{Page: 9, PageSize: 10},
			totalCount: 25,
			returned:   5,
			want: PaginationMeta{
				CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 25, Returned: 5,
				HasPrevious: true, HasNext: false,
			},
		},
		{
			name:       "offset conversion",
			params:     PaginationParams{Offset: 10, Limit: 10},
			totalCount: 25,
			returned:   10,
			want: PaginationMeta{
				CurrentPage: 2, PageSize: 10, TotalPages: 3, TotalItems: 25, Returned: 10,
				HasPrevious: true, HasNext: true,
			},
		},
		{
			name:       "unpaginated",
			params:     PaginationParams{},
			totalCount: 25,
			returned:   25,
			want: PaginationMeta{
				CurrentPage: 1, PageSize: 25, TotalPages: 1, TotalItems: 25, Returned: 25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationMeta(tt.params, tt.totalCount, tt.returned))
		})
	}
}

func sampleInvoices() []invoice.Invoice {
	day := func(d int) time.Time { return time.Date(2024, time.May, d, 0, 0, 0, 0, time.UTC) }
	return []invoice.Invoice{
		{ID: "INV-0001", Number: "INV-0001", Client: "TechStart Inc", Amount: 5000,
			Status: invoice.StatusOverdue, IssueDate: day(3), DueDate: day(3).AddDate(0, 0, 30)},
		{ID: "INV-0002", Number: "INV-0002", Client: "Acme Corp", Amount: 1200,
			Status: invoice.StatusPaid, IssueDate: day(20), DueDate: day(20).AddDate(0, 0, 30)},
		{ID: "INV-0003", Number: "INV-0003", Client: "Future Tech", Amount: 5000,
			Status: invoice.StatusPending, IssueDate: day(11), DueDate: day(11).AddDate(0, 0, 30)},
	}
}

func ids(items []invoice.Invoice) []string {
	out := make([]string, len(items))
	for i, inv := range items {
		out[i] = inv.ID
	}
	return out
}

func TestInvoiceSorter(t *testing.T) {
	sorter := NewInvoiceSorter()
	items := sampleInvoices()

	tests := []struct {
		field string
		order string
		want  []string
	}{
		{field: "number", order: "desc", want: []string{"INV-0003", "INV-0002", "INV-0001"}},
		{field: "client", order: "asc", want: []string{"INV-0002", "INV-0003", "INV-0001"}},
		{field: "amount", order: "asc", want: []string{"INV-0002", "INV-0001", "INV-0003"}},
		// Equal amounts keep their relative order in both directions.
		{field: "amount", order: "desc", want: []string{"INV-0001", "INV-0003", "INV-0002"}},
		{field: "status", order: "asc", want: []string{"INV-0002", "INV-0003", "INV-0001"}},
		{field: "date", order: "asc", want: []string{"INV-0001", "INV-0003", "INV-0002"}},
		{field: "dueDate", order: "desc", want: []string{"INV-0002", "INV-0003", "INV-0001"}},
	}

	for _, tt := range tests {
		t.Run(tt.field+":"+tt.order, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(sorter.Sort(items, tt.field, tt.order)))
		})
	}

	t.Run("does not modify input", func(t *testing.T) {
		_ = sorter.Sort(items, "client", "asc")
		assert.Equal(t, []string{"INV-0001", "INV-0002", "INV-0003"}, ids(items))
	})

	t.Run("invalid field", func(t *testing.T) {
		assert.Equal(t, items, sorter.Sort(items, "invalid", "asc"))
	})

	t.Run("valid fields", func(t *testing.T) {
		assert.Equal(t, []string{"amount", "client", "date", "dueDate", "number", "status"}, sorter.GetValidFields())
	})
}

func TestSortBy(t *testing.T) {
	sorter := NewInvoiceSorter()
	items := sampleInvoices()

	got, err := SortBy[invoice.Invoice](sorter, items, "amount:desc")
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", got[0].ID)

	got, err = SortBy[invoice.Invoice](sorter, items, "")
	require.NoError(t, err)
	assert.Equal(t, items, got)

	_, err = SortBy[invoice.Invoice](sorter, items, "savings")
	require.ErrorIs(t, err, ErrInvalidSortField)
	assert.Contains(t, err.Error(), "valid fields: amount, client")

	_, err = SortBy[invoice.Invoice](sorter, items, "amount:sideways")
	assert.ErrorIs(t, err, ErrInvalidSortOrder)
}
