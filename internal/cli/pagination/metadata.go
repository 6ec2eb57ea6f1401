package pagination

// PaginationMeta describes where a returned slice sits in the full result set.
// It is emitted next to the rows in JSON and YAML output.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	Returned    int  `json:"returned"     yaml:"returned"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewPaginationMeta derives the metadata for a request. The page size is
// --page-size, else --limit, else the whole result set as one page. In offset
// mode the current page is the page the offset falls on.
func NewPaginationMeta(params PaginationParams, totalCount, returned int) PaginationMeta {
	size := params.PageSize
	switch {
	case size > 0:
	case params.Limit > 0:
		size = params.Limit
	default:
		size = totalCount
	}

	meta := PaginationMeta{
		CurrentPage: max(params.Page, 1),
		PageSize:    size,
		TotalItems:  totalCount,
		Returned:    returned,
	}
	if size > 0 {
		meta.TotalPages = (totalCount + size - 1) / size
		if !params.IsPageBased() {
			meta.CurrentPage = params.Offset/size + 1
		}
	}
	if params.IsPageBased() && meta.TotalPages > 0 {
		meta.CurrentPage = min(meta.CurrentPage, meta.TotalPages)
	}

	meta.HasPrevious = meta.CurrentPage > 1
	meta.HasNext = meta.CurrentPage < meta.TotalPages
	return meta
}
