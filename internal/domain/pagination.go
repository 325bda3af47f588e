package domain

import "math"

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize, saturating at math.MaxInt.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns ceiling(total / PageSize), never less than 1.
func (p PaginationParams) TotalPages(total int) int {
	if p.PageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// DefaultWindowSize is the number of page buttons shown in the middle window
// when the caller does not ask for another size.
const DefaultWindowSize = 5

// minWindowSize keeps previous/current/next representable.
const minWindowSize = 3

// PageWindow tells a list UI which page buttons to draw.
// swagger:model PageWindow
type PageWindow struct {
	Pages             []int `json:"pages"`
	StartPage         int   `json:"start_page"`
	EndPage           int   `json:"end_page"`
	ShowLeftEllipsis  bool  `json:"show_left_ellipsis"`
	ShowRightEllipsis bool  `json:"show_right_ellipsis"`
	// ShowFirst and ShowLast mark the permanent page-1 and last-page shortcuts.
	ShowFirst bool `json:"show_first"`
	ShowLast  bool `json:"show_last"`
}

// ComputeWindow returns the contiguous run of page numbers to display around
// currentPage. The window holds max(3, windowSize) pages, or every page when
// there are fewer. currentPage is not validated; callers clamp it to
// [1, totalPages]. totalPages below 1 is treated as 1.
//
// An ellipsis is flagged only when at least one page is hidden between the
// window and the first/last page shortcut, so start == 2 shows no left ellipsis.
func ComputeWindow(currentPage, totalPages, windowSize int) PageWindow {
	if totalPages < 1 {
		totalPages = 1
	}
	size := max(minWindowSize, windowSize)
	half := size / 2

	start := max(1, currentPage-half)
	end := min(totalPages, start+min(size, totalPages)-1)
	// end was clipped by totalPages: pull start back so the window stays full.
	start = max(1, end-size+1)

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	return PageWindow{
		Pages:             pages,
		StartPage:         start,
		EndPage:           end,
		ShowLeftEllipsis:  start > 2,
		ShowRightEllipsis: end < totalPages-1,
		ShowFirst:         start > 1,
		ShowLast:          end < totalPages,
	}
}

// NavigateTo reports whether navigating to requested is a real page change.
// Out-of-range pages and the current page are ignored.
func NavigateTo(requested, currentPage, totalPages int) (int, bool) {
	if requested < 1 || requested > totalPages || requested == currentPage {
		return currentPage, false
	}
	return requested, true
}
