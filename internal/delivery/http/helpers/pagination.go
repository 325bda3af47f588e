package helpers

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"pianostudio/internal/domain"
)

// List query defaults. page_size above MaxPageSize is cut down, not rejected.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps (page-1)*page_size inside int.
	MaxPage = math.MaxInt / MaxPageSize
)

// ParsePagination reads page and page_size from the query. Missing, malformed and
// non-positive values fall back to the defaults; page is capped at MaxPage.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     min(positiveQueryInt(q, "page", DefaultPage), MaxPage),
		PageSize: min(positiveQueryInt(q, "page_size", DefaultPageSize), MaxPageSize),
	}
}

func positiveQueryInt(q url.Values, key string, fallback int) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// PaginationMeta accompanies every list response so the admin UI can draw its page bar
// without computing anything.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
	Window     domain.PageWindow `json:"window"`
}

// NewPaginationMeta echoes the requested page as is. The window is drawn around that page
// pulled back into [1, TotalPages], so a stale link past the end still shows the last pages.
func NewPaginationMeta(params domain.PaginationParams, total, windowSize int) PaginationMeta {
	pages := params.TotalPages(total)
	meta := PaginationMeta{
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      total,
		TotalPages: pages,
	}
	meta.Window = domain.ComputeWindow(min(max(params.Page, 1), pages), pages, windowSize)
	return meta
}
