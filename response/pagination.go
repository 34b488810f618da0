package response

import "fmt"

type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	From        *int  `json:"from"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	To          *int  `json:"to"`
	Total       int64 `json:"total"`
}

type PaginatedResponse struct {
	Data  any       `json:"data"`
	Links PageLinks `json:"links"`
	Meta  PageMeta  `json:"meta"`
}

// NewPaginated builds the list envelope: data plus first/last/prev/next
// links and counting metadata. count is the number of items on this page.
func NewPaginated(data any, basePath string, page, perPage, count int, total int64) PaginatedResponse {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	pageURL := func(p int) string {
		return fmt.Sprintf("%s?page=%d", basePath, p)
	}

	links := PageLinks{
		First: pageURL(1),
		Last:  pageURL(lastPage),
	}
	if page > 1 {
		prev := pageURL(page - 1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(page + 1)
		links.Next = &next
	}

	meta := PageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
	if count > 0 {
		from := (page-1)*perPage + 1
		to := from + count - 1
		meta.From = &from
		meta.To = &to
	}

	return PaginatedResponse{Data: data, Links: links, Meta: meta}
}
