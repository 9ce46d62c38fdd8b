package utils

import (
	"net/url"
	"strconv"
)

// TotalPages returns how many pages of size limit hold total rows.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// BuildPaginationURL returns baseURL with page and limit replaced and every
// other query parameter kept.
func BuildPaginationURL(baseURL string, page, limit int, params url.Values) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	for key, values := range params {
		if key != "page" && key != "limit" {
			for _, value := range values {
				q.Add(key, value)
			}
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// PageLinks returns the next and previous page URLs, nil when there is none.
func PageLinks(baseURL string, page, limit, totalPages int, params url.Values) (next, prev *string) {
	if page < totalPages {
		n := BuildPaginationURL(baseURL, page+1, limit, params)
		next = &n
	}
	if page > 1 {
		p := BuildPaginationURL(baseURL, min(page-1, max(totalPages, 1)), limit, params)
		prev = &p
	}
	return next, prev
}
