package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/coregx/forumhub/model"
)

// parsePageRequest reads page, size and sort from the query string.
// Missing parameters fall back to model.DefaultPageRequest; range and sort
// key checks are left to the service.
func parsePageRequest(r *http.Request) (model.PageRequest, error) {
	req := model.DefaultPageRequest()
	q := r.URL.Query()

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("page must be an integer, got %q", v)
		}
		req.Page = page
	}

	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("size must be an integer, got %q", v)
		}
		req.Size = size
	}

	req.ParseSort(q.Get("sort"))
	return req, nil
}
