package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/packarr/packarr/pkg/pagination"
)

// ParsePaginationParams reads page/pageSize query parameters. A missing page
// means page 1; a missing or zero pageSize means no limit.
func ParsePaginationParams(r *http.Request) (pagination.Params, error) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		return pagination.Params{Page: 1}, err
	}

	size, err := queryInt(r, "pageSize", 0)
	if err != nil {
		return pagination.Params{Page: page}, err
	}

	return pagination.Params{Page: page, PageSize: size}, nil
}

func queryInt(r *http.Request, key string, floor int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return floor, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < floor {
		return floor, fmt.Errorf("invalid %s parameter: %q", key, raw)
	}
	return v, nil
}
