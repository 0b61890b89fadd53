package helpers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/pkg/listing"
)

// Query parameter names accepted by the list endpoints.
const (
	ParamSearch    = "search"
	ParamSearchBy  = "searchBy"
	ParamSortBy    = "sortBy"
	ParamSortByAlt = "sort_by"
	ParamOrder     = "order"
	ParamPage      = "page"
	ParamPerPage   = "per_page"
)

// ParseListParams extracts the list parameters for entity from the request. Filters are
// read for the given logical field names; each may be repeated and/or comma-separated.
// Malformed page and per_page values fall back to the defaults.
func ParseListParams(c *gin.Context, entity *listing.Entity, filterFields ...string) listing.Params {
	sortBy := c.Query(ParamSortBy)
	if sortBy == "" {
		sortBy = c.Query(ParamSortByAlt)
	}

	page := listing.ParsePage(c.Query(ParamPage), c.Query(ParamPerPage), entity.DefaultPerPage)

	searchBy := c.Query(ParamSearchBy)
	if searchBy == "" {
		searchBy = listing.SearchAll
	}

	params := listing.Params{
		Search:   c.Query(ParamSearch),
		SearchBy: searchBy,
		SortBy:   sortBy,
		Order:    c.Query(ParamOrder),
		Page:     page.Number,
		PerPage:  page.PerPage,
	}

	for _, field := range filterFields {
		values := SplitMulti(c.QueryArray(field))
		if len(values) == 0 {
			continue
		}
		if params.Filters == nil {
			params.Filters = make(map[string][]string, len(filterFields))
		}
		params.Filters[field] = values
	}

	return params
}

// SplitMulti flattens repeated and comma-separated values, dropping blanks.
func SplitMulti(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
