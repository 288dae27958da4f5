package models

import (
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/dataguard/internal/common"
)

// Page selects a slice of a list endpoint.
type Page struct {
	Page  int
	Limit int
}

// Normalize replaces non-positive values with the defaults (page 1, limit 10).
func (p Page) Normalize() Page {
	if p.Page <= 0 {
		p.Page = common.DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = common.DefaultLimit
	}
	return p
}

// Values encodes the normalized page as page/limit query parameters.
func (p Page) Values() url.Values {
	n := p.Normalize()
	v := url.Values{}
	v.Set("page", strconv.Itoa(n.Page))
	v.Set("limit", strconv.Itoa(n.Limit))
	return v
}

// Pagination is the paging block list responses carry.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
