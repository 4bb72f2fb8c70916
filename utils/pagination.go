package utils

import (
	"net/http"
	"strconv"
)

const DefaultPageSize = 6

type PageParams struct {
	Page  int
	Limit int
}

func ParsePageParams(r *http.Request) PageParams {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = DefaultPageSize
	}
	return PageParams{Page: page, Limit: limit}
}

func (p PageParams) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// PageEnvelope is the paginated list body: count plus absolute next/previous
// page links, null when the page does not exist.
type PageEnvelope struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

func NewPageEnvelope(r *http.Request, p PageParams, count int64, results interface{}) PageEnvelope {
	env := PageEnvelope{Count: count, Results: results}
	if int64(p.Page*p.Limit) < count {
		env.Next = pageURL(r, p.Page+1)
	}
	if p.Page > 1 {
		env.Previous = pageURL(r, p.Page-1)
	}
	return env
}

func pageURL(r *http.Request, page int) *string {
	u := *r.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	s := RequestBaseURL(r) + u.RequestURI()
	return &s
}
