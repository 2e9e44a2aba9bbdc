package dto

import (
	"net/http"
	"net/url"
	"strconv"

	"sunstone/shared/constant"
)

// QueryParams carries the admin list controls: pagination plus the booking
// filters the console exposes. It is forwarded verbatim to the remote API.
type QueryParams struct {
	Page   int    `json:"page"   validate:"omitempty,min=1"`
	Limit  int    `json:"limit"  validate:"omitempty,min=1"`
	Status string `json:"status" validate:"omitempty"`
	Search string `json:"search" validate:"omitempty"`
	Date   string `json:"date"   validate:"omitempty"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, Page and Limit fall back to the list defaults when
// absent; otherwise only fields present in the request are populated.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	q.Status = queryParams.Get(constant.RequestParamStatus)
	q.Search = queryParams.Get(constant.RequestParamSearch)
	q.Date = queryParams.Get(constant.RequestParamDate)

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Encode renders the params as a query string for the remote API call.
// Zero-valued fields are omitted.
func (q *QueryParams) Encode() string {
	values := url.Values{}

	if q.Page > 0 {
		values.Set(constant.RequestParamPage, strconv.Itoa(q.Page))
	}

	if q.Limit > 0 {
		values.Set(constant.RequestParamLimit, strconv.Itoa(q.Limit))
	}

	if q.Status != "" {
		values.Set(constant.RequestParamStatus, q.Status)
	}

	if q.Search != "" {
		values.Set(constant.RequestParamSearch, q.Search)
	}

	if q.Date != "" {
		values.Set(constant.RequestParamDate, q.Date)
	}

	return values.Encode()
}
