package models

type PageLinks struct {
	Self     string  `json:"self"`
	First    string  `json:"first"`
	Last     string  `json:"last"`
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
}

// PagedResult is one page of a collection. len(Data) <= PageSize.
type PagedResult[T any] struct {
	Data            []T       `json:"data"`
	Page            int       `json:"page"`
	PageSize        int       `json:"pageSize"`
	TotalCount      int       `json:"totalCount"`
	TotalPages      int       `json:"totalPages"`
	HasPreviousPage bool      `json:"hasPreviousPage"`
	HasNextPage     bool      `json:"hasNextPage"`
	Links           PageLinks `json:"links"`
}

// EmptyPage is the result reported when a page cannot be fetched.
func EmptyPage[T any](page, pageSize int) PagedResult[T] {
	return PagedResult[T]{Data: []T{}, Page: page, PageSize: pageSize}
}

// TotalPagesFor is ceil(totalCount/pageSize).
func TotalPagesFor(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
