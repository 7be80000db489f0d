package response

// ListResponse wraps collection results so the UI can show counts without
// re-counting.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

type CountResponse struct {
	Count int `json:"count"`
}
