package response

import "encoding/json"

// ListResponse renders as {"count": n, "<key>": [...]}.
type ListResponse[T any] struct {
	Key   string
	Items []T
}

func NewListResponse[T any](key string, items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Key: key, Items: items}
}

func (l ListResponse[T]) MarshalJSON() ([]byte, error) {
	items := l.Items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(map[string]any{
		"count": len(items),
		l.Key:   items,
	})
}

// mapList converts entities to response values, keeping order
func mapList[E any, R any](in []*E, fn func(*E) R) []R {
	out := make([]R, 0, len(in))
	for _, e := range in {
		out = append(out, fn(e))
	}
	return out
}
