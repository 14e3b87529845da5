package services

// Local list merges applied after a successful mutation. The server result
// is trusted as is; there is no version check.

func replaceByID[T any](list []T, item T, id func(T) string) []T {
	out := make([]T, len(list))
	for i, it := range list {
		if id(it) == id(item) {
			out[i] = item
			continue
		}
		out[i] = it
	}
	return out
}

func removeByID[T any](list []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(list))
	for _, it := range list {
		if id(it) != target {
			out = append(out, it)
		}
	}
	return out
}
