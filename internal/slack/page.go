package slack

// Page is the uniform paginated-result shape. Count always equals
// len(Items); NextCursor is only set when HasMore is true and the endpoint
// exposed a cursor. Legacy page-counted endpoints (files.list, stars.list,
// reactions.list, search.*) can signal HasMore but never produce a cursor —
// callers who need to continue those listings must track the page number
// themselves and re-issue the call.
type Page[T any] struct {
	Items      []T
	Count      int
	HasMore    bool
	NextCursor string
}

// pageFromCursor builds a Page from a cursor-style response. An empty
// cursor means the listing is exhausted.
func pageFromCursor[T any](items []T, nextCursor string) Page[T] {
	return Page[T]{
		Items:      items,
		Count:      len(items),
		HasMore:    nextCursor != "",
		NextCursor: nextCursor,
	}
}

// pageFromMeta builds a Page from an envelope's response_metadata, which
// is how most cursor-style endpoints carry their cursor.
func pageFromMeta[T any](items []T, meta *ResponseMetadata) Page[T] {
	cursor := ""
	if meta != nil {
		cursor = meta.NextCursor
	}
	return pageFromCursor(items, cursor)
}

// pageFromCounts builds a Page from a legacy page/total-counted response.
// HasMore is computed from the counters; NextCursor stays empty.
func pageFromCounts[T any](items []T, page, totalPages int) Page[T] {
	return Page[T]{
		Items:   items,
		Count:   len(items),
		HasMore: page < totalPages,
	}
}

// pageFromFlag builds a Page from a boolean has-more flag (conversation
// history style). A zero-item page with HasMore set is legal: callers must
// not treat an empty page as end-of-stream without checking HasMore.
func pageFromFlag[T any](items []T, hasMore bool) Page[T] {
	return Page[T]{
		Items:   items,
		Count:   len(items),
		HasMore: hasMore,
	}
}
