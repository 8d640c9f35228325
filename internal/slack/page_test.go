package slack

import "testing"

func TestPageFromCursor(t *testing.T) {
	page := pageFromCursor([]string{"a", "b"}, "next")
	if page.Count != 2 || page.Count != len(page.Items) {
		t.Errorf("Count = %d, want len(Items) = %d", page.Count, len(page.Items))
	}
	if !page.HasMore {
		t.Error("HasMore = false, want true")
	}
	if page.NextCursor != "next" {
		t.Errorf("NextCursor = %q, want %q", page.NextCursor, "next")
	}

	done := pageFromCursor([]string{"a"}, "")
	if done.HasMore {
		t.Error("HasMore = true, want false")
	}
	if done.NextCursor != "" {
		t.Errorf("NextCursor = %q, want empty when HasMore is false", done.NextCursor)
	}
}

func TestPageFromMeta(t *testing.T) {
	page := pageFromMeta([]int{1, 2, 3}, &ResponseMetadata{NextCursor: "c"})
	if page.NextCursor != "c" || !page.HasMore {
		t.Errorf("got {HasMore:%v NextCursor:%q}, want cursor carried through", page.HasMore, page.NextCursor)
	}

	nilMeta := pageFromMeta([]int{1}, nil)
	if nilMeta.HasMore || nilMeta.NextCursor != "" {
		t.Errorf("nil metadata: got {HasMore:%v NextCursor:%q}, want exhausted", nilMeta.HasMore, nilMeta.NextCursor)
	}
}

func TestPageFromCounts(t *testing.T) {
	more := pageFromCounts([]string{"x"}, 1, 3)
	if !more.HasMore {
		t.Error("page 1 of 3: HasMore = false, want true")
	}
	if more.NextCursor != "" {
		t.Errorf("legacy paging must not produce a cursor, got %q", more.NextCursor)
	}

	last := pageFromCounts([]string{"y"}, 3, 3)
	if last.HasMore {
		t.Error("page 3 of 3: HasMore = true, want false")
	}
}

func TestPageFromFlagEmptyPage(t *testing.T) {
	// A zero-item page with the has-more flag set is a legal state, not
	// end-of-stream.
	page := pageFromFlag([]Message{}, true)
	if page.Count != 0 {
		t.Errorf("Count = %d, want 0", page.Count)
	}
	if !page.HasMore {
		t.Error("HasMore = false, want true on an empty page with more data")
	}
}
