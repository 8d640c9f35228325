package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

func TestErrorRetryableSuffix(t *testing.T) {
	retryable := &slack.APIError{Kind: slack.KindTransport, Message: "connection reset", Retryable: true}
	if got := Error(retryable); !strings.HasSuffix(got, "(retryable)") {
		t.Errorf("Error() = %q, want (retryable) suffix", got)
	}

	fatal := &slack.APIError{Kind: slack.KindAuth, Code: "invalid_auth", Message: "invalid_auth"}
	if got := Error(fatal); strings.Contains(got, "retryable") {
		t.Errorf("Error() = %q, must not claim retryability", got)
	}
}

func TestErrorRateLimitHint(t *testing.T) {
	err := &slack.APIError{
		Kind: slack.KindRateLimit, Code: "ratelimited", Message: "ratelimited",
		Retryable: true, RetryAfter: 30,
	}
	got := Error(err)
	if !strings.Contains(got, "retry after 30s") {
		t.Errorf("Error() = %q, want retry-after hint", got)
	}
}

func TestErrorPlain(t *testing.T) {
	if got := Error(errors.New("boom")); got != "boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestChannelsTable(t *testing.T) {
	page := slack.Page[slack.Channel]{
		Items: []slack.Channel{
			{ID: "C1", Name: "general", NumMembers: 12},
			{ID: "C2", Name: "secret", IsPrivate: true},
		},
		Count:      2,
		HasMore:    true,
		NextCursor: "abc",
	}
	got := Channels(page)
	if !strings.Contains(got, "| C1 | general | public | 12 |") {
		t.Errorf("missing channel row:\n%s", got)
	}
	if !strings.Contains(got, "| C2 | secret | private |") {
		t.Errorf("missing private row:\n%s", got)
	}
	if !strings.Contains(got, "Next cursor: abc") {
		t.Errorf("missing cursor footer:\n%s", got)
	}
}

func TestFilesLegacyPagingFooter(t *testing.T) {
	page := slack.Page[slack.File]{
		Items:   []slack.File{{ID: "F1", Name: "a.txt"}},
		Count:   1,
		HasMore: true,
	}
	got := Files(page, &slack.Paging{Page: 1, Pages: 3, Total: 5})
	if !strings.Contains(got, "Page 1 of 3") {
		t.Errorf("missing paging footer:\n%s", got)
	}
	if !strings.Contains(got, "page=2") {
		t.Errorf("missing continuation hint:\n%s", got)
	}
}

func TestMessagesEscapesNothingButRenders(t *testing.T) {
	page := slack.Page[slack.Message]{
		Items: []slack.Message{{TS: "1700000000.000100", User: "U1", Text: "hello", ReplyCount: 2}},
		Count: 1,
	}
	got := Messages(page)
	if !strings.Contains(got, "U1: hello") {
		t.Errorf("missing message line:\n%s", got)
	}
	if !strings.Contains(got, "2 replies") {
		t.Errorf("missing thread hint:\n%s", got)
	}
	if strings.Contains(got, "More results") {
		t.Errorf("unexpected footer on final page:\n%s", got)
	}
}

func TestEmojiSorted(t *testing.T) {
	got := Emoji(map[string]string{"zebra": "u2", "apple": "u1"})
	if strings.Index(got, "apple") > strings.Index(got, "zebra") {
		t.Errorf("emoji not sorted:\n%s", got)
	}
}

func TestCellEscapesPipes(t *testing.T) {
	page := slack.Page[slack.Channel]{
		Items: []slack.Channel{{ID: "C1", Name: "x", Topic: slack.ChannelValue{Value: "a|b\nc"}}},
		Count: 1,
	}
	got := Channels(page)
	if strings.Contains(got, "a|b") && !strings.Contains(got, `a\|b`) {
		t.Errorf("pipe not escaped in cell:\n%s", got)
	}
}

func TestMembersFooterCarriesCursor(t *testing.T) {
	page := slack.Page[string]{
		Items:      []string{"U1", "U2"},
		Count:      2,
		HasMore:    true,
		NextCursor: "abc",
	}
	got := Members(page)
	if !strings.Contains(got, "- U1") || !strings.Contains(got, "- U2") {
		t.Errorf("missing member lines:\n%s", got)
	}
	if !strings.Contains(got, "Next cursor: abc") {
		t.Errorf("missing cursor hint:\n%s", got)
	}
}

func TestIdentity(t *testing.T) {
	got := Identity(&slack.AuthTestResponse{
		User: "bot", UserID: "U1", Team: "acme", TeamID: "T1", BotID: "B1",
	})
	if !strings.Contains(got, "bot (U1)") || !strings.Contains(got, "acme (T1)") {
		t.Errorf("missing identity fields:\n%s", got)
	}
	if !strings.Contains(got, "B1") {
		t.Errorf("missing bot ID:\n%s", got)
	}
}

func TestMessageMatchesPagingFooter(t *testing.T) {
	page := slack.Page[slack.Message]{
		Items: []slack.Message{{TS: "1700000000.000100", User: "U1", Channel: "C1", Text: "hit"}},
		Count: 1,
	}
	got := MessageMatches(page, &slack.Paging{Page: 2, Pages: 4, Total: 80})
	if !strings.Contains(got, "hit") {
		t.Errorf("missing match line:\n%s", got)
	}
	if !strings.Contains(got, "Page 2 of 4") || !strings.Contains(got, "page=3") {
		t.Errorf("missing continuation hint:\n%s", got)
	}
}

func TestPinsRendersMessagesAndFiles(t *testing.T) {
	got := Pins([]slack.PinnedItem{
		{Type: "message", Channel: "C1", Message: &slack.Message{TS: "1.2", Text: "pinned"}},
		{Type: "file", File: &slack.File{ID: "F1", Name: "doc.txt"}},
	})
	if !strings.Contains(got, "pinned") {
		t.Errorf("missing pinned message:\n%s", got)
	}
	if !strings.Contains(got, "F1 (doc.txt)") {
		t.Errorf("missing pinned file:\n%s", got)
	}
}

func TestDNDTeamSortedStates(t *testing.T) {
	got := DNDTeam(map[string]slack.DNDStatus{
		"U2": {DNDEnabled: true},
		"U1": {SnoozeEnabled: true},
	})
	if strings.Index(got, "U1") > strings.Index(got, "U2") {
		t.Errorf("statuses not sorted by user:\n%s", got)
	}
	if !strings.Contains(got, "U1: snoozing") || !strings.Contains(got, "U2: on") {
		t.Errorf("wrong states:\n%s", got)
	}
}
