// Package format renders typed Slack results as markdown text for tool
// output. It is pure presentation: no invariants live here beyond "never
// show a raw stack trace".
package format

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

// Error renders a failure as a single line, with a "(retryable)" suffix
// when the classification says the caller may try again.
func Error(err error) string {
	var apiErr *slack.APIError
	if errors.As(err, &apiErr) {
		var b strings.Builder
		b.WriteString(apiErr.Error())
		if apiErr.Kind == slack.KindRateLimit && apiErr.RetryAfter > 0 {
			fmt.Fprintf(&b, " [retry after %ds]", apiErr.RetryAfter)
		}
		if apiErr.Retryable {
			b.WriteString(" (retryable)")
		}
		return b.String()
	}
	return err.Error()
}

// pageFooter renders the continuation hint for a paginated result.
func pageFooter(b *strings.Builder, hasMore bool, nextCursor string) {
	if !hasMore {
		return
	}
	if nextCursor != "" {
		fmt.Fprintf(b, "\nMore results available. Next cursor: %s\n", nextCursor)
	} else {
		b.WriteString("\nMore results available on the next page.\n")
	}
}

// Channels renders a page of conversations as a markdown table.
func Channels(page slack.Page[slack.Channel]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d channels\n\n", page.Count)
	b.WriteString("| ID | Name | Type | Members | Topic |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, ch := range page.Items {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			ch.ID, ch.Name, channelType(ch), ch.NumMembers, cell(ch.Topic.Value))
	}
	pageFooter(&b, page.HasMore, page.NextCursor)
	return b.String()
}

func channelType(ch slack.Channel) string {
	switch {
	case ch.IsIM:
		return "im"
	case ch.IsMpIM:
		return "mpim"
	case ch.IsPrivate:
		return "private"
	default:
		return "public"
	}
}

// Channel renders a single conversation.
func Channel(ch *slack.Channel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s, %s)\n", ch.Name, ch.ID, channelType(*ch))
	if ch.Topic.Value != "" {
		fmt.Fprintf(&b, "Topic: %s\n", ch.Topic.Value)
	}
	if ch.Purpose.Value != "" {
		fmt.Fprintf(&b, "Purpose: %s\n", ch.Purpose.Value)
	}
	if ch.NumMembers > 0 {
		fmt.Fprintf(&b, "Members: %d\n", ch.NumMembers)
	}
	if ch.IsArchived {
		b.WriteString("Archived.\n")
	}
	return b.String()
}

// Messages renders a page of messages, oldest metadata first.
func Messages(page slack.Page[slack.Message]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d messages\n\n", page.Count)
	for _, m := range page.Items {
		who := m.User
		if who == "" {
			who = m.BotID
		}
		fmt.Fprintf(&b, "[%s] %s: %s\n", ts(m.TS), who, m.Text)
		if m.ReplyCount > 0 {
			fmt.Fprintf(&b, "  thread: %d replies (thread_ts %s)\n", m.ReplyCount, m.TS)
		}
		for _, r := range m.Reactions {
			fmt.Fprintf(&b, "  :%s: x%d\n", r.Name, r.Count)
		}
	}
	pageFooter(&b, page.HasMore, page.NextCursor)
	return b.String()
}

// Message renders a single message.
func Message(m *slack.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Message %s in %s\n", m.TS, m.Channel)
	if m.Text != "" {
		fmt.Fprintf(&b, "%s\n", m.Text)
	}
	if m.Permalink != "" {
		fmt.Fprintf(&b, "Permalink: %s\n", m.Permalink)
	}
	return b.String()
}

// Users renders a page of users as a markdown table.
func Users(page slack.Page[slack.User]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d users\n\n", page.Count)
	b.WriteString("| ID | Name | Real name | Status | Flags |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, u := range page.Items {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			u.ID, u.Name, cell(u.RealName), cell(u.Profile.StatusText), userFlags(u))
	}
	pageFooter(&b, page.HasMore, page.NextCursor)
	return b.String()
}

func userFlags(u slack.User) string {
	var flags []string
	if u.IsBot {
		flags = append(flags, "bot")
	}
	if u.IsAdmin {
		flags = append(flags, "admin")
	}
	if u.Deleted {
		flags = append(flags, "deactivated")
	}
	return strings.Join(flags, ",")
}

// User renders a single user.
func User(u *slack.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s)\n", u.Name, u.ID)
	if u.RealName != "" {
		fmt.Fprintf(&b, "Real name: %s\n", u.RealName)
	}
	if u.Profile.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", u.Profile.Email)
	}
	if u.Profile.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", u.Profile.Title)
	}
	if u.TZ != "" {
		fmt.Fprintf(&b, "Timezone: %s\n", u.TZ)
	}
	if flags := userFlags(*u); flags != "" {
		fmt.Fprintf(&b, "Flags: %s\n", flags)
	}
	return b.String()
}

// Files renders a page of files as a markdown table. The paging block is
// shown when present so callers can continue page-counted listings.
func Files(page slack.Page[slack.File], paging *slack.Paging) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d files\n\n", page.Count)
	b.WriteString("| ID | Name | Type | Size | Permalink |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, f := range page.Items {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n", f.ID, f.Name, f.Filetype, f.Size, f.Permalink)
	}
	pagingFooter(&b, paging)
	return b.String()
}

// File renders a single file's metadata.
func File(f *slack.File) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s)\n", f.Name, f.ID)
	if f.Title != "" && f.Title != f.Name {
		fmt.Fprintf(&b, "Title: %s\n", f.Title)
	}
	fmt.Fprintf(&b, "Type: %s, size: %d bytes\n", f.Mimetype, f.Size)
	if f.Permalink != "" {
		fmt.Fprintf(&b, "Permalink: %s\n", f.Permalink)
	}
	if len(f.Channels) > 0 {
		fmt.Fprintf(&b, "Shared in: %s\n", strings.Join(f.Channels, ", "))
	}
	return b.String()
}

// Reminders renders a reminder list.
func Reminders(reminders []slack.Reminder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d reminders\n\n", len(reminders))
	for _, r := range reminders {
		state := "pending"
		if r.CompleteTS > 0 {
			state = "complete"
		}
		when := ""
		if r.Time > 0 {
			when = " at " + ts(fmt.Sprintf("%d", r.Time))
		}
		fmt.Fprintf(&b, "- [%s] %s: %s%s\n", state, r.ID, r.Text, when)
	}
	return b.String()
}

// Bookmarks renders a channel's bookmark list.
func Bookmarks(bookmarks []slack.Bookmark) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d bookmarks\n\n", len(bookmarks))
	for _, bm := range bookmarks {
		fmt.Fprintf(&b, "- %s: [%s](%s)\n", bm.ID, bm.Title, bm.Link)
	}
	return b.String()
}

// UserGroups renders a user-group table.
func UserGroups(groups []slack.UserGroup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d user groups\n\n", len(groups))
	b.WriteString("| ID | Handle | Name | Users |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "| %s | @%s | %s | %d |\n", g.ID, g.Handle, g.Name, g.UserCount)
	}
	return b.String()
}

// Team renders workspace metadata.
func Team(team *slack.Team) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s)\n", team.Name, team.ID)
	if team.Domain != "" {
		fmt.Fprintf(&b, "Domain: %s.slack.com\n", team.Domain)
	}
	if team.EmailDomain != "" {
		fmt.Fprintf(&b, "Email domain: %s\n", team.EmailDomain)
	}
	return b.String()
}

// DND renders a do-not-disturb status.
func DND(status *slack.DNDStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "DND enabled: %v\n", status.DNDEnabled)
	if status.SnoozeEnabled {
		fmt.Fprintf(&b, "Snoozing, %d seconds remaining\n", status.SnoozeRemaining)
	}
	if status.NextDNDStartTS > 0 {
		fmt.Fprintf(&b, "Next DND window: %s to %s\n",
			unixTS(status.NextDNDStartTS), unixTS(status.NextDNDEndTS))
	}
	return b.String()
}

// Presence renders a presence state.
func Presence(p *slack.Presence) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Presence: %s\n", p.Presence)
	if p.Online {
		b.WriteString("Currently online\n")
	}
	if p.LastActivity > 0 {
		fmt.Fprintf(&b, "Last activity: %s\n", unixTS(p.LastActivity))
	}
	return b.String()
}

// Emoji renders the custom emoji map sorted by name.
func Emoji(emoji map[string]string) string {
	names := make([]string, 0, len(emoji))
	for name := range emoji {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "%d custom emoji\n\n", len(names))
	for _, name := range names {
		fmt.Fprintf(&b, "- :%s: %s\n", name, emoji[name])
	}
	return b.String()
}

// Members renders a page of member IDs.
func Members(page slack.Page[string]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d members\n\n", page.Count)
	for _, id := range page.Items {
		fmt.Fprintf(&b, "- %s\n", id)
	}
	pageFooter(&b, page.HasMore, page.NextCursor)
	return b.String()
}

// IDList renders a plain ID list with a label, used for user-group
// membership.
func IDList(label string, ids []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s\n\n", len(ids), label)
	for _, id := range ids {
		fmt.Fprintf(&b, "- %s\n", id)
	}
	return b.String()
}

// ScheduledMessages renders a page of pending scheduled messages.
func ScheduledMessages(page slack.Page[slack.ScheduledMessage]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d scheduled messages\n\n", page.Count)
	for _, m := range page.Items {
		fmt.Fprintf(&b, "- %s in %s at %s: %s\n", m.ID, m.ChannelID, unixTS(m.PostAt), m.Text)
	}
	pageFooter(&b, page.HasMore, page.NextCursor)
	return b.String()
}

// itemLine renders one pinned/starred/reacted item.
func itemLine(b *strings.Builder, typ, channel string, msg *slack.Message, file *slack.File) {
	switch {
	case msg != nil:
		fmt.Fprintf(b, "- message %s in %s: %s\n", msg.TS, channel, msg.Text)
	case file != nil:
		fmt.Fprintf(b, "- file %s (%s)\n", file.ID, file.Name)
	default:
		fmt.Fprintf(b, "- %s in %s\n", typ, channel)
	}
}

// Pins renders a channel's pinned items.
func Pins(items []slack.PinnedItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d pinned items\n\n", len(items))
	for _, it := range items {
		itemLine(&b, it.Type, it.Channel, it.Message, it.File)
	}
	return b.String()
}

// Stars renders a page of starred items.
func Stars(page slack.Page[slack.StarredItem], paging *slack.Paging) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d starred items\n\n", page.Count)
	for _, it := range page.Items {
		itemLine(&b, it.Type, it.Channel, it.Message, it.File)
	}
	pagingFooter(&b, paging)
	return b.String()
}

// Reactions renders the reactions on one item.
func Reactions(item *slack.ReactedItem) string {
	var b strings.Builder
	if item.Message != nil {
		fmt.Fprintf(&b, "Reactions on message %s in %s\n\n", item.Message.TS, item.Channel)
		for _, r := range item.Message.Reactions {
			fmt.Fprintf(&b, "- :%s: x%d", r.Name, r.Count)
			if len(r.Users) > 0 {
				fmt.Fprintf(&b, " (%s)", strings.Join(r.Users, ", "))
			}
			b.WriteString("\n")
		}
	} else {
		fmt.Fprintf(&b, "No message reactions on %s item\n", item.Type)
	}
	return b.String()
}

// ReactedItems renders a page of items a user reacted to.
func ReactedItems(page slack.Page[slack.ReactedItem], paging *slack.Paging) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d reacted items\n\n", page.Count)
	for _, it := range page.Items {
		itemLine(&b, it.Type, it.Channel, it.Message, it.File)
	}
	pagingFooter(&b, paging)
	return b.String()
}

// Profile renders a user profile.
func Profile(p *slack.UserProfile) string {
	var b strings.Builder
	if p.DisplayName != "" {
		fmt.Fprintf(&b, "Display name: %s\n", p.DisplayName)
	}
	if p.RealName != "" {
		fmt.Fprintf(&b, "Real name: %s\n", p.RealName)
	}
	if p.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", p.Email)
	}
	if p.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", p.Title)
	}
	if p.StatusText != "" || p.StatusEmoji != "" {
		fmt.Fprintf(&b, "Status: %s %s\n", p.StatusEmoji, p.StatusText)
	}
	if b.Len() == 0 {
		return "Profile is empty.\n"
	}
	return b.String()
}

// DNDTeam renders a DND status map sorted by user ID.
func DNDTeam(statuses map[string]slack.DNDStatus) string {
	ids := make([]string, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	fmt.Fprintf(&b, "DND status for %d users\n\n", len(ids))
	for _, id := range ids {
		st := statuses[id]
		state := "off"
		if st.DNDEnabled {
			state = "on"
		}
		if st.SnoozeEnabled {
			state = "snoozing"
		}
		fmt.Fprintf(&b, "- %s: %s\n", id, state)
	}
	return b.String()
}

// Identity renders the auth.test result.
func Identity(id *slack.AuthTestResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Authenticated as %s (%s) in team %s (%s)\n", id.User, id.UserID, id.Team, id.TeamID)
	if id.BotID != "" {
		fmt.Fprintf(&b, "Bot ID: %s\n", id.BotID)
	}
	if id.URL != "" {
		fmt.Fprintf(&b, "Workspace: %s\n", id.URL)
	}
	return b.String()
}

// MessageMatches renders search results with the page-counted footer.
func MessageMatches(page slack.Page[slack.Message], paging *slack.Paging) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d matches\n\n", page.Count)
	for _, m := range page.Items {
		fmt.Fprintf(&b, "[%s] %s in %s: %s\n", ts(m.TS), m.User, m.Channel, m.Text)
		if m.Permalink != "" {
			fmt.Fprintf(&b, "  %s\n", m.Permalink)
		}
	}
	pagingFooter(&b, paging)
	return b.String()
}

// pagingFooter renders the continuation hint for page-counted listings,
// which carry no cursor.
func pagingFooter(b *strings.Builder, paging *slack.Paging) {
	if paging != nil && paging.Page < paging.Pages {
		fmt.Fprintf(b, "\nPage %d of %d (%d total). Re-issue with page=%d to continue.\n",
			paging.Page, paging.Pages, paging.Total, paging.Page+1)
	}
}

// cell sanitizes a value for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}

// ts formats a Slack message timestamp ("1700000000.000100") as RFC 3339.
// Malformed timestamps are returned unchanged.
func ts(v string) string {
	secs := v
	if i := strings.IndexByte(v, '.'); i >= 0 {
		secs = v[:i]
	}
	var unix int64
	if _, err := fmt.Sscanf(secs, "%d", &unix); err != nil {
		return v
	}
	return unixTS(unix)
}

func unixTS(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(time.RFC3339)
}
