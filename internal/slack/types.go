// Package slack is a typed client for the Slack Web API. It covers the
// conversation, message, user, file, reaction, pin, star, reminder,
// bookmark, user group, team, presence/DND, emoji and search surfaces, and
// normalizes failures into a closed classification (see APIError) and the
// three pagination styles the API uses into one Page shape.
//
// The client holds no mutable state: credentials are captured immutably at
// construction and every call is an independent request/response unit, so a
// Client is safe for concurrent use.
package slack

// Envelope is the outer object every Web API response is wrapped in. Slack
// returns HTTP 200 for most application errors; the OK flag is the real
// success signal.
type Envelope struct {
	OK               bool              `json:"ok"`
	Error            string            `json:"error,omitempty"`
	Warning          string            `json:"warning,omitempty"`
	ResponseMetadata *ResponseMetadata `json:"response_metadata,omitempty"`
}

func (e *Envelope) envelope() *Envelope { return e }

// ResponseMetadata carries the pagination cursor and non-fatal warnings.
type ResponseMetadata struct {
	NextCursor string   `json:"next_cursor,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Paging is the legacy page/total counter block returned by older list
// endpoints (files.list, stars.list, reactions.list, search.*).
type Paging struct {
	Count int `json:"count"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// Channel is a conversation of any type: public or private channel, DM, or
// group DM.
type Channel struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name,omitempty"`
	IsChannel          bool         `json:"is_channel,omitempty"`
	IsGroup            bool         `json:"is_group,omitempty"`
	IsIM               bool         `json:"is_im,omitempty"`
	IsMpIM             bool         `json:"is_mpim,omitempty"`
	IsPrivate          bool         `json:"is_private,omitempty"`
	IsArchived         bool         `json:"is_archived,omitempty"`
	IsMember           bool         `json:"is_member,omitempty"`
	Created            int64        `json:"created,omitempty"`
	Creator            string       `json:"creator,omitempty"`
	User               string       `json:"user,omitempty"`
	NumMembers         int          `json:"num_members,omitempty"`
	Topic              ChannelValue `json:"topic,omitempty"`
	Purpose            ChannelValue `json:"purpose,omitempty"`
	LastRead           string       `json:"last_read,omitempty"`
	UnreadCount        int          `json:"unread_count,omitempty"`
	UnreadCountDisplay int          `json:"unread_count_display,omitempty"`
}

// ChannelValue is a topic or purpose with its authorship.
type ChannelValue struct {
	Value   string `json:"value"`
	Creator string `json:"creator,omitempty"`
	LastSet int64  `json:"last_set,omitempty"`
}

// Message is a message in a conversation, identified by its channel and
// timestamp.
type Message struct {
	Type        string       `json:"type,omitempty"`
	Subtype     string       `json:"subtype,omitempty"`
	User        string       `json:"user,omitempty"`
	BotID       string       `json:"bot_id,omitempty"`
	Text        string       `json:"text,omitempty"`
	TS          string       `json:"ts,omitempty"`
	ThreadTS    string       `json:"thread_ts,omitempty"`
	ReplyCount  int          `json:"reply_count,omitempty"`
	ReplyUsers  []string     `json:"reply_users,omitempty"`
	LatestReply string       `json:"latest_reply,omitempty"`
	Channel     string       `json:"channel,omitempty"`
	Permalink   string       `json:"permalink,omitempty"`
	Reactions   []Reaction   `json:"reactions,omitempty"`
	Files       []File       `json:"files,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Edited      *Edited      `json:"edited,omitempty"`
}

// Edited records who last edited a message and when.
type Edited struct {
	User string `json:"user,omitempty"`
	TS   string `json:"ts,omitempty"`
}

// Attachment is a legacy secondary content block attached to a message.
type Attachment struct {
	Fallback  string `json:"fallback,omitempty"`
	Color     string `json:"color,omitempty"`
	Pretext   string `json:"pretext,omitempty"`
	Title     string `json:"title,omitempty"`
	TitleLink string `json:"title_link,omitempty"`
	Text      string `json:"text,omitempty"`
	Footer    string `json:"footer,omitempty"`
	TS        int64  `json:"ts,omitempty"`
}

// ScheduledMessage is a message queued for future delivery.
type ScheduledMessage struct {
	ID          string `json:"id"`
	ChannelID   string `json:"channel_id"`
	PostAt      int64  `json:"post_at"`
	DateCreated int64  `json:"date_created,omitempty"`
	Text        string `json:"text,omitempty"`
}

// Reaction is an emoji reaction with the users who added it.
type Reaction struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Users []string `json:"users,omitempty"`
}

// ReactedItem is a message a user has reacted to, as returned by
// reactions.list and reactions.get.
type ReactedItem struct {
	Type    string   `json:"type"`
	Channel string   `json:"channel,omitempty"`
	Message *Message `json:"message,omitempty"`
	File    *File    `json:"file,omitempty"`
}

// User is a workspace member.
type User struct {
	ID       string      `json:"id"`
	TeamID   string      `json:"team_id,omitempty"`
	Name     string      `json:"name,omitempty"`
	RealName string      `json:"real_name,omitempty"`
	Deleted  bool        `json:"deleted,omitempty"`
	IsBot    bool        `json:"is_bot,omitempty"`
	IsAdmin  bool        `json:"is_admin,omitempty"`
	IsOwner  bool        `json:"is_owner,omitempty"`
	TZ       string      `json:"tz,omitempty"`
	TZLabel  string      `json:"tz_label,omitempty"`
	TZOffset int         `json:"tz_offset,omitempty"`
	Profile  UserProfile `json:"profile,omitempty"`
	Updated  int64       `json:"updated,omitempty"`
}

// UserProfile is the editable profile block of a user.
type UserProfile struct {
	DisplayName  string `json:"display_name,omitempty"`
	RealName     string `json:"real_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Title        string `json:"title,omitempty"`
	StatusText   string `json:"status_text,omitempty"`
	StatusEmoji  string `json:"status_emoji,omitempty"`
	StatusExpire int64  `json:"status_expiration,omitempty"`
	Image192     string `json:"image_192,omitempty"`
	Image512     string `json:"image_512,omitempty"`
}

// Presence is a user's presence state as reported by users.getPresence.
type Presence struct {
	Presence        string `json:"presence"`
	Online          bool   `json:"online,omitempty"`
	AutoAway        bool   `json:"auto_away,omitempty"`
	ManualAway      bool   `json:"manual_away,omitempty"`
	ConnectionCount int    `json:"connection_count,omitempty"`
	LastActivity    int64  `json:"last_activity,omitempty"`
}

// File is an uploaded file's metadata.
type File struct {
	ID                 string   `json:"id"`
	Created            int64    `json:"created,omitempty"`
	Name               string   `json:"name,omitempty"`
	Title              string   `json:"title,omitempty"`
	Mimetype           string   `json:"mimetype,omitempty"`
	Filetype           string   `json:"filetype,omitempty"`
	User               string   `json:"user,omitempty"`
	Size               int64    `json:"size,omitempty"`
	IsPublic           bool     `json:"is_public,omitempty"`
	URLPrivate         string   `json:"url_private,omitempty"`
	URLPrivateDownload string   `json:"url_private_download,omitempty"`
	Permalink          string   `json:"permalink,omitempty"`
	Channels           []string `json:"channels,omitempty"`
}

// Reminder is a scheduled reminder.
type Reminder struct {
	ID         string `json:"id"`
	Creator    string `json:"creator,omitempty"`
	User       string `json:"user,omitempty"`
	Text       string `json:"text,omitempty"`
	Recurring  bool   `json:"recurring,omitempty"`
	Time       int64  `json:"time,omitempty"`
	CompleteTS int64  `json:"complete_ts,omitempty"`
}

// Bookmark is a link pinned to a channel's bookmark bar.
type Bookmark struct {
	ID          string `json:"id"`
	ChannelID   string `json:"channel_id"`
	Title       string `json:"title,omitempty"`
	Link        string `json:"link,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
	Type        string `json:"type,omitempty"`
	DateCreated int64  `json:"date_created,omitempty"`
	DateUpdated int64  `json:"date_updated,omitempty"`
}

// PinnedItem is an item pinned to a channel.
type PinnedItem struct {
	Type    string   `json:"type"`
	Channel string   `json:"channel,omitempty"`
	Created int64    `json:"created,omitempty"`
	Message *Message `json:"message,omitempty"`
	File    *File    `json:"file,omitempty"`
}

// StarredItem is an item a user has starred.
type StarredItem struct {
	Type    string   `json:"type"`
	Channel string   `json:"channel,omitempty"`
	Message *Message `json:"message,omitempty"`
	File    *File    `json:"file,omitempty"`
}

// UserGroup is a named group of users (@-mentionable handle).
type UserGroup struct {
	ID          string   `json:"id"`
	TeamID      string   `json:"team_id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Handle      string   `json:"handle,omitempty"`
	Description string   `json:"description,omitempty"`
	DateCreate  int64    `json:"date_create,omitempty"`
	DateDelete  int64    `json:"date_delete,omitempty"`
	UserCount   int      `json:"user_count,omitempty"`
	Users       []string `json:"users,omitempty"`
}

// Team is the workspace itself.
type Team struct {
	ID           string         `json:"id"`
	Name         string         `json:"name,omitempty"`
	Domain       string         `json:"domain,omitempty"`
	EmailDomain  string         `json:"email_domain,omitempty"`
	Icon         map[string]any `json:"icon,omitempty"`
	EnterpriseID string         `json:"enterprise_id,omitempty"`
}

// DNDStatus is a user's do-not-disturb state.
type DNDStatus struct {
	DNDEnabled      bool  `json:"dnd_enabled"`
	NextDNDStartTS  int64 `json:"next_dnd_start_ts,omitempty"`
	NextDNDEndTS    int64 `json:"next_dnd_end_ts,omitempty"`
	SnoozeEnabled   bool  `json:"snooze_enabled,omitempty"`
	SnoozeEndtime   int64 `json:"snooze_endtime,omitempty"`
	SnoozeRemaining int64 `json:"snooze_remaining,omitempty"`
}
