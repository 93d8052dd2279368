package app

import (
	"github.com/AbhishekSharma9161/curio/internal/content"
	"github.com/AbhishekSharma9161/curio/internal/state"
)

// Messages for Bubble Tea. Async operations dispatch their pending action
// synchronously, run I/O in a command, and deliver completion as one of
// these, which Update folds back into the state store.

// ContentLoadedMsg is sent when the initial three-source ingest completes.
type ContentLoadedMsg struct {
	News   []content.Item
	Movies []content.Item
	Social []content.Item

	NewsErr   error
	MoviesErr error
	SocialErr error
}

// MoreLoadedMsg is sent when a "load more" batch arrives. Token carries the
// request token issued when the load started; stale responses are dropped.
type MoreLoadedMsg struct {
	Items []content.Item
	Token int
}

// SearchDoneMsg is sent when a search completes.
type SearchDoneMsg struct {
	Query string
	Items []content.Item
}

// SignInDoneMsg is sent when a sign-in attempt completes.
type SignInDoneMsg struct {
	User state.User
	Err  error
}

// SignUpDoneMsg is sent when account creation completes.
type SignUpDoneMsg struct {
	User state.User
	Err  error
}

// ProfileSavedMsg is sent when a profile update round-trip completes.
type ProfileSavedMsg struct {
	Updates state.UserUpdate
	Err     error
}

// ThemeAppliedMsg communicates the effective dark flag downstream from the
// persistence middleware's theme side effect.
type ThemeAppliedMsg struct {
	Dark bool
}

// NotificationExpiredMsg removes a notification whose TTL elapsed.
type NotificationExpiredMsg struct {
	ID string
}

// RefreshMsg triggers a full content refresh.
type RefreshMsg struct{}
