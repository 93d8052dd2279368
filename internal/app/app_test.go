package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AbhishekSharma9161/curio/internal/auth"
	"github.com/AbhishekSharma9161/curio/internal/config"
	"github.com/AbhishekSharma9161/curio/internal/content"
	"github.com/AbhishekSharma9161/curio/internal/state"
)

func testModel() Model {
	stateStore := state.New(state.Default())
	repo := content.NewRepository(content.Options{})
	return New(stateStore, repo, auth.Demo{}, config.DefaultConfig())
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestContentLoadedFoldsIntoStore(t *testing.T) {
	m := testModel()
	m.store.Dispatch(state.SetLoading{Loading: true})

	rating := 9.0
	msg := ContentLoadedMsg{
		News:   []content.Item{{ID: "n1", Kind: content.KindNews}},
		Movies: []content.Item{{ID: "m1", Kind: content.KindMovie, Rating: &rating}},
		Social: []content.Item{{ID: "s1", Kind: content.KindSocial}},
	}
	updated, _ := m.Update(msg)
	m = updated.(Model)

	snap := m.store.State()
	if len(snap.Content.Feed) != 3 {
		t.Errorf("feed = %d items, want 3", len(snap.Content.Feed))
	}
	if len(snap.Content.Trending) == 0 {
		t.Errorf("trending should be selected from the combined feed")
	}
	if snap.Content.Loading {
		t.Errorf("loading should clear once content lands")
	}
	if snap.Content.Error != "" {
		t.Errorf("no source errors, but store error = %q", snap.Content.Error)
	}
}

func TestContentLoadedWithSourceError(t *testing.T) {
	m := testModel()
	msg := ContentLoadedMsg{NewsErr: errString("boom")}

	updated, _ := m.Update(msg)
	m = updated.(Model)

	if got := m.store.State().Content.Error; got != aggregateErrMessage {
		t.Errorf("error = %q, want aggregate message", got)
	}
}

func TestStaleLoadMoreDropped(t *testing.T) {
	m := testModel()
	m.store.Dispatch(state.SetFeed{Items: []content.Item{{ID: "a"}}})

	// No load was requested, so any token is stale.
	updated, _ := m.Update(MoreLoadedMsg{Items: []content.Item{{ID: "b"}}, Token: 7})
	m = updated.(Model)

	snap := m.store.State()
	if len(snap.Content.Feed) != 1 {
		t.Errorf("stale batch appended: feed = %d items", len(snap.Content.Feed))
	}
	if snap.Content.Page != 1 {
		t.Errorf("stale batch advanced page to %d", snap.Content.Page)
	}
}

func TestLoadMoreRoundTrip(t *testing.T) {
	m := testModel()
	m.store.Dispatch(state.SetFeed{Items: []content.Item{{ID: "a"}}})

	updated, cmd := m.handleKey(keyMsg('m'))
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("load more should issue a command")
	}

	msg, ok := cmd().(MoreLoadedMsg)
	if !ok {
		t.Fatalf("command produced %T, want MoreLoadedMsg", cmd())
	}
	updated, _ = m.Update(msg)
	m = updated.(Model)

	snap := m.store.State()
	if len(snap.Content.Feed) <= 1 {
		t.Errorf("batch not appended: feed = %d items", len(snap.Content.Feed))
	}
	if snap.Content.Page != 2 {
		t.Errorf("page = %d, want 2", snap.Content.Page)
	}
}

func TestRefreshInvalidatesPendingLoadMore(t *testing.T) {
	m := testModel()
	m.store.Dispatch(state.SetFeed{Items: []content.Item{{ID: "a"}}})

	updated, cmd := m.handleKey(keyMsg('m'))
	m = updated.(Model)
	pending := cmd().(MoreLoadedMsg)

	// A refresh lands before the batch arrives.
	updated, _ = m.handleKey(keyMsg('r'))
	m = updated.(Model)

	updated, _ = m.Update(pending)
	m = updated.(Model)

	snap := m.store.State()
	if len(snap.Content.Feed) != 1 {
		t.Errorf("superseded batch appended: feed = %d items", len(snap.Content.Feed))
	}
	if snap.Content.Page != 1 {
		t.Errorf("superseded batch advanced page to %d", snap.Content.Page)
	}
}

func TestLoadMoreRespectsHasMore(t *testing.T) {
	m := testModel()
	m.store.Dispatch(state.SetHasMore{HasMore: false})

	_, cmd := m.handleKey(keyMsg('m'))
	if cmd != nil {
		t.Errorf("exhausted feed should not issue a load")
	}
}

func TestSignInDoneDispatchesFulfilled(t *testing.T) {
	m := testModel()

	user := state.User{ID: "1", Email: "demo@example.com", Name: "Demo User"}
	updated, _ := m.Update(SignInDoneMsg{User: user})
	m = updated.(Model)

	snap := m.store.State()
	if !snap.Session.IsAuthenticated || snap.Session.User == nil {
		t.Fatalf("session = %+v", snap.Session)
	}
	if len(snap.UI.Notifications) == 0 {
		t.Errorf("successful sign-in should queue a notification")
	}
}

func TestSignInDoneDispatchesRejected(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(SignInDoneMsg{Err: auth.ErrInvalidCredentials})
	m = updated.(Model)

	snap := m.store.State()
	if snap.Session.IsAuthenticated {
		t.Errorf("rejection must not authenticate")
	}
	if snap.Session.Error != "Invalid credentials" {
		t.Errorf("session error = %q", snap.Session.Error)
	}
}

func TestToggleFavoriteKey(t *testing.T) {
	m := testModel()
	m.store.Dispatch(state.SetFeed{Items: []content.Item{
		{ID: "a", Category: "technology"},
	}})
	m.store.Dispatch(state.SetCategories{Categories: nil})

	updated, _ := m.handleKey(keyMsg(' '))
	m = updated.(Model)

	snap := m.store.State()
	if len(snap.Content.Favorites) != 1 || snap.Content.Favorites[0].ID != "a" {
		t.Errorf("favorites = %+v", snap.Content.Favorites)
	}
}

func TestSectionSwitchResetsPage(t *testing.T) {
	m := testModel()
	m.store.Dispatch(state.IncrementPage{})

	updated, _ := m.handleKey(keyMsg('2'))
	m = updated.(Model)

	snap := m.store.State()
	if snap.UI.ActiveSection != state.SectionTrending {
		t.Errorf("section = %q, want trending", snap.UI.ActiveSection)
	}
	if snap.Content.Page != 1 {
		t.Errorf("page = %d, want reset to 1", snap.Content.Page)
	}
}

func TestNotificationExpiry(t *testing.T) {
	m := testModel()
	m.store.Dispatch(state.AddNotification{Kind: state.NotifyInfo, Message: "hi"})

	id := m.store.State().UI.Notifications[0].ID
	updated, _ := m.Update(NotificationExpiredMsg{ID: id})
	m = updated.(Model)

	if got := len(m.store.State().UI.Notifications); got != 0 {
		t.Errorf("notifications = %d, want 0 after expiry", got)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
