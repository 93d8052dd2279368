// Package persist mirrors selected state slices to durable storage.
//
// Middleware observes the state store's transition stream: for an allow-listed
// set of transition kinds it serializes four independently keyed records after
// the reducers have run. Writes are best-effort - a storage failure is logged
// and the dispatch that triggered it still succeeds in memory.
//
// Load is the startup counterpart: it reconstructs a partial initial state
// from whatever records exist. A missing or malformed record falls back to
// the default for that record only and never blocks the other three.
package persist

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/AbhishekSharma9161/curio/internal/content"
	"github.com/AbhishekSharma9161/curio/internal/logging"
	"github.com/AbhishekSharma9161/curio/internal/state"
	"github.com/AbhishekSharma9161/curio/internal/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record keys in durable storage.
const (
	KeyPreferences = "userPreferences"
	KeyTheme       = "theme"
	KeyFavorites   = "favorites"
	KeyAuthState   = "authState"
)

// persistedActions is the fixed allow-list of transition kinds that trigger a
// mirror to durable storage.
var persistedActions = map[state.ActionType]bool{
	state.PrefsSetCategories:         true,
	state.PrefsAddCategory:           true,
	state.PrefsRemoveCategory:        true,
	state.PrefsSetLanguage:           true,
	state.PrefsToggleDarkMode:        true,
	state.PrefsSetLayout:             true,
	state.PrefsSetArticlesPerPage:    true,
	state.UISetTheme:                 true,
	state.ContentToggleFavorite:      true,
	state.AuthSignInFulfilled:        true,
	state.AuthSignUpFulfilled:        true,
	state.AuthUpdateProfileFulfilled: true,
	state.AuthUpdateLocal:            true,
	state.AuthLogout:                 true,
}

// authRecord is the persisted session shape: user identity only, never the
// transient loading flag or error.
type authRecord struct {
	User            *state.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}

// Middleware mirrors allow-listed transitions to durable storage. It
// implements state.Observer and is attached to the store facade at startup.
type Middleware struct {
	store *store.Store

	// applyTheme propagates the effective dark flag to the presentation
	// layer when a theme or dark-mode transition lands. May be nil.
	applyTheme func(dark bool)
}

// New creates the persistence middleware over a durable store.
func New(st *store.Store, applyTheme func(dark bool)) *Middleware {
	return &Middleware{store: st, applyTheme: applyTheme}
}

// Notify implements state.Observer. Called after reducers have applied the
// action, with the post-transition snapshot.
func (m *Middleware) Notify(action state.Action, s state.State) {
	if !persistedActions[action.Type()] {
		return
	}

	m.writeJSON(KeyPreferences, s.Prefs)
	m.writeRaw(KeyTheme, string(s.UI.Theme))
	m.writeJSON(KeyFavorites, s.Content.Favorites)
	m.writeJSON(KeyAuthState, authRecord{
		User:            s.Session.User,
		IsAuthenticated: s.Session.IsAuthenticated,
	})

	kind := action.Type()
	if kind == state.UISetTheme || kind == state.PrefsToggleDarkMode {
		if m.applyTheme != nil {
			m.applyTheme(s.UI.Theme == state.ThemeDark || s.Prefs.DarkMode)
		}
	}
}

func (m *Middleware) writeJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error("failed to serialize record", "key", key, "error", err)
		return
	}
	m.writeRaw(key, string(data))
}

func (m *Middleware) writeRaw(key, value string) {
	if err := m.store.Put(key, value); err != nil {
		logging.Error("failed to persist record", "key", key, "error", err)
	}
}

// Load reconstructs the initial state from durable storage. Records are
// independent: a missing or malformed record leaves that slice at its
// default. Load never fails.
func Load(st *store.Store) state.State {
	s := state.Default()

	if raw, ok := read(st, KeyPreferences); ok {
		var prefs state.Preferences
		if err := json.UnmarshalFromString(raw, &prefs); err != nil {
			logging.Warn("ignoring malformed preferences record", "error", err)
		} else {
			s.Prefs = prefs
		}
	}

	if raw, ok := read(st, KeyTheme); ok {
		switch state.Theme(raw) {
		case state.ThemeLight, state.ThemeDark:
			s.UI.Theme = state.Theme(raw)
		default:
			logging.Warn("ignoring malformed theme record", "value", raw)
		}
	}

	if raw, ok := read(st, KeyFavorites); ok {
		var favorites []content.Item
		if err := json.UnmarshalFromString(raw, &favorites); err != nil {
			logging.Warn("ignoring malformed favorites record", "error", err)
		} else {
			// Restored favorites are favorites by definition, whatever the
			// serialized flag says.
			for i := range favorites {
				favorites[i].IsFavorite = true
			}
			s.Content.Favorites = favorites
		}
	}

	if raw, ok := read(st, KeyAuthState); ok {
		var rec authRecord
		if err := json.UnmarshalFromString(raw, &rec); err != nil {
			logging.Warn("ignoring malformed auth record", "error", err)
		} else {
			s.Session.User = rec.User
			s.Session.IsAuthenticated = rec.IsAuthenticated && rec.User != nil
			s.Session.IsLoading = false
			s.Session.Error = ""
		}
	}

	return s
}

func read(st *store.Store, key string) (string, bool) {
	raw, ok, err := st.Get(key)
	if err != nil {
		logging.Warn("failed to read record", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}
