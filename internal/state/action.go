package state

import (
	"time"

	"github.com/AbhishekSharma9161/curio/internal/content"
)

// ActionType identifies a transition kind, namespaced "slice/operation".
// The strings double as keys in the persistence allow-list.
type ActionType string

const (
	ContentSetLoading       ActionType = "content/setLoading"
	ContentSetError         ActionType = "content/setError"
	ContentSetFeed          ActionType = "content/setFeed"
	ContentAppendFeed       ActionType = "content/appendToFeed"
	ContentSetTrending      ActionType = "content/setTrending"
	ContentSetSearchResults ActionType = "content/setSearchResults"
	ContentSetSearchQuery   ActionType = "content/setSearchQuery"
	ContentToggleFavorite   ActionType = "content/toggleFavorite"
	ContentReorderFeed      ActionType = "content/reorderFeed"
	ContentSetHasMore       ActionType = "content/setHasMore"
	ContentIncrementPage    ActionType = "content/incrementPage"
	ContentResetPage        ActionType = "content/resetPage"

	PrefsSetCategories      ActionType = "userPreferences/setCategories"
	PrefsAddCategory        ActionType = "userPreferences/addCategory"
	PrefsRemoveCategory     ActionType = "userPreferences/removeCategory"
	PrefsSetLanguage        ActionType = "userPreferences/setLanguage"
	PrefsToggleDarkMode     ActionType = "userPreferences/toggleDarkMode"
	PrefsSetLayout          ActionType = "userPreferences/setLayout"
	PrefsSetArticlesPerPage ActionType = "userPreferences/setArticlesPerPage"

	UIToggleSidebar      ActionType = "ui/toggleSidebar"
	UISetSidebarOpen     ActionType = "ui/setSidebarOpen"
	UISetActiveSection   ActionType = "ui/setActiveSection"
	UIToggleSettings     ActionType = "ui/toggleSettings"
	UISetTheme           ActionType = "ui/setTheme"
	UIAddNotification    ActionType = "ui/addNotification"
	UIRemoveNotification ActionType = "ui/removeNotification"

	AuthSignInPending          ActionType = "auth/loginUser/pending"
	AuthSignInFulfilled        ActionType = "auth/loginUser/fulfilled"
	AuthSignInRejected         ActionType = "auth/loginUser/rejected"
	AuthSignUpPending          ActionType = "auth/signupUser/pending"
	AuthSignUpFulfilled        ActionType = "auth/signupUser/fulfilled"
	AuthSignUpRejected         ActionType = "auth/signupUser/rejected"
	AuthUpdateProfilePending   ActionType = "auth/updateUserProfile/pending"
	AuthUpdateProfileFulfilled ActionType = "auth/updateUserProfile/fulfilled"
	AuthUpdateProfileRejected  ActionType = "auth/updateUserProfile/rejected"
	AuthUpdateLocal            ActionType = "auth/updateUserLocal"
	AuthLogout                 ActionType = "auth/logout"
	AuthClearError             ActionType = "auth/clearError"
)

// Action is a state transition request. Each concrete action carries its own
// payload; reducers switch on the concrete type.
type Action interface {
	Type() ActionType
}

// Content actions.

// SetLoading sets the content loading flag.
type SetLoading struct{ Loading bool }

// SetError sets the content error message; empty clears it.
type SetError struct{ Message string }

// SetFeed replaces the feed wholesale.
type SetFeed struct{ Items []content.Item }

// AppendFeed concatenates items at the feed tail (load more).
type AppendFeed struct{ Items []content.Item }

// SetTrending replaces the trending collection. Selection policy (rating
// threshold, cap) is the caller's concern.
type SetTrending struct{ Items []content.Item }

// SetSearchResults replaces the search results collection.
type SetSearchResults struct{ Items []content.Item }

// SetSearchQuery records the advisory search text.
type SetSearchQuery struct{ Query string }

// ToggleFavorite flips the favorite flag for the item with this id in every
// collection holding a copy, and updates favorites membership accordingly.
type ToggleFavorite struct{ ID string }

// ReorderFeed moves the feed element at Src to Dest as a single stable move.
// A cancelled drag arrives with Dest < 0 and is a no-op, as is any
// out-of-bounds index.
type ReorderFeed struct{ Src, Dest int }

// SetHasMore records whether another page is available.
type SetHasMore struct{ HasMore bool }

// IncrementPage advances the pagination cursor.
type IncrementPage struct{}

// ResetPage rewinds the pagination cursor to 1. Dispatched whenever the
// section or search/preference context changes enough to invalidate it.
type ResetPage struct{}

func (SetLoading) Type() ActionType       { return ContentSetLoading }
func (SetError) Type() ActionType         { return ContentSetError }
func (SetFeed) Type() ActionType          { return ContentSetFeed }
func (AppendFeed) Type() ActionType       { return ContentAppendFeed }
func (SetTrending) Type() ActionType      { return ContentSetTrending }
func (SetSearchResults) Type() ActionType { return ContentSetSearchResults }
func (SetSearchQuery) Type() ActionType   { return ContentSetSearchQuery }
func (ToggleFavorite) Type() ActionType   { return ContentToggleFavorite }
func (ReorderFeed) Type() ActionType      { return ContentReorderFeed }
func (SetHasMore) Type() ActionType       { return ContentSetHasMore }
func (IncrementPage) Type() ActionType    { return ContentIncrementPage }
func (ResetPage) Type() ActionType        { return ContentResetPage }

// Preference actions.

// SetCategories replaces the category selection (de-duplicated, first
// occurrence wins).
type SetCategories struct{ Categories []string }

// AddCategory adds a category; no-op if already present.
type AddCategory struct{ Category string }

// RemoveCategory removes a category by name.
type RemoveCategory struct{ Category string }

// SetLanguage sets the preferred language code.
type SetLanguage struct{ Language string }

// ToggleDarkMode flips the dark-mode preference.
type ToggleDarkMode struct{}

// SetLayout selects grid or list layout.
type SetLayout struct{ Layout Layout }

// SetArticlesPerPage sets the page size, clamped to [MinArticlesPerPage,
// MaxArticlesPerPage].
type SetArticlesPerPage struct{ N int }

func (SetCategories) Type() ActionType      { return PrefsSetCategories }
func (AddCategory) Type() ActionType        { return PrefsAddCategory }
func (RemoveCategory) Type() ActionType     { return PrefsRemoveCategory }
func (SetLanguage) Type() ActionType        { return PrefsSetLanguage }
func (ToggleDarkMode) Type() ActionType     { return PrefsToggleDarkMode }
func (SetLayout) Type() ActionType          { return PrefsSetLayout }
func (SetArticlesPerPage) Type() ActionType { return PrefsSetArticlesPerPage }

// UI actions.

// ToggleSidebar flips sidebar visibility.
type ToggleSidebar struct{}

// SetSidebarOpen sets sidebar visibility explicitly.
type SetSidebarOpen struct{ Open bool }

// SetActiveSection switches the displayed section.
type SetActiveSection struct{ Section Section }

// ToggleSettings flips the settings panel.
type ToggleSettings struct{}

// SetTheme selects the light or dark theme.
type SetTheme struct{ Theme Theme }

// AddNotification queues a transient notification; an id is assigned by the
// reducer.
type AddNotification struct {
	Kind    NotificationKind
	Message string
	TTL     time.Duration
}

// RemoveNotification drops a notification by id.
type RemoveNotification struct{ ID string }

func (ToggleSidebar) Type() ActionType      { return UIToggleSidebar }
func (SetSidebarOpen) Type() ActionType     { return UISetSidebarOpen }
func (SetActiveSection) Type() ActionType   { return UISetActiveSection }
func (ToggleSettings) Type() ActionType     { return UIToggleSettings }
func (SetTheme) Type() ActionType           { return UISetTheme }
func (AddNotification) Type() ActionType    { return UIAddNotification }
func (RemoveNotification) Type() ActionType { return UIRemoveNotification }

// Session actions. Async operations are modeled as three discrete events
// dispatched into the same synchronous pipeline: pending, then fulfilled or
// rejected.

type SignInPending struct{}
type SignInFulfilled struct{ User User }
type SignInRejected struct{ Reason string }

type SignUpPending struct{}
type SignUpFulfilled struct{ User User }
type SignUpRejected struct{ Reason string }

type UpdateProfilePending struct{}
type UpdateProfileFulfilled struct{ Updates UserUpdate }
type UpdateProfileRejected struct{ Reason string }

// UpdateUserLocal merges updates into the current user without a round-trip.
// Used for optimistic fields like a regenerated avatar.
type UpdateUserLocal struct{ Updates UserUpdate }

// Logout clears the session synchronously.
type Logout struct{}

// ClearAuthError resets the session error before a retry.
type ClearAuthError struct{}

func (SignInPending) Type() ActionType          { return AuthSignInPending }
func (SignInFulfilled) Type() ActionType        { return AuthSignInFulfilled }
func (SignInRejected) Type() ActionType         { return AuthSignInRejected }
func (SignUpPending) Type() ActionType          { return AuthSignUpPending }
func (SignUpFulfilled) Type() ActionType        { return AuthSignUpFulfilled }
func (SignUpRejected) Type() ActionType         { return AuthSignUpRejected }
func (UpdateProfilePending) Type() ActionType   { return AuthUpdateProfilePending }
func (UpdateProfileFulfilled) Type() ActionType { return AuthUpdateProfileFulfilled }
func (UpdateProfileRejected) Type() ActionType  { return AuthUpdateProfileRejected }
func (UpdateUserLocal) Type() ActionType        { return AuthUpdateLocal }
func (Logout) Type() ActionType                 { return AuthLogout }
func (ClearAuthError) Type() ActionType         { return AuthClearError }
