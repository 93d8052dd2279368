package state

import (
	"time"

	"github.com/google/uuid"
)

// Section identifies which collection the dashboard is showing.
type Section string

const (
	SectionFeed      Section = "feed"
	SectionTrending  Section = "trending"
	SectionFavorites Section = "favorites"
	SectionSearch    Section = "search"
)

// Theme is the presentation color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// NotificationKind classifies a transient notification.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Notification is a transient toast entry.
type Notification struct {
	ID      string
	Kind    NotificationKind
	Message string
	TTL     time.Duration
}

// UIState holds transient view state. Only Theme is persisted.
type UIState struct {
	SidebarOpen   bool
	ActiveSection Section
	SettingsOpen  bool
	Theme         Theme
	Notifications []Notification
}

func defaultUI() UIState {
	return UIState{
		SidebarOpen:   true,
		ActiveSection: SectionFeed,
		Theme:         ThemeLight,
	}
}

func reduceUI(s UIState, action Action) UIState {
	switch a := action.(type) {
	case ToggleSidebar:
		s.SidebarOpen = !s.SidebarOpen
	case SetSidebarOpen:
		s.SidebarOpen = a.Open
	case SetActiveSection:
		s.ActiveSection = a.Section
	case ToggleSettings:
		s.SettingsOpen = !s.SettingsOpen
	case SetTheme:
		if a.Theme == ThemeLight || a.Theme == ThemeDark {
			s.Theme = a.Theme
		}
	case AddNotification:
		entry := Notification{
			ID:      uuid.NewString(),
			Kind:    a.Kind,
			Message: a.Message,
			TTL:     a.TTL,
		}
		notifications := make([]Notification, 0, len(s.Notifications)+1)
		notifications = append(notifications, s.Notifications...)
		s.Notifications = append(notifications, entry)
	case RemoveNotification:
		out := make([]Notification, 0, len(s.Notifications))
		for _, n := range s.Notifications {
			if n.ID != a.ID {
				out = append(out, n)
			}
		}
		s.Notifications = out
	}
	return s
}
