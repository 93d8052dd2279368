// Package app wires the stores, repository and auth policy into the Bubble
// Tea event loop. Every user intent becomes a state action; every async
// completion arrives as a message and is folded back through Dispatch, so all
// transitions flow through the single synchronous pipeline.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AbhishekSharma9161/curio/internal/auth"
	"github.com/AbhishekSharma9161/curio/internal/config"
	"github.com/AbhishekSharma9161/curio/internal/content"
	"github.com/AbhishekSharma9161/curio/internal/filter"
	"github.com/AbhishekSharma9161/curio/internal/state"
	"github.com/AbhishekSharma9161/curio/internal/ui"
)

const (
	notifyTTL    = 4 * time.Second
	loadMoreSize = 6
)

// Model is the root Bubble Tea model.
type Model struct {
	store *state.Store
	repo  *content.Repository
	authn auth.Authenticator
	cfg   *config.Config

	theme     ui.Theme
	spin      spinner.Model
	search    textinput.Model
	searching bool

	selected int
	width    int
	height   int

	// loadToken guards against stale load-more responses: each request gets
	// a fresh token and completions carrying an old one are dropped.
	loadToken   int
	loadingMore bool
}

// New creates the root model over an already-initialized store.
func New(store *state.Store, repo *content.Repository, authn auth.Authenticator, cfg *config.Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Placeholder = "search title, description or category"
	ti.CharLimit = 80

	return Model{
		store:  store,
		repo:   repo,
		authn:  authn,
		cfg:    cfg,
		theme:  ui.For(store.State().UI.Theme),
		spin:   sp,
		search: ti,
	}
}

// Init starts the initial ingest.
func (m Model) Init() tea.Cmd {
	m.store.Dispatch(state.SetLoading{Loading: true})
	return tea.Batch(m.loadContent(), m.spin.Tick)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.store.State().Content.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ContentLoadedMsg:
		combined := CombineFeed(msg.News, msg.Movies, msg.Social)
		m.store.Dispatch(state.SetFeed{Items: combined})
		m.store.Dispatch(state.SetTrending{Items: SelectTrending(combined)})
		m.store.Dispatch(state.SetError{Message: IngestError(msg.NewsErr, msg.MoviesErr, msg.SocialErr)})
		m.store.Dispatch(state.SetLoading{Loading: false})
		m.selected = 0
		return m, nil

	case MoreLoadedMsg:
		if msg.Token != m.loadToken {
			return m, nil // superseded request, drop it
		}
		m.loadingMore = false
		m.store.Dispatch(state.AppendFeed{Items: msg.Items})
		m.store.Dispatch(state.IncrementPage{})
		return m, nil

	case SearchDoneMsg:
		m.store.Dispatch(state.SetSearchResults{Items: msg.Items})
		return m, nil

	case SignInDoneMsg:
		if msg.Err != nil {
			m.store.Dispatch(state.SignInRejected{Reason: msg.Err.Error()})
			return m, m.notify(state.NotifyError, msg.Err.Error())
		}
		m.store.Dispatch(state.SignInFulfilled{User: msg.User})
		return m, m.notify(state.NotifySuccess, "Welcome back, "+msg.User.Name)

	case SignUpDoneMsg:
		if msg.Err != nil {
			m.store.Dispatch(state.SignUpRejected{Reason: msg.Err.Error()})
			return m, m.notify(state.NotifyError, msg.Err.Error())
		}
		m.store.Dispatch(state.SignUpFulfilled{User: msg.User})
		return m, m.notify(state.NotifySuccess, "Account created for "+msg.User.Name)

	case ProfileSavedMsg:
		if msg.Err != nil {
			m.store.Dispatch(state.UpdateProfileRejected{Reason: msg.Err.Error()})
			return m, nil
		}
		m.store.Dispatch(state.UpdateProfileFulfilled{Updates: msg.Updates})
		return m, m.notify(state.NotifySuccess, "Profile updated")

	case ThemeAppliedMsg:
		if msg.Dark {
			m.theme = ui.Dark()
		} else {
			m.theme = ui.Light()
		}
		return m, nil

	case NotificationExpiredMsg:
		m.store.Dispatch(state.RemoveNotification{ID: msg.ID})
		return m, nil

	case RefreshMsg:
		return m.refresh()
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	snap := m.store.State()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1":
		return m.switchSection(state.SectionFeed)
	case "2":
		return m.switchSection(state.SectionTrending)
	case "3":
		return m.switchSection(state.SectionFavorites)
	case "4":
		return m.switchSection(state.SectionSearch)

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.visible(snap))-1 {
			m.selected++
		}

	case "K":
		m.moveSelected(snap, -1)
	case "J":
		m.moveSelected(snap, +1)

	case " ", "enter":
		items := m.visible(snap)
		if m.selected >= 0 && m.selected < len(items) {
			m.store.Dispatch(state.ToggleFavorite{ID: items[m.selected].ID})
		}

	case "m":
		return m.loadMore(snap)

	case "r":
		return m.refresh()

	case "d":
		m.store.Dispatch(state.ToggleDarkMode{})
	case "t":
		next := state.ThemeDark
		if snap.UI.Theme == state.ThemeDark {
			next = state.ThemeLight
		}
		m.store.Dispatch(state.SetTheme{Theme: next})

	case "s":
		m.store.Dispatch(state.ToggleSidebar{})
	case "o":
		m.store.Dispatch(state.ToggleSettings{})

	case "/":
		m.searching = true
		m.search.SetValue(snap.Content.SearchQuery)
		m.search.Focus()
		return m, textinput.Blink

	case "l":
		if snap.Session.IsAuthenticated {
			m.store.Dispatch(state.Logout{})
			return m, m.notify(state.NotifyInfo, "Signed out")
		}
		return m, m.signIn("demo@example.com", "password123")

	case "u":
		if snap.Session.User != nil {
			seed := fmt.Sprintf("%s-%d", snap.Session.User.Email, time.Now().UnixNano())
			avatar := auth.AvatarURL(seed)
			m.store.Dispatch(state.UpdateUserLocal{Updates: state.UserUpdate{Avatar: &avatar}})
		}
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := m.search.Value()
		m.searching = false
		m.search.Blur()
		m.store.Dispatch(state.SetSearchQuery{Query: query})
		m.store.Dispatch(state.ResetPage{})
		m.store.Dispatch(state.SetActiveSection{Section: state.SectionSearch})
		m.selected = 0
		return m, m.runSearch(query)

	case "esc":
		m.searching = false
		m.search.Blur()
		m.store.Dispatch(state.SetSearchQuery{Query: ""})
		m.store.Dispatch(state.SetActiveSection{Section: state.SectionFeed})
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// refresh restarts the full ingest. Invalidating the load token makes any
// in-flight load-more batch stale so it cannot append onto the fresh feed.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.loadToken++
	m.loadingMore = false
	m.store.Dispatch(state.SetLoading{Loading: true})
	return m, tea.Batch(m.loadContent(), m.spin.Tick)
}

func (m Model) switchSection(section state.Section) (tea.Model, tea.Cmd) {
	snap := m.store.State()
	if snap.UI.ActiveSection != section {
		m.store.Dispatch(state.SetActiveSection{Section: section})
		m.store.Dispatch(state.ResetPage{})
		m.selected = 0
	}
	return m, nil
}

// moveSelected applies the resolved reorder outcome of moving the selected
// feed item one visible position up or down.
func (m *Model) moveSelected(snap state.State, delta int) {
	if snap.UI.ActiveSection != state.SectionFeed {
		return
	}
	items := m.visible(snap)
	neighbor := m.selected + delta
	if m.selected < 0 || m.selected >= len(items) || neighbor < 0 || neighbor >= len(items) {
		return
	}
	src := indexOf(snap.Content.Feed, items[m.selected].ID)
	dest := indexOf(snap.Content.Feed, items[neighbor].ID)
	if src < 0 || dest < 0 {
		return
	}
	m.store.Dispatch(state.ReorderFeed{Src: src, Dest: dest})
	m.selected = neighbor
}

func (m Model) loadMore(snap state.State) (tea.Model, tea.Cmd) {
	if snap.UI.ActiveSection != state.SectionFeed || m.loadingMore || !snap.Content.HasMore {
		return m, nil
	}
	m.loadingMore = true
	m.loadToken++
	token := m.loadToken
	category := ""
	if len(snap.Prefs.Categories) > 0 {
		category = snap.Prefs.Categories[0]
	}
	return m, func() tea.Msg {
		return MoreLoadedMsg{Items: content.MockMore(category, loadMoreSize), Token: token}
	}
}

// Commands

func (m Model) loadContent() tea.Cmd {
	snap := m.store.State()
	categories := snap.Prefs.Categories
	pageSize := m.cfg.PageSize
	feeds := m.cfg.RSSFeeds
	repo := m.repo

	return func() tea.Msg {
		ctx := context.Background()
		news, newsErr := repo.FetchNews(ctx, categories, 1, pageSize)
		for _, feed := range feeds {
			extra, err := repo.FetchRSS(ctx, feed, pageSize)
			if err == nil {
				news = append(news, extra...)
			}
		}
		movies, moviesErr := repo.FetchMovies(ctx, 1, pageSize)
		social, socialErr := repo.FetchSocial(ctx, categories, 1, pageSize)
		return ContentLoadedMsg{
			News: news, Movies: movies, Social: social,
			NewsErr: newsErr, MoviesErr: moviesErr, SocialErr: socialErr,
		}
	}
}

func (m Model) runSearch(query string) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		items, err := repo.Search(context.Background(), query, "")
		if err != nil {
			items = nil
		}
		return SearchDoneMsg{Query: query, Items: items}
	}
}

func (m Model) signIn(email, password string) tea.Cmd {
	if err := auth.ValidateSignIn(email, password); err != nil {
		return m.notify(state.NotifyError, err.Error())
	}
	m.store.Dispatch(state.SignInPending{})
	authn := m.authn
	return func() tea.Msg {
		user, err := authn.Authenticate(context.Background(), email, password)
		return SignInDoneMsg{User: user, Err: err}
	}
}

// SignUp validates the form fields and runs the account-creation cycle.
// Validation failures never reach the store.
func (m Model) SignUp(name, email, password, confirm string) tea.Cmd {
	if err := auth.ValidateSignUp(name, email, password, confirm); err != nil {
		return m.notify(state.NotifyError, err.Error())
	}
	m.store.Dispatch(state.SignUpPending{})
	return func() tea.Msg {
		return SignUpDoneMsg{User: auth.NewAccount(email, name)}
	}
}

// SaveProfile runs the profile-update cycle for the signed-in user.
func (m Model) SaveProfile(updates state.UserUpdate) tea.Cmd {
	if m.store.State().Session.User == nil {
		return func() tea.Msg {
			return ProfileSavedMsg{Err: auth.ErrNoUser}
		}
	}
	m.store.Dispatch(state.UpdateProfilePending{})
	return func() tea.Msg {
		return ProfileSavedMsg{Updates: updates}
	}
}

// notify queues a transient notification and schedules its expiry.
func (m Model) notify(kind state.NotificationKind, message string) tea.Cmd {
	m.store.Dispatch(state.AddNotification{Kind: kind, Message: message, TTL: notifyTTL})
	snap := m.store.State()
	if len(snap.UI.Notifications) == 0 {
		return nil
	}
	latest := snap.UI.Notifications[len(snap.UI.Notifications)-1]
	if latest.TTL <= 0 {
		return nil
	}
	return tea.Tick(latest.TTL, func(time.Time) tea.Msg {
		return NotificationExpiredMsg{ID: latest.ID}
	})
}

// visible derives the displayed list for the current snapshot.
func (m Model) visible(snap state.State) []content.Item {
	section := snap.UI.ActiveSection
	return filter.Visible(
		section,
		baseCollection(snap, section),
		filter.FavoriteSet(snap.Content.Favorites),
		snap.Content.SearchQuery,
		snap.Prefs.Categories,
		snap.Prefs.ArticlesPerPage,
	)
}

func baseCollection(snap state.State, section state.Section) []content.Item {
	switch section {
	case state.SectionTrending:
		return snap.Content.Trending
	case state.SectionFavorites:
		return snap.Content.Favorites
	case state.SectionSearch:
		return snap.Content.SearchResults
	default:
		return snap.Content.Feed
	}
}

func indexOf(items []content.Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// View renders the UI.
func (m Model) View() string {
	snap := m.store.State()
	th := m.theme

	var sections []string
	sections = append(sections, th.Header.Width(m.width).Render(m.renderTabs(snap)))

	if m.searching {
		sections = append(sections, "  /"+m.search.View())
	}

	if snap.Content.Error != "" {
		sections = append(sections, th.ErrorText.Render("  "+snap.Content.Error))
	}

	if snap.Content.Loading {
		sections = append(sections, th.MutedText.Render("  "+m.spin.View()+" loading content..."))
	} else {
		items := m.visible(snap)
		sections = append(sections, ui.RenderItems(items, m.selected, snap.Prefs.Layout, th, m.width))
	}

	for _, n := range snap.UI.Notifications {
		sections = append(sections, th.Notification.Render(fmt.Sprintf(" %s: %s ", n.Kind, n.Message)))
	}

	sections = append(sections, th.StatusBar.Width(m.width).Render(m.renderStatus(snap)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs(snap state.State) string {
	tabs := []struct {
		section state.Section
		label   string
	}{
		{state.SectionFeed, fmt.Sprintf("1 Feed (%d)", len(snap.Content.Feed))},
		{state.SectionTrending, fmt.Sprintf("2 Trending (%d)", len(snap.Content.Trending))},
		{state.SectionFavorites, fmt.Sprintf("3 Favorites (%d)", len(snap.Content.Favorites))},
		{state.SectionSearch, fmt.Sprintf("4 Search (%d)", len(snap.Content.SearchResults))},
	}
	out := "  CURIO  "
	for _, tab := range tabs {
		style := m.theme.SectionInactive
		if snap.UI.ActiveSection == tab.section {
			style = m.theme.SectionActive
		}
		out += style.Render(tab.label) + "  "
	}
	return out
}

func (m Model) renderStatus(snap state.State) string {
	user := "guest"
	if snap.Session.User != nil {
		user = snap.Session.User.Name
	}
	if snap.Session.IsLoading {
		user += " (signing in...)"
	}
	if snap.Session.Error != "" {
		user += "  !" + snap.Session.Error
	}
	return fmt.Sprintf("  %s  ·  page %d  ·  [space] favorite  [J/K] move  [m] more  [/] search  [t] theme  [l] login  [q] quit", user, snap.Content.Page)
}
