package tuiapp

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/micutio/planefolio/internal"
	"github.com/muesli/reflow/wordwrap"
)

const (
	title             = "Plane Photography Portfolio"
	welcomeText       = "Welcome to my portfolio of plane photography, featuring commercial, military, and private aircraft. Use the menu to explore."
	searchPlaceholder = "Search planes..."
	listHeading       = "All Galleries"
	// chromeHeight is the number of lines around the tables: header, menu, search, tabs and help.
	chromeHeight    = 14
	minTableHeight  = 3
	maxPreviewWidth = 64
	maxWelcomeWidth = 72
)

// Model implements the bubbletea.Model interface, which requires three methods:
// - Init() Cmd
// - Update(Msg) (Model, Cmd)
// - View() string
// The portfolio state itself lives in the view controller, the model only adds what the terminal
// needs on top: focus, menu cursor, active tab, tables and the lightbox.
type model struct {
	width      int
	height     int
	keys       keyMap
	help       help.Model
	focus      uiState
	controller *internal.ViewController
	photoRoot  string
	logger     *slog.Logger

	menuCursor  int
	activeTab   int
	searchInput textinput.Model
	photoTbl    autoFormatTable
	summaryTbl  autoFormatTable

	lightboxRecord  internal.ImageRecord
	lightboxInfo    *internal.PhotoInfo
	lightboxErr     error
	lightboxLoading bool

	quitting bool
}

func newModel(controller *internal.ViewController, photoRoot string, logger *slog.Logger) *model {
	if logger == nil {
		logger = internal.TUILogParams(nil).ErrorLogger()
	}

	pal := Color.resolve(controller.DarkMode())

	searchInput := textinput.New()
	searchInput.Placeholder = searchPlaceholder
	searchInput.Prompt = "/ "
	searchInput.SetValue(controller.FilterQuery())

	m := &model{
		keys:        defaultKeyMap(),
		help:        help.New(),
		focus:       browsing,
		controller:  controller,
		photoRoot:   photoRoot,
		logger:      logger,
		searchInput: searchInput,
		photoTbl:    newPhotoTable(pal.tableStyles(true)),
		summaryTbl:  newSummaryTable(pal.tableStyles(false)),
	}
	m.applyTheme()
	m.refreshSummaryRows()
	m.refreshPhotoRows()

	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

// Update takes a tea.Msg as input and uses a type switch to handle different types of messages.
// Each case in the switch statement corresponds to a specific message type.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // required by interface
	switch thisMsg := msg.(type) {
	// message is sent when the window size changes
	// save to reflect the new dimensions of the terminal window.
	case tea.WindowSizeMsg:
		m.height = thisMsg.Height
		m.width = thisMsg.Width
		m.layout()

	// message is sent when a key is pressed.
	case tea.KeyMsg:
		if thisMsg.String() == "ctrl+c" {
			return m.quit()
		}
		switch m.focus {
		case searching:
			return m, m.handleSearchKey(thisMsg)
		case menuOpen:
			m.handleMenuKey(thisMsg)
		case lightbox:
			m.handleLightboxKey(thisMsg)
		case browsing:
			return m.handleBrowseKey(thisMsg)
		}

	case PhotoProbedMsg:
		m.applyProbe(thisMsg)
	}

	return m, nil
}

func (m *model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Menu):
		m.openMenu()
		return m, nil
	case key.Matches(msg, m.keys.Home):
		m.selectView(internal.Home)
		return m, nil
	case key.Matches(msg, m.keys.Gallery):
		m.selectView(internal.Gallery)
		return m, nil
	case key.Matches(msg, m.keys.List):
		m.selectView(internal.List)
		return m, nil
	case key.Matches(msg, m.keys.Dark):
		m.toggleDarkMode()
		return m, nil
	}

	switch m.controller.ActiveView() {
	case internal.Gallery:
		return m, m.handleGalleryKey(msg)
	case internal.List:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.summaryTbl.table.MoveUp(1)
		case key.Matches(msg, m.keys.Down):
			m.summaryTbl.table.MoveDown(1)
		}
	case internal.Home:
	}

	return m, nil
}

func (m *model) handleGalleryKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.focus = searching
		return m.searchInput.Focus()
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(-1)
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(1)
	case key.Matches(msg, m.keys.Up):
		m.photoTbl.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.photoTbl.table.MoveDown(1)
	case key.Matches(msg, m.keys.Open):
		return m.openLightbox()
	}
	return nil
}

// handleSearchKey types into the search field. Every change of the text re-filters the gallery.
func (m *model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type { //nolint:exhaustive // all other keys are typed into the field
	case tea.KeyEsc, tea.KeyEnter:
		m.focus = browsing
		m.searchInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if query := m.searchInput.Value(); query != m.controller.FilterQuery() {
		m.controller.SetFilterQuery(query)
		m.refreshPhotoRows()
	}
	return cmd
}

func (m *model) handleMenuKey(msg tea.KeyMsg) {
	views := internal.AllViews()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = (m.menuCursor + len(views) - 1) % len(views)
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = (m.menuCursor + 1) % len(views)
	case key.Matches(msg, m.keys.Open):
		m.selectView(views[m.menuCursor])
	case key.Matches(msg, m.keys.Home):
		m.selectView(internal.Home)
	case key.Matches(msg, m.keys.Gallery):
		m.selectView(internal.Gallery)
	case key.Matches(msg, m.keys.List):
		m.selectView(internal.List)
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Quit):
		m.focus = browsing
	}
}

func (m *model) handleLightboxKey(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.Close) || key.Matches(msg, m.keys.Open) || key.Matches(msg, m.keys.Quit) {
		m.closeLightbox()
	}
}

func (m *model) openMenu() {
	m.focus = menuOpen
	for idx, view := range internal.AllViews() {
		if view == m.controller.ActiveView() {
			m.menuCursor = idx
		}
	}
}

// selectView switches the page and closes the menu. Filter and active tab are kept.
func (m *model) selectView(view internal.View) {
	m.controller.SelectView(view)
	m.focus = browsing
}

func (m *model) toggleDarkMode() {
	m.controller.ToggleDarkMode()
	m.applyTheme()
}

func (m *model) applyTheme() {
	pal := Color.resolve(m.controller.DarkMode())

	m.photoTbl.table.SetStyles(pal.tableStyles(true))
	m.summaryTbl.table.SetStyles(pal.tableStyles(false))

	m.searchInput.PromptStyle = lipgloss.NewStyle().Foreground(pal.highlight)
	m.searchInput.TextStyle = lipgloss.NewStyle().Foreground(pal.primary)
	m.searchInput.PlaceholderStyle = lipgloss.NewStyle().Foreground(pal.secondary)

	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(pal.primary).Bold(true)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(pal.secondary)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(pal.border)
}

// activeCategory returns the category of the selected tab.
func (m *model) activeCategory() (string, bool) {
	categories := m.controller.Categories()
	if len(categories) == 0 {
		return "", false
	}
	if m.activeTab >= len(categories) {
		m.activeTab = 0
	}
	return categories[m.activeTab], true
}

func (m *model) activeImages() []internal.ImageRecord {
	category, ok := m.activeCategory()
	if !ok {
		return nil
	}
	return m.controller.FilteredCategories().Images(category)
}

func (m *model) switchTab(delta int) {
	count := len(m.controller.Categories())
	if count == 0 {
		return
	}
	m.activeTab = ((m.activeTab+delta)%count + count) % count
	m.refreshPhotoRows()
	m.photoTbl.table.SetCursor(0)
}

func (m *model) refreshPhotoRows() {
	m.photoTbl.setRows(photosToRows(m.activeImages()))
}

func (m *model) refreshSummaryRows() {
	counts := internal.Summarize(m.controller.Catalog())
	rows := make([]table.Row, 0, len(counts))
	for _, count := range counts {
		rows = append(rows, categoryCountToRow(count))
	}
	m.summaryTbl.setRows(rows)
}

func (m *model) openLightbox() tea.Cmd {
	images := m.activeImages()
	cursor := m.photoTbl.table.Cursor()
	if cursor < 0 || cursor >= len(images) {
		return nil
	}

	m.focus = lightbox
	m.lightboxRecord = images[cursor]
	m.lightboxInfo = nil
	m.lightboxErr = nil
	m.lightboxLoading = true

	return probePhotoCmd(m.photoRoot, m.lightboxRecord)
}

func (m *model) closeLightbox() {
	m.focus = browsing
	m.lightboxInfo = nil
	m.lightboxErr = nil
	m.lightboxLoading = false
}

// applyProbe shows the probe result, unless the lightbox was closed or moved on in the meantime.
func (m *model) applyProbe(msg PhotoProbedMsg) {
	if m.focus != lightbox || msg.Info.Record != m.lightboxRecord {
		return
	}

	m.lightboxLoading = false
	if msg.Err != nil {
		m.lightboxErr = msg.Err
		m.logger.Warn("lightbox: photo not shown", slog.Any("error", msg.Err))
		return
	}

	info := msg.Info
	m.lightboxInfo = &info
}

func (m *model) contentWidth() int {
	return max(m.width-4, 20)
}

func (m *model) layout() {
	width := m.contentWidth()
	tableHeight := max(m.height-chromeHeight, minTableHeight)

	for _, aft := range []*autoFormatTable{&m.photoTbl, &m.summaryTbl} {
		if err := aft.resize(width); err != nil {
			m.logger.Error("layout: table resize failed", slog.Any("error", err))
		}
		aft.SetHeight(tableHeight)
	}

	m.searchInput.Width = max(width-len(m.searchInput.Prompt)-1, 1)
	m.help.Width = width
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	pal := Color.resolve(m.controller.DarkMode())
	baseStyle := lipgloss.NewStyle().Foreground(pal.primary).Background(pal.background)

	// Adds padding of 1 line on top and 2 cells on either side of every section.
	column := lipgloss.NewStyle().Padding(1, 2, 0, 2).Render

	var body string
	switch {
	case m.focus == lightbox:
		body = m.viewLightbox(pal)
	case m.controller.ActiveView() == internal.Gallery:
		body = m.viewGallery(pal)
	case m.controller.ActiveView() == internal.List:
		body = m.viewList(pal)
	default:
		body = m.viewHome()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		column(m.viewHeader(pal)),
		column(m.viewMenu(pal)),
		column(body),
		column(m.help.ShortHelpView(m.helpBindings())),
	)

	if m.width > 0 {
		baseStyle = baseStyle.Width(m.width)
	}
	if m.height > 0 {
		baseStyle = baseStyle.Height(m.height)
	}
	return baseStyle.Render(content)
}

// viewHeader shows the title with the dark mode switch on the right.
func (m *model) viewHeader(pal palette) string {
	switchLabel := "☀ light"
	if m.controller.DarkMode() {
		switchLabel = "☾ dark"
	}
	darkSwitch := lipgloss.NewStyle().Foreground(pal.secondary).Render("[d] " + switchLabel)
	heading := lipgloss.NewStyle().Bold(true).Foreground(pal.primary).Render(title)

	width := m.contentWidth()
	headingWidth := width - lipgloss.Width(darkSwitch)
	if headingWidth < lipgloss.Width(heading) {
		return lipgloss.JoinVertical(lipgloss.Left, heading, darkSwitch)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(headingWidth, lipgloss.Center, heading),
		darkSwitch,
	)
}

// viewMenu renders the "Select Page" button and, while open, its entries.
func (m *model) viewMenu(pal palette) string {
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.border).
		Padding(0, 1).
		Render("Select Page ▾")

	if m.focus != menuOpen {
		return button
	}

	entryStyle := lipgloss.NewStyle().Foreground(pal.primary).Padding(0, 1)
	selectedStyle := entryStyle.Foreground(pal.background).Background(pal.highlight)

	entries := make([]string, 0, len(internal.AllViews()))
	for idx, view := range internal.AllViews() {
		label := fmt.Sprintf("%d %s", idx+1, view.Label())
		if idx == m.menuCursor {
			entries = append(entries, selectedStyle.Render(label))
			continue
		}
		entries = append(entries, entryStyle.Render(label))
	}

	dropdown := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(pal.border).
		Background(pal.surface).
		Render(lipgloss.JoinVertical(lipgloss.Left, entries...))

	return lipgloss.JoinVertical(lipgloss.Left, button, dropdown)
}

func (m *model) viewHome() string {
	width := min(m.contentWidth(), maxWelcomeWidth)
	text := wordwrap.String(welcomeText, width)
	return lipgloss.PlaceHorizontal(m.contentWidth(), lipgloss.Center,
		lipgloss.NewStyle().Padding(2, 0).Align(lipgloss.Center).Render(text))
}

func (m *model) viewGallery(pal palette) string {
	search := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.border).
		Render(m.searchInput.View())

	categories := m.controller.Categories()
	if len(categories) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, search, "No galleries.")
	}

	active, _ := m.activeCategory()
	activeStyle := lipgloss.NewStyle().Bold(true).Underline(true).Foreground(pal.highlight).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(pal.secondary).Padding(0, 1)

	tabs := make([]string, 0, len(categories))
	for _, category := range categories {
		if category == active {
			tabs = append(tabs, activeStyle.Render(category))
			continue
		}
		tabs = append(tabs, inactiveStyle.Render(category))
	}
	tabRow := lipgloss.PlaceHorizontal(m.contentWidth(), lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	var photos string
	if len(m.activeImages()) == 0 {
		photos = lipgloss.NewStyle().Foreground(pal.secondary).Render(
			fmt.Sprintf("No planes in %s match %q.", active, m.controller.FilterQuery()))
	} else {
		photos = m.photoTbl.table.View()
	}

	filtered := m.controller.FilteredCategories()
	status := lipgloss.NewStyle().Foreground(pal.secondary).Render(
		fmt.Sprintf("%d of %d photo(s) shown",
			filtered.TotalMatches(),
			internal.TotalPhotos(internal.Summarize(m.controller.Catalog()))))

	return lipgloss.JoinVertical(lipgloss.Left, search, tabRow, "", photos, "", status)
}

func (m *model) viewList(pal palette) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(pal.primary).Render(listHeading)
	counts := internal.Summarize(m.controller.Catalog())
	total := lipgloss.NewStyle().Foreground(pal.secondary).Render(
		fmt.Sprintf("%d photo(s) in %d galleries", internal.TotalPhotos(counts), len(counts)))

	return lipgloss.JoinVertical(lipgloss.Left, heading, "", m.summaryTbl.table.View(), "", total)
}

func (m *model) viewLightbox(pal palette) string {
	caption := lipgloss.NewStyle().Bold(true).Foreground(pal.primary).Render(m.lightboxRecord.Alt)
	path := internal.ResolvePhotoPath(m.photoRoot, m.lightboxRecord.Src)

	lines := []string{caption}
	switch {
	case m.lightboxLoading:
		lines = append(lines, lipgloss.NewStyle().Foreground(pal.secondary).Render("Loading "+path+" ..."))
	case m.lightboxErr != nil:
		lines = append(lines, lipgloss.NewStyle().Foreground(pal.red).Render("Photo unavailable: "+path))
	case m.lightboxInfo != nil:
		info := m.lightboxInfo
		lines = append(lines,
			lipgloss.NewStyle().Foreground(pal.secondary).Render(
				fmt.Sprintf("%s · %d×%d px", info.Path, info.Width, info.Height)),
			"",
			internal.RenderPreview(info.Image, min(m.contentWidth()-4, maxPreviewWidth)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.highlight).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// helpBindings lists the keys that do something in the current state.
func (m *model) helpBindings() []key.Binding {
	switch m.focus {
	case searching:
		return []key.Binding{
			key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc/enter", "done")),
		}
	case menuOpen:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Open, m.keys.Close}
	case lightbox:
		return []key.Binding{m.keys.Close}
	case browsing:
	}

	bindings := []key.Binding{m.keys.Menu, m.keys.Home, m.keys.Gallery, m.keys.List}
	switch m.controller.ActiveView() {
	case internal.Gallery:
		bindings = append(bindings, m.keys.Search, m.keys.PrevTab, m.keys.NextTab, m.keys.Open)
	case internal.List:
		bindings = append(bindings, m.keys.Up, m.keys.Down)
	case internal.Home:
	}
	return append(bindings, m.keys.Dark, m.keys.Quit)
}
