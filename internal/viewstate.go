package internal

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownView = errors.New("unknown view")

// View is one of the pages selectable from the page menu.
type View int

const (
	Home    View = iota // welcome page, shown on startup
	Gallery             // tabbed, searchable photo gallery
	List                // photo count per category
)

// AllViews returns the views in menu order.
func AllViews() []View {
	return []View{Home, Gallery, List}
}

func (v View) String() string {
	switch v {
	case Home:
		return "Home"
	case Gallery:
		return "Gallery"
	case List:
		return "List"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Label is the page menu entry of the view.
func (v View) Label() string {
	if v == List {
		return "Gallery List"
	}
	return v.String()
}

// ParseView accepts a view name or menu label in any letter case.
func ParseView(name string) (View, error) {
	wanted := strings.ToLower(strings.TrimSpace(name))
	for _, view := range AllViews() {
		if wanted == strings.ToLower(view.String()) || wanted == strings.ToLower(view.Label()) {
			return view, nil
		}
	}
	return Home, fmt.Errorf("parseView: %w: %q", ErrUnknownView, name)
}

// ViewState is the transient UI state of one session.
type ViewState struct {
	ActiveView  View
	DarkMode    bool
	FilterQuery string
}

// InitialViewState is the state every session starts in unless configured otherwise.
func InitialViewState() ViewState {
	return ViewState{ActiveView: Home, DarkMode: true, FilterQuery: ""}
}

// ViewController owns the ViewState of a session and the gallery content derived from it.
// It is driven from a single UI goroutine and does no locking.
type ViewController struct {
	catalog  *Catalog
	state    ViewState
	filtered FilteredCategories
}

// ViewOption presets part of the initial state.
type ViewOption func(*ViewState)

func WithDarkMode(dark bool) ViewOption {
	return func(s *ViewState) { s.DarkMode = dark }
}

func WithFilterQuery(query string) ViewOption {
	return func(s *ViewState) { s.FilterQuery = query }
}

func WithView(view View) ViewOption {
	return func(s *ViewState) { s.ActiveView = view }
}

func NewViewController(catalog *Catalog, opts ...ViewOption) *ViewController {
	state := InitialViewState()
	for _, opt := range opts {
		opt(&state)
	}

	return &ViewController{
		catalog:  catalog,
		state:    state,
		filtered: ComputeFilteredCategories(catalog, state.FilterQuery),
	}
}

// SelectView switches the page. The filter is left untouched.
func (vc *ViewController) SelectView(view View) ViewState {
	vc.state.ActiveView = view
	return vc.state
}

// ToggleDarkMode flips the theme.
func (vc *ViewController) ToggleDarkMode() ViewState {
	vc.state.DarkMode = !vc.state.DarkMode
	return vc.state
}

// SetFilterQuery replaces the search text and recomputes the gallery content.
func (vc *ViewController) SetFilterQuery(query string) ViewState {
	vc.state.FilterQuery = query
	vc.filtered = ComputeFilteredCategories(vc.catalog, query)
	return vc.state
}

func (vc *ViewController) State() ViewState {
	return vc.state
}

func (vc *ViewController) ActiveView() View {
	return vc.state.ActiveView
}

func (vc *ViewController) DarkMode() bool {
	return vc.state.DarkMode
}

func (vc *ViewController) FilterQuery() string {
	return vc.state.FilterQuery
}

func (vc *ViewController) Catalog() *Catalog {
	return vc.catalog
}

// Categories returns all category names, matching or not, in tab order.
func (vc *ViewController) Categories() []string {
	return vc.catalog.Categories()
}

// FilteredCategories returns the gallery content for the current filter.
func (vc *ViewController) FilteredCategories() FilteredCategories {
	return vc.filtered
}
