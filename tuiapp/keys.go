package tuiapp

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Menu    key.Binding
	Home    key.Binding
	Gallery key.Binding
	List    key.Binding
	Dark    key.Binding
	Search  key.Binding
	PrevTab key.Binding
	NextTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Close   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Menu:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "select page")),
		Home:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Gallery: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "gallery")),
		List:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "gallery list")),
		Dark:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		PrevTab: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev tab")),
		NextTab: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next tab")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}
