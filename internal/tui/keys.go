package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Tab      key.Binding
	PrevTab  key.Binding
	Enter    key.Binding
	Search   key.Binding
	SortKey  key.Binding
	SortDir  key.Binding
	Status   key.Binding
	Claim    key.Binding
	Done     key.Binding
	Pending  key.Binding
	Delete   key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
	Confirm  key.Binding
	GoBottom key.Binding
	GoTop    key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Tab:      key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
	PrevTab:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev tab")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	SortKey:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort by")),
	SortDir:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort order")),
	Status:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "status filter")),
	Claim:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "claim")),
	Done:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle done")),
	Pending:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "in progress/pending")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Refresh:  key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "reload")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Confirm:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
	GoBottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	GoTop:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
}
