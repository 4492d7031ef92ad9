package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Next, Prev            key.Binding
	Enter                 key.Binding
	Mode                  key.Binding
	Undo                  key.Binding
	AddRow, AddVar        key.Binding
	Step, Solve           key.Binding
	Save                  key.Binding
	Help                  key.Binding
	Quit                  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous cell")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit / pivot")),
		Mode:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "edit/pivot mode")),
		Undo:   key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		AddRow: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "add row")),
		AddVar: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add variable")),
		Step:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "step")),
		Solve:  key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "solve")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Mode, k.Undo, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Next, k.Prev},
		{k.Enter, k.Mode, k.Undo},
		{k.AddRow, k.AddVar, k.Step, k.Solve},
		{k.Save, k.Help, k.Quit},
	}
}
