package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DevicePicker is a terminal list for choosing among detected scanner
// devices when more than one is connected.
type DevicePicker struct {
	driver    string
	devices   []string
	cursor    int
	selected  int
	submitted bool
	cancelled bool
	keyMap    pickerKeyMap
	styles    pickerStyles
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

type pickerStyles struct {
	Title      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Help       lipgloss.Style
}

func defaultPickerStyles() pickerStyles {
	return pickerStyles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Unselected: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// NewDevicePicker creates a picker over the discovered devices.
func NewDevicePicker(driver string, devices []string) DevicePicker {
	return DevicePicker{
		driver:   driver,
		devices:  devices,
		selected: -1,
		keyMap:   defaultPickerKeyMap(),
		styles:   defaultPickerStyles(),
	}
}

// Init implements tea.Model.
func (p DevicePicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p DevicePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, p.keyMap.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, p.keyMap.Down):
			if p.cursor < len(p.devices)-1 {
				p.cursor++
			}
		case key.Matches(msg, p.keyMap.Select):
			p.selected = p.cursor
			p.submitted = true
			return p, tea.Quit
		case key.Matches(msg, p.keyMap.Quit):
			p.cancelled = true
			return p, tea.Quit
		}
	}
	return p, nil
}

// View implements tea.Model.
func (p DevicePicker) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render(fmt.Sprintf("Select a %s scanner", p.driver)))
	b.WriteString("\n\n")

	for i, device := range p.devices {
		style := p.styles.Unselected
		symbol := "○"
		if i == p.cursor {
			style = p.styles.Selected
			symbol = "●"
		}
		b.WriteString(style.Render(symbol + " " + device))
		b.WriteString("\n")
	}

	b.WriteString(p.styles.Help.Render("\n↑/↓ navigate • enter select • q quit"))
	return b.String()
}

// Submitted returns true if the user made a selection.
func (p DevicePicker) Submitted() bool {
	return p.submitted
}

// Cancelled returns true if the user cancelled the selection.
func (p DevicePicker) Cancelled() bool {
	return p.cancelled
}

// Choice returns the selected device, or "" if none was selected.
func (p DevicePicker) Choice() string {
	if p.selected >= 0 && p.selected < len(p.devices) {
		return p.devices[p.selected]
	}
	return ""
}

// PickDevice runs the picker as a full bubbletea program and returns the
// chosen device. Callers must ensure the session is interactive first.
func PickDevice(ctx context.Context, driver string, devices []string) (string, error) {
	final, err := tea.NewProgram(NewDevicePicker(driver, devices), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", fmt.Errorf("device picker failed: %w", err)
	}

	picker, ok := final.(DevicePicker)
	if !ok || !picker.Submitted() {
		return "", fmt.Errorf("device selection cancelled")
	}
	return picker.Choice(), nil
}
