package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/mono/internal/event"
)

var categoryColors = []struct {
	category event.Category
	color    lipgloss.Color
}{
	{event.CategoryKeyboard, lipgloss.Color("42")},
	{event.CategoryMouse, lipgloss.Color("39")},
	{event.CategoryBuffer, lipgloss.Color("213")},
	{event.CategoryWindow, lipgloss.Color("226")},
}

// eventPrinter writes one line per event. Styling is only applied when the
// output is a terminal.
type eventPrinter struct {
	w      io.Writer
	styled bool
	dim    lipgloss.Style
}

func newEventPrinter(w io.Writer, styled bool) *eventPrinter {
	return &eventPrinter{
		w:      w,
		styled: styled,
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (p *eventPrinter) print(ev event.Event) {
	if !p.styled {
		fmt.Fprintln(p.w, ev.String())
		return
	}
	name := lipgloss.NewStyle().
		Bold(true).
		Width(16).
		Foreground(categoryColor(ev.Category())).
		Render(ev.Type().String())
	fmt.Fprintln(p.w, name+" "+p.dim.Render(ev.String()))
}

func categoryColor(c event.Category) lipgloss.Color {
	for _, cc := range categoryColors {
		if c&cc.category != 0 {
			return cc.color
		}
	}
	return lipgloss.Color("250")
}
