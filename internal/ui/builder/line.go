package builder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/schemabuilder/internal/schema"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

const unnamed = "(unnamed)"

type Line struct {
	field    schema.Field
	depth    int
	expanded bool

	index int
}

func newLine(field schema.Field, depth int, expanded bool, index int) *Line {
	return &Line{field: field, depth: depth, expanded: expanded, index: index}
}

func (l *Line) render(leftPadding int, cursored bool, maxWidth int, blurred bool, name string) string {
	line := lipgloss.JoinHorizontal(
		lipgloss.Left,
		l.number(leftPadding),
		l.indent(),
		l.cursor(cursored, blurred),
		l.action(),
		" ",
		name,
		l.kind(),
		l.required(),
	)

	return lipgloss.NewStyle().MaxWidth(maxWidth).Render(line)
}

func (l *Line) name() string {
	if strings.TrimSpace(l.field.Name) == "" {
		return lipgloss.NewStyle().Foreground(theme.Overlay1()).Italic(true).Render(unnamed)
	}
	return lipgloss.NewStyle().Foreground(theme.Green()).Render(l.field.Name)
}

func (l *Line) kind() string {
	if !l.field.Kind.IsSet() {
		return lipgloss.NewStyle().Foreground(theme.Overlay0()).Render("<unset>")
	}
	return lipgloss.NewStyle().Foreground(theme.Peach()).Render(fmt.Sprintf("<%s>", l.field.Kind))
}

func (l *Line) required() string {
	if !l.field.Required {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.Red()).Bold(true).Render("*")
}

func (l *Line) number(leftPadding int) string {
	number := lipgloss.NewStyle().Foreground(theme.Overlay0())
	fmtStr := fmt.Sprintf("%%%dd ", leftPadding)
	return number.Render(fmt.Sprintf(fmtStr, l.index+1))
}

func (l *Line) indent() string {
	return strings.Repeat(" ", l.depth*2)
}

func (l *Line) cursor(cursored bool, blurred bool) string {
	if cursored {
		return l.cursorStyle(blurred).Render(">")
	}
	return l.cursorStyle(blurred).Render(" ")
}

func (l *Line) cursorStyle(blurred bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(theme.Blue()).Bold(true)
	if blurred {
		style = style.Foreground(theme.Overlay0()).Bold(false)
	}

	return style
}

func (l *Line) action() string {
	action := lipgloss.NewStyle().Foreground(theme.Subtext1())
	if !l.field.IsNested() {
		return action.Render(" ")
	}
	if len(l.field.Children) == 0 {
		return action.Render("○")
	}
	if l.expanded {
		return action.Render("-")
	}
	return action.Render("+")
}
