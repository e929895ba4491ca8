package bft

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorAttr selects which part of a dump a color applies to.
type ColorAttr int

const (
	IntColor ColorAttr = iota
	FloatColor
	TextColor
	BranchColor
	EmptyColor
)

// Colors maps parts of a dump to sprintf-style coloring functions. Parts
// without an entry are rendered with Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

// NewColors returns the default color scheme. The colors are emitted
// regardless of whether the process's standard output is a terminal.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	set := func(a ColorAttr, c *color.Color) {
		c.EnableColor()
		f := c.SprintfFunc()
		colors.Map[a] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	set(IntColor, color.RGB(128, 216, 236))
	set(FloatColor, color.RGB(196, 96, 16))
	set(TextColor, color.RGB(8, 196, 16))
	set(BranchColor, color.RGB(96, 96, 96))
	set(EmptyColor, color.New(color.Faint, color.Italic))
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Color renders s with the function registered for a.
func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

// Get returns the coloring function for a, falling back to Default.
func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	if f := c.Map[a]; f != nil {
		return f
	}
	if c.Default != nil {
		return c.Default
	}
	return colorDefault
}

func valueColor(v Value) ColorAttr {
	switch v.(type) {
	case Int:
		return IntColor
	case Float:
		return FloatColor
	}
	return TextColor
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
