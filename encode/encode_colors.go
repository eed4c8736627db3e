package encode

import (
	"github.com/Totox00/multiarchi-tools/tree"

	"github.com/fatih/color"
)

type Colorable struct {
	Type tree.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	LiteralColor
	DocColor
)

// Colors maps the type of a node and the part of it being written to a
// colouring function. Parts without an entry use Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	c := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range tree.Types() {
		c.set(t, SepColor, color.New(color.FgMagenta))
		c.set(t, DocColor, color.New(color.FgHiBlack))
		c.set(t, FieldColor, color.New(color.FgBlue))
	}
	c.set(tree.IntType, ValueColor, color.New(color.FgHiCyan))
	c.set(tree.FloatType, ValueColor, color.New(color.FgHiCyan))
	c.set(tree.BoolType, ValueColor, color.New(color.FgCyan))
	c.set(tree.NullType, ValueColor, color.New(color.FgMagenta, color.Faint))
	c.set(tree.AliasType, ValueColor, color.New(color.FgYellow))
	c.set(tree.StringType, ValueColor, color.New(color.FgGreen))
	c.set(tree.StringType, LiteralColor, color.New(color.FgHiYellow))
	return c
}

func (c *Colors) set(t tree.Type, a ColorAttr, p *color.Color) {
	c.Map[Colorable{Type: t, Attr: a}] = func(v string, _ ...any) string {
		return p.Sprint(v)
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t tree.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t tree.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
