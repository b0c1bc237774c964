// Package theme maps a colour token onto the styles every surface uses for
// story rows.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

// DefaultToken is used when no colour is configured.
const DefaultToken = "blue"

// shade holds the 200 and 300 steps of a Tailwind palette.
type shade struct {
	s200, s300 string
}

var palette = map[string]shade{
	"gray":   {"#E5E7EB", "#D1D5DB"},
	"red":    {"#FECACA", "#FCA5A5"},
	"orange": {"#FED7AA", "#FDBA74"},
	"yellow": {"#FDE68A", "#FCD34D"},
	"green":  {"#A7F3D0", "#6EE7B7"},
	"teal":   {"#99F6E4", "#5EEAD4"},
	"blue":   {"#BFDBFE", "#93C5FD"},
	"indigo": {"#C7D2FE", "#A5B4FC"},
	"purple": {"#DDD6FE", "#C4B5FD"},
	"pink":   {"#FBCFE8", "#F9A8D4"},
}

// Tokens lists the accepted colour tokens, sorted.
func Tokens() []string {
	out := make([]string, 0, len(palette))
	for k := range palette {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Theme is a resolved colour token.
type Theme struct {
	Token string

	// Terminal colours.
	Row      lipgloss.Color
	RowHover lipgloss.Color
	Text     lipgloss.Color
	Accent   lipgloss.Color
}

// Parse resolves token. Tokens are case-insensitive.
func Parse(token string) (Theme, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	sh, ok := palette[token]
	if !ok {
		return Theme{}, fmt.Errorf("unknown colour %q (want one of %s)", token, strings.Join(Tokens(), ", "))
	}

	base, err := colorful.Hex(sh.s200)
	if err != nil {
		return Theme{}, fmt.Errorf("colour %s: %w", token, err)
	}
	accent, _ := colorful.MakeColor(gamut.Darker(gamut.Hex(sh.s300), 0.55))

	return Theme{
		Token:    token,
		Row:      lipgloss.Color(sh.s200),
		RowHover: lipgloss.Color(sh.s300),
		Text:     textFor(base),
		Accent:   lipgloss.Color(accent.Clamped().Hex()),
	}, nil
}

// MustParse is Parse for tokens known to be valid.
func MustParse(token string) Theme {
	t, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return t
}

// textFor picks a readable foreground for a row background.
func textFor(bg colorful.Color) lipgloss.Color {
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return lipgloss.Color("#111827")
	}
	return lipgloss.Color("#F9FAFB")
}

// BackgroundClass is the Tailwind background class of a row.
func (t Theme) BackgroundClass() string { return "bg-" + t.Token + "-200" }

// HoverClass is the Tailwind hover background class of a row.
func (t Theme) HoverClass() string { return "hover:bg-" + t.Token + "-300" }

// RowClass is the full class list of a story row.
func (t Theme) RowClass() string {
	return "border py-3 my-3 " + t.BackgroundClass() + " " + t.HoverClass()
}
