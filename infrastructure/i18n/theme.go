package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownTheme is returned by ParseTheme for names other than light or dark.
var ErrUnknownTheme = errors.New("unknown theme")

// foldCaser is a package-level Unicode case folder for performance.
var foldCaser = cases.Fold()

// Theme is the user's visual preference. It is opaque to everything except
// the renderer.
type Theme string

// Supported themes.
const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme resolves a theme name case-insensitively. An empty name
// selects Light.
func ParseTheme(name string) (Theme, error) {
	switch t := Theme(foldCaser.String(strings.TrimSpace(name))); t {
	case "":
		return Light, nil
	case Light, Dark:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// RenderContext is the read-only ambient state handed to the renderer.
// The score engine never sees it.
type RenderContext struct {
	Translator Translator
	Theme      Theme

	// Color enables ANSI styling of headings.
	Color bool
}

// NewRenderContext builds a render context from a locale tag and theme name.
func NewRenderContext(locale string, theme string) (RenderContext, error) {
	th, err := ParseTheme(theme)
	if err != nil {
		return RenderContext{}, err
	}
	return RenderContext{
		Translator: NewTranslator(Parse(locale)),
		Theme:      th,
	}, nil
}
